package conference

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Conference) error
	GetByID(ctx context.Context, id uuid.UUID) (*Conference, error)
	List(ctx context.Context) ([]*Conference, error)
	Update(ctx context.Context, c *Conference) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
