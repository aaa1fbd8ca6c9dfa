package task

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	List(ctx context.Context, patientMRN string) ([]*Task, error)
	Update(ctx context.Context, t *Task) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
