package roster

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows roster listings.
type ListFilter struct {
	Hospital   string
	ActiveOnly bool
}

// ResidentRepository is the persistence interface for residents.
type ResidentRepository interface {
	Create(ctx context.Context, r *Resident) error
	GetByEmail(ctx context.Context, email string) (*Resident, error)
	List(ctx context.Context, filter ListFilter) ([]*Resident, error)
	Update(ctx context.Context, r *Resident) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// AttendingRepository is the persistence interface for attendings.
type AttendingRepository interface {
	Create(ctx context.Context, a *Attending) error
	List(ctx context.Context, filter ListFilter) ([]*Attending, error)
	Update(ctx context.Context, a *Attending) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
