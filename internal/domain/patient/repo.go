package patient

import (
	"context"
	"time"
)

// Repository is the persistence interface for patient records.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByMRN(ctx context.Context, mrn string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	ListArchived(ctx context.Context) ([]*Patient, error)
	// ListCompletedBefore returns active patients completed before the cutoff,
	// for auto-archival.
	ListCompletedBefore(ctx context.Context, cutoff time.Time) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) (bool, error)
	Delete(ctx context.Context, mrn string) (bool, error)
}
