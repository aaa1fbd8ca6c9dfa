package schedule

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows schedule listings. The zero value lists active
// schedules only.
type ListFilter struct {
	IncludeArchived bool
	AddonOnly       bool
	Date            string
	PatientMRN      string
}

type Repository interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*Schedule, error)
	List(ctx context.Context, filter ListFilter) ([]*Schedule, error)
	Update(ctx context.Context, s *Schedule) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SetArchivedByMRN(ctx context.Context, mrn string, archived bool) error
}
