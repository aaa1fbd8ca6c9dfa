package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateEmail is returned when a resident email is already rostered.
var ErrDuplicateEmail = errors.New("a resident with this email already exists")

type Service struct {
	residents  ResidentRepository
	attendings AttendingRepository
}

func NewService(residents ResidentRepository, attendings AttendingRepository) *Service {
	return &Service{residents: residents, attendings: attendings}
}

// CreateResident validates and stores a resident. Emails are unique across
// the resident roster.
func (s *Service) CreateResident(ctx context.Context, r *Resident) error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Hospital == "" {
		return fmt.Errorf("hospital is required")
	}
	if _, err := s.residents.GetByEmail(ctx, r.Email); err == nil {
		return ErrDuplicateEmail
	}
	return s.residents.Create(ctx, r)
}

// ListResidents returns residents, optionally filtered by hospital or
// active status.
func (s *Service) ListResidents(ctx context.Context, filter ListFilter) ([]*Resident, error) {
	return s.residents.List(ctx, filter)
}

// ActiveResidents returns the active residents to notify about new cases.
func (s *Service) ActiveResidents(ctx context.Context, hospital string) ([]*Resident, error) {
	return s.residents.List(ctx, ListFilter{Hospital: hospital, ActiveOnly: true})
}

func (s *Service) UpdateResident(ctx context.Context, r *Resident) (bool, error) {
	if r.Name == "" || r.Email == "" || r.Hospital == "" {
		return false, fmt.Errorf("name, email and hospital are required")
	}
	return s.residents.Update(ctx, r)
}

func (s *Service) DeleteResident(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.residents.Delete(ctx, id)
}

// CreateAttending validates and stores an attending.
func (s *Service) CreateAttending(ctx context.Context, a *Attending) error {
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	if a.Hospital == "" {
		return fmt.Errorf("hospital is required")
	}
	return s.attendings.Create(ctx, a)
}

func (s *Service) ListAttendings(ctx context.Context, filter ListFilter) ([]*Attending, error) {
	return s.attendings.List(ctx, filter)
}

func (s *Service) UpdateAttending(ctx context.Context, a *Attending) (bool, error) {
	if a.Name == "" || a.Hospital == "" {
		return false, fmt.Errorf("name and hospital are required")
	}
	return s.attendings.Update(ctx, a)
}

func (s *Service) DeleteAttending(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.attendings.Delete(ctx, id)
}
