package usage

import (
	"context"
	"strings"

	"github.com/orbook/orbook/internal/catalog"
)

// DefaultLimit is the default size of a frequently-used listing.
const DefaultLimit = 10

// MaxLimit caps a caller-requested listing size.
const MaxLimit = 50

type Service struct {
	repo Repository
	cat  *catalog.Catalog
}

func NewService(repo Repository, cat *catalog.Catalog) *Service {
	return &Service{repo: repo, cat: cat}
}

// TrackDiagnosis records a diagnosis use. Blank values are ignored.
func (s *Service) TrackDiagnosis(ctx context.Context, email, diagnosis string) error {
	return s.track(ctx, email, ItemDiagnosis, diagnosis)
}

// TrackCPTCode records a CPT code use. Blank values are ignored.
func (s *Service) TrackCPTCode(ctx context.Context, email, code string) error {
	return s.track(ctx, email, ItemCPTCode, code)
}

func (s *Service) track(ctx context.Context, email, itemType, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return s.repo.Touch(ctx, email, itemType, value)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// FrequentCPTCodes returns the user's most used CPT codes enriched with
// catalog descriptions. Codes missing from the catalog are skipped.
func (s *Service) FrequentCPTCodes(ctx context.Context, email string, limit int) ([]catalog.ProcedureCode, error) {
	codes, err := s.repo.FrequentValues(ctx, email, ItemCPTCode, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	enriched := make([]catalog.ProcedureCode, 0, len(codes))
	for _, code := range codes {
		if p, ok := s.cat.Lookup(code); ok {
			enriched = append(enriched, p)
		}
	}
	return enriched, nil
}

// FrequentDiagnoses returns the user's most used diagnosis strings.
func (s *Service) FrequentDiagnoses(ctx context.Context, email string, limit int) ([]string, error) {
	return s.repo.FrequentValues(ctx, email, ItemDiagnosis, clampLimit(limit))
}
