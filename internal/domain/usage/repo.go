package usage

import "context"

// Repository is the persistence interface for usage stats.
type Repository interface {
	// Touch increments the usage counter for (email, itemType, value),
	// creating the row on first use.
	Touch(ctx context.Context, email, itemType, value string) error
	// FrequentValues returns the item values for a user and type, most used
	// first.
	FrequentValues(ctx context.Context, email, itemType string, limit int) ([]string, error)
}
