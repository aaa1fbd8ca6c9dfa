// Package usage tracks per-user diagnosis and CPT code usage to power the
// frequently-used suggestion lists.
package usage

import (
	"time"

	"github.com/google/uuid"
)

// Item types tracked in usage_stats.
const (
	ItemDiagnosis = "diagnosis"
	ItemCPTCode   = "cpt_code"
)

// Stat maps to the usage_stats table. One row per (user, type, value).
type Stat struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserEmail  string    `db:"user_email" json:"user_email"`
	ItemType   string    `db:"item_type" json:"item_type"`
	ItemValue  string    `db:"item_value" json:"item_value"`
	UsageCount int       `db:"usage_count" json:"usage_count"`
	FirstUsed  time.Time `db:"first_used" json:"first_used"`
	LastUsed   time.Time `db:"last_used" json:"last_used"`
}
