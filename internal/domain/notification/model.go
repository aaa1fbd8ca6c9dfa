package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification types.
const (
	TypeCaseAdded    = "case_added"
	TypeCaseUpdated  = "case_updated"
	TypeTaskAssigned = "task_assigned"
)

// Notification maps to the notifications table.
type Notification struct {
	ID             uuid.UUID `db:"id" json:"id"`
	RecipientEmail string    `db:"recipient_email" json:"recipient_email"`
	RecipientName  string    `db:"recipient_name" json:"recipient_name"`
	Type           string    `db:"type" json:"type"`
	Title          string    `db:"title" json:"title"`
	Message        string    `db:"message" json:"message"`
	CaseMRN        *string   `db:"case_mrn" json:"case_mrn,omitempty"`
	TaskID         *string   `db:"task_id" json:"task_id,omitempty"`
	Read           bool      `db:"read" json:"read"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
