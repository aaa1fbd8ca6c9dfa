package conference

import (
	"time"

	"github.com/google/uuid"
)

// Conference is a departmental meeting such as grand rounds or case review.
type Conference struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Date      string    `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Attendees []string  `db:"attendees" json:"attendees"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EventDate returns the meeting date for calendar bucketing.
func (c *Conference) EventDate() string { return c.Date }

// Bucketable is always true; conferences have no add-on list.
func (c *Conference) Bucketable() bool { return true }
