package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Schedule is an OR case booking. Add-on cases carry no scheduled date until
// a slot opens and are listed separately from the calendar.
type Schedule struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientMRN    string     `db:"patient_mrn" json:"patient_mrn"`
	PatientName   string     `db:"patient_name" json:"patient_name"`
	Procedure     string     `db:"procedure" json:"procedure"`
	Staff         string     `db:"staff" json:"staff"`
	ScheduledDate string     `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTime *string    `db:"scheduled_time" json:"scheduled_time,omitempty"`
	Status        string     `db:"status" json:"status"`
	IsAddon       bool       `db:"is_addon" json:"is_addon"`
	Priority      string     `db:"priority" json:"priority"`
	Diagnosis     *string    `db:"diagnosis" json:"diagnosis,omitempty"`
	Archived      bool       `db:"archived" json:"archived"`
	ArchivedAt    *time.Time `db:"archived_at" json:"archived_at,omitempty"`
	ArchivedBy    *string    `db:"archived_by" json:"archived_by,omitempty"`
	CreatedBy     string     `db:"created_by" json:"created_by"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// EventDate returns the booked date for calendar bucketing.
func (s *Schedule) EventDate() string { return s.ScheduledDate }

// Bucketable excludes add-on cases and undated bookings from calendar views.
func (s *Schedule) Bucketable() bool { return !s.IsAddon && s.ScheduledDate != "" }
