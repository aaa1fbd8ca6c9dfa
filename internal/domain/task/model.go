package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"

	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Task is a prep item attached to a patient ahead of their OR date.
type Task struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientMRN      string    `db:"patient_mrn" json:"patient_mrn"`
	TaskDescription string    `db:"task_description" json:"task_description"`
	Urgency         string    `db:"urgency" json:"urgency"`
	AssignedTo      string    `db:"assigned_to" json:"assigned_to"`
	AssignedToEmail *string   `db:"assigned_to_email" json:"assigned_to_email,omitempty"`
	DueDate         *string   `db:"due_date" json:"due_date,omitempty"`
	Status          string    `db:"status" json:"status"`
	Completed       bool      `db:"completed" json:"completed"`
	CreatedBy       string    `db:"created_by" json:"created_by"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
