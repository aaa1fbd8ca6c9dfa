// Package patient manages the intake records that drive the pre-op prep
// dashboard, keyed by MRN.
package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient statuses.
//
//	pending    initial status, pre-op prep in progress
//	confirmed  all pre-op requirements met, ready for surgery
//	deficient  missing requirements, needs attention
//	in_or      patient has entered the operating room
//	completed  procedure completed
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeficient = "deficient"
	StatusInOR      = "in_or"
	StatusCompleted = "completed"
)

// PrepChecklist tracks the four pre-op requirements.
type PrepChecklist struct {
	Xrays               bool `json:"xrays"`
	LabTests            bool `json:"lab_tests"`
	InsuranceApproval   bool `json:"insurance_approval"`
	MedicalOptimization bool `json:"medical_optimization"`
}

// Comment is a free-text note on a patient record.
type Comment struct {
	CommentText   string    `json:"comment_text"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ActivityEntry records one audit event on a patient record.
type ActivityEntry struct {
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// Patient maps to the patients table. Comments and the activity log are
// stored as JSONB.
type Patient struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	MRN            string          `db:"mrn" json:"mrn"`
	PatientName    string          `db:"patient_name" json:"patient_name"`
	DOB            string          `db:"dob" json:"dob"`
	Diagnosis      *string         `db:"diagnosis" json:"diagnosis,omitempty"`
	Procedures     *string         `db:"procedures" json:"procedures,omitempty"`
	ProcedureCode  *string         `db:"procedure_code" json:"procedure_code,omitempty"`
	Attending      *string         `db:"attending" json:"attending,omitempty"`
	Status         string          `db:"status" json:"status"`
	PrepChecklist  PrepChecklist   `db:"prep_checklist" json:"prep_checklist"`
	Comments       []Comment       `db:"comments" json:"comments"`
	ActivityLog    []ActivityEntry `db:"activity_log" json:"activity_log"`
	CompletedAt    *time.Time      `db:"completed_at" json:"completed_at,omitempty"`
	Archived       bool            `db:"archived" json:"archived"`
	ArchivedAt     *time.Time      `db:"archived_at" json:"archived_at,omitempty"`
	ArchivedBy     *string         `db:"archived_by" json:"archived_by,omitempty"`
	ArchivedReason *string         `db:"archived_reason" json:"archived_reason,omitempty"`
	CreatedBy      string          `db:"created_by" json:"created_by"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedBy      *string         `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// ChecklistItem reports whether an item name is one of the four tracked
// requirements.
func ValidChecklistItem(item string) bool {
	switch item {
	case "xrays", "lab_tests", "insurance_approval", "medical_optimization":
		return true
	}
	return false
}

// SetChecklistItem sets one checklist item by name.
func (p *Patient) SetChecklistItem(item string, checked bool) {
	switch item {
	case "xrays":
		p.PrepChecklist.Xrays = checked
	case "lab_tests":
		p.PrepChecklist.LabTests = checked
	case "insurance_approval":
		p.PrepChecklist.InsuranceApproval = checked
	case "medical_optimization":
		p.PrepChecklist.MedicalOptimization = checked
	}
}

// LogActivity appends an audit entry.
func (p *Patient) LogActivity(action, user, details string) {
	p.ActivityLog = append(p.ActivityLog, ActivityEntry{
		Action:    action,
		User:      user,
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
}
