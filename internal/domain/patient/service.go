package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/orbook/orbook/internal/domain/notification"
	"github.com/orbook/orbook/internal/domain/roster"
)

var (
	ErrNotFound     = errors.New("patient not found")
	ErrDuplicateMRN = errors.New("a patient with this MRN already exists")
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusDeficient: true,
	StatusInOR:      true,
	StatusCompleted: true,
}

// ScheduleArchiver marks a patient's OR cases archived or restored alongside
// the patient record.
type ScheduleArchiver interface {
	SetArchivedByMRN(ctx context.Context, mrn string, archived bool) error
}

// Notifier fans a notification out to its recipient.
type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification) error
}

// ResidentDirectory lists the active residents to notify about case events.
type ResidentDirectory interface {
	ActiveResidents(ctx context.Context, hospital string) ([]*roster.Resident, error)
}

// UsageTracker records diagnosis and CPT code usage for suggestions.
type UsageTracker interface {
	TrackDiagnosis(ctx context.Context, email, diagnosis string) error
	TrackCPTCode(ctx context.Context, email, code string) error
}

type Service struct {
	repo             Repository
	schedules        ScheduleArchiver
	residents        ResidentDirectory
	notifier         Notifier
	usage            UsageTracker
	autoArchiveDelay time.Duration
	logger           zerolog.Logger
}

func NewService(repo Repository, schedules ScheduleArchiver, residents ResidentDirectory,
	notifier Notifier, usage UsageTracker, autoArchiveDelay time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		repo:             repo,
		schedules:        schedules,
		residents:        residents,
		notifier:         notifier,
		usage:            usage,
		autoArchiveDelay: autoArchiveDelay,
		logger:           logger,
	}
}

// Create validates and stores a new patient record.
func (s *Service) Create(ctx context.Context, p *Patient, actor string) error {
	p.MRN = strings.TrimSpace(p.MRN)
	if p.MRN == "" {
		return fmt.Errorf("mrn is required")
	}
	if p.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if p.DOB == "" {
		return fmt.Errorf("dob is required")
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if !validStatuses[p.Status] {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	if _, err := s.repo.GetByMRN(ctx, p.MRN); err == nil {
		return ErrDuplicateMRN
	}

	p.CreatedBy = actor
	p.Comments = []Comment{}
	p.ActivityLog = nil
	p.LogActivity("created", actor, "Patient record created")

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}

	s.trackUsage(ctx, actor, p.Diagnosis, p.ProcedureCode)
	return nil
}

// Get returns a patient by MRN.
func (s *Service) Get(ctx context.Context, mrn string) (*Patient, error) {
	p, err := s.repo.GetByMRN(ctx, mrn)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns all active patients.
func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// ListArchived returns archived patients, most recently archived first.
func (s *Service) ListArchived(ctx context.Context) ([]*Patient, error) {
	return s.repo.ListArchived(ctx)
}

// Update applies field changes to an existing patient, logging what changed.
func (s *Service) Update(ctx context.Context, updated *Patient, actor string) (*Patient, error) {
	current, err := s.repo.GetByMRN(ctx, updated.MRN)
	if err != nil {
		return nil, ErrNotFound
	}
	if updated.Status != "" && !validStatuses[updated.Status] {
		return nil, fmt.Errorf("invalid status: %s", updated.Status)
	}

	var changes []string
	note := func(field, from, to string) {
		if from != to {
			changes = append(changes, fmt.Sprintf("%s: %s -> %s", field, from, to))
		}
	}
	note("patient_name", current.PatientName, updated.PatientName)
	note("dob", current.DOB, updated.DOB)
	note("diagnosis", strVal(current.Diagnosis), strVal(updated.Diagnosis))
	note("procedures", strVal(current.Procedures), strVal(updated.Procedures))
	note("attending", strVal(current.Attending), strVal(updated.Attending))
	if updated.Status != "" {
		note("status", current.Status, updated.Status)
	}

	diagnosisChanged := strVal(current.Diagnosis) != strVal(updated.Diagnosis)
	codeChanged := strVal(current.ProcedureCode) != strVal(updated.ProcedureCode)

	current.PatientName = updated.PatientName
	current.DOB = updated.DOB
	current.Diagnosis = updated.Diagnosis
	current.Procedures = updated.Procedures
	current.ProcedureCode = updated.ProcedureCode
	current.Attending = updated.Attending
	if updated.Status != "" {
		current.Status = updated.Status
	}
	current.PrepChecklist = updated.PrepChecklist
	current.UpdatedBy = &actor

	if len(changes) > 0 {
		current.LogActivity("updated", actor, strings.Join(changes, ", "))
	}

	ok, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	if diagnosisChanged {
		s.trackUsage(ctx, actor, current.Diagnosis, nil)
	}
	if codeChanged {
		s.trackUsage(ctx, actor, nil, current.ProcedureCode)
	}
	return current, nil
}

// Delete removes a patient record outright.
func (s *Service) Delete(ctx context.Context, mrn string) error {
	ok, err := s.repo.Delete(ctx, mrn)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// AddComment appends a comment and logs it.
func (s *Service) AddComment(ctx context.Context, mrn, text, actor, actorName string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment_text is required")
	}
	p, err := s.repo.GetByMRN(ctx, mrn)
	if err != nil {
		return nil, ErrNotFound
	}

	comment := Comment{
		CommentText:   text,
		CreatedBy:     actor,
		CreatedByName: actorName,
		CreatedAt:     time.Now().UTC(),
	}
	p.Comments = append(p.Comments, comment)

	summary := text
	if len(summary) > 50 {
		summary = summary[:50] + "..."
	}
	p.LogActivity("comment_added", actor, "Added comment: "+summary)

	if _, err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	return &comment, nil
}

// SetChecklistItem updates one prep checklist item. The item name must be
// one of the four tracked requirements.
func (s *Service) SetChecklistItem(ctx context.Context, mrn, item string, checked bool, actor string) error {
	if !ValidChecklistItem(item) {
		return fmt.Errorf("invalid checklist item: %s", item)
	}
	p, err := s.repo.GetByMRN(ctx, mrn)
	if err != nil {
		return ErrNotFound
	}

	p.SetChecklistItem(item, checked)
	p.UpdatedBy = &actor

	state := "unchecked"
	if checked {
		state = "checked"
	}
	label := strings.ReplaceAll(item, "_", " ")
	p.LogActivity("checklist_updated", actor, fmt.Sprintf("Updated %s: %s", label, state))

	if _, err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update checklist: %w", err)
	}
	return nil
}

// SendToOR moves the patient to in_or and notifies active residents.
func (s *Service) SendToOR(ctx context.Context, mrn, actor string) (*Patient, error) {
	p, err := s.repo.GetByMRN(ctx, mrn)
	if err != nil {
		return nil, ErrNotFound
	}

	prev := p.Status
	p.Status = StatusInOR
	p.UpdatedBy = &actor
	p.LogActivity("status_changed", actor,
		fmt.Sprintf("Patient sent to OR - Status changed from '%s' to '%s'", prev, StatusInOR))

	if _, err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("send to OR: %w", err)
	}

	s.notifyResidents(ctx, actor, notification.TypeCaseUpdated,
		"Patient in OR: "+p.PatientName,
		fmt.Sprintf("Patient %s (MRN: %s) has been sent to the operating room.", p.PatientName, mrn),
		mrn)
	return p, nil
}

// MarkComplete stamps the completion time and notifies active residents.
func (s *Service) MarkComplete(ctx context.Context, mrn, actor string) (*Patient, error) {
	p, err := s.repo.GetByMRN(ctx, mrn)
	if err != nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	prev := p.Status
	p.Status = StatusCompleted
	p.CompletedAt = &now
	p.UpdatedBy = &actor
	p.LogActivity("procedure_completed", actor,
		fmt.Sprintf("Procedure completed - Status changed from '%s' to '%s'", prev, StatusCompleted))

	if _, err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("mark complete: %w", err)
	}

	s.notifyResidents(ctx, actor, notification.TypeCaseUpdated,
		"Procedure Completed: "+p.PatientName,
		fmt.Sprintf("Procedure for %s (MRN: %s) has been marked as completed.", p.PatientName, mrn),
		mrn)
	return p, nil
}

// Archive soft-deletes the patient and archives its OR cases.
func (s *Service) Archive(ctx context.Context, mrn, actor string) (*Patient, error) {
	return s.archive(ctx, mrn, actor, "manual_archive", "Patient record manually archived")
}

func (s *Service) archive(ctx context.Context, mrn, actor, reason, details string) (*Patient, error) {
	p, err := s.repo.GetByMRN(ctx, mrn)
	if err != nil {
		return nil, ErrNotFound
	}
	if p.Archived {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	p.Archived = true
	p.ArchivedAt = &now
	p.ArchivedBy = &actor
	p.ArchivedReason = &reason
	action := "archived"
	if reason != "manual_archive" {
		action = "auto_archived"
	}
	p.LogActivity(action, actor, details)

	if _, err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("archive patient: %w", err)
	}
	if err := s.schedules.SetArchivedByMRN(ctx, mrn, true); err != nil {
		s.logger.Warn().Err(err).Str("mrn", mrn).Msg("failed to archive related schedules")
	}
	return p, nil
}

// Restore brings an archived patient back with a pending status and
// unarchives its OR cases.
func (s *Service) Restore(ctx context.Context, mrn, actor string) (*Patient, error) {
	p, err := s.repo.GetByMRN(ctx, mrn)
	if err != nil || !p.Archived {
		return nil, ErrNotFound
	}

	p.Archived = false
	p.ArchivedAt = nil
	p.ArchivedBy = nil
	p.ArchivedReason = nil
	p.Status = StatusPending
	p.UpdatedBy = &actor
	p.LogActivity("restored", actor, "Patient record restored from archive")

	if _, err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("restore patient: %w", err)
	}
	if err := s.schedules.SetArchivedByMRN(ctx, mrn, false); err != nil {
		s.logger.Warn().Err(err).Str("mrn", mrn).Msg("failed to restore related schedules")
	}
	return p, nil
}

// AutoArchive archives completed patients past the configured delay and
// returns how many were archived.
func (s *Service) AutoArchive(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.autoArchiveDelay)
	candidates, err := s.repo.ListCompletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list auto-archive candidates: %w", err)
	}

	hours := int(s.autoArchiveDelay.Hours())
	count := 0
	for _, p := range candidates {
		_, err := s.archive(ctx, p.MRN, "system",
			fmt.Sprintf("auto_archive_after_%dh", hours),
			fmt.Sprintf("Automatically archived %d hours after procedure completion", hours))
		if err != nil {
			s.logger.Warn().Err(err).Str("mrn", p.MRN).Msg("auto-archive failed for patient")
			continue
		}
		count++
	}
	return count, nil
}

// AutoArchiveDelayHours reports the configured delay for API responses.
func (s *Service) AutoArchiveDelayHours() int {
	return int(s.autoArchiveDelay.Hours())
}

func (s *Service) notifyResidents(ctx context.Context, actor, notifType, title, message, mrn string) {
	residents, err := s.residents.ActiveResidents(ctx, "")
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to list residents for notification")
		return
	}
	for _, r := range residents {
		if r.Email == actor {
			continue
		}
		n := &notification.Notification{
			RecipientEmail: r.Email,
			RecipientName:  r.Name,
			Type:           notifType,
			Title:          title,
			Message:        message,
			CaseMRN:        &mrn,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Warn().Err(err).Str("recipient", r.Email).Msg("notification failed")
		}
	}
}

func (s *Service) trackUsage(ctx context.Context, actor string, diagnosis, code *string) {
	if diagnosis != nil {
		if err := s.usage.TrackDiagnosis(ctx, actor, *diagnosis); err != nil {
			s.logger.Warn().Err(err).Msg("failed to track diagnosis usage")
		}
	}
	if code != nil {
		if err := s.usage.TrackCPTCode(ctx, actor, *code); err != nil {
			s.logger.Warn().Err(err).Msg("failed to track cpt usage")
		}
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
