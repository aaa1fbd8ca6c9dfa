package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orbook/orbook/internal/domain/notification"
)

var ErrNotFound = errors.New("task not found")

var validUrgencies = map[string]bool{
	UrgencyLow:    true,
	UrgencyMedium: true,
	UrgencyHigh:   true,
}

// Notifier fans a notification out to its recipient.
type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification) error
}

type Service struct {
	repo     Repository
	notifier Notifier
	logger   zerolog.Logger
}

func NewService(repo Repository, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// Create stores a prep task and notifies the assignee unless they created
// it themselves.
func (s *Service) Create(ctx context.Context, t *Task, actor, actorName string) error {
	if t.PatientMRN == "" {
		return fmt.Errorf("patient_mrn is required")
	}
	if t.TaskDescription == "" {
		return fmt.Errorf("task_description is required")
	}
	if t.AssignedTo == "" {
		return fmt.Errorf("assigned_to is required")
	}
	if t.Urgency == "" {
		t.Urgency = UrgencyMedium
	}
	if !validUrgencies[t.Urgency] {
		return fmt.Errorf("invalid urgency: %s", t.Urgency)
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	t.CreatedBy = actor

	if err := s.repo.Create(ctx, t); err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	s.notifyAssignee(ctx, t, actor, actorName)
	return nil
}

func (s *Service) notifyAssignee(ctx context.Context, t *Task, actor, actorName string) {
	if t.AssignedToEmail == nil || *t.AssignedToEmail == "" || *t.AssignedToEmail == actor {
		return
	}
	if actorName == "" {
		actorName = actor
	}

	summary := t.TaskDescription
	if len(summary) > 50 {
		summary = summary[:50]
	}
	dueLine := "Not specified"
	if t.DueDate != nil && *t.DueDate != "" {
		dueLine = *t.DueDate
	}
	message := fmt.Sprintf(
		"You have been assigned a new task by %s:\n\n"+
			"Task: %s\n"+
			"Patient MRN: %s\n"+
			"Urgency: %s\n"+
			"Due Date: %s\n\n"+
			"Please complete this task to prepare the patient for the operating room.",
		actorName, t.TaskDescription, t.PatientMRN, t.Urgency, dueLine)

	taskID := t.ID.String()
	n := &notification.Notification{
		RecipientEmail: *t.AssignedToEmail,
		RecipientName:  t.AssignedTo,
		Type:           notification.TypeTaskAssigned,
		Title:          "New Task Assigned: " + summary,
		Message:        message,
		CaseMRN:        &t.PatientMRN,
		TaskID:         &taskID,
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn().Err(err).Str("recipient", *t.AssignedToEmail).Msg("task notification failed")
	}
}

// Get returns a task by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// List returns tasks, optionally scoped to one patient.
func (s *Service) List(ctx context.Context, patientMRN string) ([]*Task, error) {
	return s.repo.List(ctx, patientMRN)
}

// Update replaces the mutable fields of an existing task.
func (s *Service) Update(ctx context.Context, t *Task) error {
	if t.Urgency != "" && !validUrgencies[t.Urgency] {
		return fmt.Errorf("invalid urgency: %s", t.Urgency)
	}
	ok, err := s.repo.Update(ctx, t)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Toggle flips a task's completion state and returns the new state.
func (s *Service) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, ErrNotFound
	}

	t.Completed = !t.Completed
	if t.Completed {
		t.Status = StatusCompleted
	} else {
		t.Status = StatusPending
	}

	ok, err := s.repo.Update(ctx, t)
	if err != nil {
		return false, fmt.Errorf("toggle task: %w", err)
	}
	if !ok {
		return false, ErrNotFound
	}
	return t.Completed, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
