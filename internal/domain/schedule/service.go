package schedule

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orbook/orbook/internal/calendar"
	"github.com/orbook/orbook/internal/domain/notification"
	"github.com/orbook/orbook/internal/domain/roster"
	"github.com/orbook/orbook/internal/platform/mailer"
)

var ErrNotFound = errors.New("schedule not found")

// CaseDuration is the default OR block booked for a case invite.
const CaseDuration = 2 * time.Hour

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// Notifier fans a notification out to its recipient.
type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification) error
}

// ResidentDirectory lists the active residents to notify about new cases.
type ResidentDirectory interface {
	ActiveResidents(ctx context.Context, hospital string) ([]*roster.Resident, error)
}

type Service struct {
	repo      Repository
	residents ResidentDirectory
	notifier  Notifier
	mail      mailer.Sender
	logger    zerolog.Logger
}

func NewService(repo Repository, residents ResidentDirectory, notifier Notifier,
	mail mailer.Sender, logger zerolog.Logger) *Service {
	return &Service{repo: repo, residents: residents, notifier: notifier, mail: mail, logger: logger}
}

// Create books an OR case, announces it to active residents, and sends the
// creator a calendar invite when the case has a firm date.
func (s *Service) Create(ctx context.Context, sch *Schedule, actor, actorName string) error {
	if sch.PatientMRN == "" {
		return fmt.Errorf("patient_mrn is required")
	}
	if sch.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if sch.Procedure == "" {
		return fmt.Errorf("procedure is required")
	}
	if sch.Staff == "" {
		return fmt.Errorf("staff is required")
	}
	if sch.Status == "" {
		sch.Status = StatusScheduled
	}
	if sch.Priority == "" {
		sch.Priority = PriorityMedium
	}
	if !validPriorities[sch.Priority] {
		return fmt.Errorf("invalid priority: %s", sch.Priority)
	}
	sch.CreatedBy = actor

	if err := s.repo.Create(ctx, sch); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}

	s.announce(ctx, sch, actor, actorName)
	s.sendInvite(ctx, sch, actor)
	return nil
}

func (s *Service) announce(ctx context.Context, sch *Schedule, actor, actorName string) {
	if actorName == "" {
		actorName = actor
	}
	dateLine := sch.ScheduledDate
	if dateLine == "" {
		dateLine = "Not scheduled (Add-on list)"
	}
	message := fmt.Sprintf(
		"A new case has been added by %s:\n\n"+
			"Patient: %s (MRN: %s)\n"+
			"Procedure: %s\n"+
			"Attending: %s\n"+
			"Status: %s\n"+
			"Date: %s\n\n"+
			"Please review and complete any necessary prep tasks.",
		actorName, sch.PatientName, sch.PatientMRN, sch.Procedure, sch.Staff, sch.Status, dateLine)

	residents, err := s.residents.ActiveResidents(ctx, "")
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to list residents for case announcement")
		return
	}
	for _, r := range residents {
		if r.Email == actor {
			continue
		}
		n := &notification.Notification{
			RecipientEmail: r.Email,
			RecipientName:  r.Name,
			Type:           notification.TypeCaseAdded,
			Title:          "New Case Added: " + sch.PatientName,
			Message:        message,
			CaseMRN:        &sch.PatientMRN,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Warn().Err(err).Str("recipient", r.Email).Msg("case notification failed")
		}
	}
}

func (s *Service) sendInvite(ctx context.Context, sch *Schedule, actor string) {
	if sch.ScheduledDate == "" || sch.IsAddon {
		return
	}
	start, ok := inviteStart(sch.ScheduledDate, sch.ScheduledTime)
	if !ok {
		s.logger.Warn().Str("scheduled_date", sch.ScheduledDate).Msg("skipping invite for unparsable date")
		return
	}

	title := fmt.Sprintf("OR Case: %s - %s", sch.PatientName, sch.Procedure)
	description := fmt.Sprintf(
		"OR Surgical Case\n\n"+
			"Patient: %s (MRN: %s)\n"+
			"Procedure: %s\n"+
			"Attending Surgeon: %s\n"+
			"Status: %s\n\n"+
			"Scheduled by: %s",
		sch.PatientName, sch.PatientMRN, sch.Procedure, sch.Staff, sch.Status, actor)

	invite := mailer.Invite{
		Title:       title,
		Description: description,
		Start:       start,
		End:         start.Add(CaseDuration),
		Location:    "Operating Room",
		Organizer:   actor,
		Attendees:   []string{actor},
	}
	subject := "OR Case Scheduled: " + sch.PatientName
	if err := s.mail.SendInvite(ctx, actor, nil, subject, description, invite); err != nil {
		s.logger.Warn().Err(err).Msg("calendar invite failed")
	}
}

// inviteStart combines the case date and an optional HH:MM time, defaulting
// to an 08:00 start.
func inviteStart(date string, timeOfDay *string) (time.Time, bool) {
	day, ok := calendar.ParseDateOrNone(date)
	if !ok {
		return time.Time{}, false
	}
	hour, minute := 8, 0
	if timeOfDay != nil && *timeOfDay != "" {
		parts := strings.SplitN(*timeOfDay, ":", 2)
		if len(parts) == 2 {
			h, errH := strconv.Atoi(parts[0])
			m, errM := strconv.Atoi(parts[1])
			if errH == nil && errM == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
				hour, minute = h, m
			}
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

// Get returns a schedule by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Schedule, error) {
	sch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return sch, nil
}

// List returns schedules matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Schedule, error) {
	return s.repo.List(ctx, filter)
}

// Update replaces the mutable fields of an existing schedule.
func (s *Service) Update(ctx context.Context, sch *Schedule) error {
	if sch.Priority != "" && !validPriorities[sch.Priority] {
		return fmt.Errorf("invalid priority: %s", sch.Priority)
	}
	ok, err := s.repo.Update(ctx, sch)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete removes a schedule.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Events adapts active schedules for the calendar views.
func (s *Service) Events(ctx context.Context) ([]calendar.Event, error) {
	items, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	events := make([]calendar.Event, 0, len(items))
	for _, item := range items {
		events = append(events, item)
	}
	return events, nil
}
