package conference

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
	"github.com/orbook/orbook/internal/platform/mailer"
)

var ErrNotFound = errors.New("conference not found")

// MeetingDuration is the default block booked for a conference invite.
const MeetingDuration = time.Hour

type Service struct {
	repo   Repository
	mail   mailer.Sender
	logger zerolog.Logger
}

func NewService(repo Repository, mail mailer.Sender, logger zerolog.Logger) *Service {
	return &Service{repo: repo, mail: mail, logger: logger}
}

// Create stores a conference and sends the organizer an invite with the
// attendee list on copy.
func (s *Service) Create(ctx context.Context, conf *Conference, actor string) error {
	if conf.Title == "" {
		return fmt.Errorf("title is required")
	}
	if conf.Date == "" {
		return fmt.Errorf("date is required")
	}
	if conf.Time == "" {
		return fmt.Errorf("time is required")
	}
	if conf.Attendees == nil {
		conf.Attendees = []string{}
	}
	conf.CreatedBy = actor

	if err := s.repo.Create(ctx, conf); err != nil {
		return fmt.Errorf("create conference: %w", err)
	}

	s.sendInvite(ctx, conf, actor)
	return nil
}

func (s *Service) sendInvite(ctx context.Context, conf *Conference, actor string) {
	start, ok := inviteStart(conf.Date, conf.Time)
	if !ok {
		s.logger.Warn().Str("date", conf.Date).Msg("skipping invite for unparsable date")
		return
	}

	notes := "No additional notes"
	if conf.Notes != nil && *conf.Notes != "" {
		notes = *conf.Notes
	}
	attendeeLine := "None listed"
	if len(conf.Attendees) > 0 {
		attendeeLine = strings.Join(conf.Attendees, ", ")
	}
	description := fmt.Sprintf("%s\n\n%s\n\nOrganizer: %s\nAttendees: %s",
		conf.Title, notes, actor, attendeeLine)

	invite := mailer.Invite{
		Title:       conf.Title,
		Description: description,
		Start:       start,
		End:         start.Add(MeetingDuration),
		Location:    "Conference Room",
		Organizer:   actor,
		Attendees:   conf.Attendees,
	}
	subject := "Meeting Scheduled: " + conf.Title
	if err := s.mail.SendInvite(ctx, actor, conf.Attendees, subject, description, invite); err != nil {
		s.logger.Warn().Err(err).Msg("conference invite failed")
	}
}

func inviteStart(date, timeOfDay string) (time.Time, bool) {
	day, ok := calendar.ParseDateOrNone(date)
	if !ok {
		return time.Time{}, false
	}
	hour, minute := 8, 0
	parts := strings.SplitN(timeOfDay, ":", 2)
	if len(parts) == 2 {
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errH == nil && errM == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			hour, minute = h, m
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

// Get returns a conference by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Conference, error) {
	conf, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return conf, nil
}

// List returns all conferences in date order.
func (s *Service) List(ctx context.Context) ([]*Conference, error) {
	return s.repo.List(ctx)
}

// Update replaces the mutable fields of an existing conference.
func (s *Service) Update(ctx context.Context, conf *Conference) error {
	ok, err := s.repo.Update(ctx, conf)
	if err != nil {
		return fmt.Errorf("update conference: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete removes a conference.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete conference: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Events adapts conferences for the calendar views.
func (s *Service) Events(ctx context.Context) ([]calendar.Event, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]calendar.Event, 0, len(items))
	for _, item := range items {
		events = append(events, item)
	}
	return events, nil
}
