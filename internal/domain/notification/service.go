package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orbook/orbook/internal/platform/mailer"
)

// ListLimit caps the notification feed at the most recent entries.
const ListLimit = 50

var validTypes = map[string]bool{
	TypeCaseAdded:    true,
	TypeCaseUpdated:  true,
	TypeTaskAssigned: true,
}

type Service struct {
	repo   Repository
	mail   mailer.Sender
	logger zerolog.Logger
}

func NewService(repo Repository, mail mailer.Sender, logger zerolog.Logger) *Service {
	return &Service{repo: repo, mail: mail, logger: logger}
}

// Notify stores a notification and sends a best-effort email copy. Email
// failure never fails the triggering operation.
func (s *Service) Notify(ctx context.Context, n *Notification) error {
	if n.RecipientEmail == "" {
		return fmt.Errorf("recipient email is required")
	}
	if !validTypes[n.Type] {
		return fmt.Errorf("invalid notification type: %s", n.Type)
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	if err := s.mail.SendEmail(ctx, n.RecipientEmail, n.Title, n.Message); err != nil {
		s.logger.Warn().Err(err).Str("recipient", n.RecipientEmail).Msg("notification email failed")
	}
	return nil
}

// List returns the recipient's most recent notifications.
func (s *Service) List(ctx context.Context, email string) ([]*Notification, error) {
	return s.repo.ListForRecipient(ctx, email, ListLimit)
}

// Unread returns the recipient's unread notifications.
func (s *Service) Unread(ctx context.Context, email string) ([]*Notification, error) {
	return s.repo.ListUnread(ctx, email)
}

// MarkRead marks one of the recipient's notifications read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID, email string) (bool, error) {
	return s.repo.MarkRead(ctx, id, email)
}

// MarkAllRead marks every unread notification for the recipient.
func (s *Service) MarkAllRead(ctx context.Context, email string) (int, error) {
	return s.repo.MarkAllRead(ctx, email)
}

// Delete removes one of the recipient's notifications.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, email string) (bool, error) {
	return s.repo.Delete(ctx, id, email)
}
