package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence interface for notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListForRecipient(ctx context.Context, email string, limit int) ([]*Notification, error)
	ListUnread(ctx context.Context, email string) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, email string) (bool, error)
	MarkAllRead(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, id uuid.UUID, email string) (bool, error)
}
