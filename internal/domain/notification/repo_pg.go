package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const notifCols = `id, recipient_email, recipient_name, type, title, message, case_mrn, task_id, read, created_at`

func (r *repoPG) scanNotification(row pgx.Row) (*Notification, error) {
	var n Notification
	err := row.Scan(&n.ID, &n.RecipientEmail, &n.RecipientName, &n.Type, &n.Title,
		&n.Message, &n.CaseMRN, &n.TaskID, &n.Read, &n.CreatedAt)
	return &n, err
}

func (r *repoPG) Create(ctx context.Context, n *Notification) error {
	n.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (id, recipient_email, recipient_name, type, title, message, case_mrn, task_id, read)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		n.ID, n.RecipientEmail, n.RecipientName, n.Type, n.Title, n.Message, n.CaseMRN, n.TaskID, n.Read)
	return err
}

func (r *repoPG) list(ctx context.Context, query string, args ...interface{}) ([]*Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Notification
	for rows.Next() {
		n, err := r.scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, nil
}

func (r *repoPG) ListForRecipient(ctx context.Context, email string, limit int) ([]*Notification, error) {
	return r.list(ctx, `SELECT `+notifCols+` FROM notifications
		WHERE recipient_email = $1 ORDER BY created_at DESC LIMIT $2`, email, limit)
}

func (r *repoPG) ListUnread(ctx context.Context, email string) ([]*Notification, error) {
	return r.list(ctx, `SELECT `+notifCols+` FROM notifications
		WHERE recipient_email = $1 AND read = FALSE ORDER BY created_at DESC`, email)
}

func (r *repoPG) MarkRead(ctx context.Context, id uuid.UUID, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET read = TRUE
		WHERE id = $1 AND recipient_email = $2`, id, email)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) MarkAllRead(ctx context.Context, email string) (int, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET read = TRUE
		WHERE recipient_email = $1 AND read = FALSE`, email)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications
		WHERE id = $1 AND recipient_email = $2`, id, email)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
