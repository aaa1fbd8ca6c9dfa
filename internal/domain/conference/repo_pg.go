package conference

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const conferenceCols = `id, title, date, time, attendees, notes, created_by, created_at`

func (r *repoPG) scanConference(row pgx.Row) (*Conference, error) {
	var c Conference
	err := row.Scan(&c.ID, &c.Title, &c.Date, &c.Time, &c.Attendees, &c.Notes,
		&c.CreatedBy, &c.CreatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *Conference) error {
	c.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO conferences (id, title, date, time, attendees, notes, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Title, c.Date, c.Time, c.Attendees, c.Notes, c.CreatedBy)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Conference, error) {
	return r.scanConference(r.pool.QueryRow(ctx,
		`SELECT `+conferenceCols+` FROM conferences WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Conference, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+conferenceCols+` FROM conferences ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Conference
	for rows.Next() {
		c, err := r.scanConference(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

func (r *repoPG) Update(ctx context.Context, c *Conference) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE conferences SET title=$2, date=$3, time=$4, attendees=$5, notes=$6
		WHERE id = $1`,
		c.ID, c.Title, c.Date, c.Time, c.Attendees, c.Notes)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM conferences WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
