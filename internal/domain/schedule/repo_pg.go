package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const scheduleCols = `id, patient_mrn, patient_name, procedure, staff, scheduled_date,
	scheduled_time, status, is_addon, priority, diagnosis, archived, archived_at,
	archived_by, created_by, created_at`

func (r *repoPG) scanSchedule(row pgx.Row) (*Schedule, error) {
	var s Schedule
	err := row.Scan(&s.ID, &s.PatientMRN, &s.PatientName, &s.Procedure, &s.Staff,
		&s.ScheduledDate, &s.ScheduledTime, &s.Status, &s.IsAddon, &s.Priority,
		&s.Diagnosis, &s.Archived, &s.ArchivedAt, &s.ArchivedBy, &s.CreatedBy, &s.CreatedAt)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Schedule) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO schedules (id, patient_mrn, patient_name, procedure, staff,
			scheduled_date, scheduled_time, status, is_addon, priority, diagnosis, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		s.ID, s.PatientMRN, s.PatientName, s.Procedure, s.Staff,
		s.ScheduledDate, s.ScheduledTime, s.Status, s.IsAddon, s.Priority, s.Diagnosis, s.CreatedBy)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Schedule, error) {
	return r.scanSchedule(r.pool.QueryRow(ctx,
		`SELECT `+scheduleCols+` FROM schedules WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, filter ListFilter) ([]*Schedule, error) {
	query := `SELECT ` + scheduleCols + ` FROM schedules WHERE 1=1`
	var args []interface{}
	idx := 1

	if !filter.IncludeArchived {
		query += ` AND archived = FALSE`
	}
	if filter.AddonOnly {
		query += ` AND is_addon = TRUE`
	}
	if filter.Date != "" {
		query += fmt.Sprintf(` AND scheduled_date = $%d`, idx)
		args = append(args, filter.Date)
		idx++
	}
	if filter.PatientMRN != "" {
		query += fmt.Sprintf(` AND patient_mrn = $%d`, idx)
		args = append(args, filter.PatientMRN)
		idx++
	}
	query += ` ORDER BY scheduled_date, scheduled_time NULLS LAST, created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Schedule
	for rows.Next() {
		s, err := r.scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}

func (r *repoPG) Update(ctx context.Context, s *Schedule) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE schedules SET patient_mrn=$2, patient_name=$3, procedure=$4, staff=$5,
			scheduled_date=$6, scheduled_time=$7, status=$8, is_addon=$9, priority=$10,
			diagnosis=$11
		WHERE id = $1`,
		s.ID, s.PatientMRN, s.PatientName, s.Procedure, s.Staff,
		s.ScheduledDate, s.ScheduledTime, s.Status, s.IsAddon, s.Priority, s.Diagnosis)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) SetArchivedByMRN(ctx context.Context, mrn string, archived bool) error {
	var err error
	if archived {
		_, err = r.pool.Exec(ctx, `
			UPDATE schedules SET archived = TRUE, archived_at = NOW()
			WHERE patient_mrn = $1 AND archived = FALSE`, mrn)
	} else {
		_, err = r.pool.Exec(ctx, `
			UPDATE schedules SET archived = FALSE, archived_at = NULL, archived_by = NULL
			WHERE patient_mrn = $1 AND archived = TRUE`, mrn)
	}
	return err
}
