package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const taskCols = `id, patient_mrn, task_description, urgency, assigned_to,
	assigned_to_email, due_date, status, completed, created_by, created_at`

func (r *repoPG) scanTask(row pgx.Row) (*Task, error) {
	var t Task
	err := row.Scan(&t.ID, &t.PatientMRN, &t.TaskDescription, &t.Urgency, &t.AssignedTo,
		&t.AssignedToEmail, &t.DueDate, &t.Status, &t.Completed, &t.CreatedBy, &t.CreatedAt)
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, t *Task) error {
	t.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, patient_mrn, task_description, urgency, assigned_to,
			assigned_to_email, due_date, status, completed, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		t.ID, t.PatientMRN, t.TaskDescription, t.Urgency, t.AssignedTo,
		t.AssignedToEmail, t.DueDate, t.Status, t.Completed, t.CreatedBy)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	return r.scanTask(r.pool.QueryRow(ctx, `SELECT `+taskCols+` FROM tasks WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, patientMRN string) ([]*Task, error) {
	query := `SELECT ` + taskCols + ` FROM tasks WHERE 1=1`
	var args []interface{}
	if patientMRN != "" {
		query += fmt.Sprintf(` AND patient_mrn = $%d`, 1)
		args = append(args, patientMRN)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *repoPG) Update(ctx context.Context, t *Task) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET patient_mrn=$2, task_description=$3, urgency=$4, assigned_to=$5,
			assigned_to_email=$6, due_date=$7, status=$8, completed=$9
		WHERE id = $1`,
		t.ID, t.PatientMRN, t.TaskDescription, t.Urgency, t.AssignedTo,
		t.AssignedToEmail, t.DueDate, t.Status, t.Completed)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
