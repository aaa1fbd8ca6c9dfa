package patient

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, mrn, patient_name, dob, diagnosis, procedures, procedure_code, attending,
	status, prep_checklist, comments, activity_log, completed_at,
	archived, archived_at, archived_by, archived_reason,
	created_by, created_at, updated_by, updated_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.MRN, &p.PatientName, &p.DOB, &p.Diagnosis, &p.Procedures,
		&p.ProcedureCode, &p.Attending, &p.Status, &p.PrepChecklist, &p.Comments,
		&p.ActivityLog, &p.CompletedAt, &p.Archived, &p.ArchivedAt, &p.ArchivedBy,
		&p.ArchivedReason, &p.CreatedBy, &p.CreatedAt, &p.UpdatedBy, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (id, mrn, patient_name, dob, diagnosis, procedures, procedure_code,
			attending, status, prep_checklist, comments, activity_log, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.MRN, p.PatientName, p.DOB, p.Diagnosis, p.Procedures, p.ProcedureCode,
		p.Attending, p.Status, p.PrepChecklist, p.Comments, p.ActivityLog, p.CreatedBy)
	return err
}

func (r *repoPG) GetByMRN(ctx context.Context, mrn string) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE mrn = $1`, mrn))
}

func (r *repoPG) list(ctx context.Context, query string, args ...interface{}) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients
		WHERE archived = FALSE ORDER BY created_at DESC`)
}

func (r *repoPG) ListArchived(ctx context.Context) ([]*Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients
		WHERE archived = TRUE ORDER BY archived_at DESC`)
}

func (r *repoPG) ListCompletedBefore(ctx context.Context, cutoff time.Time) ([]*Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients
		WHERE archived = FALSE AND status = $1 AND completed_at < $2`, StatusCompleted, cutoff)
}

func (r *repoPG) Update(ctx context.Context, p *Patient) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET patient_name=$2, dob=$3, diagnosis=$4, procedures=$5,
			procedure_code=$6, attending=$7, status=$8, prep_checklist=$9, comments=$10,
			activity_log=$11, completed_at=$12, archived=$13, archived_at=$14,
			archived_by=$15, archived_reason=$16, updated_by=$17, updated_at=NOW()
		WHERE mrn = $1`,
		p.MRN, p.PatientName, p.DOB, p.Diagnosis, p.Procedures, p.ProcedureCode,
		p.Attending, p.Status, p.PrepChecklist, p.Comments, p.ActivityLog,
		p.CompletedAt, p.Archived, p.ArchivedAt, p.ArchivedBy, p.ArchivedReason, p.UpdatedBy)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) Delete(ctx context.Context, mrn string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE mrn = $1`, mrn)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
