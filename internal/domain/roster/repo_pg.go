package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Resident Repository ===========

type residentRepoPG struct{ pool *pgxpool.Pool }

func NewResidentRepoPG(pool *pgxpool.Pool) ResidentRepository { return &residentRepoPG{pool: pool} }

const residentCols = `id, name, email, hospital, specialty, year, is_active, created_by, created_at, updated_at`

func (r *residentRepoPG) scanResident(row pgx.Row) (*Resident, error) {
	var res Resident
	err := row.Scan(&res.ID, &res.Name, &res.Email, &res.Hospital, &res.Specialty,
		&res.Year, &res.IsActive, &res.CreatedBy, &res.CreatedAt, &res.UpdatedAt)
	return &res, err
}

func (r *residentRepoPG) Create(ctx context.Context, res *Resident) error {
	res.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO residents (id, name, email, hospital, specialty, year, is_active, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		res.ID, res.Name, res.Email, res.Hospital, res.Specialty, res.Year, res.IsActive, res.CreatedBy)
	return err
}

func (r *residentRepoPG) GetByEmail(ctx context.Context, email string) (*Resident, error) {
	return r.scanResident(r.pool.QueryRow(ctx, `SELECT `+residentCols+` FROM residents WHERE email = $1`, email))
}

func (r *residentRepoPG) List(ctx context.Context, filter ListFilter) ([]*Resident, error) {
	query := `SELECT ` + residentCols + ` FROM residents WHERE 1=1`
	var args []interface{}
	idx := 1

	if filter.Hospital != "" {
		query += fmt.Sprintf(` AND hospital = $%d`, idx)
		args = append(args, filter.Hospital)
		idx++
	}
	if filter.ActiveOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Resident
	for rows.Next() {
		res, err := r.scanResident(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, nil
}

func (r *residentRepoPG) Update(ctx context.Context, res *Resident) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE residents SET name=$2, email=$3, hospital=$4, specialty=$5, year=$6,
			is_active=$7, updated_at=NOW()
		WHERE id = $1`,
		res.ID, res.Name, res.Email, res.Hospital, res.Specialty, res.Year, res.IsActive)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *residentRepoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM residents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// =========== Attending Repository ===========

type attendingRepoPG struct{ pool *pgxpool.Pool }

func NewAttendingRepoPG(pool *pgxpool.Pool) AttendingRepository { return &attendingRepoPG{pool: pool} }

const attendingCols = `id, name, email, hospital, specialty, is_active, created_by, created_at, updated_at`

func (r *attendingRepoPG) scanAttending(row pgx.Row) (*Attending, error) {
	var a Attending
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Hospital, &a.Specialty,
		&a.IsActive, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *attendingRepoPG) Create(ctx context.Context, a *Attending) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO attendings (id, name, email, hospital, specialty, is_active, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.Name, a.Email, a.Hospital, a.Specialty, a.IsActive, a.CreatedBy)
	return err
}

func (r *attendingRepoPG) List(ctx context.Context, filter ListFilter) ([]*Attending, error) {
	query := `SELECT ` + attendingCols + ` FROM attendings WHERE 1=1`
	var args []interface{}
	idx := 1

	if filter.Hospital != "" {
		query += fmt.Sprintf(` AND hospital = $%d`, idx)
		args = append(args, filter.Hospital)
		idx++
	}
	if filter.ActiveOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Attending
	for rows.Next() {
		a, err := r.scanAttending(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func (r *attendingRepoPG) Update(ctx context.Context, a *Attending) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE attendings SET name=$2, email=$3, hospital=$4, specialty=$5,
			is_active=$6, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Name, a.Email, a.Hospital, a.Specialty, a.IsActive)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *attendingRepoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attendings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
