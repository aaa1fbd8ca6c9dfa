// Package roster manages the resident and attending staff directories.
package roster

import (
	"time"

	"github.com/google/uuid"
)

// Resident maps to the residents table.
type Resident struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Hospital  string    `db:"hospital" json:"hospital"`
	Specialty *string   `db:"specialty" json:"specialty,omitempty"`
	Year      *string   `db:"year" json:"year,omitempty"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Attending maps to the attendings table. Email is optional; some attendings
// are listed for scheduling only.
type Attending struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Hospital  string    `db:"hospital" json:"hospital"`
	Specialty *string   `db:"specialty" json:"specialty,omitempty"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
