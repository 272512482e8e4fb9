package models

import (
	"database/sql"
	"time"
)

// Identity is the login record shared by every account type.
type Identity struct {
	ID           string         `db:"ID"`            // ULID
	Role         string         `db:"ROLE"`          // customer, therapist or admin
	AccountID    string         `db:"ACCOUNT_ID"`    // id in the role's own table
	DisplayName  sql.NullString `db:"DISPLAY_NAME"`  // Name shown after login
	Email        string         `db:"EMAIL"`         // Unique together with ROLE
	PasswordHash string         `db:"PASSWORD_HASH"` // bcrypt hash
	CreatedAt    time.Time      `db:"CREATED_AT"`
}

// Therapist represents a row of the therapists table.
type Therapist struct {
	ID             string         `db:"ID"`
	Name           string         `db:"NAME"`
	Email          string         `db:"EMAIL"`
	Specialization sql.NullString `db:"SPECIALIZATION"`
	HospitalID     sql.NullString `db:"HOSPITAL_ID"`
	Status         string         `db:"STATUS"`
	CreatedAt      time.Time      `db:"CREATED_AT"`
}

// Admin represents a row of the admins table.
type Admin struct {
	ID        string    `db:"ID"`
	Name      string    `db:"NAME"`
	Email     string    `db:"EMAIL"`
	CreatedAt time.Time `db:"CREATED_AT"`
}

// Hospital represents a row of the hospitals table.
type Hospital struct {
	ID        string    `db:"ID"`
	Name      string    `db:"NAME"`
	Address   string    `db:"ADDRESS"`
	CreatedAt time.Time `db:"CREATED_AT"`
}
