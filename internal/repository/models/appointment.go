package models

import (
	"database/sql"
	"time"
)

// Appointment represents a row of the appointments table. Date and time are
// stored as YYYY-MM-DD and HH:MM text so they sort chronologically.
type Appointment struct {
	ID               string         `db:"ID"`
	CustomerID       string         `db:"CUSTOMER_ID"`
	TherapistID      string         `db:"THERAPIST_ID"`
	ConsultationType string         `db:"CONSULTATION_TYPE"`
	AppointmentType  string         `db:"APPOINTMENT_TYPE"`
	AppointmentDate  string         `db:"APPOINTMENT_DATE"`
	AppointmentTime  string         `db:"APPOINTMENT_TIME"`
	HospitalID       sql.NullString `db:"HOSPITAL_ID"`
	HospitalName     sql.NullString `db:"HOSPITAL_NAME"`
	HospitalAddress  sql.NullString `db:"HOSPITAL_ADDRESS"`
	Status           string         `db:"STATUS"`
	CreatedAt        time.Time      `db:"CREATED_AT"`
}
