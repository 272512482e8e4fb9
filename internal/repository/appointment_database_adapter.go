package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"
	"lets-heal/internal/util"

	"github.com/jmoiron/sqlx"
)

const appointmentColumns = `id, customer_id, therapist_id, consultation_type, appointment_type,
	appointment_date, appointment_time, hospital_id, hospital_name, hospital_address, status, created_at`

// AppointmentDatabaseAdapter implements domain.AppointmentRepository using sqlx.DB
type AppointmentDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAppointmentDatabaseAdapter creates a new instance of AppointmentDatabaseAdapter
func NewAppointmentDatabaseAdapter(db *sqlx.DB) domain.AppointmentRepository {
	return &AppointmentDatabaseAdapter{db: db}
}

// CountForTherapistOnDate implements domain.AppointmentRepository
func (a *AppointmentDatabaseAdapter) CountForTherapistOnDate(ctx context.Context, therapistID, date string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM appointments WHERE therapist_id = :1 AND appointment_date = :2`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, therapistID, date); err != nil {
		return 0, fmt.Errorf("failed to count appointments for therapist %s on %s: %w", therapistID, date, err)
	}
	return count, nil
}

// CreateAppointment implements domain.AppointmentRepository
func (a *AppointmentDatabaseAdapter) CreateAppointment(ctx context.Context, appointment *domain.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = util.NewULID()
	}
	m := fromDomainAppointment(appointment)

	query := `INSERT INTO appointments (` + appointmentColumns + `) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12
	)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		m.ID, m.CustomerID, m.TherapistID, m.ConsultationType, m.AppointmentType,
		m.AppointmentDate, m.AppointmentTime, m.HospitalID, m.HospitalName, m.HospitalAddress,
		m.Status, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetAppointmentByID implements domain.AppointmentRepository
func (a *AppointmentDatabaseAdapter) GetAppointmentByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var m models.Appointment
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = :1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment by ID %s: %w", id, err)
	}
	return toDomainAppointment(&m), nil
}

// DeleteAppointment implements domain.AppointmentRepository
func (a *AppointmentDatabaseAdapter) DeleteAppointment(ctx context.Context, id string) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM appointments WHERE id = :1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	return requireAffected(result, "appointment", id)
}

// ListHistory implements domain.AppointmentRepository
func (a *AppointmentDatabaseAdapter) ListHistory(ctx context.Context, q domain.HistoryQuery) ([]*domain.Appointment, error) {
	query, err := historyQuery(q)
	if err != nil {
		return nil, err
	}
	date, clock := q.Cutoff()

	var rows []models.Appointment
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, q.AccountID, date, date, clock); err != nil {
		return nil, fmt.Errorf("failed to list %s appointments for %s %s: %w", q.Partition, q.Role, q.AccountID, err)
	}
	appointments := make([]*domain.Appointment, len(rows))
	for i := range rows {
		appointments[i] = toDomainAppointment(&rows[i])
	}
	return appointments, nil
}

func historyQuery(q domain.HistoryQuery) (string, error) {
	var owner string
	switch q.Role {
	case domain.RoleCustomer:
		owner = "customer_id"
	case domain.RoleTherapist:
		owner = "therapist_id"
	default:
		return "", fmt.Errorf("no appointment history for role %q", q.Role)
	}

	before := `(appointment_date < :2 OR (appointment_date = :3 AND appointment_time < :4))`
	switch q.Partition {
	case domain.PartitionPast:
		return `SELECT ` + appointmentColumns + ` FROM appointments
	WHERE ` + owner + ` = :1 AND ` + before + `
	ORDER BY appointment_date DESC, appointment_time DESC, id DESC`, nil
	case domain.PartitionUpcoming:
		return `SELECT ` + appointmentColumns + ` FROM appointments
	WHERE ` + owner + ` = :1 AND NOT ` + before + `
	ORDER BY appointment_date ASC, appointment_time ASC, id ASC`, nil
	default:
		return "", fmt.Errorf("unknown history partition %q", q.Partition)
	}
}
