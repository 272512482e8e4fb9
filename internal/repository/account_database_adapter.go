package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"
	"lets-heal/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	customerColumns  = `id, name, email, phone, created_at`
	therapistColumns = `id, name, email, specialization, hospital_id, status, created_at`
)

// AccountDatabaseAdapter implements domain.AccountRepository using sqlx.DB
type AccountDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAccountDatabaseAdapter creates a new instance of AccountDatabaseAdapter
func NewAccountDatabaseAdapter(db *sqlx.DB) domain.AccountRepository {
	return &AccountDatabaseAdapter{db: db}
}

func (a *AccountDatabaseAdapter) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = util.NewULID()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}
	query := `INSERT INTO customers (` + customerColumns + `) VALUES (:1, :2, :3, :4, :5)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		customer.ID, customer.Name, normalizeEmail(customer.Email),
		util.StringToNullString(customer.Phone), customer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (a *AccountDatabaseAdapter) CreateTherapist(ctx context.Context, therapist *domain.Therapist) error {
	if therapist.ID == "" {
		therapist.ID = util.NewULID()
	}
	if therapist.CreatedAt.IsZero() {
		therapist.CreatedAt = time.Now()
	}
	if therapist.Status == "" {
		therapist.Status = domain.TherapistStatusActive
	}
	query := `INSERT INTO therapists (` + therapistColumns + `) VALUES (:1, :2, :3, :4, :5, :6, :7)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		therapist.ID, therapist.Name, normalizeEmail(therapist.Email),
		util.StringToNullString(therapist.Specialization), util.StringToNullString(therapist.HospitalID),
		therapist.Status, therapist.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create therapist: %w", err)
	}
	return nil
}

func (a *AccountDatabaseAdapter) GetTherapistByID(ctx context.Context, id string) (*domain.Therapist, error) {
	return a.getTherapist(ctx, `SELECT `+therapistColumns+` FROM therapists WHERE id = :1`, id)
}

// GetTherapistForUpdate locks the therapist row so bookings for the same
// therapist run one after another.
func (a *AccountDatabaseAdapter) GetTherapistForUpdate(ctx context.Context, id string) (*domain.Therapist, error) {
	return a.getTherapist(ctx, `SELECT `+therapistColumns+` FROM therapists WHERE id = :1 FOR UPDATE`, id)
}

// ListTherapists returns the active therapists ordered by name.
func (a *AccountDatabaseAdapter) ListTherapists(ctx context.Context) ([]*domain.Therapist, error) {
	var rows []models.Therapist
	query := `SELECT ` + therapistColumns + ` FROM therapists WHERE status = :1 ORDER BY name ASC, id ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, domain.TherapistStatusActive); err != nil {
		return nil, fmt.Errorf("failed to list therapists: %w", err)
	}
	therapists := make([]*domain.Therapist, len(rows))
	for i := range rows {
		therapists[i] = toDomainTherapist(&rows[i])
	}
	return therapists, nil
}

func (a *AccountDatabaseAdapter) getTherapist(ctx context.Context, query, id string) (*domain.Therapist, error) {
	var m models.Therapist
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get therapist by ID %s: %w", id, err)
	}
	return toDomainTherapist(&m), nil
}

func (a *AccountDatabaseAdapter) CreateAdmin(ctx context.Context, admin *domain.Admin) error {
	if admin.ID == "" {
		admin.ID = util.NewULID()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}
	query := `INSERT INTO admins (id, name, email, created_at) VALUES (:1, :2, :3, :4)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		admin.ID, admin.Name, normalizeEmail(admin.Email), admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}
