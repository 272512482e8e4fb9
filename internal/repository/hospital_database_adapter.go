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

// HospitalDatabaseAdapter implements domain.HospitalRepository using sqlx.DB
type HospitalDatabaseAdapter struct {
	db *sqlx.DB
}

func NewHospitalDatabaseAdapter(db *sqlx.DB) domain.HospitalRepository {
	return &HospitalDatabaseAdapter{db: db}
}

func (a *HospitalDatabaseAdapter) CreateHospital(ctx context.Context, hospital *domain.Hospital) error {
	if hospital.ID == "" {
		hospital.ID = util.NewULID()
	}
	if hospital.CreatedAt.IsZero() {
		hospital.CreatedAt = time.Now()
	}
	query := `INSERT INTO hospitals (id, name, address, created_at) VALUES (:1, :2, :3, :4)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		hospital.ID, hospital.Name, hospital.Address, hospital.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

func (a *HospitalDatabaseAdapter) GetHospitalByID(ctx context.Context, id string) (*domain.Hospital, error) {
	var m models.Hospital
	query := `SELECT id, name, address, created_at FROM hospitals WHERE id = :1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital by ID %s: %w", id, err)
	}
	return toDomainHospital(&m), nil
}

func (a *HospitalDatabaseAdapter) ListHospitals(ctx context.Context) ([]*domain.Hospital, error) {
	var rows []models.Hospital
	query := `SELECT id, name, address, created_at FROM hospitals ORDER BY name, id`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	hospitals := make([]*domain.Hospital, len(rows))
	for i := range rows {
		hospitals[i] = toDomainHospital(&rows[i])
	}
	return hospitals, nil
}
