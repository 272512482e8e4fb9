package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"
	"lets-heal/internal/util"

	"github.com/jmoiron/sqlx"
)

const identityColumns = `id, role, account_id, display_name, email, password_hash, created_at`

// IdentityDatabaseAdapter implements domain.IdentityRepository using sqlx.DB
type IdentityDatabaseAdapter struct {
	db *sqlx.DB
}

// NewIdentityDatabaseAdapter creates a new instance of IdentityDatabaseAdapter
func NewIdentityDatabaseAdapter(db *sqlx.DB) domain.IdentityRepository {
	return &IdentityDatabaseAdapter{db: db}
}

// CreateIdentity implements domain.IdentityRepository
func (a *IdentityDatabaseAdapter) CreateIdentity(ctx context.Context, identity *domain.Identity) error {
	if identity.ID == "" {
		identity.ID = util.NewULID()
	}
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = time.Now()
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	m := fromDomainIdentity(identity)

	query := `INSERT INTO identities (` + identityColumns + `)
	VALUES (:1, :2, :3, :4, :5, :6, :7)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		m.ID, m.Role, m.AccountID, m.DisplayName, m.Email, m.PasswordHash, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}
	return nil
}

// FindByEmail returns one record per role registered under email.
func (a *IdentityDatabaseAdapter) FindByEmail(ctx context.Context, email string) ([]*domain.Identity, error) {
	var rows []models.Identity
	query := `SELECT ` + identityColumns + ` FROM identities WHERE email = :1 ORDER BY role`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, normalizeEmail(email)); err != nil {
		return nil, fmt.Errorf("failed to find identities by email: %w", err)
	}
	identities := make([]*domain.Identity, len(rows))
	for i := range rows {
		identities[i] = toDomainIdentity(&rows[i])
	}
	return identities, nil
}

// FindByEmailAndRole implements domain.IdentityRepository
func (a *IdentityDatabaseAdapter) FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.Identity, error) {
	var m models.Identity
	query := `SELECT ` + identityColumns + ` FROM identities WHERE email = :1 AND role = :2`
	err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, normalizeEmail(email), string(role))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find identity by email and role: %w", err)
	}
	return toDomainIdentity(&m), nil
}

// GetByAccount implements domain.IdentityRepository
func (a *IdentityDatabaseAdapter) GetByAccount(ctx context.Context, ref domain.AccountRef) (*domain.Identity, error) {
	var m models.Identity
	query := `SELECT ` + identityColumns + ` FROM identities WHERE role = :1 AND account_id = :2`
	err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, string(ref.Role), ref.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity for %s %s: %w", ref.Role, ref.ID, err)
	}
	return toDomainIdentity(&m), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
