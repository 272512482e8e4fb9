package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identityRowColumns = []string{"ID", "ROLE", "ACCOUNT_ID", "DISPLAY_NAME", "EMAIL", "PASSWORD_HASH", "CREATED_AT"}

func TestToDomainIdentity(t *testing.T) {
	now := time.Now()
	m := &models.Identity{
		ID:           "ident1",
		Role:         "therapist",
		AccountID:    "ther1",
		DisplayName:  sql.NullString{String: "Dr. Kim", Valid: true},
		Email:        "kim@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
	}
	d := toDomainIdentity(m)
	require.NotNil(t, d)
	assert.Equal(t, domain.AccountRef{Role: domain.RoleTherapist, ID: "ther1"}, d.Account)
	assert.Equal(t, domain.RoleTherapist, d.Role())
	assert.Equal(t, "Dr. Kim", d.DisplayName)

	back := fromDomainIdentity(d)
	assert.Equal(t, m, back)

	assert.Nil(t, toDomainIdentity(nil))
	assert.Nil(t, fromDomainIdentity(nil))
}

func TestIdentityDatabaseAdapter_FindByEmail_MultipleRoles(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewIdentityDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows(identityRowColumns).
		AddRow("i1", "customer", "c1", "Lee", "lee@example.com", "h1", now).
		AddRow("i2", "therapist", "t1", "Lee", "lee@example.com", "h2", now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM identities WHERE email = :1 ORDER BY role`)).
		WithArgs("lee@example.com").
		WillReturnRows(rows)

	identities, err := repo.FindByEmail(context.Background(), "  Lee@Example.com ")
	require.NoError(t, err)
	require.Len(t, identities, 2)
	assert.Equal(t, domain.RoleCustomer, identities[0].Role())
	assert.Equal(t, "t1", identities[1].Account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityDatabaseAdapter_FindByEmailAndRole_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewIdentityDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = :1 AND role = :2`)).
		WithArgs("nobody@example.com", "admin").
		WillReturnError(sql.ErrNoRows)

	identity, err := repo.FindByEmailAndRole(context.Background(), "nobody@example.com", domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Nil(t, identity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityDatabaseAdapter_GetByAccount(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewIdentityDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE role = :1 AND account_id = :2`)).
		WithArgs("customer", "c1").
		WillReturnRows(sqlmock.NewRows(identityRowColumns).
			AddRow("i1", "customer", "c1", nil, "lee@example.com", "h1", time.Now()))

	identity, err := repo.GetByAccount(context.Background(), domain.AccountRef{Role: domain.RoleCustomer, ID: "c1"})
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "", identity.DisplayName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityDatabaseAdapter_CreateIdentity(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewIdentityDatabaseAdapter(db)

	identity := &domain.Identity{
		Account:      domain.AccountRef{Role: domain.RoleAdmin, ID: "a1"},
		Email:        "Admin@Example.com",
		PasswordHash: "hash",
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO identities`)).
		WithArgs(sqlmock.AnyArg(), "admin", "a1", sql.NullString{}, "admin@example.com", "hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateIdentity(context.Background(), identity))
	assert.NotEmpty(t, identity.ID)
	assert.False(t, identity.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
