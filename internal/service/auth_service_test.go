package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lets-heal/internal/config"
	"lets-heal/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTConfig = config.JWTConfig{
	SecretKey: "test-secret-key-for-unit-tests-only",
	AccessTTL: time.Hour,
	Issuer:    "lets-heal",
}

func newTestIdentity(t *testing.T, role domain.Role, accountID, password string) *domain.Identity {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Identity{
		ID:           "ident-" + accountID,
		Account:      domain.AccountRef{Role: role, ID: accountID},
		DisplayName:  "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
	}
}

func newTestAuthService(t *testing.T, repo domain.IdentityRepository, now time.Time) *authService {
	t.Helper()
	svc, err := NewAuthService(repo, testJWTConfig)
	require.NoError(t, err)
	s := svc.(*authService)
	s.now = func() time.Time { return now }
	return s
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(new(MockIdentityRepository), config.JWTConfig{AccessTTL: time.Hour})
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestAuthService_Login_SingleRole(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := new(MockIdentityRepository)
	identity := newTestIdentity(t, domain.RoleCustomer, "cust1", "pw")
	repo.On("FindByEmail", ctx, "jane@example.com").Return([]*domain.Identity{identity}, nil)

	s := newTestAuthService(t, repo, now)
	result, err := s.Login(ctx, " jane@example.com ", "pw", "")

	require.NoError(t, err)
	assert.False(t, result.NeedsRole())
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, now.Add(time.Hour), result.ExpiresAt)
	assert.Equal(t, identity, result.Identity)

	principal, err := s.ValidateToken(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{ID: "cust1", Email: "jane@example.com", Role: domain.RoleCustomer}, *principal)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_SeveralRolesWithoutChoice(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIdentityRepository)
	repo.On("FindByEmail", ctx, "jane@example.com").Return([]*domain.Identity{
		newTestIdentity(t, domain.RoleCustomer, "cust1", "pw"),
		newTestIdentity(t, domain.RoleTherapist, "ther1", "pw"),
	}, nil)

	s := newTestAuthService(t, repo, time.Now())
	result, err := s.Login(ctx, "jane@example.com", "pw", "")

	require.NoError(t, err)
	assert.True(t, result.NeedsRole())
	assert.Empty(t, result.AccessToken)
	assert.Equal(t, []domain.Role{domain.RoleCustomer, domain.RoleTherapist}, result.Roles)
}

func TestAuthService_Login_WithRole(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIdentityRepository)
	therapist := newTestIdentity(t, domain.RoleTherapist, "ther1", "pw")
	repo.On("FindByEmailAndRole", ctx, "jane@example.com", domain.RoleTherapist).Return(therapist, nil)

	s := newTestAuthService(t, repo, time.Now())
	result, err := s.Login(ctx, "jane@example.com", "pw", "Therapist")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleTherapist, result.Identity.Role())
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		role     string
		setup    func(repo *MockIdentityRepository)
		wantKind domain.ErrorKind
		wantCode domain.ErrorCode
	}{
		{
			name:     "missing fields",
			wantKind: domain.KindValidation,
		},
		{
			name:     "unknown role",
			email:    "jane@example.com",
			password: "pw",
			role:     "doctor",
			wantKind: domain.KindValidation,
		},
		{
			name:     "no identity",
			email:    "nobody@example.com",
			password: "pw",
			setup: func(repo *MockIdentityRepository) {
				repo.On("FindByEmail", ctx, "nobody@example.com").Return([]*domain.Identity{}, nil)
			},
			wantKind: domain.KindNotFound,
			wantCode: domain.CodeNotFound,
		},
		{
			name:     "selected role absent",
			email:    "jane@example.com",
			password: "pw",
			role:     "admin",
			setup: func(repo *MockIdentityRepository) {
				repo.On("FindByEmailAndRole", ctx, "jane@example.com", domain.RoleAdmin).Return(nil, nil)
				repo.On("FindByEmail", ctx, "jane@example.com").Return([]*domain.Identity{
					newTestIdentity(t, domain.RoleCustomer, "cust1", "pw"),
				}, nil)
			},
			wantKind: domain.KindValidation,
		},
		{
			name:     "wrong password",
			email:    "jane@example.com",
			password: "nope",
			setup: func(repo *MockIdentityRepository) {
				repo.On("FindByEmail", ctx, "jane@example.com").Return([]*domain.Identity{
					newTestIdentity(t, domain.RoleCustomer, "cust1", "pw"),
				}, nil)
			},
			wantKind: domain.KindNotAuthenticated,
			wantCode: domain.CodeUnauthorized,
		},
		{
			name:     "repository failure",
			email:    "jane@example.com",
			password: "pw",
			setup: func(repo *MockIdentityRepository) {
				repo.On("FindByEmail", ctx, "jane@example.com").Return(nil, errors.New("db down"))
			},
			wantKind: domain.KindInternal,
			wantCode: domain.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockIdentityRepository)
			if tt.setup != nil {
				tt.setup(repo)
			}
			s := newTestAuthService(t, repo, time.Now())

			result, err := s.Login(ctx, tt.email, tt.password, tt.role)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
			if tt.wantCode != "" {
				assert.True(t, domain.IsCode(err, tt.wantCode), "got %v", err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ValidateToken_Rejects(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	s := newTestAuthService(t, new(MockIdentityRepository), now)
	identity := newTestIdentity(t, domain.RoleAdmin, "admin1", "pw")

	token, _, err := s.IssueToken(identity)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := newTestAuthService(t, new(MockIdentityRepository), now.Add(2*time.Hour))
		_, err := later.ValidateToken(ctx, token)
		assert.True(t, domain.IsCode(err, domain.CodeUnauthorized))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := newTestAuthService(t, new(MockIdentityRepository), now)
		other.cfg.SecretKey = "another-secret"
		_, err := other.ValidateToken(ctx, token)
		assert.True(t, domain.IsCode(err, domain.CodeUnauthorized))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateToken(ctx, "not-a-jwt")
		assert.True(t, domain.IsCode(err, domain.CodeUnauthorized))
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := AuthClaims{
			Role: "superuser",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testJWTConfig.Issuer,
				Subject:   "x",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTConfig.SecretKey))
		require.NoError(t, err)
		_, err = s.ValidateToken(ctx, signed)
		assert.True(t, domain.IsCode(err, domain.CodeUnauthorized))
	})

	t.Run("valid", func(t *testing.T) {
		principal, err := s.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, principal.Role)
		assert.Equal(t, "admin1", principal.ID)
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIdentityRepository)
	identity := newTestIdentity(t, domain.RoleTherapist, "ther1", "pw")
	repo.On("GetByAccount", ctx, domain.AccountRef{Role: domain.RoleTherapist, ID: "ther1"}).Return(identity, nil)
	repo.On("GetByAccount", ctx, domain.AccountRef{Role: domain.RoleCustomer, ID: "gone"}).Return(nil, nil)
	repo.On("GetByAccount", ctx, domain.AccountRef{Role: domain.RoleAdmin, ID: "adm1"}).Return(nil, errors.New("db down"))
	svc := newTestAuthService(t, repo, time.Now())

	got, err := svc.Profile(ctx, domain.Principal{ID: "ther1", Role: domain.RoleTherapist})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.DisplayName)

	_, err = svc.Profile(ctx, domain.Principal{ID: "gone", Role: domain.RoleCustomer})
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))

	_, err = svc.Profile(ctx, domain.Principal{ID: "adm1", Role: domain.RoleAdmin})
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}
