package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lets-heal/internal/config"
	"lets-heal/internal/domain"
	"lets-heal/internal/logger"
	"lets-heal/internal/metrics"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTypeBearer is the token_type reported to clients.
const TokenTypeBearer = "Bearer"

// AuthClaims are the JWT claims of an access token. Subject is the account id.
type AuthClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult is either a signed token for Identity, or the list of roles
// the email can log in as when the caller has to choose one.
type LoginResult struct {
	Identity    *domain.Identity
	AccessToken string
	ExpiresAt   time.Time
	Roles       []domain.Role
}

// NeedsRole reports whether the caller must repeat the login with a role.
func (r *LoginResult) NeedsRole() bool {
	return r.AccessToken == "" && len(r.Roles) > 0
}

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password, role string) (*LoginResult, error)
	IssueToken(identity *domain.Identity) (string, time.Time, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Principal, error)
	Profile(ctx context.Context, principal domain.Principal) (*domain.Identity, error)
}

type authService struct {
	identities domain.IdentityRepository
	cfg        config.JWTConfig
	now        func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(identities domain.IdentityRepository, cfg config.JWTConfig) (AuthService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt.secret_key is not configured")
	}
	return &authService{
		identities: identities,
		cfg:        cfg,
		now:        time.Now,
	}, nil
}

// HashPassword returns the bcrypt hash stored on identity records.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	var verrs domain.ValidationErrors
	if email == "" {
		verrs = append(verrs, domain.NewMissingFieldError("email"))
	}
	if password == "" {
		verrs = append(verrs, domain.NewMissingFieldError("password"))
	}
	var selected domain.Role
	if strings.TrimSpace(role) != "" {
		r, ok := domain.ParseRole(role)
		if !ok {
			verrs = append(verrs, domain.NewInvalidFormatError("role", role))
		}
		selected = r
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	result, err := s.resolveIdentity(ctx, email, selected)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}
	if result.Identity == nil {
		return result, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(result.Identity.PasswordHash), []byte(password)); err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeFailure).Inc()
		logger.Get().Info("Login rejected",
			zap.String("email", email),
			zap.String("role", result.Identity.Role().String()))
		return nil, domain.NewUnauthorizedError("Invalid email or password")
	}

	token, expiresAt, err := s.IssueToken(result.Identity)
	if err != nil {
		return nil, err
	}
	metrics.LoginAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()
	result.AccessToken = token
	result.ExpiresAt = expiresAt
	return result, nil
}

// resolveIdentity picks the identity to authenticate. When the email has
// several roles and none was selected, the result only lists the roles.
func (s *authService) resolveIdentity(ctx context.Context, email string, role domain.Role) (*LoginResult, error) {
	if role != "" {
		identity, err := s.identities.FindByEmailAndRole(ctx, email, role)
		if err != nil {
			return nil, domain.NewInternalError("Failed to look up identity", err)
		}
		if identity != nil {
			return &LoginResult{Identity: identity}, nil
		}
	}

	identities, err := s.identities.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up identity", err)
	}
	if len(identities) == 0 {
		return nil, domain.NewNotFoundError("No account found for this email")
	}
	if role != "" {
		return nil, domain.ValidationErrors{{
			Field:   "role",
			Code:    domain.CodeRoleUnavailable,
			Message: fmt.Sprintf("no %s account exists for this email", role),
			Value:   string(role),
		}}
	}
	if len(identities) == 1 {
		return &LoginResult{Identity: identities[0]}, nil
	}

	roles := make([]domain.Role, 0, len(identities))
	for _, identity := range identities {
		roles = append(roles, identity.Role())
	}
	return &LoginResult{Roles: roles}, nil
}

// IssueToken signs an access token for identity.
func (s *authService) IssueToken(identity *domain.Identity) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.AccessTTL)
	claims := AuthClaims{
		Email: identity.Email,
		Role:  identity.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   identity.Account.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", time.Time{}, domain.NewInternalError("Failed to sign access token", err)
	}
	return signed, expiresAt, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*domain.Principal, error) {
	claims := &AuthClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SecretKey), nil
	}, opts...)
	if err != nil || !token.Valid {
		logger.Get().Debug("Access token rejected", zap.Error(err))
		return nil, domain.NewUnauthorizedError("Invalid or expired access token")
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok || claims.Subject == "" {
		return nil, domain.NewUnauthorizedError("Access token carries no valid role")
	}
	return &domain.Principal{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  role,
	}, nil
}

// Profile loads the identity record behind an authenticated principal.
func (s *authService) Profile(ctx context.Context, principal domain.Principal) (*domain.Identity, error) {
	identity, err := s.identities.GetByAccount(ctx, domain.AccountRef{Role: principal.Role, ID: principal.ID})
	if err != nil {
		return nil, domain.NewInternalError("Failed to load identity", err)
	}
	if identity == nil {
		return nil, domain.NewNotFoundError("Account not found").WithContext("account_id", principal.ID)
	}
	return identity, nil
}
