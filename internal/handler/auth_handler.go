package handler

import (
	"lets-heal/internal/dto"
	"lets-heal/internal/service"
	"lets-heal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles login and session requests
type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validation.NewValidator(),
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Returns an access token. When the email belongs to several roles and none is given, returns the roles to choose from instead.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateLoginRequest(req.Email, req.Password); len(errs) > 0 {
		return errs
	}

	result, err := h.authService.Login(c.UserContext(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	if result.NeedsRole() {
		roles := make([]string, len(result.Roles))
		for i, r := range result.Roles {
			roles[i] = r.String()
		}
		return c.JSON(dto.LoginResponse{Roles: roles})
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   service.TokenTypeBearer,
		ExpiresIn:   int64(result.ExpiresAt.Sub(timeNow()).Seconds()),
		Role:        result.Identity.Role().String(),
		AccountID:   result.Identity.Account.ID,
		DisplayName: result.Identity.DisplayName,
	})
}

// Me godoc
// @Summary Current caller
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	identity, err := h.authService.Profile(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.MeResponse{
		ID:          principal.ID,
		Email:       principal.Email,
		Role:        principal.Role.String(),
		DisplayName: identity.DisplayName,
	})
}
