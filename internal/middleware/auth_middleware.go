package middleware

import (
	"strings"

	"lets-heal/internal/domain"
	"lets-heal/internal/logger"
	"lets-heal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	PrincipalKey        = "principal" // Key for storing the caller in fiber.Ctx locals
)

// Protected requires a valid bearer access token and stores the resolved
// domain.Principal in the request locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		principal, err := authService.ValidateToken(c.UserContext(), tokenString)
		if err != nil {
			return err
		}

		c.Locals(PrincipalKey, *principal)
		logger.Get().Debug("Request authenticated",
			zap.String("accountID", principal.ID),
			zap.String("role", principal.Role.String()))
		return c.Next()
	}
}

// RequireRole lets the request through only when the authenticated caller
// has one of roles. It must run after Protected.
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return domain.NewUnauthorizedError("Authentication required")
		}
		for _, role := range roles {
			if principal.Is(role) {
				return c.Next()
			}
		}
		return domain.NewForbiddenError("This action is not allowed for role " + principal.Role.String())
	}
}

// PrincipalFrom returns the caller stored by Protected.
func PrincipalFrom(c *fiber.Ctx) (domain.Principal, bool) {
	principal, ok := c.Locals(PrincipalKey).(domain.Principal)
	return principal, ok
}
