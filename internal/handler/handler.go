// Package handler translates HTTP requests into quiz and appointment
// service calls.
package handler

import (
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

var timeNow = time.Now

// principalFrom returns the authenticated caller of c.
func principalFrom(c *fiber.Ctx) (domain.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, domain.NewUnauthorizedError("Authentication required")
	}
	return principal, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
