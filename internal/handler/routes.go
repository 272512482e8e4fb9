package handler

import (
	"lets-heal/internal/domain"
	"lets-heal/internal/middleware"
	"lets-heal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the HTTP handlers mounted under /api.
type Handlers struct {
	Auth        *AuthHandler
	Quiz        *QuizHandler
	Admin       *AdminHandler
	Appointment *AppointmentHandler
}

// RegisterRoutes mounts the API routes on router.
func RegisterRoutes(router fiber.Router, h Handlers, authService service.AuthService) {
	protected := middleware.Protected(authService)
	validator := middleware.NewValidationMiddleware()
	validID := validator.ValidateIDParam("id")

	// Auth routes
	authGroup := router.Group("/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Get("/me", protected, h.Auth.Me)

	// Quiz attempt routes
	attempts := router.Group("/quiz-attempts", protected)
	attempts.Post("/", middleware.RequireRole(domain.RoleCustomer), h.Quiz.StartAttempt)
	attempts.Get("/:id/next", validID, h.Quiz.GetNextQuestion)
	attempts.Post("/:id/answers", validID, h.Quiz.SubmitAnswer)
	attempts.Post("/:id/finish", validID, h.Quiz.FinishAttempt)
	attempts.Get("/:id/result", validID, h.Quiz.GetAttemptResult)

	// Admin routes
	admin := router.Group("/admin", protected, middleware.RequireRole(domain.RoleAdmin))
	admin.Get("/quiz", h.Admin.GetQuizDefinition)
	admin.Post("/quiz/questions", h.Admin.AddQuestion)
	admin.Put("/quiz/questions/:id", validID, h.Admin.UpdateQuestion)
	admin.Delete("/quiz/questions/:id", validID, h.Admin.DeleteQuestion)
	admin.Post("/quiz/result-ranges", h.Admin.AddResultRange)
	admin.Post("/hospitals", h.Admin.CreateHospital)

	// Appointment routes
	router.Get("/hospitals", protected, h.Appointment.ListHospitals)
	router.Get("/therapists", protected, h.Appointment.ListTherapists)
	router.Get("/therapists/:id", protected, validID, h.Appointment.GetTherapist)
	router.Post("/therapists/:id/appointments", protected, middleware.RequireRole(domain.RoleCustomer), validID, h.Appointment.Book)
	router.Delete("/appointments/:id", protected, middleware.RequireRole(domain.RoleCustomer), validID, h.Appointment.Cancel)
	router.Get("/appointments/history/:role/:partition", protected, h.Appointment.History)
}
