package handler

import (
	"lets-heal/internal/domain"
	"lets-heal/internal/dto"
	"lets-heal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles quiz maintenance and hospital management
type AdminHandler struct {
	quizService        service.QuizService
	appointmentService service.AppointmentService
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(quizService service.QuizService, appointmentService service.AppointmentService) *AdminHandler {
	return &AdminHandler{
		quizService:        quizService,
		appointmentService: appointmentService,
	}
}

// GetQuizDefinition godoc
// @Summary Active quiz definition
// @Description Returns the active quiz with its questions, option scores and result ranges
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuizDefinitionResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quiz [get]
func (h *AdminHandler) GetQuizDefinition(c *fiber.Ctx) error {
	quiz, err := h.quizService.GetQuizDefinition(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(toQuizDefinitionResponse(quiz))
}

// AddQuestion godoc
// @Summary Add a question to the active quiz
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.AdminQuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /admin/quiz/questions [post]
func (h *AdminHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	question, err := h.quizService.AddQuestion(c.UserContext(), &domain.Question{
		Order:    req.Order,
		Text:     req.Text,
		Options:  [4]string{req.OptionA, req.OptionB, req.OptionC, req.OptionD},
		Scores:   [4]int{req.ScoreA, req.ScoreB, req.ScoreC, req.ScoreD},
		Required: req.IsRequired(),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toAdminQuestionResponse(question))
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Partial update; omitted fields are left unchanged
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Question ID"
// @Param request body dto.QuestionPatchRequest true "Fields to change"
// @Success 200 {object} dto.AdminQuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quiz/questions/{id} [put]
func (h *AdminHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.QuestionPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	question, err := h.quizService.UpdateQuestion(c.UserContext(), c.Params("id"), questionPatchFrom(req))
	if err != nil {
		return err
	}
	return c.JSON(toAdminQuestionResponse(question))
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags admin
// @Security ApiKeyAuth
// @Param id path string true "Question ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quiz/questions/{id} [delete]
func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.quizService.DeleteQuestion(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddResultRange godoc
// @Summary Add a result range to the active quiz
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ResultRangeRequest true "Score range"
// @Success 201 {object} dto.ResultRangeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/quiz/result-ranges [post]
func (h *AdminHandler) AddResultRange(c *fiber.Ctx) error {
	var req dto.ResultRangeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	r, err := h.quizService.AddResultRange(c.UserContext(), &domain.ResultRange{
		MinScore:   req.MinScore,
		MaxScore:   req.MaxScore,
		ResultText: req.ResultText,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toResultRangeResponse(r))
}

// CreateHospital godoc
// @Summary Register a hospital
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.HospitalRequest true "Hospital"
// @Success 201 {object} dto.HospitalResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/hospitals [post]
func (h *AdminHandler) CreateHospital(c *fiber.Ctx) error {
	var req dto.HospitalRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	hospital, err := h.appointmentService.CreateHospital(c.UserContext(), req.Name, req.Address)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toHospitalResponse(hospital))
}
