package handler

import (
	"lets-heal/internal/dto"
	"lets-heal/internal/service"
	"lets-heal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz attempt requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// StartAttempt godoc
// @Summary Start a quiz attempt
// @Description Opens a new attempt on the active quiz for the calling customer
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} dto.StartAttemptResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz-attempts [post]
func (h *QuizHandler) StartAttempt(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	attempt, err := h.service.StartAttempt(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StartAttemptResponse{
		AttemptID: attempt.ID,
		QuizID:    attempt.QuizID,
		StartedAt: attempt.StartedAt,
	})
}

// GetNextQuestion godoc
// @Summary Next unanswered question
// @Description Returns the next question in order, or done=true once every question is answered or the attempt is finished
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.NextQuestionResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz-attempts/{id}/next [get]
func (h *QuizHandler) GetNextQuestion(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	question, err := h.service.GetNextQuestion(c.UserContext(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	if question == nil {
		return c.JSON(dto.NextQuestionResponse{Done: true})
	}
	return c.JSON(dto.NextQuestionResponse{Question: toQuestionResponse(question)})
}

// SubmitAnswer godoc
// @Summary Answer a question
// @Description Records the chosen option; answering the same question again replaces the earlier choice
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attempt ID"
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz-attempts/{id}/answers [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.SubmitAnswerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmitAnswerRequest(req.QuestionID, req.ChosenOption); len(errs) > 0 {
		return errs
	}

	answer, err := h.service.SubmitAnswer(c.UserContext(), principal, c.Params("id"), req.QuestionID, req.ChosenOption)
	if err != nil {
		return err
	}
	return c.JSON(toAnswerResponse(answer))
}

// FinishAttempt godoc
// @Summary Finish a quiz attempt
// @Description Scores the attempt and returns the result. Finishing again returns the same result.
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResultResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz-attempts/{id}/finish [post]
func (h *QuizHandler) FinishAttempt(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	attempt, err := h.service.FinishAttempt(c.UserContext(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toAttemptResultResponse(attempt))
}

// GetAttemptResult godoc
// @Summary Result of a finished attempt
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz-attempts/{id}/result [get]
func (h *QuizHandler) GetAttemptResult(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	attempt, err := h.service.GetAttemptResult(c.UserContext(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toAttemptResultResponse(attempt))
}
