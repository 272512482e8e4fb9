package handler

import (
	"lets-heal/internal/domain"
	"lets-heal/internal/dto"
	"lets-heal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles booking requests
type AppointmentHandler struct {
	service service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler instance
func NewAppointmentHandler(service service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Book godoc
// @Summary Book an appointment with a therapist
// @Description Fails with 409 once the therapist holds 80 appointments on that date
// @Tags appointments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Therapist ID"
// @Param request body dto.BookAppointmentRequest true "Booking"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /therapists/{id}/appointments [post]
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.BookAppointmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	appointment, err := h.service.Book(c.UserContext(), principal, domain.BookingRequest{
		TherapistID:      c.Params("id"),
		ConsultationType: req.ConsultationType,
		AppointmentType:  req.AppointmentType,
		Date:             req.AppointmentDate,
		Time:             req.AppointmentTime,
		HospitalID:       req.HospitalID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toAppointmentResponse(appointment))
}

// Cancel godoc
// @Summary Cancel an appointment
// @Description Only the booking customer may cancel, within 5 hours of booking
// @Tags appointments
// @Security ApiKeyAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	if err := h.service.Cancel(c.UserContext(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary Appointment history
// @Description Past appointments newest first, upcoming appointments soonest first
// @Tags appointments
// @Produce json
// @Security ApiKeyAuth
// @Param role path string true "customer or therapist"
// @Param partition path string true "past or upcoming"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /appointments/history/{role}/{partition} [get]
func (h *AppointmentHandler) History(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	role, partition := c.Params("role"), c.Params("partition")
	appointments, err := h.service.ListHistory(c.UserContext(), principal, role, partition)
	if err != nil {
		return err
	}

	resp := dto.HistoryResponse{
		Role:         role,
		Partition:    partition,
		Appointments: make([]dto.AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, toAppointmentResponse(a))
	}
	return c.JSON(resp)
}

// ListHospitals godoc
// @Summary List hospitals
// @Tags appointments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.HospitalResponse
// @Router /hospitals [get]
func (h *AppointmentHandler) ListHospitals(c *fiber.Ctx) error {
	hospitals, err := h.service.ListHospitals(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.HospitalResponse, 0, len(hospitals))
	for _, hospital := range hospitals {
		resp = append(resp, toHospitalResponse(hospital))
	}
	return c.JSON(resp)
}

// ListTherapists godoc
// @Summary List therapists
// @Description Active therapists ordered by name
// @Tags appointments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.TherapistResponse
// @Router /therapists [get]
func (h *AppointmentHandler) ListTherapists(c *fiber.Ctx) error {
	therapists, err := h.service.ListTherapists(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.TherapistResponse, 0, len(therapists))
	for _, t := range therapists {
		resp = append(resp, toTherapistResponse(t))
	}
	return c.JSON(resp)
}

// GetTherapist godoc
// @Summary Get a therapist
// @Tags appointments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Therapist ID"
// @Success 200 {object} dto.TherapistResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /therapists/{id} [get]
func (h *AppointmentHandler) GetTherapist(c *fiber.Ctx) error {
	therapist, err := h.service.GetTherapist(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toTherapistResponse(therapist))
}
