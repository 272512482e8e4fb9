package dto

import "time"

// BookAppointmentRequest is the body of POST /api/therapists/{id}/appointments.
// @Description Appointment booking request
type BookAppointmentRequest struct {
	ConsultationType string `json:"consultation_type"`
	AppointmentType  string `json:"appointment_type"`
	AppointmentDate  string `json:"appointment_date" example:"2025-05-01"`
	AppointmentTime  string `json:"appointment_time" example:"09:30"`
	HospitalID       string `json:"hospital_id"`
}

// AppointmentResponse represents an appointment in the API response
type AppointmentResponse struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customer_id"`
	TherapistID      string    `json:"therapist_id"`
	ConsultationType string    `json:"consultation_type"`
	AppointmentType  string    `json:"appointment_type"`
	AppointmentDate  string    `json:"appointment_date"`
	AppointmentTime  string    `json:"appointment_time"`
	HospitalID       string    `json:"hospital_id"`
	HospitalName     string    `json:"hospital_name"`
	HospitalAddress  string    `json:"hospital_address"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// HistoryResponse is one partition of an account's appointments.
type HistoryResponse struct {
	Role         string                `json:"role"`
	Partition    string                `json:"partition"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// TherapistResponse is a therapist in the booking directory.
type TherapistResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization,omitempty"`
	HospitalID     string `json:"hospital_id,omitempty"`
}

type HospitalRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type HospitalResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
