package domain

import (
	"context"
	"fmt"
	"time"
)

// Notification is a message to a single recipient.
type Notification struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Recipient string `json:"recipient"`
}

// Notifier delivers notifications. Callers treat delivery as best effort.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NewBookingConfirmation builds the message sent after a successful booking.
func NewBookingConfirmation(recipient string, a *Appointment, therapistName string) Notification {
	return Notification{
		Subject: "Appointment Confirmation",
		Body: fmt.Sprintf(
			"Your %s appointment (%s) with %s is booked for %s at %s.\nLocation: %s, %s",
			a.ConsultationType, a.AppointmentType, therapistName, a.Date, a.Time, a.HospitalName, a.HospitalAddress,
		),
		Recipient: recipient,
	}
}

// NewCancellationConfirmation builds the message sent after a cancellation.
func NewCancellationConfirmation(recipient string, a *Appointment) Notification {
	return Notification{
		Subject: "Appointment Cancelled",
		Body: fmt.Sprintf(
			"Your appointment on %s at %s has been cancelled.",
			a.Date, a.Time,
		),
		Recipient: recipient,
	}
}

// NotificationQueue hands notifications from the API to the notifier worker.
type NotificationQueue interface {
	Push(ctx context.Context, n Notification) error
	// Pop blocks up to timeout and returns (nil, nil) when nothing arrived.
	Pop(ctx context.Context, timeout time.Duration) (*Notification, error)
	Len(ctx context.Context) (int64, error)
}
