package domain

import (
	"context"
	"strings"
	"time"
)

const (
	// DailyAppointmentCapacity is the most appointments a therapist can hold on one date.
	DailyAppointmentCapacity = 80
	// CancellationWindow is how long after booking a customer may still cancel.
	CancellationWindow = 5 * time.Hour

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	StatusBooked = "booked"
)

// Appointment is a booked session between a customer and a therapist.
// Date and Time are kept in their canonical text layouts so that
// lexical order equals chronological order.
type Appointment struct {
	ID               string
	CustomerID       string
	TherapistID      string
	ConsultationType string
	AppointmentType  string
	Date             string
	Time             string
	HospitalID       string
	HospitalName     string
	HospitalAddress  string
	Status           string
	CreatedAt        time.Time
}

// CanCancel reports whether now is still inside the cancellation window.
func (a *Appointment) CanCancel(now time.Time) bool {
	return now.Sub(a.CreatedAt) <= CancellationWindow
}

// OwnedBy reports whether customerID booked the appointment.
func (a *Appointment) OwnedBy(customerID string) bool {
	return a.CustomerID == customerID
}

// BookingRequest is the caller input for a new appointment.
type BookingRequest struct {
	CustomerID       string
	TherapistID      string
	ConsultationType string
	AppointmentType  string
	Date             string
	Time             string
	HospitalID       string
}

// Normalize validates the request and rewrites Date and Time into their
// canonical layouts.
func (r *BookingRequest) Normalize() error {
	var errs ValidationErrors
	required := []struct {
		field string
		value string
	}{
		{"appointment_type", r.AppointmentType},
		{"consultation_type", r.ConsultationType},
		{"appointment_date", r.Date},
		{"appointment_time", r.Time},
		{"hospital_id", r.HospitalID},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, NewMissingFieldError(f.field))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	errs.checkLength("consultation_type", strings.TrimSpace(r.ConsultationType), MaxTypeLength)
	errs.checkLength("appointment_type", strings.TrimSpace(r.AppointmentType), MaxTypeLength)

	d, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		errs = append(errs, NewInvalidFormatError("appointment_date", r.Date))
	}
	t, ok := ParseClock(r.Time)
	if !ok {
		errs = append(errs, NewInvalidFormatError("appointment_time", r.Time))
	}
	if len(errs) > 0 {
		return errs
	}

	r.Date = d.Format(DateLayout)
	r.Time = t
	r.ConsultationType = strings.TrimSpace(r.ConsultationType)
	r.AppointmentType = strings.TrimSpace(r.AppointmentType)
	return nil
}

// ParseClock accepts HH:MM or HH:MM:SS and returns HH:MM.
func ParseClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), true
		}
	}
	return "", false
}

// HistoryPartition splits appointments around the current moment.
type HistoryPartition string

const (
	PartitionPast     HistoryPartition = "past"
	PartitionUpcoming HistoryPartition = "upcoming"
)

func ParsePartition(s string) (HistoryPartition, bool) {
	switch p := HistoryPartition(strings.ToLower(strings.TrimSpace(s))); p {
	case PartitionPast, PartitionUpcoming:
		return p, true
	default:
		return "", false
	}
}

// HistoryQuery selects one partition of one account's appointments.
// Role is customer or therapist.
type HistoryQuery struct {
	Role      Role
	AccountID string
	Partition HistoryPartition
	Now       time.Time
}

// Cutoff returns the first whole minute at or after Now in the date and
// time layouts. Slots are minute grained, so a slot is strictly before
// Now exactly when it is before the cutoff.
func (q HistoryQuery) Cutoff() (date, clock string) {
	cutoff := q.Now.Truncate(time.Minute)
	if cutoff.Before(q.Now) {
		cutoff = cutoff.Add(time.Minute)
	}
	return cutoff.Format(DateLayout), cutoff.Format(TimeLayout)
}

// Includes reports whether a falls into the query's partition. Past is
// strictly before Now; upcoming is at or after Now.
func (q HistoryQuery) Includes(a *Appointment) bool {
	date, clock := q.Cutoff()
	before := a.Date < date || (a.Date == date && a.Time < clock)
	if q.Partition == PartitionPast {
		return before
	}
	return !before
}

// AppointmentRepository defines the interface for appointment persistence.
type AppointmentRepository interface {
	CountForTherapistOnDate(ctx context.Context, therapistID, date string) (int, error)
	CreateAppointment(ctx context.Context, appointment *Appointment) error
	GetAppointmentByID(ctx context.Context, id string) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	// ListHistory returns past appointments newest first and upcoming
	// appointments soonest first.
	ListHistory(ctx context.Context, query HistoryQuery) ([]*Appointment, error)
}
