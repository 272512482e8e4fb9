package service

import (
	"context"
	"strings"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/logger"
	"lets-heal/internal/metrics"

	"go.uber.org/zap"
)

// AppointmentService defines the interface for booking operations.
type AppointmentService interface {
	Book(ctx context.Context, actor domain.Principal, req domain.BookingRequest) (*domain.Appointment, error)
	Cancel(ctx context.Context, actor domain.Principal, appointmentID string) error
	ListHistory(ctx context.Context, actor domain.Principal, role, partition string) ([]*domain.Appointment, error)
	ListTherapists(ctx context.Context) ([]*domain.Therapist, error)
	GetTherapist(ctx context.Context, id string) (*domain.Therapist, error)
	ListHospitals(ctx context.Context) ([]*domain.Hospital, error)
	CreateHospital(ctx context.Context, name, address string) (*domain.Hospital, error)
}

type appointmentService struct {
	appointments domain.AppointmentRepository
	accounts     domain.AccountRepository
	hospitals    domain.HospitalRepository
	tx           domain.TransactionManager
	notifier     domain.Notifier
	loc          *time.Location
	now          func() time.Time
}

// NewAppointmentService creates a new instance of AppointmentService. Dates and
// times of appointments are read in loc.
func NewAppointmentService(
	appointments domain.AppointmentRepository,
	accounts domain.AccountRepository,
	hospitals domain.HospitalRepository,
	tx domain.TransactionManager,
	notifier domain.Notifier,
	loc *time.Location,
) AppointmentService {
	if loc == nil {
		loc = time.UTC
	}
	return &appointmentService{
		appointments: appointments,
		accounts:     accounts,
		hospitals:    hospitals,
		tx:           tx,
		notifier:     notifier,
		loc:          loc,
		now:          time.Now,
	}
}

// Book creates an appointment for the calling customer. The therapist row is
// locked for the count-then-insert so the daily cap holds under concurrency.
func (s *appointmentService) Book(ctx context.Context, actor domain.Principal, req domain.BookingRequest) (*domain.Appointment, error) {
	if !actor.Is(domain.RoleCustomer) {
		return nil, domain.NewForbiddenError("Only customers can book appointments")
	}
	req.CustomerID = actor.ID
	if err := req.Normalize(); err != nil {
		metrics.Appointments.WithLabelValues(metrics.EventRejected, "validation").Inc()
		return nil, err
	}

	var (
		appointment *domain.Appointment
		therapist   *domain.Therapist
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		therapist, err = s.accounts.GetTherapistForUpdate(ctx, req.TherapistID)
		if err != nil {
			return domain.NewInternalError("Failed to load therapist", err)
		}
		if therapist == nil {
			return domain.NewNotFoundError("Therapist not found").WithContext("therapist_id", req.TherapistID)
		}

		hospital, err := s.hospitals.GetHospitalByID(ctx, req.HospitalID)
		if err != nil {
			return domain.NewInternalError("Failed to load hospital", err)
		}
		if hospital == nil {
			return domain.NewNotFoundError("Hospital not found").WithContext("hospital_id", req.HospitalID)
		}

		count, err := s.appointments.CountForTherapistOnDate(ctx, therapist.ID, req.Date)
		if err != nil {
			return domain.NewInternalError("Failed to count appointments", err)
		}
		if count >= domain.DailyAppointmentCapacity {
			return domain.NewCapacityExceededError(therapist.ID, req.Date)
		}

		appointment = &domain.Appointment{
			CustomerID:       actor.ID,
			TherapistID:      therapist.ID,
			ConsultationType: req.ConsultationType,
			AppointmentType:  req.AppointmentType,
			Date:             req.Date,
			Time:             req.Time,
			HospitalID:       hospital.ID,
			HospitalName:     hospital.Name,
			HospitalAddress:  hospital.Address,
			Status:           domain.StatusBooked,
			CreatedAt:        s.now(),
		}
		if err := s.appointments.CreateAppointment(ctx, appointment); err != nil {
			return domain.NewInternalError("Failed to create appointment", err)
		}
		return nil
	})
	if err != nil {
		if domain.IsCode(err, domain.CodeCapacityExceeded) {
			metrics.Appointments.WithLabelValues(metrics.EventRejected, "capacity").Inc()
		}
		return nil, err
	}

	metrics.Appointments.WithLabelValues(metrics.EventBooked, "").Inc()
	logger.Get().Info("Appointment booked",
		zap.String("appointmentID", appointment.ID),
		zap.String("customerID", actor.ID),
		zap.String("therapistID", therapist.ID),
		zap.String("date", appointment.Date),
		zap.String("time", appointment.Time))

	s.notify(ctx, domain.NewBookingConfirmation(actor.Email, appointment, therapist.Name))
	return appointment, nil
}

// Cancel deletes an appointment the calling customer booked within the
// cancellation window.
func (s *appointmentService) Cancel(ctx context.Context, actor domain.Principal, appointmentID string) error {
	appointment, err := s.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return domain.NewInternalError("Failed to load appointment", err)
	}
	if appointment == nil {
		return domain.NewNotFoundError("Appointment not found").WithContext("appointment_id", appointmentID)
	}
	if !actor.Is(domain.RoleCustomer) || !appointment.OwnedBy(actor.ID) {
		return domain.NewNotAuthorizedError("You can only cancel your own appointments")
	}
	if !appointment.CanCancel(s.now()) {
		metrics.Appointments.WithLabelValues(metrics.EventRejected, "window").Inc()
		return domain.NewCancellationWindowExpiredError(appointment.ID)
	}

	if err := s.appointments.DeleteAppointment(ctx, appointment.ID); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return err
		}
		return domain.NewInternalError("Failed to cancel appointment", err)
	}

	metrics.Appointments.WithLabelValues(metrics.EventCancelled, "").Inc()
	logger.Get().Info("Appointment cancelled",
		zap.String("appointmentID", appointment.ID),
		zap.String("customerID", actor.ID))

	s.notify(ctx, domain.NewCancellationConfirmation(actor.Email, appointment))
	return nil
}

// ListHistory returns one partition of the caller's appointments. The role
// in the request must be the caller's own.
func (s *appointmentService) ListHistory(ctx context.Context, actor domain.Principal, role, partition string) ([]*domain.Appointment, error) {
	var verrs domain.ValidationErrors
	r, ok := domain.ParseRole(role)
	if !ok || r == domain.RoleAdmin {
		verrs = append(verrs, domain.NewInvalidFormatError("role", role))
	}
	p, ok := domain.ParsePartition(partition)
	if !ok {
		verrs = append(verrs, domain.NewInvalidFormatError("partition", partition))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}
	if actor.Role != r {
		return nil, domain.NewForbiddenError("You can only view your own appointment history")
	}

	query := domain.HistoryQuery{
		Role:      r,
		AccountID: actor.ID,
		Partition: p,
		Now:       s.now().In(s.loc),
	}
	appointments, err := s.appointments.ListHistory(ctx, query)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load appointment history", err)
	}

	// Keep only rows the partition rule agrees with.
	filtered := appointments[:0]
	for _, a := range appointments {
		if query.Includes(a) {
			filtered = append(filtered, a)
			continue
		}
		logger.Get().Debug("Dropped appointment outside history partition",
			zap.String("appointmentID", a.ID),
			zap.String("partition", string(p)))
	}
	return filtered, nil
}

func (s *appointmentService) ListTherapists(ctx context.Context) ([]*domain.Therapist, error) {
	therapists, err := s.accounts.ListTherapists(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list therapists", err)
	}
	return therapists, nil
}

func (s *appointmentService) GetTherapist(ctx context.Context, id string) (*domain.Therapist, error) {
	therapist, err := s.accounts.GetTherapistByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load therapist", err)
	}
	if therapist == nil {
		return nil, domain.NewNotFoundError("Therapist not found").WithContext("therapist_id", id)
	}
	return therapist, nil
}

func (s *appointmentService) ListHospitals(ctx context.Context) ([]*domain.Hospital, error) {
	hospitals, err := s.hospitals.ListHospitals(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list hospitals", err)
	}
	return hospitals, nil
}

func (s *appointmentService) CreateHospital(ctx context.Context, name, address string) (*domain.Hospital, error) {
	hospital := &domain.Hospital{
		Name:      strings.TrimSpace(name),
		Address:   strings.TrimSpace(address),
		CreatedAt: s.now(),
	}
	if err := hospital.Validate(); err != nil {
		return nil, err
	}
	if err := s.hospitals.CreateHospital(ctx, hospital); err != nil {
		return nil, domain.NewInternalError("Failed to create hospital", err)
	}
	return hospital, nil
}

// notify sends n and only logs a failure; the booking or cancellation it
// reports on is already committed.
func (s *appointmentService) notify(ctx context.Context, n domain.Notification) {
	if s.notifier == nil || n.Recipient == "" {
		return
	}
	if err := s.notifier.Send(ctx, n); err != nil {
		metrics.Notifications.WithLabelValues(metrics.OutcomeFailure).Inc()
		logger.Get().Warn("Failed to send notification",
			zap.String("subject", n.Subject),
			zap.String("recipient", n.Recipient),
			zap.Error(err))
		return
	}
	metrics.Notifications.WithLabelValues(metrics.OutcomeSuccess).Inc()
}
