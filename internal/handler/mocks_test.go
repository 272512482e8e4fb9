package handler_test

import (
	"context"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/service"
)

// --- Manual Mocks ---

// MockAuthService resolves tokens of the form "<role>:<id>".
type MockAuthService struct {
	LoginFunc   func(ctx context.Context, email, password, role string) (*service.LoginResult, error)
	ProfileFunc func(ctx context.Context, principal domain.Principal) (*domain.Identity, error)
}

func (m *MockAuthService) Login(ctx context.Context, email, password, role string) (*service.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, role)
	}
	panic("MockAuthService.LoginFunc not implemented")
}

func (m *MockAuthService) IssueToken(identity *domain.Identity) (string, time.Time, error) {
	panic("MockAuthService.IssueToken not implemented")
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.Principal, error) {
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleTherapist, domain.RoleAdmin} {
		prefix := string(role) + ":"
		if len(token) > len(prefix) && token[:len(prefix)] == prefix {
			return &domain.Principal{ID: token[len(prefix):], Email: token[len(prefix):] + "@example.com", Role: role}, nil
		}
	}
	return nil, domain.NewUnauthorizedError("Invalid or expired access token")
}

func (m *MockAuthService) Profile(ctx context.Context, principal domain.Principal) (*domain.Identity, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, principal)
	}
	panic("MockAuthService.ProfileFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	GetActiveQuizFunc     func(ctx context.Context) (*domain.Quiz, error)
	GetQuizDefinitionFunc func(ctx context.Context) (*domain.Quiz, error)
	AddQuestionFunc       func(ctx context.Context, q *domain.Question) (*domain.Question, error)
	UpdateQuestionFunc    func(ctx context.Context, id string, patch domain.QuestionPatch) (*domain.Question, error)
	DeleteQuestionFunc    func(ctx context.Context, id string) error
	AddResultRangeFunc    func(ctx context.Context, r *domain.ResultRange) (*domain.ResultRange, error)
	StartAttemptFunc      func(ctx context.Context, actor domain.Principal) (*domain.Attempt, error)
	GetNextQuestionFunc   func(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Question, error)
	SubmitAnswerFunc      func(ctx context.Context, actor domain.Principal, attemptID, questionID, option string) (*domain.Answer, error)
	FinishAttemptFunc     func(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error)
	GetAttemptResultFunc  func(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error)
}

func (m *MockQuizService) GetActiveQuiz(ctx context.Context) (*domain.Quiz, error) {
	if m.GetActiveQuizFunc != nil {
		return m.GetActiveQuizFunc(ctx)
	}
	panic("MockQuizService.GetActiveQuizFunc not implemented")
}

func (m *MockQuizService) GetQuizDefinition(ctx context.Context) (*domain.Quiz, error) {
	if m.GetQuizDefinitionFunc != nil {
		return m.GetQuizDefinitionFunc(ctx)
	}
	panic("MockQuizService.GetQuizDefinitionFunc not implemented")
}

func (m *MockQuizService) AddQuestion(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	if m.AddQuestionFunc != nil {
		return m.AddQuestionFunc(ctx, q)
	}
	panic("MockQuizService.AddQuestionFunc not implemented")
}

func (m *MockQuizService) UpdateQuestion(ctx context.Context, id string, patch domain.QuestionPatch) (*domain.Question, error) {
	if m.UpdateQuestionFunc != nil {
		return m.UpdateQuestionFunc(ctx, id, patch)
	}
	panic("MockQuizService.UpdateQuestionFunc not implemented")
}

func (m *MockQuizService) DeleteQuestion(ctx context.Context, id string) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuizService.DeleteQuestionFunc not implemented")
}

func (m *MockQuizService) AddResultRange(ctx context.Context, r *domain.ResultRange) (*domain.ResultRange, error) {
	if m.AddResultRangeFunc != nil {
		return m.AddResultRangeFunc(ctx, r)
	}
	panic("MockQuizService.AddResultRangeFunc not implemented")
}

func (m *MockQuizService) StartAttempt(ctx context.Context, actor domain.Principal) (*domain.Attempt, error) {
	if m.StartAttemptFunc != nil {
		return m.StartAttemptFunc(ctx, actor)
	}
	panic("MockQuizService.StartAttemptFunc not implemented")
}

func (m *MockQuizService) GetNextQuestion(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Question, error) {
	if m.GetNextQuestionFunc != nil {
		return m.GetNextQuestionFunc(ctx, actor, attemptID)
	}
	panic("MockQuizService.GetNextQuestionFunc not implemented")
}

func (m *MockQuizService) SubmitAnswer(ctx context.Context, actor domain.Principal, attemptID, questionID, option string) (*domain.Answer, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, actor, attemptID, questionID, option)
	}
	panic("MockQuizService.SubmitAnswerFunc not implemented")
}

func (m *MockQuizService) FinishAttempt(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error) {
	if m.FinishAttemptFunc != nil {
		return m.FinishAttemptFunc(ctx, actor, attemptID)
	}
	panic("MockQuizService.FinishAttemptFunc not implemented")
}

func (m *MockQuizService) GetAttemptResult(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error) {
	if m.GetAttemptResultFunc != nil {
		return m.GetAttemptResultFunc(ctx, actor, attemptID)
	}
	panic("MockQuizService.GetAttemptResultFunc not implemented")
}

// MockAppointmentService
type MockAppointmentService struct {
	BookFunc           func(ctx context.Context, actor domain.Principal, req domain.BookingRequest) (*domain.Appointment, error)
	CancelFunc         func(ctx context.Context, actor domain.Principal, appointmentID string) error
	ListHistoryFunc    func(ctx context.Context, actor domain.Principal, role, partition string) ([]*domain.Appointment, error)
	ListTherapistsFunc func(ctx context.Context) ([]*domain.Therapist, error)
	GetTherapistFunc   func(ctx context.Context, id string) (*domain.Therapist, error)
	ListHospitalsFunc  func(ctx context.Context) ([]*domain.Hospital, error)
	CreateHospitalFunc func(ctx context.Context, name, address string) (*domain.Hospital, error)
}

func (m *MockAppointmentService) Book(ctx context.Context, actor domain.Principal, req domain.BookingRequest) (*domain.Appointment, error) {
	if m.BookFunc != nil {
		return m.BookFunc(ctx, actor, req)
	}
	panic("MockAppointmentService.BookFunc not implemented")
}

func (m *MockAppointmentService) Cancel(ctx context.Context, actor domain.Principal, appointmentID string) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, actor, appointmentID)
	}
	panic("MockAppointmentService.CancelFunc not implemented")
}

func (m *MockAppointmentService) ListHistory(ctx context.Context, actor domain.Principal, role, partition string) ([]*domain.Appointment, error) {
	if m.ListHistoryFunc != nil {
		return m.ListHistoryFunc(ctx, actor, role, partition)
	}
	panic("MockAppointmentService.ListHistoryFunc not implemented")
}

func (m *MockAppointmentService) ListTherapists(ctx context.Context) ([]*domain.Therapist, error) {
	if m.ListTherapistsFunc != nil {
		return m.ListTherapistsFunc(ctx)
	}
	panic("MockAppointmentService.ListTherapistsFunc not implemented")
}

func (m *MockAppointmentService) GetTherapist(ctx context.Context, id string) (*domain.Therapist, error) {
	if m.GetTherapistFunc != nil {
		return m.GetTherapistFunc(ctx, id)
	}
	panic("MockAppointmentService.GetTherapistFunc not implemented")
}

func (m *MockAppointmentService) ListHospitals(ctx context.Context) ([]*domain.Hospital, error) {
	if m.ListHospitalsFunc != nil {
		return m.ListHospitalsFunc(ctx)
	}
	panic("MockAppointmentService.ListHospitalsFunc not implemented")
}

func (m *MockAppointmentService) CreateHospital(ctx context.Context, name, address string) (*domain.Hospital, error) {
	if m.CreateHospitalFunc != nil {
		return m.CreateHospitalFunc(ctx, name, address)
	}
	panic("MockAppointmentService.CreateHospitalFunc not implemented")
}
