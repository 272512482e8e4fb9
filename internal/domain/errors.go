package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput    ErrorCode = "INVALID_INPUT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeValidation      ErrorCode = "VALIDATION_ERROR"
	CodeMissingField    ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat   ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange      ErrorCode = "OUT_OF_RANGE"
	CodeRoleUnavailable ErrorCode = "ROLE_NOT_FOUND"

	// Quiz specific errors
	CodeNoActiveQuiz            ErrorCode = "NO_ACTIVE_QUIZ"
	CodeInvalidChoice           ErrorCode = "INVALID_CHOICE"
	CodeAttemptAlreadyCompleted ErrorCode = "ATTEMPT_ALREADY_COMPLETED"
	CodeAttemptNotCompleted     ErrorCode = "ATTEMPT_NOT_COMPLETED"

	// Appointment specific errors
	CodeCapacityExceeded          ErrorCode = "CAPACITY_EXCEEDED"
	CodeNotAuthorized             ErrorCode = "NOT_AUTHORIZED"
	CodeCancellationWindowExpired ErrorCode = "CANCELLATION_WINDOW_EXPIRED"
)

// ErrorKind groups error codes into the classes the boundary reports on.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindStateConflict
	KindNotAuthenticated
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindStateConflict:
		return "StateConflictError"
	case KindNotAuthenticated:
		return "NotAuthenticatedError"
	default:
		return "InternalError"
	}
}

// Kind returns the error class a code belongs to.
func (c ErrorCode) Kind() ErrorKind {
	switch c {
	case CodeInvalidInput, CodeValidation, CodeMissingField, CodeInvalidFormat,
		CodeOutOfRange, CodeInvalidChoice, CodeRoleUnavailable:
		return KindValidation
	case CodeNotFound, CodeNoActiveQuiz:
		return KindNotFound
	case CodeForbidden, CodeNotAuthorized:
		return KindAuthorization
	case CodeAttemptAlreadyCompleted, CodeAttemptNotCompleted,
		CodeCapacityExceeded, CodeCancellationWindowExpired:
		return KindStateConflict
	case CodeUnauthorized:
		return KindNotAuthenticated
	default:
		return KindInternal
	}
}

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Kind reports the error class of the underlying code.
func (e *DomainError) Kind() ErrorKind {
	return e.Code.Kind()
}

// WithContext attaches a detail value that is echoed back to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// KindOf returns the error class of err, KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind()
	}
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return KindValidation
	}
	return KindInternal
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(CodeForbidden, message, nil)
}

func NewNoActiveQuizError() *DomainError {
	return NewError(CodeNoActiveQuiz, "No active quiz found. Please create one in admin panel.", nil)
}

func NewInvalidChoiceError(choice string) *DomainError {
	return NewError(CodeInvalidChoice, "chosen_option must be 'a','b','c','d'", nil).
		WithContext("chosen_option", choice)
}

func NewAttemptAlreadyCompletedError(attemptID string) *DomainError {
	return NewError(CodeAttemptAlreadyCompleted, "Attempt already completed", nil).
		WithContext("attempt_id", attemptID)
}

func NewAttemptNotCompletedError(attemptID string) *DomainError {
	return NewError(CodeAttemptNotCompleted, "Attempt not yet completed", nil).
		WithContext("attempt_id", attemptID)
}

func NewCapacityExceededError(therapistID, date string) *DomainError {
	return NewError(CodeCapacityExceeded,
		fmt.Sprintf("Therapist has reached the daily limit of %d appointments", DailyAppointmentCapacity), nil).
		WithContext("therapist_id", therapistID).
		WithContext("date", date)
}

func NewNotAuthorizedError(message string) *DomainError {
	return NewError(CodeNotAuthorized, message, nil)
}

func NewCancellationWindowExpiredError(appointmentID string) *DomainError {
	return NewError(CodeCancellationWindowExpired,
		fmt.Sprintf("Appointments can only be cancelled within %s of booking", CancellationWindow), nil).
		WithContext("appointment_id", appointmentID)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field,omitempty"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors collects field errors so they are reported together.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields returns the names of the offending fields in order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, e := range v {
		fields = append(fields, e.Field)
	}
	return fields
}

func NewValidationError(message string) ValidationError {
	return ValidationError{Code: CodeValidation, Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: "field has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("value must be between %d and %d", min, max),
		Value:   value,
	}
}

// Column widths of the text fields callers can set, in bytes.
const (
	MaxTypeLength            = 50
	MaxQuestionTextLength    = 1000
	MaxOptionLength          = 255
	MaxResultTextLength      = 2000
	MaxHospitalNameLength    = 200
	MaxHospitalAddressLength = 500
)

// checkLength appends an out-of-range error when value is longer than max bytes.
func (v *ValidationErrors) checkLength(field, value string, max int) {
	if n := len(value); n > max {
		*v = append(*v, NewOutOfRangeError(field, n, 1, max))
	}
}
