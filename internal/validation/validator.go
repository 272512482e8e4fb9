package validation

import (
	"net/mail"
	"strings"

	"lets-heal/internal/domain"
	"lets-heal/internal/util"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks that an identifier is present and is a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

// ValidateLoginRequest validates the login request
func (v *Validator) ValidateLoginRequest(email, password string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("email", email))
	}

	if password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(password) > 128 {
		errors = append(errors, domain.NewOutOfRangeError("password", len(password), 1, 128))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates the submit answer request
func (v *Validator) ValidateSubmitAnswerRequest(questionID, chosenOption string) domain.ValidationErrors {
	errors := v.ValidateID("question_id", questionID)
	if strings.TrimSpace(chosenOption) == "" {
		errors = append(errors, domain.NewMissingFieldError("chosen_option"))
	}
	return errors
}
