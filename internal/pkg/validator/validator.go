package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/s21platform/family-web/internal/model"
)

const (
	maxMessageLength  = 2000
	minPasswordLength = 6
)

// Error is a client-side validation failure, caught before any request.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func invalid(field, format string, args ...interface{}) error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCredentials(creds model.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" {
		return invalid("email", "email is required")
	}
	if creds.Password == "" {
		return invalid("password", "password is required")
	}
	return nil
}

func (v *Validator) ValidateRegistration(reg model.Registration) error {
	if strings.TrimSpace(reg.FirstName) == "" {
		return invalid("firstName", "first name is required")
	}
	if strings.TrimSpace(reg.LastName) == "" {
		return invalid("lastName", "last name is required")
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return invalid("email", "email '%s' is not valid", reg.Email)
	}
	return validatePassword(reg.Password, reg.ConfirmPassword)
}

func (v *Validator) ValidateInviteAcceptance(inviteToken string, acc model.InviteAcceptance) error {
	if strings.TrimSpace(inviteToken) == "" {
		return invalid("token", "invite token is required")
	}
	return validatePassword(acc.Password, acc.ConfirmPassword)
}

func (v *Validator) ValidateMessage(content string) error {
	if strings.TrimSpace(content) == "" {
		return invalid("content", "message cannot be empty")
	}
	if len([]rune(content)) > maxMessageLength {
		return invalid("content", "message exceeds maximum length of %d characters", maxMessageLength)
	}
	return nil
}

func (v *Validator) ValidateRSVP(status string) error {
	if !model.ValidRSVPStatus(status) {
		return invalid("status", "rsvp status '%s' is not supported", status)
	}
	return nil
}

func (v *Validator) ValidateFamilyID(familyID string) error {
	if strings.TrimSpace(familyID) == "" {
		return invalid("familyId", "family is required")
	}
	return nil
}

func validatePassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return invalid("password", "password must be at least %d characters", minPasswordLength)
	}
	if password != confirm {
		return invalid("confirmPassword", "passwords do not match")
	}
	return nil
}
