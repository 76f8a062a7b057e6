package service

import (
	"regexp"
	"strings"

	"github.com/mavisigorta/backend/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError names the first offending field of a submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NormalizeSubmission trims surrounding whitespace from every field.
func NormalizeSubmission(sub model.ContactSubmission) model.ContactSubmission {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Message = strings.TrimSpace(sub.Message)
	sub.CourseInterest = strings.TrimSpace(sub.CourseInterest)
	return sub
}

// ValidateSubmission checks required fields in form order and the email
// shape. It returns nil for a valid submission.
func ValidateSubmission(sub model.ContactSubmission) *ValidationError {
	switch {
	case sub.Name == "":
		return &ValidationError{Field: "name", Message: MsgNameRequired}
	case sub.Email == "":
		return &ValidationError{Field: "email", Message: MsgEmailRequired}
	case !emailPattern.MatchString(sub.Email):
		return &ValidationError{Field: "email", Message: MsgEmailInvalid}
	case sub.Phone == "":
		return &ValidationError{Field: "phone", Message: MsgPhoneRequired}
	case sub.Message == "":
		return &ValidationError{Field: "message", Message: MsgMessageRequired}
	}
	return nil
}
