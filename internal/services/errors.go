package services

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/english-school-service/internal/repositories"
	"github.com/SAP-F-2025/english-school-service/internal/validator"
)

var (
	// ErrNotFound is returned when the requested entity does not exist
	ErrNotFound = repositories.ErrNotFound

	// ErrIDMismatch is returned when the id in the path differs from the body
	ErrIDMismatch = errors.New("id in path does not match id in body")

	// ErrPersistence is returned when a commit fails
	ErrPersistence = repositories.ErrPersistence
)

// NewValidationError builds a single-field validation failure
func NewValidationError(field, message string, value interface{}, rule string) validator.ValidationErrors {
	return validator.ValidationErrors{{
		Field:   field,
		Message: message,
		Value:   value,
		Rule:    rule,
	}}
}

// IsValidationError reports whether err carries field validation failures
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

func missingUserError(userID uint) error {
	return NewValidationError("userId", fmt.Sprintf("user %d does not exist", userID), userID, "exists")
}
