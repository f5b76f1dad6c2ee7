package entity

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrNotFound is returned when a well-formed reference matches no record.
var ErrNotFound = errors.New("not found")

// ValidationError reports every violated field constraint of an input payload.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NewValidationError wraps a validator result, enumerating each failed field,
// or any other error as-is.
func NewValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := "validation failed:"
		for _, fe := range verrs {
			detail += fmt.Sprintf(" field %s failed on %s;", fe.Field(), fe.Tag())
		}
		return &ValidationError{Detail: detail}
	}
	return &ValidationError{Detail: err.Error()}
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// EncodingError reports an upload that is not valid UTF-8.
type EncodingError struct {
	Detail string
}

func (e *EncodingError) Error() string {
	return e.Detail
}

// StorageError reports a failed or impossible document-store operation.
// Unavailable marks the store as not configured or unreachable, as opposed
// to a single operation failing.
type StorageError struct {
	Op          string
	Err         error
	Unavailable bool
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage: %s", e.Op)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
