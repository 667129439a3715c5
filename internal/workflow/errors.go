package workflow

import (
	"errors"
	"fmt"
)

// Failure taxonomy surfaced to controllers. Validation, authorization,
// not-found and conflict outcomes are terminal per request and never
// retried; anything else is treated as an external-service failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// ValidationError reports bad caller input. The message is safe to show
// on the form.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
