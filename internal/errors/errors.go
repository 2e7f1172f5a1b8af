package gerr

import (
	"errors"
	"fmt"
)

var (
	// ErrSuperseded is returned when a newer build for the same view replaced the running one.
	ErrSuperseded = errors.New("report build superseded by a newer request")

	ErrInsightsDisabled = errors.New("insight generation is not configured")

	ErrMailRateLimited = errors.New("mail api rate limit reached")
)

// ValidationError reports a rejected input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
