package domain

import (
	"errors"
	"fmt"
)

// ErrNoEligibleSets means the catalog holds no set recent enough for the
// daily challenge.
var ErrNoEligibleSets = errors.New("no sets eligible for daily selection")

// ValidationError is a client-caused failure with a short machine-readable
// reason. Handlers map it to a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a ValidationError.
func Invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
