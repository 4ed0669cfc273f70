package config

import (
	"fmt"
	"strings"
)

// ValidationErrors aggregates every validation failure found in one pass.
type ValidationErrors struct {
	Errors []error
}

// NewValidationErrors wraps a non-empty slice of validation failures.
func NewValidationErrors(errs []error) *ValidationErrors {
	return &ValidationErrors{Errors: errs}
}

// Error lists all collected failures, one per line.
func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, "  - "+err.Error())
	}
	return fmt.Sprintf("%d configuration error(s):\n%s", len(e.Errors), strings.Join(msgs, "\n"))
}
