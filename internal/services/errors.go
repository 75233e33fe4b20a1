package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks failures caught before any store call: a required
// field is missing or a value falls outside its enumerated set. Handlers
// match it with errors.Is and report the offending field from the message.
var ErrValidation = errors.New("validation error")

func requireField(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

func requireOneOf(value, field string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %s", ErrValidation, field, strings.Join(allowed, ", "))
}

func requireNonNegative(value float64, field string) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrValidation, field)
	}
	return nil
}

// Notifier records an advisory notification as a side effect of a mutating
// operation. Implementations must never block or fail the primary
// operation; failures are logged and swallowed.
type Notifier interface {
	Notify(title, message, notificationType string)
}
