package form

import (
	"fmt"
	"slices"
)

// Validator is an interface for form field validation.
type Validator interface {
	// Validate checks if the value is valid.
	// Returns nil if valid, or an error with a message if invalid.
	Validate(value any) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Required validates that the value is non-empty. Lists must have at least
// one element.
func Required(msg string) Validator {
	if msg == "" {
		msg = "This field is required"
	}
	return ValidatorFunc(func(value any) error {
		if isEmpty(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MinItems validates that a list has at least n elements.
func MinItems(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Select at least %d", n)
	}
	return ValidatorFunc(func(value any) error {
		if len(toStrings(value)) < n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MaxItems validates that a list has at most n elements.
func MaxItems(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Select at most %d", n)
	}
	return ValidatorFunc(func(value any) error {
		if len(toStrings(value)) > n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// OneOf validates that every selected value is one of allowed.
func OneOf(allowed []string, msg string) Validator {
	if msg == "" {
		msg = "Invalid selection"
	}
	return ValidatorFunc(func(value any) error {
		for _, v := range toStrings(value) {
			if !slices.Contains(allowed, v) {
				return ValidationError{Message: msg}
			}
		}
		return nil
	})
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func toStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
