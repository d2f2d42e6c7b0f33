// Package shared contains common domain errors used across the grading,
// transcript and application layers. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "grading", "transcript", "config"
	Op      string // Operation that failed, e.g., "Validate", "Decode"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Grading scale errors
var (
	ErrScaleNoRungs        = NewDomainError("grading", "Validate", ErrEmptyValue, "scale has no marks rungs")
	ErrScaleNoLetters      = NewDomainError("grading", "Validate", ErrEmptyValue, "scale has no letter grades")
	ErrScaleRungOrder      = NewDomainError("grading", "Validate", ErrInvalidInput, "marks rungs must have strictly descending thresholds")
	ErrScalePointRange     = NewDomainError("grading", "Validate", ErrValueOutOfRange, "grade point outside [0, max point]")
	ErrScaleDuplicateLabel = NewDomainError("grading", "Validate", ErrInvalidInput, "duplicate letter in scale")
	ErrScaleBandOrder      = NewDomainError("grading", "Validate", ErrInvalidInput, "performance bands must be strictly descending")
	ErrUnknownInputMode    = NewDomainError("grading", "ParseMode", ErrInvalidInput, "unknown input mode")
)

// Transcript input errors
var (
	ErrTranscriptMalformed = NewDomainError("transcript", "Decode", ErrInvalidFormat, "transcript document is not valid JSON")
	ErrTranscriptEmpty     = NewDomainError("transcript", "Validate", ErrEmptyValue, "transcript has no semesters")
	ErrTooManySemesters    = NewDomainError("transcript", "Validate", ErrValueOutOfRange, "too many semesters")
	ErrTooManySubjects     = NewDomainError("transcript", "Validate", ErrValueOutOfRange, "too many subjects in a semester")
)

// IsInvalidFormat checks if the error was caused by an undecodable document.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrValueOutOfRange)
}
