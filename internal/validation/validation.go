// Package validation carries field level input errors. Several of them are
// combined with multierr so a caller learns about every offending field at
// once.
package validation

import (
	"errors"

	"go.uber.org/multierr"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func NewFieldError(field, message string) error {
	return &FieldError{
		Field:   field,
		Message: message,
	}
}

// Errors collects field errors in the order they were found.
// The zero value is ready to use.
type Errors struct {
	err error
}

func (e *Errors) Add(field, message string) {
	e.err = multierr.Append(e.err, NewFieldError(field, message))
}

// Check adds the field error only when ok is false.
func (e *Errors) Check(ok bool, field, message string) {
	if !ok {
		e.Add(field, message)
	}
}

// Err returns nil when nothing was added.
func (e *Errors) Err() error {
	return e.err
}

// FieldErrors extracts all field errors from err, including the ones
// combined by multierr and wrapped with %w.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}

	var errs []error
	var combined interface{ Unwrap() []error }
	if errors.As(err, &combined) {
		errs = combined.Unwrap()
	} else {
		errs = []error{err}
	}

	var fieldErrs []*FieldError
	for _, e := range errs {
		var fieldErr *FieldError
		if errors.As(e, &fieldErr) {
			fieldErrs = append(fieldErrs, fieldErr)
		}
	}
	return fieldErrs
}

func IsValidation(err error) bool {
	return len(FieldErrors(err)) > 0
}
