// Package apperr defines the error kinds surfaced to the catalog operator.
//
// Services return an [*Error] whenever a failure should be shown to the operator
// as-is: a rejected submission (KindValidation) or a store write that failed after
// work was already done (KindPersistence). Everything else is wrapped with %w as
// usual and treated as internal.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an operator-facing error.
type Kind string

const (
	// KindValidation marks input rejected before any store was touched.
	KindValidation Kind = "validation"
	// KindPersistence marks a store write that failed.
	KindPersistence Kind = "persistence"
	// KindInternal marks anything unexpected.
	KindInternal Kind = "internal"
)

// Error is the canonical operator-facing error.
type Error struct {
	Kind    Kind
	Message string
	// Fields names the form fields that caused a validation error.
	Fields []string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

// Validation creates a KindValidation error naming the offending fields.
func Validation(msg string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// Persistence creates a KindPersistence error wrapping the store failure.
func Persistence(msg string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Cause: cause}
}

// KindOf returns the kind of err, or KindInternal if err is not an [*Error].
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

// Describe renders err for terminal output, listing fields when present.
func Describe(err error) string {
	var e *Error
	if !errors.As(err, &e) || len(e.Fields) == 0 {
		return err.Error()
	}
	return fmt.Sprintf("%s [%s]", e.Error(), strings.Join(e.Fields, ", "))
}
