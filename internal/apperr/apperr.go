// Package apperr defines the error taxonomy shared by the party and game
// services. Every error that crosses the coordinator boundary is an *Error
// with one of the kinds below.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers and transports.
type Kind string

const (
	// KindValidation is malformed or missing input.
	KindValidation Kind = "validation"

	// KindNotFound is a reference to a party, user or player that does not exist.
	KindNotFound Kind = "not_found"

	// KindConflict is an operation that would break a uniqueness invariant.
	KindConflict Kind = "conflict"

	// KindAuthorization is a caller lacking the required party role.
	KindAuthorization Kind = "authorization"

	// KindInvalidState is an operation that is illegal in the current lifecycle state.
	KindInvalidState Kind = "invalid_state"

	// KindExternalService is a collaborator failure. It is retryable and its
	// cause is never shown to end users.
	KindExternalService Kind = "external_service"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Kind     Kind              // Machine-readable error kind
	Message  string            // User-safe message
	Metadata map[string]string // Additional context for formatting
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil && e.Kind == KindExternalService {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
	}
	return false
}

// Retryable reports whether the caller may retry the operation unchanged.
func (e *Error) Retryable() bool {
	return e.Kind == KindExternalService
}

// UserMessage returns the text that may be shown to an end user.
func (e *Error) UserMessage() string {
	if e.Kind == KindExternalService {
		return "something went wrong, please try again"
	}
	return e.Message
}

// New creates a domain error with a kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithMetadata creates a domain error carrying metadata for formatting.
func WithMetadata(kind Kind, message string, metadata map[string]string) *Error {
	return &Error{Kind: kind, Message: message, Metadata: metadata}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Validation returns a KindValidation error.
func Validation(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// Conflict returns a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

// Unauthorized returns a KindAuthorization error.
func Unauthorized(format string, args ...any) *Error {
	return New(KindAuthorization, fmt.Sprintf(format, args...))
}

// InvalidState returns a KindInvalidState error describing the attempted
// action and whether the current round has ended.
func InvalidState(action string, roundEnded bool, message string) *Error {
	return WithMetadata(KindInvalidState, message, map[string]string{
		"action":     action,
		"roundEnded": fmt.Sprintf("%t", roundEnded),
	})
}

// External wraps a collaborator failure.
func External(message string, cause error) *Error {
	return Wrap(KindExternalService, message, cause)
}

// KindOf returns the kind of err, or KindExternalService when err is not a
// domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindExternalService
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// As extracts the domain error from err.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
