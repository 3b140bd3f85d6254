package domain

import (
	"errors"
	"fmt"
)

// Kind discriminates domain errors so callers can react to the category
// without parsing messages.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindInvalidState     Kind = "INVALID_STATE"
	KindCapacityExceeded Kind = "CAPACITY_EXCEEDED"
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindConflict         Kind = "CONFLICT"
)

// Error is the single error type returned by core and service operations.
// Every failing operation leaves all entities unchanged; the error only
// reports why.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a domain error of the given kind.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a NOT_FOUND error for a missing entity reference.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// KindOf extracts the kind from an error chain. Returns empty string for
// non-domain errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err carries the given domain kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// GuardResult represents the outcome of a guard evaluation. Guards are pure
// functions; the service layer turns a disallowed result into an error via
// Err.
type GuardResult struct {
	Allowed bool
	Kind    Kind   // populated when not allowed
	Reason  string // human-readable reason (populated when not allowed)
}

// Allow returns an allowed guard result.
func Allow() GuardResult {
	return GuardResult{Allowed: true}
}

// Deny returns a disallowed guard result with the violated rule's kind.
func Deny(kind Kind, format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Err returns the guard result as a domain error if not allowed, nil otherwise.
func (r GuardResult) Err() error {
	if r.Allowed {
		return nil
	}
	return &Error{Kind: r.Kind, Message: r.Reason}
}
