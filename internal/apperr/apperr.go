// Package apperr defines the error taxonomy the HTTP layer translates into
// status codes: validation (400), not-found (404), upstream fetch and
// persistence failures (500).
package apperr

import "fmt"

// ValidationError reports a request missing or malforming a required field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup against an unknown registration id.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// NotFound builds a NotFoundError from a format string.
func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// UpstreamFetchError reports a failed spreadsheet read, either the whole
// spreadsheet or a range request no tab could satisfy.
type UpstreamFetchError struct {
	Msg   string
	Cause error
}

func (e *UpstreamFetchError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *UpstreamFetchError) Unwrap() error { return e.Cause }

// UpstreamFetch wraps cause as an UpstreamFetchError.
func UpstreamFetch(cause error, format string, args ...any) *UpstreamFetchError {
	return &UpstreamFetchError{Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// PersistenceError reports a failed registry operation.
type PersistenceError struct {
	Msg   string
	Cause error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *PersistenceError) Unwrap() error { return e.Cause }

// Persistence wraps cause as a PersistenceError.
func Persistence(cause error, format string, args ...any) *PersistenceError {
	return &PersistenceError{Msg: fmt.Sprintf(format, args...), Cause: cause}
}
