package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrNoActiveUser   = errors.New("no active user")
	ErrValidationDrop = errors.New("malformed record dropped")

	// ErrStoreUnavailable marks a failed read or write against the log store.
	ErrStoreUnavailable = errors.New("log store unavailable")

	// ErrServiceUnavailable marks a failed call to the comment generation service.
	ErrServiceUnavailable = errors.New("comment service unavailable")

	// ErrStaleFetch is returned when a fetch finished after a newer one had started.
	ErrStaleFetch = errors.New("stale fetch discarded")
)
