package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendUnavailable indicates the docs backend could not be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrSaveRejected indicates the backend refused a document creation.
	// The editor surfaces this as the blocking save alert.
	ErrSaveRejected = errors.New("save rejected")

	// ErrUploadRejected indicates the backend refused a file upload.
	ErrUploadRejected = errors.New("upload rejected")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
