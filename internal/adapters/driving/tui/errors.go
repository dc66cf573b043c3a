package tui

import "errors"

var (
	// ErrMissingDocumentService indicates the document service was not provided.
	ErrMissingDocumentService = errors.New("document service is required")

	// ErrMissingUploadService indicates the upload service was not provided.
	ErrMissingUploadService = errors.New("upload service is required")
)
