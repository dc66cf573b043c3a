// Package tui implements the terminal user interface for browsing,
// reading and creating documents.
package tui

import (
	"github.com/docshub/docshub-cli/internal/core/ports/driving"
)

// Ports holds the driving-side services the TUI depends on.
type Ports struct {
	// Document provides list, get and create operations.
	Document driving.DocumentService

	// Upload sends cover images to the backend.
	Upload driving.UploadService
}

// Validate checks that all required services are present.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.Upload == nil {
		return ErrMissingUploadService
	}
	return nil
}
