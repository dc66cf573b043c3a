// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/docshub/docshub-cli/internal/core/domain"
)

// DocumentsLoaded carries the result of a list reload.
// The document list is replaced wholesale; whichever response arrives
// last wins when loads overlap.
type DocumentsLoaded struct {
	Documents []domain.DocumentSummary
	Err       error
}

// DocumentOpenRequested is sent when a card is selected for viewing.
type DocumentOpenRequested struct {
	Summary domain.DocumentSummary
}

// DocumentOpened carries the detail fetch result. On success the
// viewer modal opens with the full document.
type DocumentOpened struct {
	Document *domain.Document
	Err      error
}

// ViewerClosed signals the viewer modal should close.
type ViewerClosed struct{}

// NewDocumentRequested signals the editor modal should open.
type NewDocumentRequested struct{}

// EditorClosed signals the editor modal should close without saving.
type EditorClosed struct{}

// CoverUploaded carries the result of a cover image upload.
type CoverUploaded struct {
	Ref string
	Err error
}

// DocumentSaved carries the result of a document creation. A nil Err
// closes the editor and triggers a full list reload; a non-nil Err
// raises the save alert and leaves the draft intact.
type DocumentSaved struct {
	Document *domain.Document
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
