package driven

import (
	"context"
	"io"

	"github.com/docshub/docshub-cli/internal/core/domain"
)

// Backend is the remote Docs Hub API. It is the single external
// collaborator of this client; persistence and authentication live
// entirely behind it.
type Backend interface {
	// ListDocuments returns document summaries matching the filter,
	// in backend order. Empty filter fields are omitted from the query.
	ListDocuments(ctx context.Context, filter domain.Filter) ([]domain.DocumentSummary, error)

	// GetDocument retrieves a full document by slug.
	GetDocument(ctx context.Context, slug string) (*domain.Document, error)

	// CreateDocument submits a draft for creation. The backend assigns
	// ID and slug. Returns domain.ErrSaveRejected (wrapped) on a
	// non-success status.
	CreateDocument(ctx context.Context, draft domain.Draft) (*domain.Document, error)

	// UploadFile uploads a file as a multipart form and returns the
	// backend's reference for it (a data URL or hosted URL).
	UploadFile(ctx context.Context, filename string, r io.Reader) (string, error)
}
