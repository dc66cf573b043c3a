package driving

import (
	"context"

	"github.com/docshub/docshub-cli/internal/core/domain"
)

// DocumentService provides the document operations of the client.
type DocumentService interface {
	// List returns document summaries matching the filter, preserving
	// backend order.
	List(ctx context.Context, filter domain.Filter) ([]domain.DocumentSummary, error)

	// Get retrieves a full document by slug.
	Get(ctx context.Context, slug string) (*domain.Document, error)

	// Create submits a draft and returns the created document.
	Create(ctx context.Context, draft domain.Draft) (*domain.Document, error)
}

// UploadService uploads cover images to the backend.
type UploadService interface {
	// Upload sends the file at path to the backend and returns the
	// reference the backend assigned (a data URL or hosted URL).
	Upload(ctx context.Context, path string) (string, error)
}
