package services

import (
	"context"
	"fmt"

	"github.com/docshub/docshub-cli/internal/core/domain"
	"github.com/docshub/docshub-cli/internal/core/ports/driven"
	"github.com/docshub/docshub-cli/internal/core/ports/driving"
	"github.com/docshub/docshub-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService provides document operations backed by the remote API.
type DocumentService struct {
	backend driven.Backend
}

// NewDocumentService creates a new document service.
func NewDocumentService(backend driven.Backend) *DocumentService {
	return &DocumentService{backend: backend}
}

// List returns document summaries matching the filter, preserving
// backend order. The backend owns sort and filter semantics.
func (s *DocumentService) List(ctx context.Context, filter domain.Filter) ([]domain.DocumentSummary, error) {
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Debug("listing documents (q=%q category=%q)", filter.Query, filter.Category)
	docs, err := s.backend.ListDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Get retrieves a full document by slug.
func (s *DocumentService) Get(ctx context.Context, slug string) (*domain.Document, error) {
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}
	if slug == "" {
		return nil, fmt.Errorf("get document: %w: empty slug", domain.ErrInvalidInput)
	}

	doc, err := s.backend.GetDocument(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get document %q: %w", slug, err)
	}
	return doc, nil
}

// Create submits a draft for creation. No required-field validation is
// performed; the backend is the sole source of acceptance semantics.
func (s *DocumentService) Create(ctx context.Context, draft domain.Draft) (*domain.Document, error) {
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Debug("creating document (title=%q category=%q tags=%d)",
		draft.Title, draft.Category, len(draft.Tags()))
	doc, err := s.backend.CreateDocument(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return doc, nil
}
