package cli

import (
	"context"
	"sort"

	"github.com/docshub/docshub-cli/internal/core/domain"
)

// mockDocumentService implements driving.DocumentService for CLI tests.
type mockDocumentService struct {
	listFunc   func(ctx context.Context, filter domain.Filter) ([]domain.DocumentSummary, error)
	getFunc    func(ctx context.Context, slug string) (*domain.Document, error)
	createFunc func(ctx context.Context, draft domain.Draft) (*domain.Document, error)
}

func (m *mockDocumentService) List(ctx context.Context, filter domain.Filter) ([]domain.DocumentSummary, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockDocumentService) Get(ctx context.Context, slug string) (*domain.Document, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentService) Create(ctx context.Context, draft domain.Draft) (*domain.Document, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, draft)
	}
	return nil, domain.ErrNotImplemented
}

// mockUploadService implements driving.UploadService for CLI tests.
type mockUploadService struct {
	uploadFunc func(ctx context.Context, path string) (string, error)
}

func (m *mockUploadService) Upload(ctx context.Context, path string) (string, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, path)
	}
	return "", domain.ErrNotImplemented
}

// mockConfigStore implements driven.ConfigStore for CLI tests.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// setupTestServices wires mock services returning fixture documents and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldDocuments := documentService
	oldUploads := uploadService

	documentService = &mockDocumentService{
		listFunc: func(_ context.Context, filter domain.Filter) ([]domain.DocumentSummary, error) {
			docs := []domain.DocumentSummary{
				{ID: "1", Slug: "instalar-nginx", Title: "Instalar Nginx",
					Category: domain.CategoryLinux, Tags: []string{"nginx", "servidor"}},
				{ID: "2", Slug: "css-grid", Title: "CSS Grid", Category: domain.CategoryWeb},
			}
			if filter.Category != "" {
				filtered := docs[:0:0]
				for _, d := range docs {
					if string(d.Category) == filter.Category {
						filtered = append(filtered, d)
					}
				}
				return filtered, nil
			}
			return docs, nil
		},
		getFunc: func(_ context.Context, slug string) (*domain.Document, error) {
			if slug != "instalar-nginx" {
				return nil, domain.ErrNotFound
			}
			return &domain.Document{
				DocumentSummary: domain.DocumentSummary{
					ID: "1", Slug: slug, Title: "Instalar Nginx",
					Category: domain.CategoryLinux, Tags: []string{"nginx"},
				},
				Content: "apt install nginx",
			}, nil
		},
		createFunc: func(_ context.Context, draft domain.Draft) (*domain.Document, error) {
			return &domain.Document{
				DocumentSummary: domain.DocumentSummary{
					ID: "3", Slug: "nuevo-doc", Title: draft.Title,
					Category: draft.Category, Tags: draft.Tags(),
					CoverImage: draft.CoverImage,
				},
				Content: draft.Content,
			}, nil
		},
	}
	uploadService = &mockUploadService{
		uploadFunc: func(_ context.Context, _ string) (string, error) {
			return "data:image/png;base64,abc", nil
		},
	}

	return func() {
		documentService = oldDocuments
		uploadService = oldUploads
	}
}
