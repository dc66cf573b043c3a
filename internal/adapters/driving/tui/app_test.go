package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/messages"
	"github.com/docshub/docshub-cli/internal/core/domain"
)

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

type mockUploadService struct {
	uploadFunc func(ctx context.Context, path string) (string, error)
}

func (m *mockUploadService) Upload(ctx context.Context, path string) (string, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, path)
	}
	return "", domain.ErrNotImplemented
}

func newTestApp(t *testing.T, docs *mockDocumentService) *App {
	t.Helper()
	if docs == nil {
		docs = &mockDocumentService{}
	}

	app, err := NewApp(&Ports{Document: docs, Upload: &mockUploadService{}})
	require.NoError(t, err)

	// Simulate the first window size message so the app is ready.
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(*App)
}

func sampleDocs() []domain.DocumentSummary {
	return []domain.DocumentSummary{
		{ID: "1", Slug: "instalar-nginx", Title: "Instalar Nginx", Category: domain.CategoryLinux},
		{ID: "2", Slug: "css-grid", Title: "CSS Grid", Category: domain.CategoryWeb},
	}
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(&Ports{Upload: &mockUploadService{}})
	assert.ErrorIs(t, err, ErrMissingDocumentService)

	_, err = NewApp(&Ports{Document: &mockDocumentService{}})
	assert.ErrorIs(t, err, ErrMissingUploadService)
}

func TestApp_NotReadyBeforeWindowSize(t *testing.T) {
	app, err := NewApp(&Ports{Document: &mockDocumentService{}, Upload: &mockUploadService{}})
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Iniciando...")
}

func TestApp_ShowsDocumentsAfterLoad(t *testing.T) {
	app := newTestApp(t, nil)

	model, _ := app.Update(messages.DocumentsLoaded{Documents: sampleDocs()})
	app = model.(*App)

	view := app.View()
	assert.Contains(t, view, "Instalar Nginx")
	assert.Contains(t, view, "CSS Grid")
	assert.Contains(t, view, "2 documentos")
}

func TestApp_LoadErrorShownInStatusBar(t *testing.T) {
	app := newTestApp(t, nil)

	model, _ := app.Update(messages.DocumentsLoaded{Err: domain.ErrBackendUnavailable})
	app = model.(*App)

	assert.Contains(t, app.View(), "Error")
}

func TestApp_OpenDocumentFlow(t *testing.T) {
	docs := &mockDocumentService{
		getFunc: func(_ context.Context, slug string) (*domain.Document, error) {
			require.Equal(t, "instalar-nginx", slug)
			return &domain.Document{
				DocumentSummary: domain.DocumentSummary{
					ID: "1", Slug: slug, Title: "Instalar Nginx", Category: domain.CategoryLinux,
				},
				Content: "apt install nginx",
			}, nil
		},
	}

	app := newTestApp(t, docs)
	model, _ := app.Update(messages.DocumentsLoaded{Documents: sampleDocs()})
	app = model.(*App)

	model, cmd := app.Update(messages.DocumentOpenRequested{Summary: sampleDocs()[0]})
	app = model.(*App)
	require.NotNil(t, cmd)

	model, _ = app.Update(cmd())
	app = model.(*App)

	require.Equal(t, modalViewer, app.active)
	view := app.View()
	assert.Contains(t, view, "Documento")
	assert.Contains(t, view, "apt install nginx")
	// The list is hidden while the modal is open.
	assert.NotContains(t, view, "CSS Grid")
}

func TestApp_ViewerCloseReturnsToBrowse(t *testing.T) {
	app := newTestApp(t, &mockDocumentService{
		getFunc: func(_ context.Context, slug string) (*domain.Document, error) {
			return &domain.Document{
				DocumentSummary: domain.DocumentSummary{Slug: slug, Title: "Doc"},
			}, nil
		},
	})

	model, cmd := app.Update(messages.DocumentOpenRequested{Summary: sampleDocs()[0]})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)
	require.Equal(t, modalViewer, app.active)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)

	assert.Equal(t, modalNone, app.active)
}

func TestApp_OpenErrorKeepsBrowse(t *testing.T) {
	app := newTestApp(t, nil) // getFunc defaults to ErrNotFound

	model, cmd := app.Update(messages.DocumentOpenRequested{Summary: sampleDocs()[0]})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)

	assert.Equal(t, modalNone, app.active)
	assert.Contains(t, app.View(), "Error")
}

func TestApp_NewDocumentOpensEditor(t *testing.T) {
	app := newTestApp(t, nil)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	app = model.(*App)
	require.NotNil(t, cmd)

	model, _ = app.Update(cmd())
	app = model.(*App)

	require.Equal(t, modalEditor, app.active)
	assert.Contains(t, app.View(), "Nuevo documento")
}

func TestApp_EditorEscDiscardsDraft(t *testing.T) {
	app := newTestApp(t, nil)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)
	require.Equal(t, modalEditor, app.active)

	// Type into the title, then close.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	app = model.(*App)
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, modalNone, app.active)

	// Reopening starts with an empty draft.
	model, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)
	assert.Empty(t, app.editor.Draft().Title)
}

func TestApp_SaveSuccessClosesEditorAndReloads(t *testing.T) {
	listCalls := 0
	docs := &mockDocumentService{
		listFunc: func(_ context.Context, _ domain.Filter) ([]domain.DocumentSummary, error) {
			listCalls++
			return sampleDocs(), nil
		},
		createFunc: func(_ context.Context, draft domain.Draft) (*domain.Document, error) {
			return &domain.Document{
				DocumentSummary: domain.DocumentSummary{ID: "3", Slug: "nuevo", Title: draft.Title},
			}, nil
		},
	}

	app := newTestApp(t, docs)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)

	model, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	app = model.(*App)
	require.NotNil(t, cmd)

	saved := collectMsg[messages.DocumentSaved](t, cmd)
	require.NoError(t, saved.Err)

	model, cmd = app.Update(saved)
	app = model.(*App)

	assert.Equal(t, modalNone, app.active)
	require.NotNil(t, cmd)
	collectMsg[messages.DocumentsLoaded](t, cmd)
	assert.Equal(t, 1, listCalls)
}

func TestApp_SaveErrorKeepsEditorOpen(t *testing.T) {
	docs := &mockDocumentService{
		createFunc: func(_ context.Context, _ domain.Draft) (*domain.Document, error) {
			return nil, domain.ErrSaveRejected
		},
	}

	app := newTestApp(t, docs)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	app = model.(*App)
	model, _ = app.Update(cmd())
	app = model.(*App)

	model, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	app = model.(*App)
	saved := collectMsg[messages.DocumentSaved](t, cmd)
	require.Error(t, saved.Err)

	model, _ = app.Update(saved)
	app = model.(*App)

	assert.Equal(t, modalEditor, app.active)
	assert.Contains(t, app.View(), "Error al guardar")
}

func TestApp_EndToEndBrowseAndOpen(t *testing.T) {
	var gotSlug string
	docs := &mockDocumentService{
		listFunc: func(_ context.Context, _ domain.Filter) ([]domain.DocumentSummary, error) {
			return []domain.DocumentSummary{
				{ID: "1", Slug: "a", Title: "Documento A", Category: domain.CategoryLinux},
				{ID: "2", Slug: "b", Title: "Documento B", Category: domain.CategoryWeb},
			}, nil
		},
		getFunc: func(_ context.Context, slug string) (*domain.Document, error) {
			gotSlug = slug
			return &domain.Document{
				DocumentSummary: domain.DocumentSummary{
					ID: "1", Slug: slug, Title: "Documento A", Category: domain.CategoryLinux,
				},
				Content: "contenido completo de A",
			}, nil
		},
	}

	app := newTestApp(t, docs)

	// The list starts empty; a reload fills it in backend order.
	model, _ := app.Update(messages.DocumentsLoaded{})
	app = model.(*App)
	assert.Contains(t, app.View(), "No hay documentos")

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	app = model.(*App)
	loaded := collectMsg[messages.DocumentsLoaded](t, cmd)
	model, _ = app.Update(loaded)
	app = model.(*App)

	view := app.View()
	idxA := strings.Index(view, "Documento A")
	idxB := strings.Index(view, "Documento B")
	require.Greater(t, idxA, -1)
	require.Greater(t, idxB, -1)
	assert.Less(t, idxA, idxB)

	// Move to the list and open the first card.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	model, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	opened := collectMsg[messages.DocumentOpenRequested](t, cmd)

	model, cmd = app.Update(opened)
	app = model.(*App)
	model, _ = app.Update(collectMsg[messages.DocumentOpened](t, cmd))
	app = model.(*App)

	assert.Equal(t, "a", gotSlug)
	require.Equal(t, modalViewer, app.active)
	assert.Contains(t, app.View(), "contenido completo de A")
}

func TestApp_QuitFromAnywhere(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// collectMsg runs a (possibly batched) command and returns the first
// message of type T it produces.
func collectMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if typed, ok := msg.(T); ok {
			return typed
		}
	}
	t.Fatalf("no message of the expected type produced")
	var zero T
	return zero
}
