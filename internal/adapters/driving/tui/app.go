package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/components/modal"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/components/status"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/keymap"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/messages"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/styles"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/views/browse"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/views/editor"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/views/viewer"
	"github.com/docshub/docshub-cli/internal/logger"
)

// requestTimeout bounds a single detail request.
const requestTimeout = 30 * time.Second

// activeModal identifies which modal, if any, is open. At most one
// modal is open at a time.
type activeModal int

const (
	modalNone activeModal = iota
	modalViewer
	modalEditor
)

// App is the root bubbletea model. It owns the browse view and the two
// modals, and routes messages between them.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap

	browse *browse.Model
	editor *editor.Model
	viewer *viewer.Model
	modal  *modal.Modal
	status *status.Bar

	active activeModal
	ready  bool

	width  int
	height int
}

// Run starts the TUI event loop and blocks until the user quits.
func Run(ports *Ports) error {
	app, err := NewApp(ports)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// NewApp creates the root model.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		styles: s,
		keymap: km,
		browse: browse.New(ports.Document, s, km),
		editor: editor.New(ports.Document, ports.Upload, s, km),
		viewer: viewer.New(s, km),
		modal:  modal.New(s),
		status: status.NewBar(s, km),
	}, nil
}

// Init starts the initial document load.
func (a *App) Init() tea.Cmd {
	a.status.SetState(status.StateLoading)
	return tea.Batch(
		a.browse.Init(),
		tea.EnterAltScreen,
		tea.SetWindowTitle("Docs Hub"),
	)
}

// Update handles all application messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.browse.SetDimensions(msg.Width, msg.Height-1)
		a.editor.SetDimensions(msg.Width, msg.Height)
		a.viewer.SetDimensions(msg.Width, msg.Height)
		a.modal.SetDimensions(msg.Width, msg.Height)
		a.status.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.DocumentsLoaded:
		if msg.Err != nil {
			a.status.SetState(status.StateError)
			a.status.SetMessage(msg.Err.Error())
		} else {
			a.status.Clear()
			a.status.SetDocCount(len(msg.Documents))
		}
		var cmd tea.Cmd
		a.browse, cmd = a.browse.Update(msg)
		return a, cmd

	case messages.DocumentOpenRequested:
		a.status.SetState(status.StateLoading)
		return a, a.openCmd(msg.Summary.Slug)

	case messages.DocumentOpened:
		if msg.Err != nil {
			a.status.SetState(status.StateError)
			a.status.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.status.Clear()
		a.status.SetDocCount(len(a.browse.Documents()))
		a.viewer.SetDocument(msg.Document)
		a.modal.Open("Documento")
		a.active = modalViewer
		return a, nil

	case messages.NewDocumentRequested:
		a.editor.Reset()
		a.modal.Open("Nuevo documento")
		a.active = modalEditor
		return a, a.editor.Init()

	case messages.CoverUploaded:
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd

	case messages.DocumentSaved:
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		if msg.Err != nil {
			a.status.SetState(status.StateReady)
			return a, cmd
		}
		// Close the editor and refresh the list so the new card shows.
		a.modal.Close()
		a.active = modalNone
		a.status.SetState(status.StateLoading)
		return a, tea.Batch(cmd, a.browse.Reload())

	case messages.ErrorOccurred:
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
		return a, nil
	}

	return a.routeToActive(msg)
}

// handleKey routes key input. The open modal gets keys first; its
// close key never reaches the view underneath.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, a.keymap.Quit) {
		logger.Debug("app: quitting")
		return a, tea.Quit
	}

	switch a.active {
	case modalViewer:
		if keymap.Matches(keyStr, a.keymap.Close) {
			a.modal.Close()
			a.active = modalNone
			return a, nil
		}
		var cmd tea.Cmd
		a.viewer, cmd = a.viewer.Update(msg)
		return a, cmd

	case modalEditor:
		if keymap.Matches(keyStr, a.keymap.Close) {
			// Discard the draft; reopening starts fresh.
			a.modal.Close()
			a.active = modalNone
			return a, nil
		}
		if keymap.Matches(keyStr, a.keymap.Save) {
			a.status.SetState(status.StateSaving)
		}
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd

	case modalNone:
		if keymap.Matches(keyStr, a.keymap.New) {
			return a, func() tea.Msg { return messages.NewDocumentRequested{} }
		}
		var cmd tea.Cmd
		a.browse, cmd = a.browse.Update(msg)
		return a, cmd
	}

	return a, nil
}

// routeToActive forwards non-key messages to whichever view is active.
func (a *App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case modalViewer:
		a.viewer, cmd = a.viewer.Update(msg)
	case modalEditor:
		a.editor, cmd = a.editor.Update(msg)
	case modalNone:
		a.browse, cmd = a.browse.Update(msg)
	}
	return a, cmd
}

// openCmd fetches the full document for the viewer.
func (a *App) openCmd(slug string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		logger.Debug("app: opening document %q", slug)

		doc, err := a.ports.Document.Get(ctx, slug)
		return messages.DocumentOpened{Document: doc, Err: err}
	}
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Iniciando..."
	}

	if a.active != modalNone {
		var content string
		switch a.active {
		case modalViewer:
			content = a.viewer.View()
		case modalEditor:
			content = a.editor.View()
		case modalNone:
		}
		return a.modal.View(content)
	}

	return a.browse.View() + "\n" + a.status.View()
}
