// Package editor implements the new-document editor shown in a modal.
package editor

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/keymap"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/messages"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/styles"
	"github.com/docshub/docshub-cli/internal/core/domain"
	"github.com/docshub/docshub-cli/internal/core/ports/driving"
	"github.com/docshub/docshub-cli/internal/logger"
)

// requestTimeout bounds a single create or upload request.
const requestTimeout = 30 * time.Second

// saveErrorAlert is the alert shown when a save fails, matching the
// product's Spanish copy.
const saveErrorAlert = "Error al guardar"

// Field identifies the focused editor field.
type Field int

const (
	FieldTitle Field = iota
	FieldCategory
	FieldTags
	FieldCover
	FieldContent

	fieldCount
)

// Model is the new-document editor.
type Model struct {
	documents driving.DocumentService
	uploads   driving.UploadService

	styles *styles.Styles
	keymap *keymap.KeyMap

	title     textinput.Model
	tags      textinput.Model
	coverPath textinput.Model
	content   textarea.Model

	categories []domain.Category
	catIdx     int

	// coverRef is set once an upload succeeds. It survives field edits
	// and is sent with the draft.
	coverRef string

	focus     Field
	saving    bool
	uploading bool
	alert     string

	width  int
	height int
}

// New creates the editor.
func New(documents driving.DocumentService, uploads driving.UploadService, s *styles.Styles, km *keymap.KeyMap) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	title := textinput.New()
	title.Placeholder = "Título"
	title.CharLimit = 200

	tags := textinput.New()
	tags.Placeholder = "Etiquetas (separadas por comas)"

	coverPath := textinput.New()
	coverPath.Placeholder = "Ruta de la imagen de portada"

	content := textarea.New()
	content.Placeholder = "Contenido..."
	content.ShowLineNumbers = false

	m := &Model{
		documents:  documents,
		uploads:    uploads,
		styles:     s,
		keymap:     km,
		title:      title,
		tags:       tags,
		coverPath:  coverPath,
		content:    content,
		categories: domain.Categories(),
		width:      80,
		height:     24,
	}
	m.setFocus(FieldTitle)
	return m
}

// Init initialises the editor.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles editor messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case messages.CoverUploaded:
		m.uploading = false
		if msg.Err != nil {
			m.alert = "Error al subir la imagen"
			return m, nil
		}
		m.alert = ""
		m.coverRef = msg.Ref
		return m, nil

	case messages.DocumentSaved:
		m.saving = false
		if msg.Err != nil {
			// The draft stays intact so nothing typed is lost.
			m.alert = saveErrorAlert
			return m, nil
		}
		m.alert = ""
		return m, nil
	}

	return m.updateFocused(msg)
}

// handleKey routes editor key input.
func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, m.keymap.NextField):
		m.setFocus(Field((int(m.focus) + 1) % int(fieldCount)))
		return m, nil

	case keymap.Matches(keyStr, m.keymap.PrevField):
		m.setFocus(Field((int(m.focus) - 1 + int(fieldCount)) % int(fieldCount)))
		return m, nil

	case keymap.Matches(keyStr, m.keymap.Save):
		return m, m.saveCmd()

	case keymap.Matches(keyStr, m.keymap.Upload):
		return m, m.uploadCmd()
	}

	if m.focus == FieldCategory {
		switch keyStr {
		case "left", "up", "k":
			m.catIdx--
			if m.catIdx < 0 {
				m.catIdx = len(m.categories) - 1
			}
		case "right", "down", "j", " ":
			m.catIdx++
			if m.catIdx >= len(m.categories) {
				m.catIdx = 0
			}
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to the focused input.
func (m *Model) updateFocused(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case FieldTags:
		m.tags, cmd = m.tags.Update(msg)
	case FieldCover:
		m.coverPath, cmd = m.coverPath.Update(msg)
	case FieldContent:
		m.content, cmd = m.content.Update(msg)
	case FieldCategory:
	}
	return m, cmd
}

// setFocus focuses a single field and blurs the rest.
func (m *Model) setFocus(f Field) {
	m.focus = f
	m.title.Blur()
	m.tags.Blur()
	m.coverPath.Blur()
	m.content.Blur()

	switch f {
	case FieldTitle:
		m.title.Focus()
	case FieldTags:
		m.tags.Focus()
	case FieldCover:
		m.coverPath.Focus()
	case FieldContent:
		m.content.Focus()
	case FieldCategory:
	}
}

// Draft builds the draft from the current field values.
func (m *Model) Draft() domain.Draft {
	return domain.Draft{
		Title:      m.title.Value(),
		Category:   m.categories[m.catIdx],
		TagsInput:  m.tags.Value(),
		Content:    m.content.Value(),
		CoverImage: m.coverRef,
	}
}

// saveCmd submits the draft. Repeated saves while one is in flight are
// ignored.
func (m *Model) saveCmd() tea.Cmd {
	if m.saving {
		return nil
	}
	m.saving = true
	m.alert = ""
	draft := m.Draft()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		logger.Debug("editor: saving draft (title=%q)", draft.Title)

		doc, err := m.documents.Create(ctx, draft)
		return messages.DocumentSaved{Document: doc, Err: err}
	}
}

// uploadCmd uploads the file named in the cover path field.
func (m *Model) uploadCmd() tea.Cmd {
	path := strings.TrimSpace(m.coverPath.Value())
	if path == "" || m.uploading {
		return nil
	}
	m.uploading = true
	m.alert = ""

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		logger.Debug("editor: uploading cover %q", path)

		ref, err := m.uploads.Upload(ctx, path)
		return messages.CoverUploaded{Ref: ref, Err: err}
	}
}

// View renders the editor form.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderField(FieldTitle, "Título", m.title.View()))
	b.WriteString("\n")
	b.WriteString(m.renderField(FieldCategory, "Categoría", m.renderCategory()))
	b.WriteString("\n")
	b.WriteString(m.renderField(FieldTags, "Etiquetas", m.tags.View()))
	b.WriteString("\n")
	b.WriteString(m.renderField(FieldCover, "Portada", m.renderCover()))
	b.WriteString("\n")
	b.WriteString(m.renderField(FieldContent, "Contenido", m.content.View()))
	b.WriteString("\n\n")

	switch {
	case m.alert != "":
		b.WriteString(m.styles.Error.Render(m.alert))
	case m.saving:
		b.WriteString(m.styles.Muted.Render("Guardando..."))
	case m.uploading:
		b.WriteString(m.styles.Muted.Render("Subiendo imagen..."))
	default:
		b.WriteString(m.styles.Muted.Render("ctrl+s Guardar documento"))
	}

	return b.String()
}

// renderField renders a labelled field, highlighting the focused one.
func (m *Model) renderField(f Field, label, body string) string {
	labelStyle := m.styles.Muted
	if m.focus == f {
		labelStyle = m.styles.Subtitle
	}
	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), body)
}

// renderCategory renders the category selector.
func (m *Model) renderCategory() string {
	return m.styles.RenderBadge(m.categories[m.catIdx])
}

// renderCover renders the cover path input plus upload state.
func (m *Model) renderCover() string {
	line := m.coverPath.View()
	if m.coverRef != "" {
		line += "  " + m.styles.Success.Render("✓ imagen subida")
	}
	return line
}

// Reset clears the form back to an empty draft.
func (m *Model) Reset() {
	m.title.SetValue("")
	m.tags.SetValue("")
	m.coverPath.SetValue("")
	m.content.SetValue("")
	m.catIdx = 0
	m.coverRef = ""
	m.alert = ""
	m.saving = false
	m.uploading = false
	m.setFocus(FieldTitle)
}

// SetDimensions sets the editor dimensions.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height

	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	m.title.Width = inner
	m.tags.Width = inner
	m.coverPath.Width = inner
	m.content.SetWidth(inner)

	lines := height - 16
	if lines < 3 {
		lines = 3
	}
	m.content.SetHeight(lines)
}

// Saving reports whether a save is in flight.
func (m *Model) Saving() bool {
	return m.saving
}

// Alert returns the current alert text, empty when none.
func (m *Model) Alert() string {
	return m.alert
}

// Focused returns the focused field.
func (m *Model) Focused() Field {
	return m.focus
}

// CoverRef returns the uploaded cover reference, empty when none.
func (m *Model) CoverRef() string {
	return m.coverRef
}
