// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Close closes the active modal.
	Close key.Binding

	// NextField moves focus to the next control.
	NextField key.Binding

	// PrevField moves focus to the previous control.
	PrevField key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Open opens the selected document.
	Open key.Binding

	// New opens the editor for a new document.
	New key.Binding

	// Save submits the editor draft.
	Save key.Binding

	// Upload uploads the cover file named in the editor.
	Upload key.Binding

	// Reload reloads the document list.
	Reload key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "salir"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cerrar"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "siguiente campo"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "campo anterior"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "bajar"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "abrir"),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "nuevo documento"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "guardar"),
		),
		Upload: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "subir portada"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "recargar"),
		),
	}
}

// BrowseHelp returns keybindings shown while browsing.
func (k *KeyMap) BrowseHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Open, k.New, k.Quit}
}

// EditorHelp returns keybindings shown in the editor modal.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Upload, k.Save, k.Close}
}

// ViewerHelp returns keybindings shown in the viewer modal.
func (k *KeyMap) ViewerHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
