// Package keymap defines keybindings for the widget.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the widget.
type KeyMap struct {
	// Quit exits the widget.
	Quit key.Binding

	// Up moves up in the suggestion panel.
	Up key.Binding

	// Down moves down in the suggestion panel.
	Down key.Binding

	// Select resolves the focused suggestion.
	Select key.Binding

	// Dismiss closes the suggestion panel.
	Dismiss key.Binding

	// Clear resets the query and suggestions.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
	}
}

// ShortHelp returns the hints shown while typing.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Quit}
}

// PanelHelp returns the hints shown while the panel is open.
func (k *KeyMap) PanelHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Dismiss, k.Quit}
}
