package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Backspace  key.Binding
	DeleteWord key.Binding
	Restart    key.Binding
	Retest     key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		DeleteWord: key.NewBinding(
			key.WithKeys("ctrl+w", "alt+backspace"),
			key.WithHelp("ctrl+w", "delete word"),
		),
		Restart: key.NewBinding(
			key.WithKeys("tab", "ctrl+r"),
			key.WithHelp("tab", "restart"),
		),
		Retest: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "retest"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retest, k.Restart, k.DeleteWord, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Backspace}}
}
