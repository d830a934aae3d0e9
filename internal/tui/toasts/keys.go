package toasts

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the toast stack.
type KeyMap struct {
	Dismiss    key.Binding
	DismissAll key.Binding
}

// DefaultKeyMap returns the default bindings: x dismisses the newest toast,
// X dismisses all of them.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss newest"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "dismiss all"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.DismissAll}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
