package keymap

import "github.com/charmbracelet/bubbles/key"

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default toaster key bindings",
		Modes: map[Mode][]Binding{
			ModeNormal: defaultNormalBindings(),
			ModeForm:   defaultFormBindings(),
		},
	}
}

func bind(cmd Command, category, help string, keys ...string) Binding {
	return Binding{
		Binding:  key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		Command:  cmd,
		Category: category,
	}
}

func defaultNormalBindings() []Binding {
	return []Binding{
		bind(CmdFocusForm, "Form", "edit form", "i", "enter", "tab"),
		bind(CmdPlayScenarios, "Demo", "play scenarios", "p"),
		bind(CmdCycleTheme, "Demo", "next theme", "t"),
		bind(CmdToggleHelp, "General", "toggle help", "?"),
		bind(CmdQuit, "General", "quit", "q", "ctrl+c"),
	}
}

func defaultFormBindings() []Binding {
	return []Binding{
		bind(CmdNextField, "Form", "next field", "tab", "down"),
		bind(CmdPrevField, "Form", "previous field", "shift+tab", "up"),
		bind(CmdSubmit, "Form", "submit", "enter"),
		bind(CmdLeaveForm, "General", "leave form", "esc"),
		bind(CmdQuit, "General", "quit", "ctrl+c"),
	}
}
