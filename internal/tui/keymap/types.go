// Package keymap provides mode-aware key binding definitions and lookup for
// the TUI. Bindings are declared per mode so the root model's Update only
// dispatches commands.
package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
type Mode string

const (
	ModeNormal Mode = "normal" // Toast stack has the keyboard
	ModeForm   Mode = "form"   // Keys are typed into the sign-up form
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	CmdFocusForm     Command = "focus_form"
	CmdPlayScenarios Command = "play_scenarios"
	CmdCycleTheme    Command = "cycle_theme"
	CmdToggleHelp    Command = "toggle_help"
	CmdQuit          Command = "quit"
)

// Form mode commands
const (
	CmdNextField Command = "next_field"
	CmdPrevField Command = "prev_field"
	CmdSubmit    Command = "submit"
	CmdLeaveForm Command = "leave_form"
)

// Binding is a bubbles key binding tagged with the command it triggers.
type Binding struct {
	key.Binding

	Command Command

	// Category groups related bindings together in help display.
	Category string
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name        string
	Description string
	Modes       map[Mode][]Binding
}

// Lookup returns the command bound to msg in mode. Disabled bindings never
// match.
func (km *Keymap) Lookup(msg tea.KeyMsg, mode Mode) (Command, bool) {
	for _, b := range km.Modes[mode] {
		if key.Matches(msg, b.Binding) {
			return b.Command, true
		}
	}
	return "", false
}

// Bindings returns all bindings for a mode.
func (km *Keymap) Bindings(mode Mode) []Binding {
	return km.Modes[mode]
}

// BindingsForCommand returns all bindings that trigger cmd in mode.
func (km *Keymap) BindingsForCommand(cmd Command, mode Mode) []Binding {
	var result []Binding
	for _, b := range km.Modes[mode] {
		if b.Command == cmd {
			result = append(result, b)
		}
	}
	return result
}

// Categories returns the unique categories of a mode in declaration order.
func (km *Keymap) Categories(mode Mode) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, b := range km.Modes[mode] {
		if b.Category != "" && !seen[b.Category] {
			seen[b.Category] = true
			categories = append(categories, b.Category)
		}
	}
	return categories
}

// Help returns a help.KeyMap for mode. extra bindings, such as those owned by
// child components, are appended to the short help and form their own
// column in the full help.
func (km *Keymap) Help(mode Mode, extra ...key.Binding) help.KeyMap {
	return modeHelp{km: km, mode: mode, extra: extra}
}

type modeHelp struct {
	km    *Keymap
	mode  Mode
	extra []key.Binding
}

func (h modeHelp) ShortHelp() []key.Binding {
	out := append([]key.Binding(nil), h.extra...)
	for _, b := range h.km.Modes[h.mode] {
		out = append(out, b.Binding)
	}
	return out
}

func (h modeHelp) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	if len(h.extra) > 0 {
		cols = append(cols, h.extra)
	}
	for _, cat := range h.km.Categories(h.mode) {
		var col []key.Binding
		for _, b := range h.km.Modes[h.mode] {
			if b.Category == cat {
				col = append(col, b.Binding)
			}
		}
		cols = append(cols, col)
	}
	return cols
}
