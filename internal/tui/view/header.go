package view

import (
	"strconv"

	"github.com/Iron-Ham/toaster/internal/tui/keymap"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// HeaderState holds what the header shows.
type HeaderState struct {
	Mode    keymap.Mode
	Theme   string
	Toasts  int
	Playing int
}

// ModeBadge returns the label and style for mode. Normal mode has no badge.
func ModeBadge(mode keymap.Mode, th *styles.ThemedStyles) (string, lipgloss.Style, bool) {
	switch mode {
	case keymap.ModeForm:
		return "FORM", lipgloss.NewStyle().
			Bold(true).
			Foreground(th.SurfaceColor).
			Background(th.PrimaryColor).
			Padding(0, 1), true
	default:
		return "", lipgloss.Style{}, false
	}
}

// Header renders the title line.
func Header(state HeaderState) string {
	th := styles.GetActiveTheme()

	parts := []string{th.Title.Render("toaster")}
	if label, style, ok := ModeBadge(state.Mode, th); ok {
		parts = append(parts, " ", style.Render(label))
	}

	status := th.Muted.Render("  theme " + state.Theme)
	if state.Toasts > 0 {
		status += th.Muted.Render(" · " + plural(state.Toasts, "toast"))
	}
	if state.Playing > 0 {
		status += th.Muted.Render(" · " + plural(state.Playing, "scenario") + " playing")
	}
	parts = append(parts, status)

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
