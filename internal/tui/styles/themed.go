package styles

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// ThemedStyles contains all the lipgloss styles built from a color palette.
// Styles are regenerated when the theme changes.
type ThemedStyles struct {
	Name ThemeName

	PrimaryColor lipgloss.Color
	InfoColor    lipgloss.Color
	SuccessColor lipgloss.Color
	ErrorColor   lipgloss.Color
	MutedColor   lipgloss.Color
	SurfaceColor lipgloss.Color
	TextColor    lipgloss.Color
	BorderColor  lipgloss.Color

	Primary lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Form styles
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	FormBox      lipgloss.Style
	Button       lipgloss.Style

	// Toast styles. ToastBox carries no border color; the render surface
	// applies the category color per toast.
	ToastBox   lipgloss.Style
	ToastTitle lipgloss.Style
	ToastBody  lipgloss.Style

	// Help bar
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor: p.Primary,
		InfoColor:    p.Info,
		SuccessColor: p.Success,
		ErrorColor:   p.Error,
		MutedColor:   p.Muted,
		SurfaceColor: p.Surface,
		TextColor:    p.Text,
		BorderColor:  p.Border,
	}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Label = lipgloss.NewStyle().
		Foreground(p.Muted).
		Width(10)

	s.FocusedLabel = s.Label.
		Foreground(p.Primary).
		Bold(true)

	s.FormBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	s.Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)

	s.ToastBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	s.ToastTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.ToastBody = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Help = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	return s
}

// activeTheme holds the currently active themed styles. It is swapped by the
// config watcher goroutine while the UI goroutine reads it.
var activeTheme atomic.Pointer[ThemedStyles]

func init() {
	SetActiveTheme(ThemeDefault)
}

// SetActiveTheme builds and activates the styles for the named theme.
// Unknown names fall back to the default palette.
func SetActiveTheme(name ThemeName) {
	s := NewThemedStyles(GetPalette(name))
	s.Name = name
	activeTheme.Store(s)
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme.Load()
}
