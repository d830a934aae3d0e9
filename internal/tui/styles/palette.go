package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault        ThemeName = "default"         // Violet accents on a dark surface
	ThemeDracula        ThemeName = "dracula"         // Dracula theme colors
	ThemeNord           ThemeName = "nord"            // Nord theme - cool blue-gray
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light variant
	ThemeGruvbox        ThemeName = "gruvbox"         // Gruvbox retro groove
	ThemeTokyoNight     ThemeName = "tokyo-night"     // Tokyo Night modern theme
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeSolarizedLight),
		string(ThemeGruvbox),
		string(ThemeTokyoNight),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	return IsBuiltinTheme(name) || IsCustomTheme(name)
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (headings, focused inputs)
	Primary lipgloss.Color
	// Info, Success and Error color toasts of the matching category.
	Info    lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	// Muted color (help text, toasts entering or leaving)
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color
}

// DefaultPalette returns the default dark palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Info:    lipgloss.Color("#60A5FA"), // Blue
		Success: lipgloss.Color("#10B981"), // Green
		Error:   lipgloss.Color("#F87171"), // Red (red-400)
		Muted:   lipgloss.Color("#9CA3AF"), // Gray
		Surface: lipgloss.Color("#1F2937"),
		Text:    lipgloss.Color("#F9FAFB"),
		Border:  lipgloss.Color("#6B7280"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#BD93F9"), // Dracula purple
		Info:    lipgloss.Color("#8BE9FD"), // Dracula cyan
		Success: lipgloss.Color("#50FA7B"), // Dracula green
		Error:   lipgloss.Color("#FF5555"), // Dracula red
		Muted:   lipgloss.Color("#6272A4"), // Dracula comment
		Surface: lipgloss.Color("#282A36"),
		Text:    lipgloss.Color("#F8F8F2"),
		Border:  lipgloss.Color("#44475A"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#88C0D0"), // Frost cyan
		Info:    lipgloss.Color("#81A1C1"), // Frost blue
		Success: lipgloss.Color("#A3BE8C"), // Aurora green
		Error:   lipgloss.Color("#BF616A"), // Aurora red
		Muted:   lipgloss.Color("#4C566A"),
		Surface: lipgloss.Color("#2E3440"),
		Text:    lipgloss.Color("#ECEFF4"),
		Border:  lipgloss.Color("#3B4252"),
	}
}

// SolarizedLightPalette returns the light Solarized palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#6C71C4"), // Solarized violet
		Info:    lipgloss.Color("#268BD2"), // Solarized blue
		Success: lipgloss.Color("#859900"), // Solarized green
		Error:   lipgloss.Color("#DC322F"), // Solarized red
		Muted:   lipgloss.Color("#93A1A1"),
		Surface: lipgloss.Color("#FDF6E3"),
		Text:    lipgloss.Color("#657B83"),
		Border:  lipgloss.Color("#EEE8D5"),
	}
}

// GruvboxPalette returns the Gruvbox dark palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#D3869B"), // Gruvbox purple
		Info:    lipgloss.Color("#83A598"), // Gruvbox aqua
		Success: lipgloss.Color("#B8BB26"), // Gruvbox green
		Error:   lipgloss.Color("#FB4934"), // Gruvbox red
		Muted:   lipgloss.Color("#928374"),
		Surface: lipgloss.Color("#282828"),
		Text:    lipgloss.Color("#EBDBB2"),
		Border:  lipgloss.Color("#3C3836"),
	}
}

// TokyoNightPalette returns the Tokyo Night palette.
func TokyoNightPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#BB9AF7"), // Tokyo Night purple
		Info:    lipgloss.Color("#7AA2F7"), // Tokyo Night blue
		Success: lipgloss.Color("#9ECE6A"), // Tokyo Night green
		Error:   lipgloss.Color("#F7768E"), // Tokyo Night red
		Muted:   lipgloss.Color("#565F89"),
		Surface: lipgloss.Color("#1A1B26"),
		Text:    lipgloss.Color("#C0CAF5"),
		Border:  lipgloss.Color("#292E42"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeSolarizedLight:
		return SolarizedLightPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeTokyoNight:
		return TokyoNightPalette()
	default:
		return DefaultPalette()
	}
}
