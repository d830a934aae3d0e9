package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary string `yaml:"primary"`
	// Info is optional and defaults to Primary.
	Info    string `yaml:"info,omitempty"`
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
	Muted   string `yaml:"muted"`
	Surface string `yaml:"surface"`
	Text    string `yaml:"text"`
	Border  string `yaml:"border"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"success", t.Colors.Success},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !isValidHexColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	if t.Colors.Info != "" && !isValidHexColor(t.Colors.Info) {
		return fmt.Errorf("color 'info' has invalid format: %s (expected #RGB or #RRGGBB)", t.Colors.Info)
	}
	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color(t.Colors.Primary),
		Info:    colorOrDefault(t.Colors.Info, t.Colors.Primary),
		Success: lipgloss.Color(t.Colors.Success),
		Error:   lipgloss.Color(t.Colors.Error),
		Muted:   lipgloss.Color(t.Colors.Muted),
		Surface: lipgloss.Color(t.Colors.Surface),
		Text:    lipgloss.Color(t.Colors.Text),
		Border:  lipgloss.Color(t.Colors.Border),
	}
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

var (
	customMu     sync.RWMutex
	customThemes = make(map[ThemeName]*ThemeFile)
)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	return GetCustomTheme(ThemeName(name)) != nil
}

// CustomThemeNames returns the sorted names of all registered custom themes.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()

	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
// Primarily used for testing.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = make(map[ThemeName]*ThemeFile)
}

// themesDirFn is the function that returns the themes directory.
// This can be overridden in tests.
var themesDirFn = defaultThemesDir

func defaultThemesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "toaster", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".toaster", "themes")
	}
	return filepath.Join(home, ".config", "toaster", "themes")
}

// ThemesDir returns the directory where custom themes are stored.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc sets the function used to determine the themes directory.
// Returns the previous function.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// DiscoverCustomThemes scans the themes directory and registers every valid
// theme under its file name. A missing directory is not an error. Invalid
// files are skipped and reported in the returned errors.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		themeName := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// ExportTheme renders a built-in or registered custom theme as YAML, ready to
// be edited and dropped into ThemesDir.
func ExportTheme(name ThemeName) ([]byte, error) {
	themeFile := GetCustomTheme(name)
	if themeFile == nil {
		if !IsBuiltinTheme(string(name)) {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		themeFile = paletteToThemeFile(string(name), GetPalette(name))
	}
	return yaml.Marshal(themeFile)
}

func paletteToThemeFile(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: fmt.Sprintf("Exported from toaster built-in theme '%s'", name),
		Version:     "1",
		Colors: ThemeColors{
			Primary: string(p.Primary),
			Info:    string(p.Info),
			Success: string(p.Success),
			Error:   string(p.Error),
			Muted:   string(p.Muted),
			Surface: string(p.Surface),
			Text:    string(p.Text),
			Border:  string(p.Border),
		},
	}
}

// SaveTheme saves a theme to the themes directory.
func SaveTheme(name string, theme *ThemeFile) error {
	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}

	data, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshaling theme: %w", err)
	}

	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}
	return nil
}
