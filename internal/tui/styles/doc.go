// Package styles holds the color themes and lipgloss styles of the toaster
// terminal UI. Built-in palettes can be extended with YAML theme files
// discovered in ThemesDir.
package styles
