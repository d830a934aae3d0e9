package view

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/toaster/internal/tui/keymap"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

func TestModeBadge(t *testing.T) {
	th := styles.GetActiveTheme()

	if _, _, ok := ModeBadge(keymap.ModeNormal, th); ok {
		t.Error("normal mode should have no badge")
	}
	label, _, ok := ModeBadge(keymap.ModeForm, th)
	if !ok || label != "FORM" {
		t.Errorf("ModeBadge(form) = %q, %v; want FORM, true", label, ok)
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name     string
		state    HeaderState
		contains []string
		absent   []string
	}{
		{
			name:     "idle",
			state:    HeaderState{Mode: keymap.ModeNormal, Theme: "nord"},
			contains: []string{"toaster", "theme nord"},
			absent:   []string{"FORM", "toast", "playing"},
		},
		{
			name:     "form with one toast",
			state:    HeaderState{Mode: keymap.ModeForm, Theme: "default", Toasts: 1},
			contains: []string{"FORM", "1 toast"},
			absent:   []string{"1 toasts"},
		},
		{
			name:     "playing",
			state:    HeaderState{Theme: "default", Toasts: 3, Playing: 2},
			contains: []string{"3 toasts", "2 scenarios playing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Header(tt.state)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Header() = %q, want it to contain %q", got, want)
				}
			}
			for _, bad := range tt.absent {
				if strings.Contains(got, bad) {
					t.Errorf("Header() = %q, should not contain %q", got, bad)
				}
			}
		})
	}
}

func TestBody(t *testing.T) {
	left := "aaaa\naaaa"
	right := "bb"

	side := Body(left, right, 0)
	if h := lipgloss.Height(side); h != 2 {
		t.Errorf("side-by-side height = %d, want 2", h)
	}
	if w := lipgloss.Width(side); w != 4+Gutter+2 {
		t.Errorf("side-by-side width = %d, want %d", w, 4+Gutter+2)
	}

	stacked := Body(left, right, 6)
	if h := lipgloss.Height(stacked); h != 4 {
		t.Errorf("stacked height = %d, want 4", h)
	}

	if got := Body(left, "", 80); got != left {
		t.Errorf("Body with empty right = %q, want left unchanged", got)
	}
}

func TestStackWidth(t *testing.T) {
	tests := []struct {
		name                   string
		width, leftWidth, want int
	}{
		{"unknown terminal", 0, 40, 48},
		{"plenty of room", 200, 40, 48},
		{"squeezed beside form", 70, 40, 28},
		{"stacked below form", 50, 40, 48},
		{"stacked in narrow terminal", 30, 40, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StackWidth(tt.width, tt.leftWidth, 48); got != tt.want {
				t.Errorf("StackWidth(%d, %d, 48) = %d, want %d", tt.width, tt.leftWidth, got, tt.want)
			}
		})
	}
}
