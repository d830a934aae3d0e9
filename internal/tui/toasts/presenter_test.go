package toasts

import (
	"testing"

	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
)

func TestCategoryToVisual(t *testing.T) {
	styles.SetActiveTheme(styles.ThemeDefault)
	p := styles.DefaultPalette()

	tests := []struct {
		name     string
		category toast.Category
		want     Visual
	}{
		{"success", toast.CategorySuccess, Visual{Icon: IconSuccess, Color: p.Success, Label: "success"}},
		{"error", toast.CategoryError, Visual{Icon: IconError, Color: p.Error, Label: "error"}},
		{"info", toast.CategoryInfo, Visual{Icon: IconInfo, Color: p.Info, Label: "info"}},
		{"empty falls back to info", "", Visual{Icon: IconInfo, Color: p.Info, Label: "info"}},
		{"unknown falls back to info", "warning", Visual{Icon: IconInfo, Color: p.Info, Label: "info"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryToVisual(tt.category); got != tt.want {
				t.Errorf("CategoryToVisual(%q) = %+v, want %+v", tt.category, got, tt.want)
			}
		})
	}
}

func TestCategoryToVisualFollowsTheme(t *testing.T) {
	defer styles.SetActiveTheme(styles.ThemeDefault)

	styles.SetActiveTheme(styles.ThemeGruvbox)
	if got := CategoryToVisual(toast.CategoryError).Color; got != styles.GruvboxPalette().Error {
		t.Errorf("error color = %q, want gruvbox red", got)
	}
}

func TestVisualsAreDistinct(t *testing.T) {
	seen := make(map[string]toast.Category)
	for _, c := range toast.Categories() {
		v := CategoryToVisual(c)
		if prev, ok := seen[v.Icon]; ok {
			t.Errorf("%q and %q share icon %q", prev, c, v.Icon)
		}
		seen[v.Icon] = c
	}
}
