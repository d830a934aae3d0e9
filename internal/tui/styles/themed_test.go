package styles

import (
	"strings"
	"testing"
)

func TestNewThemedStyles(t *testing.T) {
	p := DraculaPalette()
	s := NewThemedStyles(p)

	if s.InfoColor != p.Info {
		t.Errorf("InfoColor = %q, want %q", s.InfoColor, p.Info)
	}
	if s.SuccessColor != p.Success {
		t.Errorf("SuccessColor = %q, want %q", s.SuccessColor, p.Success)
	}
	if s.ErrorColor != p.Error {
		t.Errorf("ErrorColor = %q, want %q", s.ErrorColor, p.Error)
	}
	if got := s.Muted.GetForeground(); got != p.Muted {
		t.Errorf("Muted foreground = %v, want %v", got, p.Muted)
	}
}

func TestThemedStylesRender(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			s := NewThemedStyles(GetPalette(ThemeName(name)))

			box := s.ToastBox.BorderForeground(s.SuccessColor).Render("Saved")
			if !strings.Contains(box, "Saved") {
				t.Errorf("ToastBox render lost content: %q", box)
			}
			if lines := strings.Count(box, "\n") + 1; lines != 3 {
				t.Errorf("ToastBox render has %d lines, want 3 (border, content, border)", lines)
			}
			if out := s.Title.Render("Sign up"); !strings.Contains(out, "Sign up") {
				t.Errorf("Title render lost content: %q", out)
			}
		})
	}
}

func TestSetActiveTheme(t *testing.T) {
	defer SetActiveTheme(ThemeDefault)

	SetActiveTheme(ThemeNord)
	active := GetActiveTheme()
	if active.Name != ThemeNord {
		t.Errorf("active theme = %q, want %q", active.Name, ThemeNord)
	}
	if active.InfoColor != NordPalette().Info {
		t.Errorf("InfoColor = %q, want nord info", active.InfoColor)
	}

	SetActiveTheme("does-not-exist")
	if got := GetActiveTheme().PrimaryColor; got != DefaultPalette().Primary {
		t.Errorf("unknown theme PrimaryColor = %q, want default", got)
	}
}

func TestGetActiveThemeDefault(t *testing.T) {
	SetActiveTheme(ThemeDefault)
	if GetActiveTheme() == nil {
		t.Fatal("GetActiveTheme() returned nil")
	}
	if GetActiveTheme().Name != ThemeDefault {
		t.Errorf("Name = %q, want default", GetActiveTheme().Name)
	}
}
