package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appconfig "github.com/Iron-Ham/toaster/internal/config"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const customTheme = `name: "Harbor"
author: "Test Author"
version: "1"
colors:
  primary: "#268BD2"
  success: "#859900"
  error: "#DC322F"
  muted: "#586E75"
  surface: "#002B36"
  text: "#FDF6E3"
  border: "#073642"
`

// testCommand returns a command whose stdout and stderr are captured.
func testCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	appconfig.SetDefaults()
	t.Cleanup(viper.Reset)
}

func useThemesDir(t *testing.T, dir string) {
	t.Helper()
	prev := styles.SetThemesDirFunc(func() string { return dir })
	styles.ClearCustomThemes()
	t.Cleanup(func() {
		styles.SetThemesDirFunc(prev)
		styles.ClearCustomThemes()
	})
}

func TestRunConfigShow(t *testing.T) {
	resetViper(t)
	viper.Set("tui.theme", "nord")

	cmd, out, _ := testCommand()
	if err := runConfigShow(cmd, nil); err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}

	if !strings.HasPrefix(out.String(), "# Config file: (none") {
		t.Errorf("output should start with the config source, got:\n%s", out)
	}

	var shown struct {
		Toast struct {
			AutoDismiss string `yaml:"auto_dismiss"`
		} `yaml:"toast"`
		TUI struct {
			Theme    string `yaml:"theme"`
			MaxWidth int    `yaml:"max_width"`
		} `yaml:"tui"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &shown); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if shown.Toast.AutoDismiss != "3s" {
		t.Errorf("auto_dismiss = %q, want 3s", shown.Toast.AutoDismiss)
	}
	if shown.TUI.Theme != "nord" {
		t.Errorf("theme = %q, want nord", shown.TUI.Theme)
	}
	if shown.TUI.MaxWidth != 48 {
		t.Errorf("max_width = %d, want 48", shown.TUI.MaxWidth)
	}
	if strings.Contains(out.String(), "Toasts are removed") {
		t.Errorf("default timings should not print a removal note:\n%s", out)
	}
}

func TestRunConfigShowRemovalNote(t *testing.T) {
	resetViper(t)
	viper.Set("toast.exit_duration", "200")

	cmd, out, _ := testCommand()
	if err := runConfigShow(cmd, nil); err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}

	want := "# Toasts are removed 3.2s after publishing, not 3s"
	if !strings.Contains(out.String(), want) {
		t.Errorf("output should contain %q, got:\n%s", want, out)
	}
	if !strings.Contains(out.String(), "exit_duration: 200ms") {
		t.Errorf("exit_duration should be shown as 200ms, got:\n%s", out)
	}
}

func TestRunConfigShowInvalid(t *testing.T) {
	resetViper(t)
	viper.Set("toast.auto_dismiss", "0s")

	cmd, _, _ := testCommand()
	err := runConfigShow(cmd, nil)
	if err == nil {
		t.Fatal("runConfigShow() expected error for zero auto_dismiss")
	}
	if !strings.Contains(err.Error(), "auto_dismiss") {
		t.Errorf("error should name the field, got: %v", err)
	}
}

func TestRunConfigPath(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cmd, out, _ := testCommand()
	if err := runConfigPath(cmd, nil); err != nil {
		t.Fatalf("runConfigPath() error = %v", err)
	}

	want := filepath.Join(dir, "toaster", "config.yaml")
	if !strings.Contains(out.String(), "Default path: "+want+" (not created)") {
		t.Errorf("output should show the default path %s, got:\n%s", want, out)
	}
	if !strings.Contains(out.String(), "TOASTER_") {
		t.Errorf("output should mention the env prefix, got:\n%s", out)
	}
}

func TestRunThemeList(t *testing.T) {
	dir := t.TempDir()
	useThemesDir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "harbor.yaml"), []byte(customTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, out, errOut := testCommand()
	if err := runThemeList(cmd, nil); err != nil {
		t.Fatalf("runThemeList() error = %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	row := func(name string) string {
		for _, l := range lines {
			if f := strings.Fields(l); len(f) > 0 && f[0] == name {
				return l
			}
		}
		return ""
	}

	if r := row("dracula"); !strings.Contains(r, "built-in") {
		t.Errorf("dracula row = %q, want a built-in entry", r)
	}
	if r := row("harbor"); !strings.Contains(r, "custom") || !strings.Contains(r, "Test Author") {
		t.Errorf("harbor row = %q, want custom by Test Author", r)
	}
	if row("broken") != "" {
		t.Error("a theme that failed to load should not be listed")
	}
	if !strings.Contains(out.String(), "Custom themes directory: "+dir) {
		t.Errorf("output missing the themes directory:\n%s", out)
	}
	if !strings.Contains(errOut.String(), "broken.yaml") {
		t.Errorf("stderr should report the broken theme, got:\n%s", errOut)
	}
}

func TestRunThemeExport(t *testing.T) {
	useThemesDir(t, t.TempDir())

	t.Run("stdout", func(t *testing.T) {
		cmd, out, _ := testCommand()
		if err := runThemeExport(cmd, []string{"nord"}); err != nil {
			t.Fatalf("runThemeExport() error = %v", err)
		}
		var theme styles.ThemeFile
		if err := yaml.Unmarshal(out.Bytes(), &theme); err != nil {
			t.Fatalf("export is not YAML: %v", err)
		}
		if err := theme.Validate(); err != nil {
			t.Errorf("exported theme does not validate: %v", err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exported.yaml")
		cmd, out, _ := testCommand()
		if err := runThemeExport(cmd, []string{"default", path}); err != nil {
			t.Fatalf("runThemeExport() error = %v", err)
		}
		if _, err := styles.LoadThemeFile(path); err != nil {
			t.Errorf("exported file does not load: %v", err)
		}
		if !strings.Contains(out.String(), "Theme exported to: "+path) {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		cmd, _, _ := testCommand()
		err := runThemeExport(cmd, []string{"nope"})
		if err == nil || !strings.Contains(err.Error(), "unknown theme: nope") {
			t.Errorf("runThemeExport(unknown) error = %v", err)
		}
	})
}

func TestRunThemeExportBrokenCustom(t *testing.T) {
	dir := t.TempDir()
	useThemesDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte("name: \"Mine\"\nversion: \"1\"\ncolors:\n  primary: \"bad\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, _, _ := testCommand()
	err := runThemeExport(cmd, []string{"mine"})
	if err == nil || !strings.Contains(err.Error(), "exists but failed to load") {
		t.Errorf("runThemeExport(broken) error = %v", err)
	}
}

func TestRunThemePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	useThemesDir(t, dir)

	cmd, out, _ := testCommand()
	if err := runThemePath(cmd, nil); err != nil {
		t.Fatalf("runThemePath() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), dir+"\n") {
		t.Errorf("output should start with %s, got:\n%s", dir, out)
	}
	if !strings.Contains(out.String(), "does not exist yet") {
		t.Errorf("missing directory note:\n%s", out)
	}
}
