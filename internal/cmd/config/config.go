// Package config provides CLI commands for inspecting toaster configuration.
package config

import (
	"fmt"
	"os"

	appconfig "github.com/Iron-Ham/toaster/internal/config"
	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View toaster configuration",
	Long: `View toaster configuration.

Without arguments, displays the effective configuration.
Use 'config theme' to manage color themes.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# Config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}
	if !cfg.Toast.DefaultRemoval() {
		fmt.Fprintf(out, "# Toasts are removed %s after publishing, not %s\n",
			cfg.Toast.RemovalAfter(), lifecycle.DefaultVisibleDuration)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// marshalConfig renders cfg as YAML with durations in Go notation (3s).
func marshalConfig(cfg *appconfig.Config) ([]byte, error) {
	type toastYAML struct {
		AutoDismiss   string `yaml:"auto_dismiss"`
		EnterDuration string `yaml:"enter_duration"`
		ExitDuration  string `yaml:"exit_duration"`
	}
	doc := struct {
		Toast   toastYAML               `yaml:"toast"`
		TUI     appconfig.TUIConfig     `yaml:"tui"`
		Logging appconfig.LoggingConfig `yaml:"logging"`
	}{
		Toast: toastYAML{
			AutoDismiss:   cfg.Toast.AutoDismiss.String(),
			EnterDuration: cfg.Toast.EnterDuration.String(),
			ExitDuration:  cfg.Toast.ExitDuration.String(),
		},
		TUI:     cfg.TUI,
		Logging: cfg.Logging,
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else if _, err := os.Stat(appconfig.ConfigFile()); err == nil {
		fmt.Fprintf(out, "Config file: %s\n", appconfig.ConfigFile())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", appconfig.ConfigFile())
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")
	fmt.Fprintln(out, "\nEnvironment variables: TOASTER_* (e.g., TOASTER_TOAST_AUTO_DISMISS)")
	return nil
}
