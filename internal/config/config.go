package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config represents the complete toaster configuration
type Config struct {
	Toast   ToastConfig   `mapstructure:"toast" yaml:"toast"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ToastConfig controls toast timing.
//
// With the defaults a toast is removed exactly 3s after it is published.
// Any non-zero enter or exit duration, or a different auto_dismiss, moves
// that point to RemovalAfter and the 3s guarantee no longer holds.
type ToastConfig struct {
	// AutoDismiss is how long a toast stays visible before it is removed
	// automatically (default: 3s)
	AutoDismiss time.Duration `mapstructure:"auto_dismiss" yaml:"auto_dismiss"`
	// EnterDuration is the length of the entrance transition (default: 0s).
	// It delays the start of AutoDismiss.
	EnterDuration time.Duration `mapstructure:"enter_duration" yaml:"enter_duration"`
	// ExitDuration is the length of the exit transition (default: 0s).
	// It delays removal past AutoDismiss.
	ExitDuration time.Duration `mapstructure:"exit_duration" yaml:"exit_duration"`
}

// RemovalAfter returns how long after publishing an undismissed toast is
// removed from the store.
func (c ToastConfig) RemovalAfter() time.Duration {
	return c.EnterDuration + c.AutoDismiss + c.ExitDuration
}

// DefaultRemoval reports whether toasts are removed at the default 3s mark.
func (c ToastConfig) DefaultRemoval() bool {
	return c.RemovalAfter() == lifecycle.DefaultVisibleDuration
}

// Timings converts the toast settings to lifecycle timings.
func (c ToastConfig) Timings() lifecycle.Timings {
	return lifecycle.Timings{
		Enter:   c.EnterDuration,
		Visible: c.AutoDismiss,
		Exit:    c.ExitDuration,
	}
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	Theme string `mapstructure:"theme" yaml:"theme"`
	// MaxWidth is the outer width of a toast box in columns (default: 48, min: 20, max: 120)
	MaxWidth int `mapstructure:"max_width" yaml:"max_width"`
	// Mouse enables click-to-dismiss (default: true)
	Mouse bool `mapstructure:"mouse" yaml:"mouse"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled controls whether debug logging is written to a file (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory of debug.log. Empty means StateDir().
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Toast: ToastConfig{
			AutoDismiss:   lifecycle.DefaultVisibleDuration,
			EnterDuration: 0,
			ExitDuration:  0,
		},
		TUI: TUIConfig{
			Theme:    "default",
			MaxWidth: 48,
			Mouse:    true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with the global viper instance
func SetDefaults() {
	SetDefaultsOn(viper.GetViper())
}

// SetDefaultsOn registers default values with v
func SetDefaultsOn(v *viper.Viper) {
	defaults := Default()

	// Toast defaults
	v.SetDefault("toast.auto_dismiss", defaults.Toast.AutoDismiss.String())
	v.SetDefault("toast.enter_duration", defaults.Toast.EnterDuration.String())
	v.SetDefault("toast.exit_duration", defaults.Toast.ExitDuration.String())

	// TUI defaults
	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("tui.max_width", defaults.TUI.MaxWidth)
	v.SetDefault("tui.mouse", defaults.TUI.Mouse)

	// Logging defaults
	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
}

// decodeHook turns duration strings ("3s", "250ms") and bare integers
// (milliseconds) into time.Duration. Bare integers may arrive as numbers
// from YAML or as strings from the environment and viper.Set.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		millisecondsHook,
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

func millisecondsHook(from, to reflect.Type, data any) (any, error) {
	durationType := reflect.TypeFor[time.Duration]()
	if to != durationType || from == durationType {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return time.Duration(reflect.ValueOf(data).Int()) * time.Millisecond, nil
	case reflect.Float64:
		return time.Duration(reflect.ValueOf(data).Float() * float64(time.Millisecond)), nil
	case reflect.String:
		if ms, err := strconv.ParseInt(strings.TrimSpace(reflect.ValueOf(data).String()), 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond, nil
		}
	}
	return data, nil
}

// Load unmarshals and validates the global viper configuration
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals and validates the configuration held by v
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it
// cannot be loaded
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "toaster")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".toaster"
	}
	return filepath.Join(home, ".config", "toaster")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for runtime files such as debug.log
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "toaster")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".toaster"
	}
	return filepath.Join(home, ".local", "state", "toaster")
}

// LogDir returns the directory debug.log is written to
func (c LoggingConfig) LogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return StateDir()
}
