package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/toaster/internal/tui/styles"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "toast.auto_dismiss")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Toast box width bounds, in columns.
const (
	MinMaxWidth = 20
	MaxMaxWidth = 120
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateToast()...)
	errs = append(errs, c.validateTUI()...)
	errs = append(errs, c.validateLogging()...)
	return errs
}

func (c *Config) validateToast() []ValidationError {
	var errs []ValidationError

	if c.Toast.AutoDismiss <= 0 {
		errs = append(errs, ValidationError{
			Field:   "toast.auto_dismiss",
			Value:   c.Toast.AutoDismiss,
			Message: "must be positive",
		})
	}
	if c.Toast.EnterDuration < 0 {
		errs = append(errs, ValidationError{
			Field:   "toast.enter_duration",
			Value:   c.Toast.EnterDuration,
			Message: "must be non-negative",
		})
	}
	if c.Toast.ExitDuration < 0 {
		errs = append(errs, ValidationError{
			Field:   "toast.exit_duration",
			Value:   c.Toast.ExitDuration,
			Message: "must be non-negative",
		})
	}

	return errs
}

func (c *Config) validateTUI() []ValidationError {
	var errs []ValidationError

	if !styles.IsValidTheme(c.TUI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(styles.ValidThemes(), ", ")),
		})
	}

	if c.TUI.MaxWidth < MinMaxWidth {
		errs = append(errs, ValidationError{
			Field:   "tui.max_width",
			Value:   c.TUI.MaxWidth,
			Message: fmt.Sprintf("must be at least %d columns", MinMaxWidth),
		})
	}
	if c.TUI.MaxWidth > MaxMaxWidth {
		errs = append(errs, ValidationError{
			Field:   "tui.max_width",
			Value:   c.TUI.MaxWidth,
			Message: fmt.Sprintf("exceeds maximum of %d columns", MaxMaxWidth),
		})
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errs
}
