package tui

import "github.com/Iron-Ham/toaster/internal/config"

// ConfigReloadedMsg carries a configuration reloaded from disk. Err is set
// when the new file could not be decoded or failed validation, in which case
// the running configuration stays in effect.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
