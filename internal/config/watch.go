package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch reloads the configuration whenever v's config file changes and
// passes the result to onChange. onChange runs on the watcher goroutine;
// an invalid file yields a nil config and the validation error.
//
// Watch does nothing if v has no config file.
func Watch(v *viper.Viper, onChange func(*Config, error)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(LoadFrom(v))
	})
	v.WatchConfig()
}
