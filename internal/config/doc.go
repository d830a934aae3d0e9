// Package config defines the toaster configuration, its defaults and
// validation. Values come from viper: the YAML file at ConfigFile(),
// TOASTER_-prefixed environment variables and command flags.
package config
