// Package cmd implements the toaster command line.
package cmd

import (
	"strings"

	"github.com/Iron-Ham/toaster/internal/cmd/config"
	appconfig "github.com/Iron-Ham/toaster/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "toaster",
	Short: "Transient toast notifications for terminal UIs",
	Long: `Toaster shows short-lived toast notifications in a terminal UI.

Each toast closes itself after three seconds unless dismissed first.
Run 'toaster demo' to try it with a sign-up form.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/toaster/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	config.Register(rootCmd)
}

func initConfig() {
	// Defaults first so they apply without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TOASTER")
	// TOASTER_TOAST_AUTO_DISMISS for toast.auto_dismiss
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply
	_ = viper.ReadInConfig()
}
