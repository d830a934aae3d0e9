package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the toaster TUI.

Toaster ships built-in themes and loads custom themes from YAML files in
~/.config/toaster/themes/.

Use 'theme list' to see all available themes.
Use 'theme export' to create a template for a custom theme.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML format for customization or sharing.

If no output file is specified, the YAML is printed to stdout.

Examples:
  toaster config theme export default                # Print default theme
  toaster config theme export dracula my-theme.yaml  # Save dracula theme to file`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the custom themes directory path",
	RunE:  runThemePath,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themePathCmd)
	configCmd.AddCommand(themeCmd)
}

// reportLoadErrors prints theme load failures to stderr.
func reportLoadErrors(cmd *cobra.Command, errs []error) {
	if len(errs) == 0 {
		return
	}
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "Warning: Some themes failed to load:")
	for _, err := range errs {
		fmt.Fprintf(w, "  - %v\n", err)
	}
	fmt.Fprintln(w)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	_, loadErrs := styles.DiscoverCustomThemes()
	reportLoadErrors(cmd, loadErrs)

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Theme", "Type", "Author"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")

	for _, name := range styles.BuiltinThemes() {
		table.Append([]string{name, "built-in", ""})
	}
	for _, name := range styles.CustomThemeNames() {
		author := ""
		if theme := styles.GetCustomTheme(styles.ThemeName(name)); theme != nil {
			author = theme.Author
		}
		table.Append([]string{name, "custom", author})
	}
	table.Render()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", styles.ThemesDir())
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	_, loadErrs := styles.DiscoverCustomThemes()
	if !styles.IsValidTheme(themeName) {
		for _, err := range loadErrs {
			if strings.HasPrefix(err.Error(), themeName+".yaml:") || strings.HasPrefix(err.Error(), themeName+".yml:") {
				return fmt.Errorf("theme '%s' exists but failed to load: %w", themeName, err)
			}
		}
		return fmt.Errorf("unknown theme: %s\n\nRun 'toaster config theme list' to see available themes", themeName)
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemePath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themesDir := styles.ThemesDir()
	fmt.Fprintln(out, themesDir)

	if _, err := os.Stat(themesDir); os.IsNotExist(err) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Note: This directory does not exist yet.")
	}
	return nil
}
