package cmd

import (
	"fmt"
	"strings"

	"kumoov/pkg/config"
	"kumoov/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kumoov configuration",
	Long:  "View or edit your local configuration settings (route service URL, database, map marker, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		changed := false

		if flags.Changed("endpoint") {
			endpoint, _ := flags.GetString("endpoint")
			if err := tui.ValidateEndpoint(endpoint); err != nil {
				return err
			}
			cfg.RouteEndpoint = strings.TrimSpace(endpoint)
			changed = true
		}
		if flags.Changed("db") {
			cfg.DatabasePath, _ = flags.GetString("db")
			changed = true
		}
		if flags.Changed("accent") {
			cfg.AccentColor, _ = flags.GetString("accent")
			changed = true
		}
		if flags.Changed("delimiter") {
			delim, _ := flags.GetString("delimiter")
			if delim != `\t` && len([]rune(delim)) != 1 {
				return fmt.Errorf("delimiter must be a single character or \\t")
			}
			cfg.CSVDelimiter = delim
			changed = true
		}

		if flags.Changed("show") && !changed {
			fmt.Print(tui.RenderConfig(cfg))
			return nil
		}

		if !changed {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved.")
		fmt.Print(tui.RenderConfig(cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("endpoint", "", "Route service URL")
	configCmd.Flags().String("db", "", "Path of the schedule database")
	configCmd.Flags().String("accent", "", "Accent color (ANSI number or #RRGGBB)")
	configCmd.Flags().String("delimiter", "", "CSV delimiter for import/export")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
