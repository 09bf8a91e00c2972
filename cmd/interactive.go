package cmd

import (
	"kumoov/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse your schedule, manage courses and search routes interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
