package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kumoov/pkg/schedule"
	"kumoov/pkg/tui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show your schedule grouped by day",
	Long:    `Print all saved courses grouped Monday to Sunday and ordered by start time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		groups, err := tui.LoadGroups(cmd.Context(), st)
		if err != nil {
			return err
		}

		if asJSON {
			if groups == nil {
				groups = []schedule.DayGroup{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(groups)
		}

		fmt.Print(tui.RenderSchedule(groups))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Print the grouped schedule as JSON")
}
