package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kumoov/pkg/config"
	"kumoov/pkg/mapview"
	"kumoov/pkg/tui"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the campus map marker",
	Long:  `Print the configured map marker and an OpenStreetMap link to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		urlOnly, _ := cmd.Flags().GetBool("url")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		marker := mapview.FromConfig(cfg)
		if err := marker.Validate(); err != nil {
			return fmt.Errorf("configured marker is invalid: %w", err)
		}

		if urlOnly {
			fmt.Println(marker.URL())
			return nil
		}

		fmt.Print(tui.RenderMarker(marker))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().Bool("url", false, "Only print the map link")
}
