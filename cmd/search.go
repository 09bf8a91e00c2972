package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kumoov/pkg/config"
	"kumoov/pkg/route"
	"kumoov/pkg/tui"
)

var searchCmd = &cobra.Command{
	Use:   "search <destination>",
	Short: "Search routes to a destination",
	Long: `Send the destination to the route service and list the routes it returns.
All arguments are joined with spaces and sent as-is.`,
	Example: `  kumoov search Kadikoy
  kumoov search --endpoint http://10.0.2.2:5010/process_destination "Bostanci Iskele"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint, _ := cmd.Flags().GetString("endpoint")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if endpoint == "" {
			endpoint = cfg.Endpoint()
		}

		destination := strings.Join(args, " ")
		client := route.NewClient(endpoint)

		result, err := tui.SearchWithSpinner(cmd.Context(), client, destination)
		if err != nil {
			// The caller owns presentation: show the friendly message, exit non-zero.
			var reqErr *route.RequestError
			if errors.As(err, &reqErr) {
				return errors.New(route.FailureMessage(err))
			}
			return err
		}

		fmt.Print(tui.RenderRoutes(destination, result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("endpoint", "", "Route service URL (overrides config and KUMOOV_ROUTE_ENDPOINT)")
}
