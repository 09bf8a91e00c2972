package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kumoov/pkg/logging"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "kumoov",
	Short: "A CLI and TUI for your weekly course schedule",
	Long: `kumoov keeps your weekly courses in a local database, shows them grouped by day
and ordered by start time, and searches routes to a destination through your route service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(os.Stderr, debug)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels in-flight work such as a pending route search.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging (also KUMOOV_DEBUG=YES)")
}
