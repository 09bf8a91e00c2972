package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kumoov/pkg/exporter"
	"kumoov/pkg/importer"
	"kumoov/pkg/tui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your schedule to an ICS calendar or a CSV file",
	Long: `Export the schedule as weekly recurring calendar events (ics) or as CSV that
'kumoov import' can read back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		weekStr, _ := cmd.Flags().GetString("week")

		format = strings.ToLower(format)
		if format != "ics" && format != "csv" {
			return fmt.Errorf("unknown export format %q (use ics or csv)", format)
		}

		if output == "" {
			output = "schedule." + format
		}
		if !strings.HasSuffix(output, "."+format) {
			output += "." + format
		}

		weekOf := time.Now()
		if weekStr != "" {
			var err error
			weekOf, err = time.ParseInLocation("2006-01-02", weekStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --week %q, expected YYYY-MM-DD: %w", weekStr, err)
			}
		}

		cfg, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var count int
		err = writeAtomic(output, func(w io.Writer) error {
			if format == "ics" {
				groups, err := tui.LoadGroups(cmd.Context(), st)
				if err != nil {
					return err
				}
				count, err = exporter.GenerateICS(groups, weekOf, w)
				if err != nil {
					return fmt.Errorf("failed to generate ICS: %w", err)
				}
				return nil
			}

			// CSV is a full backup, including items the grouped view hides
			items, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			count = len(items)
			return importer.WriteCSV(items, cfg.Delimiter(), w)
		})
		if err != nil {
			return err
		}

		fmt.Printf("✨ Exported %d course(s) to %s\n", count, output)
		return nil
	},
}

// writeAtomic writes to a temporary file next to path and renames it into place,
// so a failed export never leaves a partial file behind.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())
	_ = tmp.Chmod(0o644)

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save output file: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "ics", "Output format: ics or csv")
	exportCmd.Flags().StringP("output", "o", "", "Output file name (default schedule.<format>)")
	exportCmd.Flags().StringP("week", "w", "", "First week of the calendar as YYYY-MM-DD (default this week)")
}
