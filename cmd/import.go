package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"kumoov/pkg/importer"
	"kumoov/pkg/schedule"
	"kumoov/pkg/tui"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import courses from a CSV file or an HTML timetable",
	Long: `Import courses from a CSV file or the first matching table of an HTML page.
Both need the columns course_id, name, day_of_week, start_time and end_time.
Rows that fail validation are skipped and listed, unless --strict is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		strict, _ := cmd.Flags().GetBool("strict")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		path := args[0]
		if format == "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		}

		cfg, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer file.Close()

		opts := importer.Options{Strict: strict}
		var items []schedule.Item
		var skipped []importer.RowError

		switch format {
		case "csv", "txt":
			items, skipped, err = importer.ReadCSV(file, cfg.Delimiter(), opts)
		case "tsv":
			items, skipped, err = importer.ReadCSV(file, '\t', opts)
		case "html", "htm":
			items, skipped, err = importer.ReadHTML(file, opts)
		default:
			return fmt.Errorf("unknown import format %q (use csv, tsv or html)", format)
		}
		if err != nil {
			return err
		}

		for _, s := range skipped {
			fmt.Printf("⚠️ Skipping %v\n", s)
		}

		if dryRun {
			fmt.Printf("Would import %d course(s), %d skipped.\n", len(items), len(skipped))
			return nil
		}

		ids, err := tui.WithSpinner(cmd.Context(), fmt.Sprintf("Importing %d course(s)...", len(items)), func(ctx context.Context) ([]int64, error) {
			return st.InsertAll(ctx, items)
		})
		if err != nil {
			return err
		}

		log.Debug().Str("file", path).Int("imported", len(ids)).Int("skipped", len(skipped)).Msg("Import finished")
		fmt.Printf("✨ Imported %d course(s) from %s, %d skipped.\n", len(ids), path, len(skipped))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringP("format", "f", "", "Input format: csv, tsv or html (defaults to the file extension)")
	importCmd.Flags().Bool("strict", false, "Abort on the first invalid row instead of skipping it")
	importCmd.Flags().Bool("dry-run", false, "Parse and validate without saving")
}
