package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"kumoov/pkg/schedule"
	"kumoov/pkg/store"
	"kumoov/pkg/tui"
)

// applyItemFlags overrides fields of it with the item flags the user actually set.
func applyItemFlags(cmd *cobra.Command, it *schedule.Item) {
	flags := cmd.Flags()
	if flags.Changed("course") {
		it.CourseID, _ = flags.GetString("course")
		it.CourseID = strings.TrimSpace(it.CourseID)
	}
	if flags.Changed("name") {
		it.Name, _ = flags.GetString("name")
		it.Name = strings.TrimSpace(it.Name)
	}
	if flags.Changed("day") {
		day, _ := flags.GetString("day")
		it.DayOfWeek = schedule.NormalizeDay(day)
	}
	if flags.Changed("start") {
		it.StartTime, _ = flags.GetString("start")
		it.StartTime = strings.TrimSpace(it.StartTime)
	}
	if flags.Changed("end") {
		it.EndTime, _ = flags.GetString("end")
		it.EndTime = strings.TrimSpace(it.EndTime)
	}
}

var itemFlagNames = []string{"course", "name", "day", "start", "end"}

func anyItemFlag(cmd *cobra.Command) bool {
	for _, name := range itemFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func addItemFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("course", "c", "", "Course code, e.g. Comp302")
	cmd.Flags().StringP("name", "n", "", "Course name, e.g. \"Software Engineering\"")
	cmd.Flags().StringP("day", "d", "", "Day of week (Monday..Sunday)")
	cmd.Flags().StringP("start", "s", "", "Start time as hour.minute, e.g. 8.30")
	cmd.Flags().StringP("end", "e", "", "End time as hour.minute, e.g. 9.40")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid course id %q, expected a number like 3 or #3", arg)
	}
	return id, nil
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a course to your schedule",
	Long:  `Add a course occurrence. Without flags an interactive form is shown.`,
	Example: `  kumoov add --course Comp302 --name "Software Engineering" --day Monday --start 11.20 --end 12.30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !anyItemFlag(cmd) {
			return tui.RunItemEntryTUI(cmd.Context())
		}

		var it schedule.Item
		applyItemFlags(cmd, &it)
		if err := it.Validate(); err != nil {
			return err
		}

		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.Insert(cmd.Context(), it)
		if err != nil {
			return err
		}

		log.Debug().Int64("id", id).Str("course_id", it.CourseID).Msg("Course added")
		fmt.Printf("✅ Saved %s on %s at %s (#%d)\n", it.CourseID, it.DayOfWeek, it.StartTime, id)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change a saved course",
	Long:  `Change the fields given as flags on the course with the given id. Without arguments an interactive picker is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return tui.RunItemEditTUI(cmd.Context())
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		it, err := st.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		applyItemFlags(cmd, &it)
		if err := it.Validate(); err != nil {
			return err
		}

		if err := st.Update(cmd.Context(), it); err != nil {
			return err
		}

		fmt.Printf("✅ Updated %s (#%d)\n", it.CourseID, it.ID)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove [id...]",
	Aliases: []string{"rm"},
	Short:   "Remove saved courses",
	Long:    `Remove the courses with the given ids. Without arguments an interactive picker is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return tui.RunItemRemoveTUI(cmd.Context())
		}

		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var failed int
		for _, arg := range args {
			id, err := parseID(arg)
			if err == nil {
				err = st.Delete(cmd.Context(), id)
			}
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("⚠️ Warning: no course #%d. Skipping.\n", id)
				continue
			}
			if err != nil {
				fmt.Printf("❌ Failed to remove %s: %v\n", arg, err)
				failed++
				continue
			}
			fmt.Printf("🗑️ Removed #%d\n", id)
		}

		if failed > 0 {
			return fmt.Errorf("%d course(s) could not be removed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	addItemFlags(addCmd)
	addItemFlags(editCmd)
}
