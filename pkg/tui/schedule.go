package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"kumoov/pkg/config"
	"kumoov/pkg/logging"
	"kumoov/pkg/schedule"
	"kumoov/pkg/store"
)

// OpenStore opens the schedule database named by the configuration.
func OpenStore(cfg *config.AppConfig) (*store.Store, error) {
	path, err := cfg.Database()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("Opening schedule database")
	return store.Open(path)
}

// LoadGroups reads every item from the store and groups it for display.
// Items hidden by the grouping are reported through the debug log.
func LoadGroups(ctx context.Context, st *store.Store) ([]schedule.DayGroup, error) {
	items, err := st.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Group(items, logging.DroppedItemLogger(log.Logger)), nil
}

// RenderSchedule formats day groups for the terminal.
func RenderSchedule(groups []schedule.DayGroup) string {
	if len(groups) == 0 {
		return mutedStyle.Render("No courses yet. Add one with 'kumoov add' or the interactive menu.") + "\n"
	}

	var b strings.Builder
	for _, g := range groups {
		b.WriteString(accentStyle.Bold(true).Render(string(g.Day)))
		b.WriteString("\n")

		for _, it := range g.Items {
			timeStr := timeStyle.Render(fmt.Sprintf("%s - %s", it.StartTime, it.EndTime))
			line := fmt.Sprintf("  • [%s] %s", timeStr, courseStyle.Render(it.CourseID))
			if it.Name != "" {
				line += " " + it.Name
			}
			line += " " + mutedStyle.Render(fmt.Sprintf("#%d", it.ID))
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RunScheduleTUI shows the weekly schedule grouped by day
func RunScheduleTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	groups, loadErr := WithSpinner(ctx, "Loading your schedule...", func(ctx context.Context) ([]schedule.DayGroup, error) {
		return LoadGroups(ctx, st)
	})
	if loadErr != nil {
		return fmt.Errorf("failed to load schedule: %w", loadErr)
	}

	fmt.Println(accentStyle.Render("\n--- 📅 Weekly Schedule ---\n"))
	fmt.Print(RenderSchedule(groups))
	return nil
}
