package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"kumoov/pkg/config"
	"kumoov/pkg/schedule"
	"kumoov/pkg/store"
)

func validateClock(s string) error {
	if _, err := schedule.ParseClock(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use hour.minute, e.g. 8.30 or 13.05")
	}
	return nil
}

// itemForm fills it from user input. Existing values are used as defaults.
func itemForm(title string, it *schedule.Item) error {
	day := string(it.DayOfWeek)
	if !it.DayOfWeek.Valid() {
		day = string(schedule.Monday)
	}

	var dayOptions []huh.Option[string]
	for _, d := range schedule.Weekdays {
		dayOptions = append(dayOptions, huh.NewOption(string(d), string(d)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Course code").
				Placeholder("e.g. Comp302").
				Value(&it.CourseID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("course code cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Title("Course name").
				Placeholder("e.g. Software Engineering").
				Value(&it.Name),

			huh.NewSelect[string]().
				Title("Day of week").
				Options(dayOptions...).
				Value(&day),

			huh.NewInput().
				Title("Start time").
				Placeholder("8.30").
				Value(&it.StartTime).
				Validate(validateClock),

			huh.NewInput().
				Title("End time").
				Placeholder("9.40").
				Value(&it.EndTime).
				Validate(validateClock),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	it.CourseID = strings.TrimSpace(it.CourseID)
	it.Name = strings.TrimSpace(it.Name)
	it.DayOfWeek = schedule.Weekday(day)
	it.StartTime = strings.TrimSpace(it.StartTime)
	it.EndTime = strings.TrimSpace(it.EndTime)
	return nil
}

// RunItemEntryTUI asks for a new course and stores it
func RunItemEntryTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var it schedule.Item
	if err := itemForm("Add a course", &it); err != nil {
		return err
	}

	if err := it.Validate(); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %v", err)))
		return nil
	}

	id, err := st.Insert(ctx, it)
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %s on %s at %s (#%d)\n", it.CourseID, it.DayOfWeek, it.StartTime, id)))
	return nil
}

// pickItem lets the user choose one stored item. Returns ok=false when there is nothing to pick.
func pickItem(ctx context.Context, st *store.Store, title string) (schedule.Item, bool, error) {
	groups, err := LoadGroups(ctx, st)
	if err != nil {
		return schedule.Item{}, false, err
	}

	items := schedule.Flatten(groups)
	if len(items) == 0 {
		fmt.Println(errorStyle.Render("No courses saved yet!"))
		return schedule.Item{}, false, nil
	}

	var options []huh.Option[int64]
	for _, it := range items {
		label := fmt.Sprintf("%s %s-%s %s %s", it.DayOfWeek, it.StartTime, it.EndTime, it.CourseID, it.Name)
		options = append(options, huh.NewOption(strings.TrimSpace(label), it.ID))
	}

	var id int64
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title(title).
				Options(options...).
				Value(&id).
				Filtering(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return schedule.Item{}, false, err
	}

	it, err := st.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Println(errorStyle.Render("That course no longer exists."))
		return schedule.Item{}, false, nil
	}
	if err != nil {
		return schedule.Item{}, false, err
	}
	return it, true, nil
}

// RunItemEditTUI updates an existing course
func RunItemEditTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	it, ok, err := pickItem(ctx, st, "Which course do you want to edit?")
	if err != nil || !ok {
		return err
	}

	if err := itemForm(fmt.Sprintf("Edit %s", it.CourseID), &it); err != nil {
		return err
	}
	if err := it.Validate(); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %v", err)))
		return nil
	}

	if err := st.Update(ctx, it); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Updated %s (#%d)\n", it.CourseID, it.ID)))
	return nil
}

// RunItemRemoveTUI deletes a course after confirmation
func RunItemRemoveTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	it, ok, err := pickItem(ctx, st, "Which course do you want to remove?")
	if err != nil || !ok {
		return err
	}

	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s on %s at %s?", it.CourseID, it.DayOfWeek, it.StartTime)).
				Value(&confirm),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if !confirm {
		fmt.Println("Operation cancelled.")
		return nil
	}

	if err := st.Delete(ctx, it.ID); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n🗑️ Removed %s (#%d)\n", it.CourseID, it.ID)))
	return nil
}
