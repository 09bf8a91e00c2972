package importer

import (
	"fmt"
	"strings"

	"kumoov/pkg/schedule"
)

// Columns are the header names understood by both importers, in export order.
var Columns = []string{"course_id", "name", "day_of_week", "start_time", "end_time"}

// Options controls how rows that fail validation are treated.
type Options struct {
	// Strict aborts the import at the first invalid row instead of skipping it.
	Strict bool
}

// RowError reports a row that was skipped
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// record is one imported row before validation
type record struct {
	CourseID  string `csv:"course_id"`
	Name      string `csv:"name"`
	DayOfWeek string `csv:"day_of_week"`
	StartTime string `csv:"start_time"`
	EndTime   string `csv:"end_time"`
}

func (r record) item() schedule.Item {
	return schedule.Item{
		CourseID:  strings.TrimSpace(r.CourseID),
		Name:      strings.TrimSpace(r.Name),
		DayOfWeek: schedule.NormalizeDay(r.DayOfWeek),
		StartTime: strings.TrimSpace(r.StartTime),
		EndTime:   strings.TrimSpace(r.EndTime),
	}
}

// collect validates records in order. lineOf maps a record index to the line reported in RowError.
func collect(records []record, lineOf func(int) int, opts Options) ([]schedule.Item, []RowError, error) {
	var items []schedule.Item
	var skipped []RowError

	for i, rec := range records {
		it := rec.item()
		if err := it.Validate(); err != nil {
			rowErr := RowError{Line: lineOf(i), Err: err}
			if opts.Strict {
				return nil, nil, rowErr
			}
			skipped = append(skipped, rowErr)
			continue
		}
		items = append(items, it)
	}

	return items, skipped, nil
}
