package schedule

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MalformedItemError describes why an item cannot be shown as entered.
type MalformedItemError struct {
	Field  string
	Value  string
	Reason string
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the item the way entry forms and strict imports do.
// Group does not call it; it filters and orders instead of rejecting.
func (it Item) Validate() error {
	if strings.TrimSpace(it.CourseID) == "" {
		return &MalformedItemError{Field: "course id", Value: it.CourseID, Reason: "must not be empty"}
	}
	if !it.DayOfWeek.Valid() {
		return &MalformedItemError{Field: "day of week", Value: string(it.DayOfWeek), Reason: "must be one of Monday..Sunday"}
	}
	start, err := ParseClock(it.StartTime)
	if err != nil {
		return &MalformedItemError{Field: "start time", Value: it.StartTime, Reason: "expected hour.minute, e.g. 8.30"}
	}
	end, err := ParseClock(it.EndTime)
	if err != nil {
		return &MalformedItemError{Field: "end time", Value: it.EndTime, Reason: "expected hour.minute, e.g. 9.40"}
	}
	if end.Before(start) {
		return &MalformedItemError{Field: "end time", Value: it.EndTime, Reason: "must not be before start time " + it.StartTime}
	}
	return nil
}

// NormalizeDay maps user input like "monday" or " TUESDAY " to the canonical day name.
// Input that does not name a day is returned trimmed but otherwise unchanged.
func NormalizeDay(s string) Weekday {
	d := Weekday(cases.Title(language.English).String(strings.TrimSpace(s)))
	if d.Valid() {
		return d
	}
	return Weekday(strings.TrimSpace(s))
}
