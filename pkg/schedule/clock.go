package schedule

import (
	"fmt"
	"time"
)

// ClockLayout is the "hour.minute" format used for start and end times.
// The hour may be one or two digits, the minute is always two.
const ClockLayout = "15.04"

// ParseClock parses a time of day such as "8.30" or "13.05".
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected hour.minute: %w", s, err)
	}
	return t, nil
}

// FormatClock renders a time of day back into the "hour.minute" format.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
