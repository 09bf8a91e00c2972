package schedule

// Weekday is the day a schedule item occurs on, e.g. "Monday".
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the canonical days in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is exactly one of the canonical day names.
func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// Item represents a single course occurrence in the weekly timetable
type Item struct {
	ID        int64   `json:"id" csv:"-"`
	CourseID  string  `json:"course_id" csv:"course_id"`     // "Comp302"
	Name      string  `json:"name" csv:"name"`               // "Software Engineering"
	DayOfWeek Weekday `json:"day_of_week" csv:"day_of_week"` // "Monday"
	StartTime string  `json:"start_time" csv:"start_time"`   // "11.20"
	EndTime   string  `json:"end_time" csv:"end_time"`       // "12.30"
}

// DayGroup holds the items of one weekday, ordered by start time.
type DayGroup struct {
	Day   Weekday `json:"day"`
	Items []Item  `json:"items"`
}
