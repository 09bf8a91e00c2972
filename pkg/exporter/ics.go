package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"kumoov/pkg/schedule"
)

// weekStart returns midnight of the Monday of the week containing t, in t's location.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

func dayIndex(d schedule.Weekday) int {
	for i, w := range schedule.Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// eventClock sets DTSTART and DTEND so the weekly rule keeps the wall clock time.
// Named zones get a TZID, fixed offsets are exact in UTC, anything else floats.
type eventClock func(event *ics.VEvent, start, end time.Time)

func clockFor(cal *ics.Calendar, loc *time.Location, year int) (eventClock, *time.Location) {
	if tzid, named := zoneID(loc); tzid != "" {
		addTimezone(cal, tzid, named, year)
		cal.SetXWRTimezone(tzid)
		return func(event *ics.VEvent, start, end time.Time) {
			event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icalLocalLayout), ics.WithTZID(tzid))
			event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icalLocalLayout), ics.WithTZID(tzid))
		}, named
	}

	if len(transitions(loc, year)) == 0 {
		return func(event *ics.VEvent, start, end time.Time) {
			event.SetStartAt(start)
			event.SetEndAt(end)
		}, loc
	}

	return func(event *ics.VEvent, start, end time.Time) {
		event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icalLocalLayout))
		event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icalLocalLayout))
	}, loc
}

// GenerateICS writes one weekly recurring event per item, starting in the week that
// contains weekOf. Times are interpreted in weekOf's location and stay at the same
// wall clock time across daylight saving changes. Items whose start or end time
// cannot be parsed are skipped; the number of exported events is returned.
func GenerateICS(groups []schedule.DayGroup, weekOf time.Time, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//kumoov//weekly schedule//EN")

	setClock, loc := clockFor(cal, weekOf.Location(), weekOf.Year())
	monday := weekStart(weekOf.In(loc))
	now := time.Now()
	exported := 0

	for _, g := range groups {
		idx := dayIndex(g.Day)
		if idx < 0 {
			continue
		}
		date := monday.AddDate(0, 0, idx)

		for i, it := range g.Items {
			start, err := schedule.ParseClock(it.StartTime)
			if err != nil {
				continue // Skip invalid times
			}
			end, err := schedule.ParseClock(it.EndTime)
			if err != nil {
				continue
			}

			startAt := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, date.Location())
			endAt := time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), 0, 0, date.Location())

			event := cal.AddEvent(fmt.Sprintf("kumoov-%d-%s-%d", it.ID, g.Day, i))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			setClock(event, startAt, endAt)
			event.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY")

			summary := it.CourseID
			if it.Name != "" {
				summary = fmt.Sprintf("%s %s", it.CourseID, it.Name)
			}
			event.SetSummary(summary)
			event.SetDescription(fmt.Sprintf("Course: %s\nDay: %s\nTime: %s - %s", it.CourseID, g.Day, it.StartTime, it.EndTime))
			exported++
		}
	}

	return exported, cal.SerializeTo(w)
}
