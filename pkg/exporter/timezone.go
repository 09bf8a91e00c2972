package exporter

import (
	"fmt"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const icalLocalLayout = "20060102T150405"

var weekdayCodes = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// zoneID returns the IANA name of loc, or "" when none can be determined.
// time.Local is resolved through $TZ or the /etc/localtime link.
func zoneID(loc *time.Location) (string, *time.Location) {
	name := loc.String()
	if loc == time.Local {
		name = localZoneName()
	}
	if name == "" || name == "Local" || name == "UTC" {
		return "", loc
	}

	named, err := time.LoadLocation(name)
	if err != nil {
		return "", loc
	}
	return name, named
}

func localZoneName() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		return tz
	}
	target, err := os.Readlink("/etc/localtime")
	if err != nil {
		return ""
	}
	if i := strings.Index(target, "zoneinfo/"); i >= 0 {
		return target[i+len("zoneinfo/"):]
	}
	return ""
}

type transition struct {
	at       time.Time
	from, to int
	name     string
	dst      bool
}

// transitions lists the offset changes of loc during year.
func transitions(loc *time.Location, year int) []transition {
	var out []transition

	day := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	for day.Before(end) {
		next := day.Add(24 * time.Hour)
		_, before := day.Zone()
		_, after := next.Zone()
		if before != after {
			lo, hi := day.Unix(), next.Unix()
			for hi-lo > 1 {
				mid := lo + (hi-lo)/2
				if _, off := time.Unix(mid, 0).In(loc).Zone(); off == before {
					lo = mid
				} else {
					hi = mid
				}
			}
			at := time.Unix(hi, 0).In(loc)
			name, _ := at.Zone()
			out = append(out, transition{at: at, from: before, to: after, name: name, dst: at.IsDST()})
		}
		day = next
	}
	return out
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d%02d", sign, seconds/3600, seconds%3600/60)
}

// yearlyRule describes the transition day as the nth (or last) weekday of its month.
func yearlyRule(wall time.Time) string {
	daysInMonth := time.Date(wall.Year(), wall.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	nth := fmt.Sprint((wall.Day()-1)/7 + 1)
	if wall.Day()+7 > daysInMonth {
		nth = "-1"
	}
	return fmt.Sprintf("FREQ=YEARLY;BYMONTH=%d;BYDAY=%s%s", int(wall.Month()), nth, weekdayCodes[wall.Weekday()])
}

// addTimezone adds a VTIMEZONE for tzid with the rules loc follows in year.
func addTimezone(cal *ics.Calendar, tzid string, loc *time.Location, year int) {
	tz := cal.AddTimezone(tzid)
	tz.AddProperty(ics.ComponentProperty("X-LIC-LOCATION"), tzid)

	changes := transitions(loc, year)
	if len(changes) == 0 {
		name, offset := time.Date(year, time.January, 1, 0, 0, 0, 0, loc).Zone()
		std := tz.AddStandard()
		std.SetProperty(ics.ComponentPropertyDtStart, "19700101T000000")
		std.SetProperty(ics.ComponentProperty(ics.PropertyTzoffsetfrom), formatOffset(offset))
		std.SetProperty(ics.ComponentProperty(ics.PropertyTzoffsetto), formatOffset(offset))
		std.SetProperty(ics.ComponentProperty(ics.PropertyTzname), name)
		return
	}

	for _, c := range changes {
		// DTSTART is the wall clock time just before the change
		wall := c.at.In(time.FixedZone("", c.from))

		var rule *ics.ComponentBase
		if c.dst {
			d := &ics.Daylight{}
			tz.Components = append(tz.Components, d)
			rule = &d.ComponentBase
		} else {
			rule = &tz.AddStandard().ComponentBase
		}
		rule.SetProperty(ics.ComponentPropertyDtStart, wall.Format(icalLocalLayout))
		rule.SetProperty(ics.ComponentProperty(ics.PropertyTzoffsetfrom), formatOffset(c.from))
		rule.SetProperty(ics.ComponentProperty(ics.PropertyTzoffsetto), formatOffset(c.to))
		rule.SetProperty(ics.ComponentProperty(ics.PropertyTzname), c.name)
		rule.SetProperty(ics.ComponentPropertyRrule, yearlyRule(wall))
	}
}
