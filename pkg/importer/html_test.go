package importer

import (
	"strings"
	"testing"

	"kumoov/pkg/schedule"
)

const timetableHTML = `<html><body>
<table id="nav"><tr><td>Home</td><td>About</td></tr></table>
<table class="timetable">
  <tr><th>Course ID</th><th>Name</th><th>Day of Week</th><th>Start Time</th><th>End Time</th></tr>
  <tr><td>Comp302</td><td> Software Engineering </td><td>Monday</td><td>11.20</td><td>12.30</td></tr>
  <tr><td>Econ101</td><td>Economics</td><td>TUESDAY</td><td>9.00</td><td>10.00</td></tr>
  <tr><td>Bad</td><td>Row</td><td>Monday</td><td>late</td><td>12.30</td></tr>
</table>
</body></html>`

func TestReadHTML(t *testing.T) {
	items, skipped, err := ReadHTML(strings.NewReader(timetableHTML), Options{})
	if err != nil {
		t.Fatalf("ReadHTML failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Software Engineering" {
		t.Errorf("expected trimmed name, got %q", items[0].Name)
	}
	if items[1].DayOfWeek != schedule.Tuesday {
		t.Errorf("expected normalized Tuesday, got %q", items[1].DayOfWeek)
	}

	if len(skipped) != 1 || skipped[0].Line != 3 {
		t.Errorf("expected row 3 to be skipped, got %v", skipped)
	}
}

func TestReadHTML_NoTable(t *testing.T) {
	_, _, err := ReadHTML(strings.NewReader(`<table><tr><td>a</td></tr></table>`), Options{})
	if err == nil {
		t.Fatalf("expected error when no timetable is present")
	}
}
