package schedule

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(items []Item) []int64 {
	var out []int64
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestGroup_Example(t *testing.T) {
	items := []Item{
		{ID: 1, CourseID: "Comp302", DayOfWeek: Monday, StartTime: "11.20", EndTime: "12.30"},
		{ID: 2, CourseID: "Comp132", DayOfWeek: Monday, StartTime: "8.30", EndTime: "9.40"},
		{ID: 3, CourseID: "Econ101", DayOfWeek: Tuesday, StartTime: "9.00", EndTime: "10.00"},
	}

	groups := Group(items)

	want := []DayGroup{
		{Day: Monday, Items: []Item{items[1], items[0]}},
		{Day: Tuesday, Items: []Item{items[2]}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("Group() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_Empty(t *testing.T) {
	if groups := Group(nil); len(groups) != 0 {
		t.Errorf("expected no groups for nil input, got %d", len(groups))
	}
	if groups := Group([]Item{}); len(groups) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(groups))
	}
}

func TestGroup_DropsUnknownDays(t *testing.T) {
	items := []Item{
		{ID: 1, DayOfWeek: "monday", StartTime: "8.00"},
		{ID: 2, DayOfWeek: "Pazartesi", StartTime: "9.00"},
		{ID: 3, DayOfWeek: Sunday, StartTime: "10.00"},
		{ID: 4, DayOfWeek: "", StartTime: "10.00"},
	}

	var dropped []int64
	groups := Group(items, WithDropHook(func(it Item) {
		dropped = append(dropped, it.ID)
	}))

	if len(groups) != 1 || groups[0].Day != Sunday {
		t.Fatalf("expected only a Sunday group, got %+v", groups)
	}
	if diff := cmp.Diff([]int64{1, 2, 4}, dropped); diff != "" {
		t.Errorf("dropped ids mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_UnparseableStartSortsLast(t *testing.T) {
	items := []Item{
		{ID: 1, DayOfWeek: Wednesday, StartTime: "noon"},
		{ID: 2, DayOfWeek: Wednesday, StartTime: "14.00"},
		{ID: 3, DayOfWeek: Wednesday, StartTime: "8:30"},
		{ID: 4, DayOfWeek: Wednesday, StartTime: "9.15"},
		{ID: 5, DayOfWeek: Wednesday, StartTime: ""},
	}

	groups := Group(items)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	if diff := cmp.Diff([]int64{4, 2, 1, 3, 5}, ids(groups[0].Items)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_KeepsDuplicateIDsAndEqualTimesStable(t *testing.T) {
	items := []Item{
		{ID: 7, CourseID: "A", DayOfWeek: Friday, StartTime: "10.00"},
		{ID: 7, CourseID: "B", DayOfWeek: Friday, StartTime: "10.00"},
		{ID: 8, CourseID: "C", DayOfWeek: Friday, StartTime: "9.59"},
	}

	groups := Group(items)
	got := groups[0].Items
	if len(got) != 3 {
		t.Fatalf("expected duplicates to be kept, got %d items", len(got))
	}
	if got[0].CourseID != "C" || got[1].CourseID != "A" || got[2].CourseID != "B" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	items := []Item{
		{ID: 1, DayOfWeek: Monday, StartTime: "12.00"},
		{ID: 2, DayOfWeek: Monday, StartTime: "8.00"},
	}
	before := append([]Item(nil), items...)

	Group(items)

	if diff := cmp.Diff(before, items); diff != "" {
		t.Errorf("input was modified (-before +after):\n%s", diff)
	}
}

func TestGroup_DayOrderIsFixed(t *testing.T) {
	items := []Item{
		{ID: 1, DayOfWeek: Sunday, StartTime: "8.00"},
		{ID: 2, DayOfWeek: Thursday, StartTime: "8.00"},
		{ID: 3, DayOfWeek: Monday, StartTime: "8.00"},
		{ID: 4, DayOfWeek: Saturday, StartTime: "8.00"},
	}

	var days []Weekday
	for _, g := range Group(items) {
		days = append(days, g.Day)
	}

	if diff := cmp.Diff([]Weekday{Monday, Thursday, Saturday, Sunday}, days); diff != "" {
		t.Errorf("day order mismatch (-want +got):\n%s", diff)
	}
}

func randomItems(r *rand.Rand, n int) []Item {
	days := append([]Weekday{"funday", "MONDAY"}, Weekdays...)
	starts := []string{"8.30", "08.30", "9.00", "11.20", "13.05", "23.59", "0.00", "bad", "", "25.00", "7.5"}

	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:        int64(r.Intn(n/2 + 1)),
			CourseID:  "C",
			DayOfWeek: days[r.Intn(len(days))],
			StartTime: starts[r.Intn(len(starts))],
			EndTime:   "23.59",
		}
	}
	return items
}

func TestGroup_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		items := randomItems(r, r.Intn(40))
		groups := Group(items)

		seen := make(map[Weekday]bool)
		for _, g := range groups {
			if !g.Day.Valid() {
				t.Fatalf("round %d: emitted non-canonical day %q", round, g.Day)
			}
			if seen[g.Day] {
				t.Fatalf("round %d: day %q emitted twice", round, g.Day)
			}
			seen[g.Day] = true
			if len(g.Items) == 0 {
				t.Fatalf("round %d: empty group for %q", round, g.Day)
			}

			unparsedSeen := false
			for i, it := range g.Items {
				if it.DayOfWeek != g.Day {
					t.Fatalf("round %d: item day %q in group %q", round, it.DayOfWeek, g.Day)
				}
				start, err := ParseClock(it.StartTime)
				if err != nil {
					unparsedSeen = true
					continue
				}
				if unparsedSeen {
					t.Fatalf("round %d: parseable item after unparseable one in %q", round, g.Day)
				}
				if i > 0 {
					prev, _ := ParseClock(g.Items[i-1].StartTime)
					if start.Before(prev) {
						t.Fatalf("round %d: items out of order in %q", round, g.Day)
					}
				}
			}
		}

		if diff := cmp.Diff(groups, Group(Flatten(groups))); diff != "" {
			t.Fatalf("round %d: regrouping changed the result (-first +second):\n%s", round, diff)
		}
	}
}

func TestFlatten(t *testing.T) {
	groups := []DayGroup{
		{Day: Monday, Items: []Item{{ID: 2}, {ID: 1}}},
		{Day: Friday, Items: []Item{{ID: 3}}},
	}
	if diff := cmp.Diff([]int64{2, 1, 3}, ids(Flatten(groups))); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}
