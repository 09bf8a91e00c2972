package schedule

import (
	"sort"
	"time"
)

// Option configures Group.
type Option func(*groupOptions)

type groupOptions struct {
	onDrop func(Item)
}

// WithDropHook registers a callback invoked for every item whose day is not one of the
// canonical weekdays. The item is still dropped from the output.
func WithDropHook(fn func(Item)) Option {
	return func(o *groupOptions) {
		o.onDrop = fn
	}
}

type timedItem struct {
	item  Item
	start time.Time
	ok    bool
}

// Group organizes items into day groups ordered Monday to Sunday.
// Items within a day are sorted by start time; items whose start time cannot be parsed
// are placed after all others, keeping their input order. Days without items are omitted
// and items with an unknown day are dropped. The input slice is not modified.
func Group(items []Item, opts ...Option) []DayGroup {
	var o groupOptions
	for _, opt := range opts {
		opt(&o)
	}

	byDay := make(map[Weekday][]timedItem)
	for _, it := range items {
		if !it.DayOfWeek.Valid() {
			if o.onDrop != nil {
				o.onDrop(it)
			}
			continue
		}
		start, err := ParseClock(it.StartTime)
		byDay[it.DayOfWeek] = append(byDay[it.DayOfWeek], timedItem{item: it, start: start, ok: err == nil})
	}

	var result []DayGroup
	for _, day := range Weekdays {
		timed, exists := byDay[day]
		if !exists {
			continue
		}

		sort.SliceStable(timed, func(i, j int) bool {
			a, b := timed[i], timed[j]
			if a.ok != b.ok {
				return a.ok
			}
			if !a.ok {
				return false
			}
			return a.start.Before(b.start)
		})

		group := DayGroup{Day: day, Items: make([]Item, 0, len(timed))}
		for _, t := range timed {
			group.Items = append(group.Items, t.item)
		}
		result = append(result, group)
	}

	return result
}

// Flatten concatenates the groups back into a single slice in display order.
func Flatten(groups []DayGroup) []Item {
	var items []Item
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}
