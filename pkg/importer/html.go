package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kumoov/pkg/schedule"
)

var requiredColumns = []string{"course_id", "day_of_week", "start_time", "end_time"}

// headerKey turns a header cell like "Day of Week" into "day_of_week".
func headerKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// ReadHTML parses schedule items from the first <table> whose header row names the
// required Columns. Each following row becomes one item.
func ReadHTML(r io.Reader, opts Options) ([]schedule.Item, []RowError, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var records []record
	found := false

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}

		// The header is the first row, whether it uses <th> or <td> cells
		index := make(map[string]int)
		rows.First().Find("th, td").Each(func(j int, cell *goquery.Selection) {
			index[headerKey(cell.Text())] = j
		})
		for _, col := range requiredColumns {
			if _, ok := index[col]; !ok {
				return true
			}
		}

		found = true
		rows.Slice(1, goquery.ToEnd).Each(func(j int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() == 0 {
				return
			}
			cell := func(col string) string {
				pos, ok := index[col]
				if !ok || pos >= cells.Length() {
					return ""
				}
				return strings.TrimSpace(cells.Eq(pos).Text())
			}
			records = append(records, record{
				CourseID:  cell("course_id"),
				Name:      cell("name"),
				DayOfWeek: cell("day_of_week"),
				StartTime: cell("start_time"),
				EndTime:   cell("end_time"),
			})
		})
		return false
	})

	if !found {
		return nil, nil, fmt.Errorf("no table with columns %s found", strings.Join(requiredColumns, ", "))
	}

	// Row numbers are counted from the first data row of the table.
	return collect(records, func(i int) int { return i + 1 }, opts)
}
