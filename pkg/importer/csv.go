package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"kumoov/pkg/schedule"
)

// lineReader remembers the line each record starts on, so quoted fields
// spanning several lines do not shift the numbers of later rows.
type lineReader struct {
	*csv.Reader
	lines []int
}

func (r *lineReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := r.FieldPos(0)
		r.lines = append(r.lines, line)
		rows = append(rows, row)
	}
}

// ReadCSV parses schedule items from CSV with a header row naming the Columns.
// Day names are normalized ("monday" becomes "Monday"); rows that still fail
// validation are skipped and reported, or abort the import in strict mode.
func ReadCSV(r io.Reader, delim rune, opts Options) ([]schedule.Item, []RowError, error) {
	reader := &lineReader{Reader: csv.NewReader(r)}
	reader.Comma = delim
	reader.TrimLeadingSpace = true

	var records []record
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	// lines[0] is the header.
	return collect(records, func(i int) int { return reader.lines[i+1] }, opts)
}

// WriteCSV writes items with a header row, in the format ReadCSV accepts.
func WriteCSV(items []schedule.Item, delim rune, w io.Writer) error {
	records := make([]record, 0, len(items))
	for _, it := range items {
		records = append(records, record{
			CourseID:  it.CourseID,
			Name:      it.Name,
			DayOfWeek: string(it.DayOfWeek),
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
		})
	}

	writer := csv.NewWriter(w)
	writer.Comma = delim

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
