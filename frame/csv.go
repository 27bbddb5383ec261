package frame

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrNoHeader indicates CSV input without a header row (empty input).
var ErrNoHeader = errors.New("frame: csv input has no header row")

// ReadCSV reads delimited text with a header row into a Frame.
// A column is numeric when every non-empty cell parses as a float;
// empty cells become NaN in numeric columns and "" in label columns.
func ReadCSV(r io.Reader, sep rune) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	cells := make([][]string, len(header))
	for _, record := range records[1:] {
		for i := range header {
			value := ""
			if i < len(record) {
				value = record[i]
			}
			cells[i] = append(cells[i], value)
		}
	}

	f := New()
	for i, name := range header {
		if nums, ok := parseNumeric(cells[i]); ok {
			if err := f.SetNumeric(name, nums); err != nil {
				return nil, err
			}
			continue
		}
		if err := f.SetLabels(name, cells[i]); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// parseNumeric attempts a full-column float parse. A column of only empty
// cells is treated as a label column.
func parseNumeric(cells []string) ([]float64, bool) {
	nums := make([]float64, len(cells))
	seen := false
	for i, cell := range cells {
		if cell == "" {
			nums[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = v
		seen = true
	}

	return nums, seen
}

// WriteCSV writes the frame as delimited text with a header row.
// NaN values are written as empty cells.
func (f *Frame) WriteCSV(w io.Writer, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep

	if err := cw.Write(f.order); err != nil {
		return err
	}
	record := make([]string, len(f.order))
	for i := 0; i < f.Len(); i++ {
		for j, name := range f.order {
			s := f.cols[name]
			if s.kind == labelKind {
				record[j] = s.labels[i]
				continue
			}
			if math.IsNaN(s.nums[i]) {
				record[j] = ""
				continue
			}
			record[j] = strconv.FormatFloat(s.nums[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSVFile reads a CSV file from disk. See ReadCSV.
func ReadCSVFile(path string, sep rune) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file, sep)
}

// WriteCSVFile writes the frame to a CSV file on disk. See WriteCSV.
func (f *Frame) WriteCSVFile(path string, sep rune) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return f.WriteCSV(file, sep)
}
