package frame

import (
	"errors"
	"fmt"
)

// Sentinel errors for frame operations.
var (
	// ErrColumnNotFound indicates an operation referenced a non-existent column.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrColumnType indicates a numeric accessor was used on a label column
	// or vice versa.
	ErrColumnType = errors.New("frame: column has wrong type")

	// ErrLengthMismatch indicates a column of the wrong length was added to a
	// non-empty frame.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrSchemaMismatch indicates two frames with different column sets were
	// concatenated.
	ErrSchemaMismatch = errors.New("frame: column sets differ")

	// ErrBadMask indicates a boolean mask whose length differs from the frame.
	ErrBadMask = errors.New("frame: mask length mismatch")
)

// kind discriminates the two series types a Frame can hold.
type kind int

const (
	numericKind kind = iota
	labelKind
)

// series is a single column: exactly one of nums/labels is populated,
// selected by kind.
type series struct {
	kind   kind
	nums   []float64
	labels []string
}

func (s *series) len() int {
	if s.kind == numericKind {
		return len(s.nums)
	}

	return len(s.labels)
}

func (s *series) clone() *series {
	c := &series{kind: s.kind}
	if s.kind == numericKind {
		c.nums = append([]float64(nil), s.nums...)
	} else {
		c.labels = append([]string(nil), s.labels...)
	}

	return c
}

// Frame is an ordered collection of equally-long named columns.
// The zero value is not usable; construct with New.
type Frame struct {
	// order preserves column insertion order for iteration and CSV output.
	order []string
	cols  map[string]*series
}

// New returns an empty Frame with no columns and no rows.
func New() *Frame {
	return &Frame{cols: make(map[string]*series)}
}

// Len reports the number of rows. An empty frame has zero rows.
func (f *Frame) Len() int {
	for _, name := range f.order {
		return f.cols[name].len()
	}

	return 0
}

// Columns returns the column names in insertion order.
// The returned slice is a copy.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.order...)
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// IsNumeric reports whether the named column exists and is numeric.
func (f *Frame) IsNumeric(name string) bool {
	s, ok := f.cols[name]
	return ok && s.kind == numericKind
}

// Numeric returns the backing float64 slice of a numeric column.
// Mutating the slice mutates the frame; Clone first when that is unwanted.
func (f *Frame) Numeric(name string) ([]float64, error) {
	s, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if s.kind != numericKind {
		return nil, fmt.Errorf("%w: %q is not numeric", ErrColumnType, name)
	}

	return s.nums, nil
}

// Labels returns the backing string slice of a label column.
// Mutating the slice mutates the frame; Clone first when that is unwanted.
func (f *Frame) Labels(name string) ([]string, error) {
	s, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if s.kind != labelKind {
		return nil, fmt.Errorf("%w: %q is not a label column", ErrColumnType, name)
	}

	return s.labels, nil
}

// SetNumeric adds or replaces a numeric column. The values slice is not
// copied. Length must match the frame unless the frame is empty.
func (f *Frame) SetNumeric(name string, values []float64) error {
	if err := f.checkLen(name, len(values)); err != nil {
		return err
	}
	f.put(name, &series{kind: numericKind, nums: values})

	return nil
}

// SetLabels adds or replaces a label column. The values slice is not
// copied. Length must match the frame unless the frame is empty.
func (f *Frame) SetLabels(name string, values []string) error {
	if err := f.checkLen(name, len(values)); err != nil {
		return err
	}
	f.put(name, &series{kind: labelKind, labels: values})

	return nil
}

// checkLen verifies a candidate column length against the frame, ignoring
// the column being replaced.
func (f *Frame) checkLen(name string, n int) error {
	for _, col := range f.order {
		if col == name {
			continue
		}
		if f.cols[col].len() != n {
			return fmt.Errorf("%w: column %q has %d values, frame has %d rows",
				ErrLengthMismatch, name, n, f.cols[col].len())
		}

		return nil
	}

	return nil
}

func (f *Frame) put(name string, s *series) {
	if _, exists := f.cols[name]; !exists {
		f.order = append(f.order, name)
	}
	f.cols[name] = s
}
