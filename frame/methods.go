package frame

import "fmt"

// Clone returns a deep copy of the frame. Column order is preserved and
// no backing storage is shared with the receiver.
func (f *Frame) Clone() *Frame {
	c := New()
	for _, name := range f.order {
		c.put(name, f.cols[name].clone())
	}

	return c
}

// Select returns a new frame containing only the named columns, in the
// given order. Column data is copied.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := New()
	for _, name := range names {
		s, ok := f.cols[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		out.put(name, s.clone())
	}

	return out, nil
}

// Drop removes the named columns. Missing names are ignored, mirroring the
// tolerant drop used when trimming optional formant columns.
func (f *Frame) Drop(names ...string) {
	for _, name := range names {
		if _, ok := f.cols[name]; !ok {
			continue
		}
		delete(f.cols, name)
		for i, col := range f.order {
			if col == name {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
}

// RenameColumn renames a column in place, keeping its position.
func (f *Frame) RenameColumn(old, new string) error {
	s, ok := f.cols[old]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, old)
	}
	if old == new {
		return nil
	}
	delete(f.cols, old)
	f.cols[new] = s
	for i, col := range f.order {
		if col == old {
			f.order[i] = new
			break
		}
	}

	return nil
}

// CopyColumn copies the values of column src into column dst, creating dst
// when absent. Used to materialise aliased columns under canonical names.
func (f *Frame) CopyColumn(src, dst string) error {
	s, ok := f.cols[src]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, src)
	}
	f.put(dst, s.clone())

	return nil
}

// SetFrom replaces the values of the named column with the values of the
// same-named column in other. Both columns must exist and row counts must
// match; the column kind follows other.
func (f *Frame) SetFrom(other *Frame, name string) error {
	s, ok := other.cols[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if !f.Has(name) {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if s.len() != f.Len() {
		return fmt.Errorf("%w: column %q", ErrLengthMismatch, name)
	}
	f.cols[name] = s.clone()

	return nil
}

// Filter returns a new frame holding the rows for which mask is true.
func (f *Frame) Filter(mask []bool) (*Frame, error) {
	if len(mask) != f.Len() {
		return nil, fmt.Errorf("%w: mask has %d entries, frame has %d rows",
			ErrBadMask, len(mask), f.Len())
	}
	out := New()
	for _, name := range f.order {
		s := f.cols[name]
		if s.kind == numericKind {
			kept := make([]float64, 0, len(s.nums))
			for i, keep := range mask {
				if keep {
					kept = append(kept, s.nums[i])
				}
			}
			out.put(name, &series{kind: numericKind, nums: kept})
			continue
		}
		kept := make([]string, 0, len(s.labels))
		for i, keep := range mask {
			if keep {
				kept = append(kept, s.labels[i])
			}
		}
		out.put(name, &series{kind: labelKind, labels: kept})
	}

	return out, nil
}

// Append concatenates the rows of other onto the receiver. Both frames must
// have identical column sets and kinds. An empty receiver adopts other's
// schema, so Append can fold a sequence of group results together.
func (f *Frame) Append(other *Frame) error {
	if len(f.order) == 0 {
		for _, name := range other.order {
			f.put(name, other.cols[name].clone())
		}

		return nil
	}
	if len(f.order) != len(other.order) {
		return ErrSchemaMismatch
	}
	for _, name := range f.order {
		s, ok := other.cols[name]
		if !ok || s.kind != f.cols[name].kind {
			return fmt.Errorf("%w: column %q", ErrSchemaMismatch, name)
		}
	}
	for _, name := range f.order {
		dst, src := f.cols[name], other.cols[name]
		if dst.kind == numericKind {
			dst.nums = append(dst.nums, src.nums...)
		} else {
			dst.labels = append(dst.labels, src.labels...)
		}
	}

	return nil
}
