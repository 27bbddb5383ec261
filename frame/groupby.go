package frame

import (
	"fmt"
	"sort"
	"strconv"
)

// Group is one partition of a frame: the key value shared by its rows and
// the sub-frame holding those rows.
type Group struct {
	// Key is the group's value of the grouping column, rendered as a string
	// for label columns and via strconv for numeric columns.
	Key string

	// Frame holds the rows belonging to this group. Column data is copied.
	Frame *Frame
}

// GroupBy partitions the frame by the distinct values of the named column.
// Groups are returned in ascending key order (numeric order for numeric
// columns, lexicographic for label columns), so grouping is deterministic
// for a given frame regardless of row order.
func (f *Frame) GroupBy(column string) ([]Group, error) {
	s, ok := f.cols[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	n := f.Len()
	keys := make([]string, n)
	if s.kind == numericKind {
		for i, v := range s.nums {
			keys[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	} else {
		copy(keys, s.labels)
	}

	rows := make(map[string][]int, 8)
	for i := 0; i < n; i++ {
		rows[keys[i]] = append(rows[keys[i]], i)
	}

	distinct := make([]string, 0, len(rows))
	for key := range rows {
		distinct = append(distinct, key)
	}
	if s.kind == numericKind {
		sort.Slice(distinct, func(i, j int) bool {
			a, _ := strconv.ParseFloat(distinct[i], 64)
			b, _ := strconv.ParseFloat(distinct[j], 64)

			return a < b
		})
	} else {
		sort.Strings(distinct)
	}

	groups := make([]Group, 0, len(distinct))
	for _, key := range distinct {
		mask := make([]bool, n)
		for _, i := range rows[key] {
			mask[i] = true
		}
		sub, err := f.Filter(mask)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Key: key, Frame: sub})
	}

	return groups, nil
}
