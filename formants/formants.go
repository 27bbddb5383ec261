package formants

import (
	"errors"
	"fmt"

	"github.com/phonlab/vlnorm/frame"
)

// MaxFormants is the number of formant slots (f0..f3).
const MaxFormants = 4

// SlotNames lists the canonical slot names in slot order.
var SlotNames = [MaxFormants]string{"f0", "f1", "f2", "f3"}

// Sentinel errors for formant specification handling.
var (
	// ErrBadSlot indicates a map key outside f0..f3.
	ErrBadSlot = errors.New("formants: unknown formant slot")

	// ErrMalformedSpec indicates a specification that cannot be
	// canonicalised: ragged multi-track slots or an over-long column list.
	ErrMalformedSpec = errors.New("formants: malformed specification")
)

// Row maps each formant slot to one column name; the empty string marks an
// absent slot.
type Row [MaxFormants]string

// Columns returns the non-empty column names of the row, in slot order.
func (r Row) Columns() []string {
	out := make([]string, 0, MaxFormants)
	for _, column := range r {
		if column != "" {
			out = append(out, column)
		}
	}

	return out
}

// Present returns a copy of the row with columns absent from df emptied.
// Missing formant columns are non-fatal and simply drop out of the
// transform.
func (r Row) Present(df *frame.Frame) Row {
	out := r
	for i, column := range out {
		if column != "" && !df.Has(column) {
			out[i] = ""
		}
	}

	return out
}

// Spec holds a caller-supplied formant specification in one of its
// accepted shapes. Slots wins over List when both are set.
type Spec struct {
	// List names formant columns without per-slot tracks. Entries equal to a
	// canonical slot name bind to that slot; the rest fill free slots in order.
	List []string

	// Slots holds per-slot column names; a slot with several entries
	// describes multiple measurement tracks.
	Slots [MaxFormants][]string
}

// IsZero reports whether no formants were specified.
func (s Spec) IsZero() bool {
	if len(s.List) > 0 {
		return false
	}
	for _, slot := range s.Slots {
		if len(slot) > 0 {
			return false
		}
	}

	return true
}

// FromMap builds a Spec from a map keyed by slot name. Values hold one or
// more column names per slot.
func FromMap(m map[string][]string) (Spec, error) {
	var spec Spec
	for key, columns := range m {
		slot := slotIndex(key)
		if slot < 0 {
			return Spec{}, fmt.Errorf("%w: %q", ErrBadSlot, key)
		}
		spec.Slots[slot] = append([]string(nil), columns...)
	}

	return spec, nil
}

func slotIndex(name string) int {
	for i, slot := range SlotNames {
		if slot == name {
			return i
		}
	}

	return -1
}

// Resolve canonicalises a Spec against a frame into formant rows.
//
// Per-slot specifications broadcast single-column slots to the length of
// the longest slot; a slot with more than one but fewer than the maximum
// number of tracks is malformed. List specifications produce a single row.
// An empty Spec resolves to the canonical slots present in df.
func Resolve(spec Spec, df *frame.Frame) ([]Row, error) {
	if hasSlots(spec) {
		return resolveSlots(spec.Slots)
	}
	if len(spec.List) > 0 {
		row, err := resolveList(spec.List)
		if err != nil {
			return nil, err
		}

		return []Row{row}, nil
	}

	var row Row
	for i, slot := range SlotNames {
		if df.Has(slot) {
			row[i] = slot
		}
	}

	return []Row{row}, nil
}

func hasSlots(spec Spec) bool {
	for _, slot := range spec.Slots {
		if len(slot) > 0 {
			return true
		}
	}

	return false
}

func resolveSlots(slots [MaxFormants][]string) ([]Row, error) {
	depth := 0
	for _, slot := range slots {
		if len(slot) > depth {
			depth = len(slot)
		}
	}

	rows := make([]Row, depth)
	for i, slot := range slots {
		switch {
		case len(slot) == 0:
			// absent slot in every row
		case len(slot) == 1:
			for j := range rows {
				rows[j][i] = slot[0]
			}
		case len(slot) == depth:
			for j := range rows {
				rows[j][i] = slot[j]
			}
		default:
			return nil, fmt.Errorf("%w: slot %s has %d tracks, expected 1 or %d",
				ErrMalformedSpec, SlotNames[i], len(slot), depth)
		}
	}

	return rows, nil
}

func resolveList(list []string) (Row, error) {
	var row Row

	// First pass binds canonical names to their own slots.
	rest := make([]string, 0, len(list))
	for _, column := range list {
		if slot := slotIndex(column); slot >= 0 {
			row[slot] = column
			continue
		}
		rest = append(rest, column)
	}

	// Remaining names fill free slots in order.
	slot := 0
	for _, column := range rest {
		for slot < MaxFormants && row[slot] != "" {
			slot++
		}
		if slot == MaxFormants {
			return Row{}, fmt.Errorf("%w: more than %d formant columns", ErrMalformedSpec, MaxFormants)
		}
		row[slot] = column
		slot++
	}

	return row, nil
}

// Columns returns the union of all column names across rows, in first-seen
// order.
func Columns(rows []Row) []string {
	seen := make(map[string]bool, MaxFormants)
	out := make([]string, 0, MaxFormants)
	for _, row := range rows {
		for _, column := range row.Columns() {
			if !seen[column] {
				seen[column] = true
				out = append(out, column)
			}
		}
	}

	return out
}
