package norm

import (
	"github.com/phonlab/vlnorm/formants"
)

// Options carries normalizer keyword arguments: column aliases (a canonical
// column name keyed to the actual name), formant specifications, the rename
// pattern, and normalizer-specific keywords (fleece, trap, apices, ...).
type Options map[string]any

// Clone returns a shallow copy of the options.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for key, value := range o {
		out[key] = value
	}

	return out
}

// Merge returns a copy of o with other's entries overriding; call-time
// options win over constructor defaults. Nil values in other are ignored.
func (o Options) Merge(other Options) Options {
	out := o.Clone()
	for key, value := range other {
		if value != nil {
			out[key] = value
		}
	}

	return out
}

// String returns the option as a string, when set and string-typed.
func (o Options) String(key string) (string, bool) {
	value, ok := o[key].(string)
	return value, ok && value != ""
}

// Strings returns the option as a string list: a single string becomes a
// one-element list; []string and []any of strings pass through.
func (o Options) Strings(key string) []string {
	switch value := o[key].(type) {
	case string:
		if value == "" {
			return nil
		}

		return []string{value}
	case []string:
		return append([]string(nil), value...)
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	}

	return nil
}

// Bool returns the option as a bool; unset or non-bool values are false.
func (o Options) Bool(key string) bool {
	value, _ := o[key].(bool)
	return value
}

// Rename returns the rename pattern ("{}"-style format string), or "".
func (o Options) Rename() string {
	pattern, _ := o.String("rename")
	return pattern
}

// FormantSpec assembles a formants.Spec from the options: the "formants"
// key gives an explicit list, the slot keys f0..f3 give per-slot columns
// (one name or several tracks each).
func (o Options) FormantSpec() (formants.Spec, error) {
	if list := o.Strings("formants"); len(list) > 0 {
		return formants.Spec{List: list}, nil
	}

	slots := make(map[string][]string, formants.MaxFormants)
	for _, slot := range formants.SlotNames {
		if columns := o.Strings(slot); len(columns) > 0 {
			slots[slot] = columns
		}
	}
	if len(slots) == 0 {
		return formants.Spec{}, nil
	}

	return formants.FromMap(slots)
}

// aliasesFor extracts the alias map for a set of canonical column names:
// an option whose key is a canonical name and whose value is a different
// column name establishes an alias.
func aliasesFor(columns []string, opts Options) map[string]string {
	aliases := make(map[string]string)
	for _, column := range columns {
		if actual, ok := opts.String(column); ok && actual != column {
			aliases[column] = actual
		}
	}

	return aliases
}
