package validation

// ColumnSpec declares a normalizer's column requirements as plain data
// attached to the normalizer, rather than accumulated by decoration.
type ColumnSpec struct {
	// Required lists canonical column names that must be present, directly
	// or through an alias.
	Required []string

	// Choice maps a group name to candidate columns; at least one candidate
	// per group must be present.
	Choice map[string][]string

	// Returns lists the columns the transform produces. Documentation only;
	// never validated against the input frame.
	Returns []string
}

// All returns the union of required and choice column names.
func (s ColumnSpec) All() []string {
	out := append([]string(nil), s.Required...)
	for _, columns := range s.Choice {
		out = append(out, columns...)
	}

	return out
}

// KeywordSpec declares a normalizer's keyword-argument requirements,
// mirroring ColumnSpec for non-column options.
type KeywordSpec struct {
	// Required lists keywords that must be supplied (or defaulted by the
	// normalizer) before the transform runs.
	Required []string

	// Choice maps a group name to candidate keywords; at least one candidate
	// per group must be supplied.
	Choice map[string][]string
}
