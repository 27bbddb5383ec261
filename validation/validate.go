package validation

import (
	"sort"

	"github.com/phonlab/vlnorm/frame"
)

// Resolve maps a canonical column name through the alias map, returning the
// name unchanged when no alias is configured.
func Resolve(column string, aliases map[string]string) string {
	if alias, ok := aliases[column]; ok && alias != "" {
		return alias
	}

	return column
}

// ValidateColumns runs the required and choice column checks of a spec.
func ValidateColumns(name string, df *frame.Frame, spec ColumnSpec, aliases map[string]string) error {
	if err := ValidateRequiredColumns(name, df, spec.Required, aliases); err != nil {
		return err
	}

	return ValidateChoiceColumns(name, df, spec.Choice, aliases)
}

// ValidateRequiredColumns checks that every required column resolves, via
// the alias map, to a column of the frame. A missing unaliased column fails
// with RequiredColumnMissingError; a configured alias whose target is absent
// fails with RequiredColumnAliasMissingError.
func ValidateRequiredColumns(name string, df *frame.Frame, required []string, aliases map[string]string) error {
	for _, column := range required {
		resolved := Resolve(column, aliases)
		if df.Has(resolved) {
			continue
		}
		if resolved != column {
			return &RequiredColumnAliasMissingError{Normalizer: name, Column: column, Alias: resolved}
		}

		return &RequiredColumnMissingError{Normalizer: name, Column: column}
	}

	return nil
}

// ValidateChoiceColumns checks that at least one candidate of every choice
// group resolves to a present column. When a group fails and one of its
// candidates had an alias, the failure is ChoiceColumnAliasMissingError,
// identifying that candidate; otherwise ChoiceColumnMissingError.
func ValidateChoiceColumns(name string, df *frame.Frame, choice map[string][]string, aliases map[string]string) error {
	for _, group := range sortedKeys(choice) {
		columns := choice[group]
		satisfied := false
		aliased := ""
		for _, column := range columns {
			resolved := Resolve(column, aliases)
			if df.Has(resolved) {
				satisfied = true
				break
			}
			if resolved != column && aliased == "" {
				aliased = column
			}
		}
		if satisfied {
			continue
		}
		if aliased != "" {
			return &ChoiceColumnAliasMissingError{
				Normalizer: name,
				Group:      group,
				Columns:    columns,
				Column:     aliased,
				Alias:      Resolve(aliased, aliases),
			}
		}

		return &ChoiceColumnMissingError{Normalizer: name, Group: group, Columns: columns}
	}

	return nil
}

// ValidateKeywords runs the required and choice keyword checks of a spec.
func ValidateKeywords(name string, spec KeywordSpec, kwargs map[string]any) error {
	if err := ValidateRequiredKeywords(name, spec.Required, kwargs); err != nil {
		return err
	}

	return ValidateChoiceKeywords(name, spec.Choice, kwargs)
}

// ValidateRequiredKeywords checks that every required keyword has a
// non-nil value in kwargs.
func ValidateRequiredKeywords(name string, required []string, kwargs map[string]any) error {
	for _, keyword := range required {
		if value, ok := kwargs[keyword]; !ok || value == nil {
			return &RequiredKeywordMissingError{Normalizer: name, Keyword: keyword}
		}
	}

	return nil
}

// ValidateChoiceKeywords checks that at least one candidate of every choice
// keyword group has a non-nil value in kwargs.
func ValidateChoiceKeywords(name string, choice map[string][]string, kwargs map[string]any) error {
	for _, group := range sortedKeys(choice) {
		keywords := choice[group]
		satisfied := false
		for _, keyword := range keywords {
			if value, ok := kwargs[keyword]; ok && value != nil {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return &ChoiceKeywordMissingError{Normalizer: name, Group: group, Keywords: keywords}
		}
	}

	return nil
}

// ValidateGroups rejects grouping columns that coincide, after alias
// resolution on both sides, with a required or choice column. Grouping by a
// column that is itself data being normalized is disallowed.
func ValidateGroups(name string, required []string, choice map[string][]string, groups []string, aliases map[string]string) error {
	for _, group := range groups {
		resolved := Resolve(group, aliases)
		for _, column := range required {
			if resolved == Resolve(column, aliases) {
				return &GroupsContainRequiredColumnError{Normalizer: name, Group: group, Column: column}
			}
		}
		for _, key := range sortedKeys(choice) {
			for _, column := range choice[key] {
				if resolved == Resolve(column, aliases) {
					return &GroupsContainChoiceColumnError{Normalizer: name, Group: group, Column: column}
				}
			}
		}
	}

	return nil
}

// sortedKeys keeps group iteration deterministic so the first failing group
// is stable across runs.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
