package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/validation"
)

func vowelFrame(t *testing.T, columns ...string) *frame.Frame {
	t.Helper()
	f := frame.New()
	for _, column := range columns {
		require.NoError(t, f.SetNumeric(column, []float64{1, 2}))
	}

	return f
}

// TestValidateRequiredColumns_Present passes when all columns resolve.
func TestValidateRequiredColumns_Present(t *testing.T) {
	df := vowelFrame(t, "speaker", "f1")

	err := validation.ValidateRequiredColumns("lobanov", df, []string{"speaker", "f1"}, nil)
	assert.NoError(t, err)
}

// TestValidateRequiredColumns_Missing distinguishes the plain-missing case.
func TestValidateRequiredColumns_Missing(t *testing.T) {
	df := vowelFrame(t, "f1")

	err := validation.ValidateRequiredColumns("lobanov", df, []string{"speaker"}, nil)
	assert.ErrorIs(t, err, validation.ErrRequiredColumnMissing)

	var missing *validation.RequiredColumnMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "lobanov", missing.Normalizer)
	assert.Equal(t, "speaker", missing.Column)
}

// TestValidateRequiredColumns_AliasMissing distinguishes the aliased case:
// an alias is configured but its target is absent.
func TestValidateRequiredColumns_AliasMissing(t *testing.T) {
	df := vowelFrame(t, "f1")
	aliases := map[string]string{"speaker": "participant"}

	err := validation.ValidateRequiredColumns("lobanov", df, []string{"speaker"}, aliases)
	assert.ErrorIs(t, err, validation.ErrRequiredColumnAliasMissing)
	assert.NotErrorIs(t, err, validation.ErrRequiredColumnMissing)

	var missing *validation.RequiredColumnAliasMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "participant", missing.Alias)
}

// TestValidateRequiredColumns_AliasPresent passes when the aliased target exists.
func TestValidateRequiredColumns_AliasPresent(t *testing.T) {
	df := vowelFrame(t, "participant", "f1")
	aliases := map[string]string{"speaker": "participant"}

	err := validation.ValidateRequiredColumns("lobanov", df, []string{"speaker"}, aliases)
	assert.NoError(t, err)
}

// TestValidateChoiceColumns covers satisfied, missing and alias-missing groups.
func TestValidateChoiceColumns(t *testing.T) {
	formants := map[string][]string{"formants": {"f0", "f1", "f2", "f3"}}

	// One member present satisfies the group.
	err := validation.ValidateChoiceColumns("bark", vowelFrame(t, "f2"), formants, nil)
	assert.NoError(t, err)

	// No member present fails with the plain choice error.
	err = validation.ValidateChoiceColumns("bark", vowelFrame(t, "vowel"), formants, nil)
	assert.ErrorIs(t, err, validation.ErrChoiceColumnMissing)

	var missing *validation.ChoiceColumnMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "formants", missing.Group)
	assert.Equal(t, []string{"f0", "f1", "f2", "f3"}, missing.Columns)

	// An aliased member whose target is absent fails with the alias error.
	aliases := map[string]string{"f1": "F1hz"}
	err = validation.ValidateChoiceColumns("bark", vowelFrame(t, "vowel"), formants, aliases)
	assert.ErrorIs(t, err, validation.ErrChoiceColumnAliasMissing)

	var aliasMissing *validation.ChoiceColumnAliasMissingError
	require.ErrorAs(t, err, &aliasMissing)
	assert.Equal(t, "f1", aliasMissing.Column)
	assert.Equal(t, "F1hz", aliasMissing.Alias)

	// An aliased member whose target exists satisfies the group.
	err = validation.ValidateChoiceColumns("bark", vowelFrame(t, "F1hz"), formants, aliases)
	assert.NoError(t, err)
}

// TestValidateKeywords covers required and choice keyword checks.
func TestValidateKeywords(t *testing.T) {
	spec := validation.KeywordSpec{
		Required: []string{"fleece", "trap"},
		Choice:   map[string][]string{"gender_label": {"female", "male"}},
	}

	err := validation.ValidateKeywords("wattfabricius", spec, map[string]any{
		"fleece": "i:", "trap": "a", "female": "F",
	})
	assert.NoError(t, err)

	err = validation.ValidateKeywords("wattfabricius", spec, map[string]any{"fleece": "i:", "female": "F"})
	assert.ErrorIs(t, err, validation.ErrRequiredKeywordMissing)

	var kw *validation.RequiredKeywordMissingError
	require.ErrorAs(t, err, &kw)
	assert.Equal(t, "trap", kw.Keyword)

	err = validation.ValidateKeywords("wattfabricius", spec, map[string]any{"fleece": "i:", "trap": "a"})
	assert.ErrorIs(t, err, validation.ErrChoiceKeywordMissing)

	// A nil value does not satisfy a requirement.
	err = validation.ValidateRequiredKeywords("bladen", []string{"gender"}, map[string]any{"gender": nil})
	assert.ErrorIs(t, err, validation.ErrRequiredKeywordMissing)
}

// TestValidateGroups rejects grouping columns that collide with declared
// columns, on either side of the alias map.
func TestValidateGroups(t *testing.T) {
	choice := map[string][]string{"formants": {"f0", "f1", "f2", "f3"}}

	err := validation.ValidateGroups("custom", []string{"vowel"}, choice, []string{"gender"}, nil)
	assert.NoError(t, err)

	err = validation.ValidateGroups("custom", []string{"vowel"}, choice, []string{"vowel"}, nil)
	assert.ErrorIs(t, err, validation.ErrGroupsContainRequiredColumn)

	err = validation.ValidateGroups("custom", []string{"vowel"}, choice, []string{"f1"}, nil)
	assert.ErrorIs(t, err, validation.ErrGroupsContainChoiceColumn)

	// Alias collisions count: grouping by the column f1 is aliased to.
	aliases := map[string]string{"f1": "F1hz"}
	err = validation.ValidateGroups("custom", nil, choice, []string{"F1hz"}, aliases)
	assert.ErrorIs(t, err, validation.ErrGroupsContainChoiceColumn)

	var collision *validation.GroupsContainChoiceColumnError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "F1hz", collision.Group)
	assert.Equal(t, "f1", collision.Column)
}

// TestColumnSpec_All flattens required and choice names.
func TestColumnSpec_All(t *testing.T) {
	spec := validation.ColumnSpec{
		Required: []string{"speaker"},
		Choice:   map[string][]string{"formants": {"f1", "f2"}},
	}
	all := spec.All()
	assert.ElementsMatch(t, []string{"speaker", "f1", "f2"}, all)
}

// TestErrors_AreDistinct guards against two kinds matching each other's sentinel.
func TestErrors_AreDistinct(t *testing.T) {
	err := &validation.RequiredColumnMissingError{Normalizer: "x", Column: "c"}
	assert.False(t, errors.Is(err, validation.ErrChoiceColumnMissing))
	assert.False(t, errors.Is(err, validation.ErrRequiredColumnAliasMissing))
}
