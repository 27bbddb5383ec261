package norm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonlab/vlnorm/formants"
	"github.com/phonlab/vlnorm/norm"
)

// TestOptions_MergeWins verifies call-time options override defaults and
// nil values are ignored.
func TestOptions_MergeWins(t *testing.T) {
	defaults := norm.Options{"rename": "{}_A", "fleece": "i:"}
	merged := defaults.Merge(norm.Options{"rename": "{}_B", "trap": nil})

	assert.Equal(t, "{}_B", merged.Rename())
	assert.Equal(t, "i:", merged["fleece"])
	assert.NotContains(t, merged, "trap")
	assert.Equal(t, "{}_A", defaults.Rename(), "merge must not mutate the receiver")
}

// TestOptions_Strings covers the accepted list shapes.
func TestOptions_Strings(t *testing.T) {
	opts := norm.Options{
		"one":   "a",
		"many":  []string{"a", "b"},
		"mixed": []any{"a", "b"},
	}

	assert.Equal(t, []string{"a"}, opts.Strings("one"))
	assert.Equal(t, []string{"a", "b"}, opts.Strings("many"))
	assert.Equal(t, []string{"a", "b"}, opts.Strings("mixed"))
	assert.Nil(t, opts.Strings("missing"))
}

// TestOptions_FormantSpec builds specs from the formants key and the slot keys.
func TestOptions_FormantSpec(t *testing.T) {
	spec, err := norm.Options{"formants": []string{"f1", "f2"}}.FormantSpec()
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2"}, spec.List)

	spec, err = norm.Options{"f0": []string{"f0@20", "f0@50"}, "f1": "f1"}.FormantSpec()
	require.NoError(t, err)
	rows, err := formants.Resolve(spec, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "f0@20", rows[0][0])
	assert.Equal(t, "f1", rows[1][1])

	spec, err = norm.Options{}.FormantSpec()
	require.NoError(t, err)
	assert.True(t, spec.IsZero())
}
