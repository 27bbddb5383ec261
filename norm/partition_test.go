package norm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonlab/vlnorm/formants"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/norm"
)

// doubler doubles every formant column in place.
type doubler struct{}

func (doubler) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		nums, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		for i := range nums {
			nums[i] *= 2
		}
	}

	return g, nil
}

// maxScaler divides each formant by the per-group maximum stored by its action.
type maxScaler struct{}

func (maxScaler) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		nums, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		max := ctx.Constants[column+"_max"]
		for i := range nums {
			nums[i] /= max
		}
	}

	return g, nil
}

func maxAction(g *frame.Frame, ctx *norm.Context) error {
	for _, column := range ctx.FormantColumns {
		nums, err := g.Numeric(column)
		if err != nil {
			return err
		}
		ctx.Constants[column+"_max"] = norm.Max(nums)
	}

	return nil
}

func partitionFixture(t *testing.T) *frame.Frame {
	t.Helper()
	f := frame.New()
	require.NoError(t, f.SetLabels("speaker", []string{"s1", "s1", "s2", "s2"}))
	require.NoError(t, f.SetNumeric("f1", []float64{100, 200, 300, 600}))
	require.NoError(t, f.SetNumeric("f2", []float64{1000, 2000, 1500, 3000}))

	return f
}

func configFor(df *frame.Frame, groups []string, actions map[string]norm.Action) *norm.PartitionConfig {
	rows, _ := formants.Resolve(formants.Spec{}, df)

	return &norm.PartitionConfig{
		Formants:  rows,
		Groups:    groups,
		Actions:   actions,
		Constants: norm.Constants{},
		Options:   norm.Options{},
	}
}

// TestPartition_LeafOverwritesInPlace verifies the no-rename contract:
// formant columns are overwritten, no new columns appear, and the caller's
// frame stays untouched.
func TestPartition_LeafOverwritesInPlace(t *testing.T) {
	df := partitionFixture(t)

	out, err := norm.Partition(df, doubler{}, configFor(df, nil, nil))
	require.NoError(t, err)

	assert.Equal(t, df.Columns(), out.Columns(), "no new columns without rename")
	f1, err := out.Numeric("f1")
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 400, 600, 1200}, f1)

	orig, err := df.Numeric("f1")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300, 600}, orig, "input frame must not be mutated")
}

// TestPartition_RenameAddsColumns verifies the rename contract: originals
// retained, one new column per formant under the rendered name.
func TestPartition_RenameAddsColumns(t *testing.T) {
	df := partitionFixture(t)
	cfg := configFor(df, nil, nil)
	cfg.Rename = "{}_N"

	out, err := norm.Partition(df, doubler{}, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"speaker", "f1", "f2", "f1_N", "f2_N"}, out.Columns())
	f1, err := out.Numeric("f1")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300, 600}, f1, "original column unchanged under rename")

	f1n, err := out.Numeric("f1_N")
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 400, 600, 1200}, f1n)
}

// TestPartition_GroupedConstants verifies that each group's action runs
// before its transform and that rows are conserved across concatenation.
func TestPartition_GroupedConstants(t *testing.T) {
	df := partitionFixture(t)
	cfg := configFor(df, []string{"speaker"}, map[string]norm.Action{"speaker": maxAction})

	out, err := norm.Partition(df, maxScaler{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, df.Len(), out.Len(), "row count conserved")

	f1, err := out.Numeric("f1")
	require.NoError(t, err)
	// s1 scaled by 200, s2 scaled by 600; groups concatenate in ascending
	// key order.
	assert.Equal(t, []float64{0.5, 1, 0.5, 1}, f1)
}

// TestPartition_SiblingGroupsOverwriteConstants pins the shared-constants
// semantic: the same map is reused across sibling groups, so after the run
// it holds the last group's values.
func TestPartition_SiblingGroupsOverwriteConstants(t *testing.T) {
	df := partitionFixture(t)
	cfg := configFor(df, []string{"speaker"}, map[string]norm.Action{"speaker": maxAction})

	_, err := norm.Partition(df, maxScaler{}, cfg)
	require.NoError(t, err)

	assert.Equal(t, 600.0, cfg.Constants["f1_max"], "constants hold the last sibling's values")
	assert.Equal(t, 3000.0, cfg.Constants["f2_max"])
}

// TestPartition_AliasedGroupAndFormants verifies alias resolution for the
// grouping column and canonical-name preparation for the transform.
func TestPartition_AliasedGroupAndFormants(t *testing.T) {
	df := partitionFixture(t)
	require.NoError(t, df.RenameColumn("speaker", "participant"))
	require.NoError(t, df.RenameColumn("f1", "F1hz"))

	rows := []formants.Row{{"", "F1hz", "f2", ""}}
	cfg := &norm.PartitionConfig{
		Formants:  rows,
		Groups:    []string{"speaker"},
		Actions:   map[string]norm.Action{"speaker": maxAction},
		Constants: norm.Constants{},
		Aliases:   map[string]string{"speaker": "participant", "f1": "F1hz"},
		Options:   norm.Options{},
	}

	out, err := norm.Partition(df, maxScaler{}, cfg)
	require.NoError(t, err)

	f1, err := out.Numeric("F1hz")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 0.5, 1}, f1)
	assert.False(t, out.Has("speaker"), "canonical copies stay in the working frame only")
}

// TestPartition_NoFormantsIsNoop verifies the degenerate leaf: zero
// surviving formant columns copy the frame through unchanged.
func TestPartition_NoFormantsIsNoop(t *testing.T) {
	df := frame.New()
	require.NoError(t, df.SetLabels("vowel", []string{"i", "a"}))

	cfg := &norm.PartitionConfig{
		Formants:  []formants.Row{{"f0", "f1", "f2", "f3"}},
		Constants: norm.Constants{},
		Options:   norm.Options{},
	}
	out, err := norm.Partition(df, doubler{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, []string{"vowel"}, out.Columns())
}

// TestPartition_TwoLevelGrouping verifies recursion order: outer groups
// before inner groups, actions at each level.
func TestPartition_TwoLevelGrouping(t *testing.T) {
	df := frame.New()
	require.NoError(t, df.SetLabels("gender", []string{"F", "F", "M", "M"}))
	require.NoError(t, df.SetLabels("speaker", []string{"s1", "s2", "s3", "s4"}))
	require.NoError(t, df.SetNumeric("f1", []float64{100, 200, 300, 400}))

	var order []string
	trace := func(level string) norm.Action {
		return func(g *frame.Frame, ctx *norm.Context) error {
			labels, err := g.Labels(level)
			if err != nil {
				return err
			}
			order = append(order, level+":"+labels[0])

			return maxAction(g, ctx)
		}
	}

	cfg := configFor(df, []string{"gender", "speaker"}, map[string]norm.Action{
		"gender":  trace("gender"),
		"speaker": trace("speaker"),
	})
	out, err := norm.Partition(df, maxScaler{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Len())
	assert.Equal(t, []string{
		"gender:F", "speaker:s1", "speaker:s2",
		"gender:M", "speaker:s3", "speaker:s4",
	}, order, "outer group action precedes inner group actions")
}
