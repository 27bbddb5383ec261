package intrinsic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonlab/vlnorm/conversion"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/intrinsic"
	"github.com/phonlab/vlnorm/norm"
)

func fixture(t *testing.T) *frame.Frame {
	t.Helper()

	df := frame.New()
	require.NoError(t, df.SetLabels("speaker", []string{"s1", "s1", "s2"}))
	require.NoError(t, df.SetNumeric("f1", []float64{500, 600, 700}))
	require.NoError(t, df.SetNumeric("f2", []float64{1500, 1700, 1900}))

	return df
}

// TestBark_DefaultMethod checks the Traunmuller conversion and that the
// input frame is untouched.
func TestBark_DefaultMethod(t *testing.T) {
	df := fixture(t)

	out, err := intrinsic.NewBark(nil).Normalize(df, nil)
	require.NoError(t, err)

	f1, err := out.Numeric("f1")
	require.NoError(t, err)
	want, err := conversion.HzToBark(500, conversion.Traunmuller)
	require.NoError(t, err)
	assert.InDelta(t, want, f1[0], 1e-12)

	orig, err := df.Numeric("f1")
	require.NoError(t, err)
	assert.Equal(t, 500.0, orig[0], "input frame must not be mutated")
}

// TestBark_MethodOption selects an alternative formula by keyword.
func TestBark_MethodOption(t *testing.T) {
	df := fixture(t)

	out, err := intrinsic.NewBark(nil).Normalize(df, norm.Options{"method": "greenwood"})
	require.NoError(t, err)

	f1, err := out.Numeric("f1")
	require.NoError(t, err)
	want, err := conversion.HzToBark(500, conversion.Greenwood)
	require.NoError(t, err)
	assert.InDelta(t, want, f1[0], 1e-12)
}

// TestBark_UnknownMethod surfaces the conversion error.
func TestBark_UnknownMethod(t *testing.T) {
	_, err := intrinsic.NewBark(nil).Normalize(fixture(t), norm.Options{"method": "nope"})
	assert.ErrorIs(t, err, conversion.ErrUnknownBarkMethod)
}

// TestIntrinsic_Formulas pins one value per scale.
func TestIntrinsic_Formulas(t *testing.T) {
	df := fixture(t)

	cases := []struct {
		normalizer norm.Normalizer
		want       float64
	}{
		{intrinsic.NewErb(nil), 21.4 * math.Log(1+0.00437*500)},
		{intrinsic.NewMel(nil), 1127 * math.Log(1+500.0/700)},
		{intrinsic.NewLog(nil), math.Log(500)},
		{intrinsic.NewLog10(nil), math.Log10(500)},
	}

	for _, tc := range cases {
		out, err := tc.normalizer.Normalize(df, nil)
		require.NoError(t, err, tc.normalizer.Name())
		f1, err := out.Numeric("f1")
		require.NoError(t, err)
		assert.InDelta(t, tc.want, f1[0], 1e-12, tc.normalizer.Name())
	}
}

// TestIntrinsic_Rename writes converted values under fresh columns, leaving
// the originals intact.
func TestIntrinsic_Rename(t *testing.T) {
	df := fixture(t)

	out, err := intrinsic.NewLog(nil).Normalize(df, norm.Options{"rename": "{}_log"})
	require.NoError(t, err)

	f1, err := out.Numeric("f1")
	require.NoError(t, err)
	assert.Equal(t, 500.0, f1[0])

	logF1, err := out.Numeric("f1_log")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(500), logF1[0], 1e-12)
	assert.True(t, out.Has("f2_log"))
}

// TestIntrinsic_SubsetFormants converts only the listed columns.
func TestIntrinsic_SubsetFormants(t *testing.T) {
	df := fixture(t)

	out, err := intrinsic.NewLog(nil).Normalize(df, norm.Options{"formants": []string{"f1"}})
	require.NoError(t, err)

	f1, err := out.Numeric("f1")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(500), f1[0], 1e-12)

	f2, err := out.Numeric("f2")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, f2[0], "unlisted formants untouched")
}
