package norm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phonlab/vlnorm/norm"
)

// TestStats_PopulationStd pins the population (divide-by-n) deviation:
// the values [100, 250] give mean 175 and std 75.
func TestStats_PopulationStd(t *testing.T) {
	xs := []float64{100, 250}

	assert.Equal(t, 175.0, norm.Mean(xs))
	assert.Equal(t, 75.0, norm.PopStd(xs))
}

// TestStats_SkipNaN verifies missing values are dropped, not propagated.
func TestStats_SkipNaN(t *testing.T) {
	xs := []float64{math.NaN(), 10, 20, math.NaN()}

	assert.Equal(t, 15.0, norm.Mean(xs))
	assert.Equal(t, 20.0, norm.Max(xs))
	assert.Equal(t, 10.0, norm.Min(xs))
	assert.InDelta(t, (math.Log(10)+math.Log(20))/2, norm.MeanLog(xs), 1e-12)
}

// TestStats_EmptyIsNaN verifies degenerate inputs surface as NaN.
func TestStats_EmptyIsNaN(t *testing.T) {
	empty := []float64{math.NaN()}

	assert.True(t, math.IsNaN(norm.Mean(empty)))
	assert.True(t, math.IsNaN(norm.PopStd(nil)))
	assert.True(t, math.IsNaN(norm.Max(empty)))
	assert.True(t, math.IsNaN(norm.Min(nil)))
	assert.True(t, math.IsNaN(norm.MeanLog(nil)))
}

// TestStats_MeanWhere verifies masked means.
func TestStats_MeanWhere(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	mask := []bool{true, false, true, false}

	assert.Equal(t, 2.0, norm.MeanWhere(xs, mask))
	assert.True(t, math.IsNaN(norm.MeanWhere(xs, []bool{false, false, false, false})))
}
