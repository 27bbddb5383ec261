package norm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Column statistics used by normalizer actions. All of them skip NaN
// entries (missing values) and return NaN on an empty or all-NaN column,
// so numeric degeneracies surface as NaN rather than panics.

// Finite returns the non-NaN values of xs.
func Finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}

	return out
}

// Mean is the NaN-skipping arithmetic mean.
func Mean(xs []float64) float64 {
	finite := Finite(xs)
	if len(finite) == 0 {
		return math.NaN()
	}

	return stat.Mean(finite, nil)
}

// PopStd is the NaN-skipping population standard deviation (dividing by n,
// not n-1).
func PopStd(xs []float64) float64 {
	finite := Finite(xs)
	if len(finite) == 0 {
		return math.NaN()
	}

	return stat.PopStdDev(finite, nil)
}

// Max is the NaN-skipping maximum.
func Max(xs []float64) float64 {
	finite := Finite(xs)
	if len(finite) == 0 {
		return math.NaN()
	}

	return floats.Max(finite)
}

// Min is the NaN-skipping minimum.
func Min(xs []float64) float64 {
	finite := Finite(xs)
	if len(finite) == 0 {
		return math.NaN()
	}

	return floats.Min(finite)
}

// MeanLog is the NaN-skipping mean of the natural logs.
func MeanLog(xs []float64) float64 {
	finite := Finite(xs)
	if len(finite) == 0 {
		return math.NaN()
	}
	logs := make([]float64, len(finite))
	for i, x := range finite {
		logs[i] = math.Log(x)
	}

	return stat.Mean(logs, nil)
}

// MeanWhere is the NaN-skipping mean over the rows where mask is true.
func MeanWhere(xs []float64, mask []bool) float64 {
	selected := make([]float64, 0, len(xs))
	for i, x := range xs {
		if mask[i] {
			selected = append(selected, x)
		}
	}

	return Mean(selected)
}
