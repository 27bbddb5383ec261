package conversion

import (
	"errors"
	"fmt"
	"math"
)

// BarkMethod selects one of the published Hz→Bark formulas.
type BarkMethod string

const (
	// Traunmuller is the Traunmuller (1990) conversion, the default.
	Traunmuller BarkMethod = "traunmuller"

	// Syrdal is the Syrdal & Gopal (1986) conversion: the Zwicker formula
	// applied to a corrected frequency below 250 Hz.
	Syrdal BarkMethod = "syrdal"

	// Zwicker is the Zwicker & Terhardt (1980) conversion.
	Zwicker BarkMethod = "zwicker"

	// Volk is the Volk (2015) conversion.
	Volk BarkMethod = "volk"

	// Greenwood is the Greenwood (1961) conversion.
	Greenwood BarkMethod = "greenwood"
)

// ErrUnknownBarkMethod indicates a BarkMethod outside the published set.
var ErrUnknownBarkMethod = errors.New("conversion: unknown bark method")

// HzToBark converts a frequency in Hz to the Bark scale using the given
// method. An empty method selects Traunmuller.
func HzToBark(frq float64, method BarkMethod) (float64, error) {
	switch method {
	case Traunmuller, "":
		return 26.81*frq/(frq+1960) - 0.53, nil
	case Greenwood:
		return 11.9 * math.Log10(frq/165.4+0.88), nil
	case Zwicker:
		return 13*math.Atan(0.00076*frq) + 3.5*math.Pow(math.Atan(frq/7500), 2), nil
	case Syrdal:
		return HzToBark(syrdalCorrection(frq), Zwicker)
	case Volk:
		return 32.12 * (1 - math.Pow(1+math.Pow(frq/873.47, 1.18), -0.4)), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBarkMethod, method)
}

// syrdalCorrection applies the Syrdal & Gopal low-frequency correction:
// frequencies below 150 Hz are clamped, and the 150–250 Hz band is
// compressed towards 200 Hz.
func syrdalCorrection(frq float64) float64 {
	switch {
	case frq < 150:
		return 150
	case frq < 200:
		return frq - 0.2*(frq-150)
	case frq < 250:
		return frq - 0.2*(250-frq)
	}

	return frq
}

// BarkConverter returns the scalar conversion for a method, validating the
// method once up front.
func BarkConverter(method BarkMethod) (func(float64) float64, error) {
	if _, err := HzToBark(0, method); err != nil {
		return nil, err
	}

	return func(frq float64) float64 {
		bark, _ := HzToBark(frq, method)
		return bark
	}, nil
}

// HzToMel converts a frequency in Hz to the mel scale
// (natural-log form of O'Shaughnessy 1987, p.150).
func HzToMel(frq float64) float64 {
	return 1127 * math.Log(1+frq/700)
}

// HzToErb converts a frequency in Hz to the approximate ERB scale
// (Moore & Glasberg 1996, p.336).
func HzToErb(frq float64) float64 {
	return 21.4 * math.Log(1+0.00437*frq)
}

// HzToLog converts a frequency in Hz to the natural logarithmic scale.
func HzToLog(frq float64) float64 {
	return math.Log(frq)
}

// HzToLog10 converts a frequency in Hz to the base-10 logarithmic scale.
func HzToLog10(frq float64) float64 {
	return math.Log10(frq)
}

// InPlace applies a scalar conversion to every value of a column.
func InPlace(values []float64, convert func(float64) float64) {
	for i, v := range values {
		values[i] = convert(v)
	}
}
