// Package intrinsic provides the formant-intrinsic normalizers: pure
// elementwise scale conversions requiring no grouping and no constants.
//
//	Bark    F' = 26.81·F/(F+1960) − 0.53   (method selectable)
//	Erb     F' = 21.4·ln(1 + 0.00437·F)
//	Mel     F' = 1127·ln(1 + F/700)
//	Log     F' = ln(F)
//	Log10   F' = log10(F)
package intrinsic
