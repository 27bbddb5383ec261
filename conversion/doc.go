// Package conversion provides frequency-scale conversions used by the
// formant normalizers: Hz to Bark (five published variants), Mel, ERB and
// logarithmic scales.
//
// All conversions are pure scalar functions; InPlace applies one to a
// whole column. The Bark conversion takes a BarkMethod selecting the
// published formula:
//
//	Traunmuller (default)  F' = 26.81·F/(F+1960) − 0.53
//	Zwicker                F' = 13·atan(0.00076·F) + 3.5·atan(F/7500)²
//	Syrdal                 Zwicker applied to a low-frequency corrected F
//	Volk                   F' = 32.12·(1 − (1 + (F/873.47)^1.18)^−0.4)
//	Greenwood              F' = 11.9·log10(F/165.4 + 0.88)
//
// Errors:
//
//	ErrUnknownBarkMethod - the BarkMethod is not one of the variants above.
package conversion
