// Package vlnorm normalizes vowel formant data.
//
// It ships a library of published normalization methods — formant-intrinsic
// scale conversions, speaker-intrinsic rescalings, centroid-based methods
// and gender-based methods — behind one entry point:
//
//	df, err := vlnorm.ReadCSV("vowels.csv", ',')
//	if err != nil { ... }
//	out, err := vlnorm.Normalize(df, norm.ByName("lobanov"), nil)
//
// Methods are looked up by case-insensitive prefix in a process-wide
// registry; callers with custom normalizers can build their own registry
// with NewDefaultRegistry and norm.Registry.Register.
package vlnorm
