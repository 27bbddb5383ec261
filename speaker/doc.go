// Package speaker provides the speaker-intrinsic normalizers. Each one
// partitions the frame by speaker, derives per-speaker statistics from the
// formant columns, and rescales every formant against those statistics:
//
//	LCE       F' = F / max(F)
//	Gerstman  F' = 999 · (F − min(F)) / (max(F) − min(F))
//	Lobanov   F' = (F − mean(F)) / stddev(F)
//	Neary     F' = ln(F) − mean(ln(F))          (optionally exponentiated)
//	NearyGM   F' = ln(F) − mean(ln(all F))      (optionally exponentiated)
//
// Missing values are excluded from the statistics and propagate through the
// rescaling untouched.
package speaker
