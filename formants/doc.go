// Package formants canonicalises the many ways formant columns can be
// specified into an ordered sequence of rows, one column name (or none)
// per formant slot f0..f3.
//
// Callers may supply an explicit column list, per-slot names (one column
// or several measurement tracks per slot), or a map keyed by slot name.
// Slots with a single column broadcast to match the longest slot, so a
// dataset with several f0 tracks iterates them in lock-step with f1..f3.
// An empty specification resolves to whichever of f0..f3 the frame has.
//
// Column names absent from the target frame are NOT a resolution error:
// they are dropped later, at normalize time, via Row.Present.
package formants
