// Package frame provides a minimal in-memory data table for formant data:
// ordered, named columns over rows of equal length.
//
// A column is either numeric ([]float64, with NaN marking missing values)
// or a label series ([]string). Frames are referenced by column name and
// support cloning, column selection, boolean-mask filtering, row-wise
// concatenation, and deterministic grouping by a key column (groups are
// returned in ascending key order).
//
// CSV input expects a header row; a column is inferred numeric when every
// non-empty cell parses as a float, and label otherwise.
//
// Frames are not safe for concurrent mutation. Clone before sharing a
// frame across goroutines that write.
package frame
