// Package centroid provides the vowel-extrinsic centroid normalizers. Each
// one derives a per-speaker centre of the vowel space from the mean formant
// positions of designated vowels and rescales every observation against it.
//
// The Watt-Fabricius family builds the centroid from three corner points:
// the speaker's fleece and trap means plus a derived goose point with both
// formants set to the fleece F1 mean. The variants differ in how the F2
// centroid and the goose point are derived. Bigham averages the means of a
// caller-supplied set of apice vowels, and Schwa centres the space on a
// single mid vowel.
package centroid
