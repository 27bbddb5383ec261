// Package vowel provides the vowel-intrinsic normalizers, which describe a
// vowel by the relations between its own formants rather than by their
// absolute positions.
package vowel
