// Package gender provides the gender-based normalizers.
//
// Bladen converts formants to the Bark scale and subtracts a per-row 0/1
// indicator of the female gender label. Nordstrom rescales formants by the
// ratio of male to female mean F3, measured over open vowels (F1 > 600 Hz)
// across the whole dataset.
//
// Both default the gender labels to "F" and "M" when the female and male
// keywords are unset.
package gender
