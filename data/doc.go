// Package data ships a bundled sample of the Peterson and Barney (1952)
// vowel formant measurements for examples and tests: eight speakers by ten
// vowels, with speaker type, sex, vowel labels in both arpabet and IPA, and
// the F0-F3 measurements in hertz.
package data
