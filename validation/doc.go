// Package validation checks a normalizer's declared column and keyword
// requirements against a frame and a set of keyword arguments before any
// transform runs.
//
// A ColumnSpec declares columns that must be present (Required), named
// groups of alternatives of which at least one must be present (Choice),
// and the columns a transform produces (Returns, documentation only).
// A KeywordSpec declares the same for keyword arguments. Canonical column
// names resolve through an alias map before presence is tested.
//
// Every failure is a typed error carrying the normalizer name and the
// offending column or keyword; alias failures additionally carry the
// aliased name. Each type matches a package-level sentinel through
// errors.Is, and fields are recovered with errors.As. Checks are pure:
// they never mutate their inputs and never pass silently.
package validation
