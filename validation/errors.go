// SPDX-License-Identifier: MIT
// Package validation: typed error set.
//
// Every error type below matches exactly one sentinel via errors.Is, so
// callers can branch on the failure kind without string inspection, and
// recover the offending names with errors.As. Messages are prefixed with
// "validation: ..." for grep-ability.

package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for the validation failure taxonomy.
var (
	// ErrRequiredColumnMissing - a required column (no alias) is absent.
	ErrRequiredColumnMissing = errors.New("validation: required column missing")

	// ErrRequiredColumnAliasMissing - a required column has an alias, but the
	// aliased column is absent.
	ErrRequiredColumnAliasMissing = errors.New("validation: aliased required column missing")

	// ErrChoiceColumnMissing - no member of a choice group is present.
	ErrChoiceColumnMissing = errors.New("validation: choice column missing")

	// ErrChoiceColumnAliasMissing - no member of a choice group is present and
	// at least one member's alias is itself absent.
	ErrChoiceColumnAliasMissing = errors.New("validation: aliased choice column missing")

	// ErrRequiredKeywordMissing - a required keyword argument was not supplied.
	ErrRequiredKeywordMissing = errors.New("validation: required keyword missing")

	// ErrChoiceKeywordMissing - no member of a choice keyword group was supplied.
	ErrChoiceKeywordMissing = errors.New("validation: choice keyword missing")

	// ErrGroupsContainRequiredColumn - a grouping column coincides with a
	// required column of the data being normalized.
	ErrGroupsContainRequiredColumn = errors.New("validation: grouping column is a required column")

	// ErrGroupsContainChoiceColumn - a grouping column coincides with a
	// choice column of the data being normalized.
	ErrGroupsContainChoiceColumn = errors.New("validation: grouping column is a choice column")
)

// RequiredColumnMissingError reports a required column absent from the frame.
type RequiredColumnMissingError struct {
	Normalizer string
	Column     string
}

func (e *RequiredColumnMissingError) Error() string {
	return fmt.Sprintf("validation: %s requires column %q, but %q is not in the frame",
		e.Normalizer, e.Column, e.Column)
}

func (e *RequiredColumnMissingError) Is(target error) bool {
	return target == ErrRequiredColumnMissing
}

// RequiredColumnAliasMissingError reports a required column whose configured
// alias is absent from the frame.
type RequiredColumnAliasMissingError struct {
	Normalizer string
	Column     string
	Alias      string
}

func (e *RequiredColumnAliasMissingError) Error() string {
	return fmt.Sprintf("validation: %s requires column %q, aliased to %q, but %q is not in the frame",
		e.Normalizer, e.Column, e.Alias, e.Alias)
}

func (e *RequiredColumnAliasMissingError) Is(target error) bool {
	return target == ErrRequiredColumnAliasMissing
}

// ChoiceColumnMissingError reports a choice group with no member present.
type ChoiceColumnMissingError struct {
	Normalizer string
	Group      string
	Columns    []string
}

func (e *ChoiceColumnMissingError) Error() string {
	return fmt.Sprintf("validation: %s expected one of %s (group %q) to be in the frame",
		e.Normalizer, quoteList(e.Columns), e.Group)
}

func (e *ChoiceColumnMissingError) Is(target error) bool {
	return target == ErrChoiceColumnMissing
}

// ChoiceColumnAliasMissingError reports a choice group with no member present
// where at least one member was aliased to an absent column.
type ChoiceColumnAliasMissingError struct {
	Normalizer string
	Group      string
	Columns    []string
	Column     string
	Alias      string
}

func (e *ChoiceColumnAliasMissingError) Error() string {
	return fmt.Sprintf("validation: %s expected one of %s (group %q); %q was aliased to %q, but %q is not in the frame",
		e.Normalizer, quoteList(e.Columns), e.Group, e.Column, e.Alias, e.Alias)
}

func (e *ChoiceColumnAliasMissingError) Is(target error) bool {
	return target == ErrChoiceColumnAliasMissing
}

// RequiredKeywordMissingError reports a required keyword argument not supplied.
type RequiredKeywordMissingError struct {
	Normalizer string
	Keyword    string
}

func (e *RequiredKeywordMissingError) Error() string {
	return fmt.Sprintf("validation: %s requires the %q argument", e.Normalizer, e.Keyword)
}

func (e *RequiredKeywordMissingError) Is(target error) bool {
	return target == ErrRequiredKeywordMissing
}

// ChoiceKeywordMissingError reports a choice keyword group with no member supplied.
type ChoiceKeywordMissingError struct {
	Normalizer string
	Group      string
	Keywords   []string
}

func (e *ChoiceKeywordMissingError) Error() string {
	return fmt.Sprintf("validation: %s expected one of the %s arguments (group %q)",
		e.Normalizer, quoteList(e.Keywords), e.Group)
}

func (e *ChoiceKeywordMissingError) Is(target error) bool {
	return target == ErrChoiceKeywordMissing
}

// GroupsContainRequiredColumnError reports a grouping column that coincides
// with a required column.
type GroupsContainRequiredColumnError struct {
	Normalizer string
	Group      string
	Column     string
}

func (e *GroupsContainRequiredColumnError) Error() string {
	return fmt.Sprintf("validation: %s cannot group by %q: it is the required column %q",
		e.Normalizer, e.Group, e.Column)
}

func (e *GroupsContainRequiredColumnError) Is(target error) bool {
	return target == ErrGroupsContainRequiredColumn
}

// GroupsContainChoiceColumnError reports a grouping column that coincides
// with a choice column.
type GroupsContainChoiceColumnError struct {
	Normalizer string
	Group      string
	Column     string
}

func (e *GroupsContainChoiceColumnError) Error() string {
	return fmt.Sprintf("validation: %s cannot group by %q: it is the choice column %q",
		e.Normalizer, e.Group, e.Column)
}

func (e *GroupsContainChoiceColumnError) Is(target error) bool {
	return target == ErrGroupsContainChoiceColumn
}

// quoteList renders a name list as 'a', 'b', 'c' for error messages.
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}

	return strings.Join(quoted, ", ")
}
