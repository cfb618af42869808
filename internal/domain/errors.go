package domain

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Common domain errors returned when scoring input fails boundary
// validation.
var (
	// ErrInvalidEnum indicates a categorical field carried a value
	// outside its closed set.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrInvalidRecord indicates a record is structurally invalid
	// (for example a tenure ending before it starts).
	ErrInvalidRecord = errors.New("invalid record")
)

// InvalidEnumError reports a categorical field whose value is outside
// its closed set. The engine rejects these at the boundary rather than
// silently under-scoring the record.
type InvalidEnumError struct {
	// Field names the offending field, e.g. "experience[2].role_type".
	Field string

	// Value is the rejected raw value.
	Value string

	// Suggestion is the nearest valid value by edit distance, empty
	// when nothing is close enough to be worth suggesting.
	Suggestion string
}

// Error implements the error interface.
func (e *InvalidEnumError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid enum value %q for %s (did you mean %q?)", e.Value, e.Field, e.Suggestion)
	}
	return fmt.Sprintf("invalid enum value %q for %s", e.Value, e.Field)
}

// Unwrap makes the error match ErrInvalidEnum with errors.Is.
func (e *InvalidEnumError) Unwrap() error { return ErrInvalidEnum }

// maxSuggestionDistance bounds how far a suggestion may be from the
// rejected value before it stops being useful.
const maxSuggestionDistance = 5

// NewInvalidEnumError reports a closed-set violation for the given
// field, picking the valid value closest to the rejected one as a
// suggestion.
func NewInvalidEnumError(field, value string, valid []string) *InvalidEnumError {
	return newInvalidEnumError(field, value, valid)
}

func newInvalidEnumError(field, value string, valid []string) *InvalidEnumError {
	folded := foldValue(value)
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, v := range valid {
		if d := levenshtein.ComputeDistance(folded, v); d < bestDist {
			best = v
			bestDist = d
		}
	}
	return &InvalidEnumError{Field: field, Value: value, Suggestion: best}
}

// RecordError reports a structurally invalid record with its position
// in the input slice.
type RecordError struct {
	// Field names the offending record, e.g. "experience[0]".
	Field string

	// Reason describes what is wrong with the record.
	Reason string
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid record %s: %s", e.Field, e.Reason)
}

// Unwrap makes the error match ErrInvalidRecord with errors.Is.
func (e *RecordError) Unwrap() error { return ErrInvalidRecord }
