package vin

import "fmt"

// InvalidLengthError is returned when the input is not 17 characters.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("vin must be %d characters long, got %d", Length, e.Length)
}

// InvalidCharacterError is returned when a character is outside the
// VIN alphabet. The letters I, O, and Q are never part of a VIN.
type InvalidCharacterError struct {
	// Position is the 1-based VIN position of the offending character.
	Position int
	Char     rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf(
		"invalid vin character %q at position %d", e.Char, e.Position,
	)
}

// CheckDigitError is returned when the weighted check digit does not
// match position 9 and correction was not requested.
type CheckDigitError struct {
	Expected byte
	Got      byte
}

func (e *CheckDigitError) Error() string {
	return fmt.Sprintf(
		"vin check digit is %q, expected %q", e.Got, e.Expected,
	)
}

// SnapshotError is returned when the bundled vPIC snapshot cannot be
// loaded. It is the only operational error and is not recoverable.
type SnapshotError struct {
	Err error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("cannot load vpic snapshot: %v", e.Err)
}

func (e *SnapshotError) Unwrap() error { return e.Err }
