package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFrame is returned when a frame is constructed without columns.
	ErrEmptyFrame = errors.New("frame must have at least one column")

	// ErrUnnamedColumn is returned when a frame column has an empty name.
	ErrUnnamedColumn = errors.New("frame columns must be named")

	// ErrInvalidStep is returned when a span key has a zero step.
	ErrInvalidStep = errors.New("span step must not be zero")
)

// OutOfRangeError indicates a positional key outside the valid bounds.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range for length %d", e.Index, e.Length)
}

// LengthMismatchError indicates two sequences that were expected to have
// equal length, such as a boolean mask applied to a series of another size.
type LengthMismatchError struct {
	What     string
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s length %d does not match expected length %d", e.What, e.Actual, e.Expected)
}

// ColumnNotFoundError indicates a lookup for a column name the frame does not have.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// DuplicateColumnError indicates a frame constructed with a repeated column name.
type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column %q", e.Column)
}
