package typedframe

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBackend is returned when a positional indexer is
	// constructed over an entity whose backing store is not the in-memory
	// frame representation.
	ErrUnsupportedBackend = errors.New("iloc is only supported for the in-memory frame backend")

	// ErrNilData is returned when a table or column is constructed without
	// backing data.
	ErrNilData = errors.New("backing data must not be nil")

	// ErrTooManyIndexers is returned when a two-axis selection is applied
	// to a single column.
	ErrTooManyIndexers = errors.New("too many indexers for a single column")

	// ErrNoColumns is returned when a table is assembled from an empty
	// column list.
	ErrNoColumns = errors.New("at least one column is required")
)

func wrapUnsupportedBackend(entity string, data any) error {
	return fmt.Errorf("%w: %s backed by %T", ErrUnsupportedBackend, entity, data)
}

// UnknownColumnError indicates metadata referring to a column the backing
// data does not have.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// ReservedTagError indicates an attempt to set a reserved semantic tag
// directly. Reserved tags are managed through table construction.
type ReservedTagError struct {
	Column string
	Tag    string
}

func (e *ReservedTagError) Error() string {
	return fmt.Sprintf("tag %q on column %q is reserved; use the index options instead", e.Tag, e.Column)
}

// InvalidTimeIndexError indicates a time index column whose logical type is
// neither datetime nor numeric.
type InvalidTimeIndexError struct {
	Column   string
	TypeName string
}

func (e *InvalidTimeIndexError) Error() string {
	return fmt.Sprintf("column %q of type %s cannot be a time index; datetime or numeric required", e.Column, e.TypeName)
}

// TypeMismatchError indicates a cell value inconsistent with the declared
// logical type of its column.
type TypeMismatchError struct {
	Column      string
	Position    int
	LogicalType string
	Kind        string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %q position %d: %s value is not valid for logical type %s", e.Column, e.Position, e.Kind, e.LogicalType)
}
