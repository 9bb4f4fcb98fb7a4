package typedframe

import (
	"github.com/typedframe/typedframe/frame"
)

// ResultKind identifies the shape of a positional selection result.
type ResultKind uint8

const (
	// ResultScalar is a raw cell value, unwrapped.
	ResultScalar ResultKind = iota
	// ResultSeries is a raw series, unwrapped. Returned for one full table
	// row, where no single column's metadata applies.
	ResultSeries
	// ResultColumn is a typed column wrapping a one-dimensional result.
	ResultColumn
	// ResultTable is a typed table wrapping a two-dimensional result.
	ResultTable
)

// String returns the string representation of the ResultKind.
func (k ResultKind) String() string {
	switch k {
	case ResultScalar:
		return "Scalar"
	case ResultSeries:
		return "Series"
	case ResultColumn:
		return "Column"
	case ResultTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Result is the tagged outcome of a positional selection: a raw scalar, a
// raw series, a typed column or a typed table.
type Result struct {
	kind   ResultKind
	scalar frame.Value
	series *frame.Series
	column *Column
	table  *Table
}

// Kind returns the shape of the result.
func (r Result) Kind() ResultKind {
	return r.kind
}

// Scalar returns the raw cell value for a scalar result.
func (r Result) Scalar() frame.Value {
	return r.scalar
}

// Series returns the raw series for a series result, or nil.
func (r Result) Series() *frame.Series {
	return r.series
}

// Column returns the typed column for a column result, or nil.
func (r Result) Column() *Column {
	return r.column
}

// Table returns the typed table for a table result, or nil.
func (r Result) Table() *Table {
	return r.table
}
