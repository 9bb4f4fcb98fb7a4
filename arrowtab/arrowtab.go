package arrowtab

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Dataset wraps an Arrow record so it can back a typedframe.Table. It
// satisfies the table backing-store interface but is not supported by the
// positional indexer; convert with ToFrame first.
type Dataset struct {
	rec arrow.Record
}

// NewDataset wraps a record, retaining it. Call Release when done.
func NewDataset(rec arrow.Record) *Dataset {
	rec.Retain()
	return &Dataset{rec: rec}
}

// ColumnNames returns the field names of the record schema in order.
func (d *Dataset) ColumnNames() []string {
	fields := d.rec.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return int(d.rec.NumRows())
}

// NumCols returns the number of columns.
func (d *Dataset) NumCols() int {
	return int(d.rec.NumCols())
}

// Record returns the wrapped record.
func (d *Dataset) Record() arrow.Record {
	return d.rec
}

// Release releases the wrapped record.
func (d *Dataset) Release() {
	d.rec.Release()
}

// Array wraps a named Arrow array so it can back a typedframe.Column. Like
// Dataset, it is rejected by the positional indexer.
type Array struct {
	name string
	arr  arrow.Array
}

// NewArray wraps an array under the given name, retaining it.
func NewArray(name string, arr arrow.Array) *Array {
	arr.Retain()
	return &Array{name: name, arr: arr}
}

// Name returns the array name.
func (a *Array) Name() string {
	return a.name
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return a.arr.Len()
}

// Underlying returns the wrapped array.
func (a *Array) Underlying() arrow.Array {
	return a.arr
}

// Release releases the wrapped array.
func (a *Array) Release() {
	a.arr.Release()
}
