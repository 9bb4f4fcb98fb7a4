package frame

import (
	"strconv"
)

// Frame is a two-dimensional table of named, equally sized columns sharing
// one set of row labels. Frames are treated as immutable after construction;
// selections copy the affected values.
type Frame struct {
	labels []string
	cols   []*Series
	byName map[string]int
}

// NewFrame creates a frame from the given columns with positional row
// labels ("0", "1", ...). Column names must be unique and non-empty, and
// all columns must have the same length.
func NewFrame(cols ...*Series) (*Frame, error) {
	if len(cols) == 0 {
		return nil, ErrEmptyFrame
	}
	n := cols[0].Len()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return NewFrameWithLabels(labels, cols...)
}

// NewFrameWithLabels creates a frame with explicit row labels.
func NewFrameWithLabels(labels []string, cols ...*Series) (*Frame, error) {
	if len(cols) == 0 {
		return nil, ErrEmptyFrame
	}
	byName := make(map[string]int, len(cols))
	stored := make([]*Series, len(cols))
	for i, c := range cols {
		if c.name == "" {
			return nil, ErrUnnamedColumn
		}
		if _, ok := byName[c.name]; ok {
			return nil, &DuplicateColumnError{Column: c.name}
		}
		if c.Len() != len(labels) {
			return nil, &LengthMismatchError{What: "column " + c.name, Expected: len(labels), Actual: c.Len()}
		}
		byName[c.name] = i
		stored[i] = &Series{name: c.name, values: c.values}
	}
	return &Frame{labels: labels, cols: stored, byName: byName}, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return len(f.labels)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// ColumnNames returns the column names in order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}
	return names
}

// Labels returns a copy of the row labels.
func (f *Frame) Labels() []string {
	out := make([]string, len(f.labels))
	copy(out, f.labels)
	return out
}

// Column returns the named column as a series labeled with the row labels.
func (f *Frame) Column(name string) (*Series, error) {
	i, ok := f.byName[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	return f.columnAt(i), nil
}

// ColumnAt returns the column at position i as a series labeled with the
// row labels.
func (f *Frame) ColumnAt(i int) (*Series, error) {
	idx, _, err := At(i).positions(len(f.cols))
	if err != nil {
		return nil, err
	}
	return f.columnAt(idx[0]), nil
}

func (f *Frame) columnAt(i int) *Series {
	c := f.cols[i]
	return &Series{name: c.name, labels: f.labels, values: c.values}
}

// Row returns row i as a series: the row label becomes the series name and
// the column names become the labels. Mixed value kinds are expected here.
func (f *Frame) Row(i int) (*Series, error) {
	idx, _, err := At(i).positions(len(f.labels))
	if err != nil {
		return nil, err
	}
	return f.row(idx[0]), nil
}

func (f *Frame) row(r int) *Series {
	labels := make([]string, len(f.cols))
	values := make([]Value, len(f.cols))
	for j, c := range f.cols {
		labels[j] = c.name
		values[j] = c.values[r]
	}
	return &Series{name: f.labels[r], labels: labels, values: values}
}

// Select resolves a positional key against the row axis. A scalar key
// yields the row as a series selection; any other key yields a frame
// selection restricted to the chosen rows.
func (f *Frame) Select(key Key) (Selection, error) {
	idx, scalar, err := key.positions(len(f.labels))
	if err != nil {
		return Selection{}, err
	}
	if scalar {
		return seriesSelection(f.row(idx[0])), nil
	}
	return frameSelection(f.take(idx, nil)), nil
}

// Select2 resolves independent positional keys against the row and column
// axes. The result shape follows the keys: two scalar keys produce a cell,
// one scalar key produces a series, and two set keys produce a frame.
func (f *Frame) Select2(rowKey, colKey Key) (Selection, error) {
	rIdx, rScalar, err := rowKey.positions(len(f.labels))
	if err != nil {
		return Selection{}, err
	}
	cIdx, cScalar, err := colKey.positions(len(f.cols))
	if err != nil {
		return Selection{}, err
	}
	switch {
	case rScalar && cScalar:
		return scalarSelection(f.cols[cIdx[0]].values[rIdx[0]]), nil
	case rScalar:
		r := rIdx[0]
		labels := make([]string, len(cIdx))
		values := make([]Value, len(cIdx))
		for j, c := range cIdx {
			labels[j] = f.cols[c].name
			values[j] = f.cols[c].values[r]
		}
		return seriesSelection(&Series{name: f.labels[r], labels: labels, values: values}), nil
	case cScalar:
		c := f.cols[cIdx[0]]
		labels := make([]string, len(rIdx))
		values := make([]Value, len(rIdx))
		for j, r := range rIdx {
			labels[j] = f.labels[r]
			values[j] = c.values[r]
		}
		return seriesSelection(&Series{name: c.name, labels: labels, values: values}), nil
	default:
		return frameSelection(f.take(rIdx, cIdx)), nil
	}
}

// take builds a new frame restricted to the given row positions and,
// when cIdx is non-nil, the given column positions.
func (f *Frame) take(rIdx []int, cIdx []int) *Frame {
	if cIdx == nil {
		cIdx = make([]int, len(f.cols))
		for i := range f.cols {
			cIdx[i] = i
		}
	}
	labels := make([]string, len(rIdx))
	for j, r := range rIdx {
		labels[j] = f.labels[r]
	}
	cols := make([]*Series, len(cIdx))
	byName := make(map[string]int, len(cIdx))
	for j, ci := range cIdx {
		src := f.cols[ci]
		values := make([]Value, len(rIdx))
		for k, r := range rIdx {
			values[k] = src.values[r]
		}
		cols[j] = &Series{name: src.name, values: values}
		byName[src.name] = j
	}
	return &Frame{labels: labels, cols: cols, byName: byName}
}
