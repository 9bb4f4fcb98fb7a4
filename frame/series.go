package frame

// Series is a one-dimensional sequence of values with a name and optional
// labels. A series extracted from a frame row carries the frame's column
// names as labels; a standalone data series is usually unlabeled.
type Series struct {
	name   string
	labels []string // nil means positional
	values []Value
}

// NewSeries creates an unlabeled series. The series takes ownership of values.
func NewSeries(name string, values ...Value) *Series {
	return &Series{name: name, values: values}
}

// NewLabeledSeries creates a series with one label per value.
func NewLabeledSeries(name string, labels []string, values []Value) (*Series, error) {
	if len(labels) != len(values) {
		return nil, &LengthMismatchError{What: "labels", Expected: len(values), Actual: len(labels)}
	}
	return &Series{name: name, labels: labels, values: values}, nil
}

// Name returns the series name.
func (s *Series) Name() string {
	return s.name
}

// Len returns the number of values.
func (s *Series) Len() int {
	return len(s.values)
}

// Labels returns a copy of the series labels, or nil for an unlabeled series.
func (s *Series) Labels() []string {
	if s.labels == nil {
		return nil
	}
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Values returns a copy of the series values.
func (s *Series) Values() []Value {
	out := make([]Value, len(s.values))
	copy(out, s.values)
	return out
}

// Value returns the value at position i.
func (s *Series) Value(i int) (Value, error) {
	if i < 0 || i >= len(s.values) {
		return Value{}, &OutOfRangeError{Index: i, Length: len(s.values)}
	}
	return s.values[i], nil
}

// Rename returns a copy of the series under a new name, sharing the data.
func (s *Series) Rename(name string) *Series {
	return &Series{name: name, labels: s.labels, values: s.values}
}

// Select resolves a positional key against the series. A scalar key yields
// a scalar selection; any other key yields a series selection that keeps
// the name and slices the labels alongside the values.
func (s *Series) Select(key Key) (Selection, error) {
	idx, scalar, err := key.positions(len(s.values))
	if err != nil {
		return Selection{}, err
	}
	if scalar {
		return scalarSelection(s.values[idx[0]]), nil
	}
	values := make([]Value, len(idx))
	for j, i := range idx {
		values[j] = s.values[i]
	}
	var labels []string
	if s.labels != nil {
		labels = make([]string, len(idx))
		for j, i := range idx {
			labels[j] = s.labels[i]
		}
	}
	return seriesSelection(&Series{name: s.name, labels: labels, values: values}), nil
}
