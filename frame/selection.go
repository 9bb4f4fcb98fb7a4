package frame

// SelectionKind identifies the shape of a selection result.
type SelectionKind uint8

const (
	// SelectionScalar is a single cell value.
	SelectionScalar SelectionKind = iota
	// SelectionSeries is a one-dimensional result.
	SelectionSeries
	// SelectionFrame is a two-dimensional result.
	SelectionFrame
)

// Selection is the tagged result of a positional lookup: a scalar, a
// series, or a frame, depending on the shape the key produced.
type Selection struct {
	kind   SelectionKind
	scalar Value
	series *Series
	frame  *Frame
}

func scalarSelection(v Value) Selection {
	return Selection{kind: SelectionScalar, scalar: v}
}

func seriesSelection(s *Series) Selection {
	return Selection{kind: SelectionSeries, series: s}
}

func frameSelection(f *Frame) Selection {
	return Selection{kind: SelectionFrame, frame: f}
}

// Kind returns the shape of the selection.
func (s Selection) Kind() SelectionKind {
	return s.kind
}

// Scalar returns the cell value for a scalar selection.
func (s Selection) Scalar() Value {
	return s.scalar
}

// Series returns the series for a one-dimensional selection, or nil.
func (s Selection) Series() *Series {
	return s.series
}

// Frame returns the frame for a two-dimensional selection, or nil.
func (s Selection) Frame() *Frame {
	return s.frame
}
