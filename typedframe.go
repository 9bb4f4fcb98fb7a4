package typedframe

import (
	"github.com/typedframe/typedframe/frame"
)

// Dataset is the backing store of a Table. The in-memory implementation is
// *frame.Frame; other backends (such as Arrow records) can satisfy the
// interface but are not supported by the positional indexer.
type Dataset interface {
	ColumnNames() []string
	NumRows() int
	NumCols() int
}

// SeriesData is the backing store of a Column. The in-memory implementation
// is *frame.Series.
type SeriesData interface {
	Name() string
	Len() int
}

var (
	_ Dataset    = (*frame.Frame)(nil)
	_ SeriesData = (*frame.Series)(nil)
)
