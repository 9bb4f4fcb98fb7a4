package typedframe

import (
	"github.com/typedframe/typedframe/frame"
	"github.com/typedframe/typedframe/typesys"
)

// Table pairs a backing dataset with per-column typing metadata: a logical
// type and a set of semantic tags for every column of the data.
type Table struct {
	name            string
	data            Dataset
	logicalTypes    map[string]typesys.LogicalType
	semanticTags    map[string]typesys.Tags
	useStandardTags bool
	logger          *Logger
}

// NewTable creates a typed table over the given backing data.
//
// Every column of the data ends up with an entry in both metadata mappings:
// columns without a declared logical type get typesys.Unknown, columns
// without declared tags get an empty set. When standard tags are enabled
// (the default), each column's tags are seeded from its logical type.
func NewTable(data Dataset, opts ...TableOption) (*Table, error) {
	if data == nil {
		return nil, ErrNilData
	}

	o := tableOptions{useStandardTags: true, logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}

	columns := data.ColumnNames()
	colSet := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		colSet[name] = struct{}{}
	}

	for name := range o.logicalTypes {
		if _, ok := colSet[name]; !ok {
			return nil, &UnknownColumnError{Column: name}
		}
	}
	for name, tags := range o.semanticTags {
		if _, ok := colSet[name]; !ok {
			return nil, &UnknownColumnError{Column: name}
		}
		for _, reserved := range []string{typesys.TagIndex, typesys.TagTimeIndex} {
			if tags.Has(reserved) {
				return nil, &ReservedTagError{Column: name, Tag: reserved}
			}
		}
	}
	if o.index != "" {
		if _, ok := colSet[o.index]; !ok {
			return nil, &UnknownColumnError{Column: o.index}
		}
	}
	if o.timeIndex != "" {
		if _, ok := colSet[o.timeIndex]; !ok {
			return nil, &UnknownColumnError{Column: o.timeIndex}
		}
	}

	logicalTypes := make(map[string]typesys.LogicalType, len(columns))
	semanticTags := make(map[string]typesys.Tags, len(columns))
	for _, name := range columns {
		lt, ok := o.logicalTypes[name]
		if !ok {
			lt = typesys.Unknown
		}
		logicalTypes[name] = lt

		tags := o.semanticTags[name].Clone()
		if tags == nil {
			tags = typesys.NewTags()
		}
		if o.useStandardTags {
			tags = tags.Union(lt.StandardTags())
		}
		semanticTags[name] = tags
	}

	if o.index != "" {
		semanticTags[o.index][typesys.TagIndex] = struct{}{}
	}
	if o.timeIndex != "" {
		lt := logicalTypes[o.timeIndex]
		if !lt.Is(typesys.Datetime) && !lt.IsNumeric() {
			return nil, &InvalidTimeIndexError{Column: o.timeIndex, TypeName: lt.Name()}
		}
		semanticTags[o.timeIndex][typesys.TagTimeIndex] = struct{}{}
	}

	return &Table{
		name:            o.name,
		data:            data,
		logicalTypes:    logicalTypes,
		semanticTags:    semanticTags,
		useStandardTags: o.useStandardTags,
		logger:          o.logger,
	}, nil
}

// NewTableFromColumns assembles a table from typed columns of equal length,
// carrying each column's logical type and tags over into the table
// metadata. All columns must be backed by the in-memory representation.
func NewTableFromColumns(columns []*Column, opts ...TableOption) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	o := tableOptions{useStandardTags: true, logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}

	series := make([]*frame.Series, len(columns))
	for i, c := range columns {
		fs, ok := c.data.(*frame.Series)
		if !ok {
			return nil, wrapUnsupportedBackend("column", c.data)
		}
		series[i] = fs.Rename(c.name)
	}

	df, err := frame.NewFrame(series...)
	if err != nil {
		return nil, err
	}

	logicalTypes := make(map[string]typesys.LogicalType, len(columns))
	semanticTags := make(map[string]typesys.Tags, len(columns))
	for _, c := range columns {
		lt := typesys.Unknown
		if c.hasLogicalType {
			lt = c.logicalType
		}
		logicalTypes[c.name] = lt

		tags := c.semanticTags.Clone()
		if tags == nil {
			tags = typesys.NewTags()
		}
		semanticTags[c.name] = tags
	}

	return &Table{
		name:            o.name,
		data:            df,
		logicalTypes:    logicalTypes,
		semanticTags:    semanticTags,
		useStandardTags: o.useStandardTags,
		logger:          o.logger,
	}, nil
}

// newTableFrom builds a table over a new frame, copying the applicable
// metadata of the original table onto the columns the frame retains.
func newTableFrom(orig *Table, df *frame.Frame) *Table {
	logicalTypes := make(map[string]typesys.LogicalType, df.NumCols())
	semanticTags := make(map[string]typesys.Tags, df.NumCols())
	for _, name := range df.ColumnNames() {
		if lt, ok := orig.logicalTypes[name]; ok {
			logicalTypes[name] = lt
		}
		if tags, ok := orig.semanticTags[name]; ok {
			semanticTags[name] = tags.Clone()
		}
	}
	return &Table{
		name:            orig.name,
		data:            df,
		logicalTypes:    logicalTypes,
		semanticTags:    semanticTags,
		useStandardTags: orig.useStandardTags,
		logger:          orig.logger,
	}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Data returns the backing dataset.
func (t *Table) Data() Dataset {
	return t.data
}

// Columns returns the column names in data order.
func (t *Table) Columns() []string {
	return t.data.ColumnNames()
}

// NumRows returns the number of rows of the backing data.
func (t *Table) NumRows() int {
	return t.data.NumRows()
}

// UseStandardTags reports whether standard tags are applied to columns.
func (t *Table) UseStandardTags() bool {
	return t.useStandardTags
}

// LogicalType returns the logical type of a column.
func (t *Table) LogicalType(column string) (typesys.LogicalType, bool) {
	lt, ok := t.logicalTypes[column]
	return lt, ok
}

// LogicalTypes returns a copy of the column -> logical type mapping.
func (t *Table) LogicalTypes() map[string]typesys.LogicalType {
	out := make(map[string]typesys.LogicalType, len(t.logicalTypes))
	for name, lt := range t.logicalTypes {
		out[name] = lt
	}
	return out
}

// ColumnTags returns a copy of the semantic tags of a column.
func (t *Table) ColumnTags(column string) (typesys.Tags, bool) {
	tags, ok := t.semanticTags[column]
	if !ok {
		return nil, false
	}
	return tags.Clone(), true
}

// SemanticTags returns a copy of the column -> semantic tags mapping.
func (t *Table) SemanticTags() map[string]typesys.Tags {
	out := make(map[string]typesys.Tags, len(t.semanticTags))
	for name, tags := range t.semanticTags {
		out[name] = tags.Clone()
	}
	return out
}
