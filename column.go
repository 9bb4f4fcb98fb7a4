package typedframe

import (
	"github.com/typedframe/typedframe/frame"
	"github.com/typedframe/typedframe/typesys"
)

// Column pairs a backing series with typing metadata: an optional logical
// type, a set of semantic tags and a name. An unset logical type or tag set
// stays unset; it is never conflated with an empty value.
type Column struct {
	name            string
	data            SeriesData
	logicalType     typesys.LogicalType
	hasLogicalType  bool
	semanticTags    typesys.Tags // nil means unset
	useStandardTags bool
	logger          *Logger
}

// NewColumn creates a typed column over the given backing series. The name
// defaults to the series name. When the backing series is the in-memory
// representation and a logical type is declared, every value is checked
// against the type's physical kind.
func NewColumn(data SeriesData, opts ...ColumnOption) (*Column, error) {
	if data == nil {
		return nil, ErrNilData
	}

	o := columnOptions{useStandardTags: true, logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}

	name := o.name
	if name == "" {
		name = data.Name()
	}

	if o.hasLogicalType {
		if fs, ok := data.(*frame.Series); ok {
			for i := 0; i < fs.Len(); i++ {
				v, err := fs.Value(i)
				if err != nil {
					return nil, err
				}
				if !o.logicalType.ValidValue(v) {
					return nil, &TypeMismatchError{
						Column:      name,
						Position:    i,
						LogicalType: o.logicalType.Name(),
						Kind:        v.Kind().String(),
					}
				}
			}
		}
	}

	tags := o.tags.Clone()
	if o.useStandardTags && o.hasLogicalType {
		if std := o.logicalType.StandardTags(); len(std) > 0 {
			tags = tags.Union(std)
		}
	}

	return &Column{
		name:            name,
		data:            data,
		logicalType:     o.logicalType,
		hasLogicalType:  o.hasLogicalType,
		semanticTags:    tags,
		useStandardTags: o.useStandardTags,
		logger:          o.logger,
	}, nil
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Data returns the backing series.
func (c *Column) Data() SeriesData {
	return c.data
}

// Len returns the number of values of the backing series.
func (c *Column) Len() int {
	return c.data.Len()
}

// LogicalType returns the logical type and whether one is set.
func (c *Column) LogicalType() (typesys.LogicalType, bool) {
	return c.logicalType, c.hasLogicalType
}

// SemanticTags returns a copy of the semantic tags, or nil when unset.
func (c *Column) SemanticTags() typesys.Tags {
	return c.semanticTags.Clone()
}

// UseStandardTags reports whether standard tags are applied to the column.
func (c *Column) UseStandardTags() bool {
	return c.useStandardTags
}
