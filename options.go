package typedframe

import (
	"github.com/typedframe/typedframe/typesys"
)

type tableOptions struct {
	name            string
	logicalTypes    map[string]typesys.LogicalType
	semanticTags    map[string]typesys.Tags
	index           string
	timeIndex       string
	useStandardTags bool
	logger          *Logger
}

// TableOption configures NewTable and NewTableFromColumns.
type TableOption func(*tableOptions)

// WithName sets the table name. Derived columns inherit it.
func WithName(name string) TableOption {
	return func(o *tableOptions) {
		o.name = name
	}
}

// WithLogicalTypes declares the logical type of individual columns.
// Columns without an entry default to typesys.Unknown; there is no inference.
func WithLogicalTypes(types map[string]typesys.LogicalType) TableOption {
	return func(o *tableOptions) {
		o.logicalTypes = types
	}
}

// WithSemanticTags attaches semantic tags to individual columns. The
// reserved tags "index" and "time_index" cannot be set this way; use
// WithIndex and WithTimeIndex.
func WithSemanticTags(tags map[string]typesys.Tags) TableOption {
	return func(o *tableOptions) {
		o.semanticTags = tags
	}
}

// WithIndex marks a column as the table index, tagging it "index".
func WithIndex(column string) TableOption {
	return func(o *tableOptions) {
		o.index = column
	}
}

// WithTimeIndex marks a column as the table time index, tagging it
// "time_index". The column's logical type must be datetime or numeric.
func WithTimeIndex(column string) TableOption {
	return func(o *tableOptions) {
		o.timeIndex = column
	}
}

// WithStandardTags controls whether each column's tag set is seeded with
// the standard tags of its logical type. Enabled by default.
func WithStandardTags(use bool) TableOption {
	return func(o *tableOptions) {
		o.useStandardTags = use
	}
}

// WithLogger sets the logger used by the table and its indexers.
//
// If nil is passed, NoopLogger is used.
func WithLogger(logger *Logger) TableOption {
	return func(o *tableOptions) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

type columnOptions struct {
	name            string
	logicalType     typesys.LogicalType
	hasLogicalType  bool
	tags            typesys.Tags
	useStandardTags bool
	logger          *Logger
}

// ColumnOption configures NewColumn.
type ColumnOption func(*columnOptions)

// WithColumnName overrides the column name. By default the name of the
// backing series is used.
func WithColumnName(name string) ColumnOption {
	return func(o *columnOptions) {
		o.name = name
	}
}

// WithLogicalType declares the logical type of the column. Without it the
// logical type stays unset; there is no inference.
func WithLogicalType(lt typesys.LogicalType) ColumnOption {
	return func(o *columnOptions) {
		o.logicalType = lt
		o.hasLogicalType = true
	}
}

// WithColumnTags attaches semantic tags to the column.
func WithColumnTags(tags typesys.Tags) ColumnOption {
	return func(o *columnOptions) {
		o.tags = tags
	}
}

// WithColumnStandardTags controls whether the tag set is seeded with the
// standard tags of the declared logical type. Enabled by default.
func WithColumnStandardTags(use bool) ColumnOption {
	return func(o *columnOptions) {
		o.useStandardTags = use
	}
}

// WithColumnLogger sets the logger used by the column and its indexers.
//
// If nil is passed, NoopLogger is used.
func WithColumnLogger(logger *Logger) ColumnOption {
	return func(o *columnOptions) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
