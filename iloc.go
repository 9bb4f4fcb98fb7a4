package typedframe

import (
	"github.com/typedframe/typedframe/frame"
	"github.com/typedframe/typedframe/typesys"
)

type ilocTarget uint8

const (
	targetTable ilocTarget = iota
	targetColumn
)

// ILoc is a positional indexer over a typed table or typed column. It is
// constructed fresh per access, borrows the typed entity for the duration
// of the call, and never mutates it.
//
// The wrapped entity is resolved to its variant once at construction; the
// selection logic branches on that variant, not on runtime type checks.
type ILoc struct {
	target ilocTarget
	table  *Table
	column *Column
	df     *frame.Frame
	sr     *frame.Series
	logger *Logger
}

// ILoc returns a positional indexer over the table. It fails with
// ErrUnsupportedBackend when the table is not backed by the in-memory
// frame representation.
func (t *Table) ILoc() (*ILoc, error) {
	df, ok := t.data.(*frame.Frame)
	if !ok {
		return nil, wrapUnsupportedBackend("table", t.data)
	}
	return &ILoc{
		target: targetTable,
		table:  t,
		df:     df,
		logger: t.logger.WithTable(t.name),
	}, nil
}

// ILoc returns a positional indexer over the column. It fails with
// ErrUnsupportedBackend when the column is not backed by the in-memory
// series representation.
func (c *Column) ILoc() (*ILoc, error) {
	sr, ok := c.data.(*frame.Series)
	if !ok {
		return nil, wrapUnsupportedBackend("column", c.data)
	}
	return &ILoc{
		target: targetColumn,
		column: c,
		sr:     sr,
		logger: c.logger.WithColumn(c.name),
	}, nil
}

// Get selects by position along the row axis of a table, or along a
// column's values. The raw lookup is delegated to the backing data and the
// result re-wrapped by shape:
//
//   - a one-dimensional result becomes a typed Column carrying the resolved
//     metadata, except for one full table row, which is returned as a raw
//     series because no single column's metadata applies to it;
//   - a two-dimensional result becomes a typed Table with the original
//     table's metadata restricted to the retained columns;
//   - a scalar is returned unchanged.
//
// Errors from the raw lookup propagate unchanged.
func (ix *ILoc) Get(key frame.Key) (Result, error) {
	var (
		sel frame.Selection
		err error
	)
	if ix.target == targetTable {
		sel, err = ix.df.Select(key)
	} else {
		sel, err = ix.sr.Select(key)
	}
	if err != nil {
		ix.logger.LogSelect(ix.entity(), 0, err)
		return Result{}, err
	}

	res := ix.wrap(sel)
	ix.logger.LogSelect(ix.entity(), res.kind, nil)

	return res, nil
}

// Get2 selects by position along both axes of a table. It fails with
// ErrTooManyIndexers on a column indexer.
func (ix *ILoc) Get2(rowKey, colKey frame.Key) (Result, error) {
	if ix.target != targetTable {
		return Result{}, ErrTooManyIndexers
	}

	sel, err := ix.df.Select2(rowKey, colKey)
	if err != nil {
		ix.logger.LogSelect(ix.entity(), 0, err)
		return Result{}, err
	}

	res := ix.wrap(sel)
	ix.logger.LogSelect(ix.entity(), res.kind, nil)

	return res, nil
}

func (ix *ILoc) entity() string {
	if ix.target == targetTable {
		return "table"
	}
	return "column"
}

func (ix *ILoc) wrap(sel frame.Selection) Result {
	switch sel.Kind() {
	case frame.SelectionSeries:
		s := sel.Series()
		if ix.target == targetTable && labelSetEqual(s.Labels(), ix.table.Columns()) {
			// One full row extracted from the table: return it raw.
			// Known ambiguity: a column slice whose row labels happen to
			// coincide with the column-name set takes this path too.
			return Result{kind: ResultSeries, series: s}
		}
		return Result{kind: ResultColumn, column: ix.wrapColumn(s)}
	case frame.SelectionFrame:
		// Only reachable when indexing a table.
		return Result{kind: ResultTable, table: newTableFrom(ix.table, sel.Frame())}
	default:
		return Result{kind: ResultScalar, scalar: sel.Scalar()}
	}
}

// wrapColumn builds a typed column for a one-dimensional result. The
// metadata comes from the original entity: a table contributes the entry
// for the result's name from its per-column mappings, a column contributes
// its own logical type and tags. The new column carries the original
// entity's name and standard-tags flag, not the raw series label.
func (ix *ILoc) wrapColumn(s *frame.Series) *Column {
	var (
		lt    typesys.LogicalType
		hasLT bool
		tags  typesys.Tags
	)
	if ix.target == targetTable {
		lt, hasLT = ix.table.logicalTypes[s.Name()]
		if tg, ok := ix.table.semanticTags[s.Name()]; ok {
			tags = tg.Clone()
		}
	} else {
		lt, hasLT = ix.column.logicalType, ix.column.hasLogicalType
		if len(ix.column.semanticTags) > 0 {
			tags = ix.column.semanticTags.Clone()
		}
	}

	if tags != nil {
		// A derived column is never itself an index or time index.
		tags = tags.Without(typesys.TagIndex, typesys.TagTimeIndex)
	}

	var (
		name   string
		ust    bool
		logger *Logger
	)
	if ix.target == targetTable {
		name, ust, logger = ix.table.name, ix.table.useStandardTags, ix.table.logger
	} else {
		name, ust, logger = ix.column.name, ix.column.useStandardTags, ix.column.logger
	}

	if ust && hasLT {
		if std := lt.StandardTags(); len(std) > 0 {
			tags = tags.Union(std)
		}
	}

	return &Column{
		name:            name,
		data:            s,
		logicalType:     lt,
		hasLogicalType:  hasLT,
		semanticTags:    tags,
		useStandardTags: ust,
		logger:          logger,
	}
}

func labelSetEqual(labels, columns []string) bool {
	if labels == nil {
		return false
	}
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	if len(set) != len(columns) {
		return false
	}
	for _, c := range columns {
		if _, ok := set[c]; !ok {
			return false
		}
	}
	return true
}
