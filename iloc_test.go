package typedframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typedframe/typedframe/frame"
	"github.com/typedframe/typedframe/testutil"
	"github.com/typedframe/typedframe/typesys"
)

func TestILocConstruction(t *testing.T) {
	t.Run("FrameBackedTable", func(t *testing.T) {
		ix, err := testTable(t).ILoc()
		require.NoError(t, err)
		require.NotNil(t, ix)
	})

	t.Run("UnsupportedTableBackend", func(t *testing.T) {
		tbl, err := NewTable(stubDataset{cols: []string{"a"}, rows: 1})
		require.NoError(t, err)

		_, err = tbl.ILoc()
		require.ErrorIs(t, err, ErrUnsupportedBackend)
	})

	t.Run("UnsupportedColumnBackend", func(t *testing.T) {
		c, err := NewColumn(stubSeries{name: "s", n: 1})
		require.NoError(t, err)

		_, err = c.ILoc()
		require.ErrorIs(t, err, ErrUnsupportedBackend)
	})
}

func TestTableILocFullRow(t *testing.T) {
	tbl := testTable(t)
	ix, err := tbl.ILoc()
	require.NoError(t, err)

	for i := 0; i < tbl.NumRows(); i++ {
		res, err := ix.Get(frame.At(i))
		require.NoError(t, err)

		// one full row comes back as a raw series labeled by column names
		require.Equal(t, ResultSeries, res.Kind())
		assert.ElementsMatch(t, tbl.Columns(), res.Series().Labels())
		assert.Nil(t, res.Column())
	}
}

func TestTableILocColumnSlice(t *testing.T) {
	tbl := testTable(t)
	ix, err := tbl.ILoc()
	require.NoError(t, err)

	t.Run("MetadataResolved", func(t *testing.T) {
		res, err := ix.Get2(frame.All(), frame.At(0))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, res.Kind())

		col := res.Column()
		lt, ok := col.LogicalType()
		require.True(t, ok)
		assert.True(t, lt.Is(typesys.Integer))

		// reserved tags are stripped, standard tags survive
		tags := col.SemanticTags()
		assert.False(t, tags.Has(typesys.TagIndex))
		assert.False(t, tags.Has(typesys.TagTimeIndex))
		assert.True(t, tags.Has(typesys.TagNumeric))

		// the derived column carries the parent table's name and flag
		assert.Equal(t, "events", col.Name())
		assert.True(t, col.UseStandardTags())

		assert.Equal(t, 4, col.Len())
	})

	t.Run("TimeIndexStripped", func(t *testing.T) {
		res, err := ix.Get2(frame.All(), frame.At(1))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, res.Kind())

		tags := res.Column().SemanticTags()
		assert.False(t, tags.Has(typesys.TagTimeIndex))
	})

	t.Run("RowSubsetKeepsMetadata", func(t *testing.T) {
		res, err := ix.Get2(frame.Span(1, 3), frame.At(2))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, res.Kind())

		lt, ok := res.Column().LogicalType()
		require.True(t, ok)
		assert.True(t, lt.Is(typesys.Categorical))
		assert.Equal(t, 2, res.Column().Len())
	})

	t.Run("PartialRowHasNoColumnMetadata", func(t *testing.T) {
		// a row restricted to some columns is named after the row label,
		// which matches no column, so no metadata resolves
		res, err := ix.Get2(frame.At(0), frame.Span(0, 2))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, res.Kind())

		_, ok := res.Column().LogicalType()
		assert.False(t, ok)
		assert.Nil(t, res.Column().SemanticTags())
		assert.Equal(t, "events", res.Column().Name())
	})
}

func TestTableILocSubTable(t *testing.T) {
	tbl := testTable(t)
	ix, err := tbl.ILoc()
	require.NoError(t, err)

	t.Run("RowSpan", func(t *testing.T) {
		res, err := ix.Get(frame.Span(1, 3))
		require.NoError(t, err)
		require.Equal(t, ResultTable, res.Kind())

		sub := res.Table()
		assert.Equal(t, "events", sub.Name())
		assert.Equal(t, tbl.Columns(), sub.Columns())
		assert.Equal(t, 2, sub.NumRows())

		// metadata carried over unchanged, reserved tags included
		assert.Equal(t, tbl.LogicalTypes(), sub.LogicalTypes())
		for name, want := range tbl.SemanticTags() {
			got, ok := sub.ColumnTags(name)
			require.True(t, ok)
			assert.True(t, want.Equal(got), "tags of %s", name)
		}

		idTags, _ := sub.ColumnTags("id")
		assert.True(t, idTags.Has(typesys.TagIndex))
	})

	t.Run("RestrictedColumns", func(t *testing.T) {
		res, err := ix.Get2(frame.Span(0, 2), frame.List(3, 0))
		require.NoError(t, err)
		require.Equal(t, ResultTable, res.Kind())

		sub := res.Table()
		assert.Equal(t, []string{"note", "id"}, sub.Columns())

		_, ok := sub.LogicalType("ts")
		assert.False(t, ok)
		_, ok = sub.ColumnTags("ts")
		assert.False(t, ok)

		lt, ok := sub.LogicalType("note")
		require.True(t, ok)
		assert.True(t, lt.Is(typesys.NaturalLanguage))
	})

	t.Run("SingleRowSpanStaysTable", func(t *testing.T) {
		res, err := ix.Get(frame.Span(0, 1))
		require.NoError(t, err)
		assert.Equal(t, ResultTable, res.Kind())
	})

	t.Run("MaskSelection", func(t *testing.T) {
		res, err := ix.Get(frame.MaskOf([]bool{true, false, true, false}))
		require.NoError(t, err)
		require.Equal(t, ResultTable, res.Kind())
		assert.Equal(t, 2, res.Table().NumRows())
	})

	t.Run("SubTableIndexesAgain", func(t *testing.T) {
		res, err := ix.Get(frame.Span(1, 4))
		require.NoError(t, err)

		sub, err := res.Table().ILoc()
		require.NoError(t, err)

		again, err := sub.Get2(frame.All(), frame.At(0))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, again.Kind())

		lt, ok := again.Column().LogicalType()
		require.True(t, ok)
		assert.True(t, lt.Is(typesys.Integer))
	})
}

func TestTableILocScalar(t *testing.T) {
	ix, err := testTable(t).ILoc()
	require.NoError(t, err)

	res, err := ix.Get2(frame.At(1), frame.At(0))
	require.NoError(t, err)
	require.Equal(t, ResultScalar, res.Kind())
	assert.True(t, frame.Int(2).Equal(res.Scalar()))
}

func TestColumnILoc(t *testing.T) {
	col, err := NewColumn(
		frame.NewSeries("age", frame.Int(30), frame.Int(41), frame.Int(27)),
		WithLogicalType(typesys.Integer),
		WithColumnTags(typesys.NewTags(typesys.TagIndex, "pii")),
	)
	require.NoError(t, err)

	ix, err := col.ILoc()
	require.NoError(t, err)

	t.Run("ScalarUnwrapped", func(t *testing.T) {
		res, err := ix.Get(frame.At(0))
		require.NoError(t, err)
		require.Equal(t, ResultScalar, res.Kind())
		assert.True(t, frame.Int(30).Equal(res.Scalar()))
	})

	t.Run("SliceKeepsIdentity", func(t *testing.T) {
		res, err := ix.Get(frame.Span(0, 2))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, res.Kind())

		derived := res.Column()
		assert.Equal(t, "age", derived.Name())
		assert.True(t, derived.UseStandardTags())

		lt, ok := derived.LogicalType()
		require.True(t, ok)
		assert.True(t, lt.Is(typesys.Integer))

		tags := derived.SemanticTags()
		assert.False(t, tags.Has(typesys.TagIndex))
		assert.True(t, tags.Has("pii"))
		assert.True(t, tags.Has(typesys.TagNumeric))

		assert.Equal(t, 2, derived.Len())
	})

	t.Run("UntypedColumnStaysUntyped", func(t *testing.T) {
		plain, err := NewColumn(frame.NewSeries("x", frame.Int(1), frame.Int(2)))
		require.NoError(t, err)

		pix, err := plain.ILoc()
		require.NoError(t, err)

		res, err := pix.Get(frame.Span(0, 2))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, res.Kind())

		_, ok := res.Column().LogicalType()
		assert.False(t, ok)
		assert.Nil(t, res.Column().SemanticTags())
	})

	t.Run("TwoAxesRejected", func(t *testing.T) {
		_, err := ix.Get2(frame.At(0), frame.At(0))
		require.ErrorIs(t, err, ErrTooManyIndexers)
	})
}

func TestILocErrorsPropagate(t *testing.T) {
	tbl := testTable(t)
	ix, err := tbl.ILoc()
	require.NoError(t, err)

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := ix.Get(frame.At(10))
		var oor *frame.OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, 10, oor.Index)
		assert.Equal(t, 4, oor.Length)
	})

	t.Run("MaskLengthMismatch", func(t *testing.T) {
		_, err := ix.Get(frame.MaskOf([]bool{true}))
		var lm *frame.LengthMismatchError
		require.ErrorAs(t, err, &lm)
	})

	t.Run("ColumnOutOfRange", func(t *testing.T) {
		col, err := NewColumn(frame.NewSeries("x", frame.Int(1)))
		require.NoError(t, err)

		cix, err := col.ILoc()
		require.NoError(t, err)

		_, err = cix.Get(frame.At(5))
		var oor *frame.OutOfRangeError
		require.ErrorAs(t, err, &oor)
	})
}

// TestFullRowHeuristicAmbiguity pins down the documented classification
// rule: a one-dimensional result counts as "one full row" exactly when its
// label set equals the table's column-name set. A column slice whose row
// labels coincide with the column names therefore comes back raw.
func TestFullRowHeuristicAmbiguity(t *testing.T) {
	df, err := frame.NewFrame(frame.NewSeries("0", frame.Int(7)))
	require.NoError(t, err)

	tbl, err := NewTable(df, WithLogicalTypes(map[string]typesys.LogicalType{"0": typesys.Integer}))
	require.NoError(t, err)

	ix, err := tbl.ILoc()
	require.NoError(t, err)

	res, err := ix.Get2(frame.All(), frame.At(0))
	require.NoError(t, err)
	assert.Equal(t, ResultSeries, res.Kind())
}

func TestILocRandomized(t *testing.T) {
	rng := testutil.NewRNG(4711)

	df, err := rng.Frame(64, frame.KindInt, frame.KindFloat, frame.KindString, frame.KindTime)
	require.NoError(t, err)

	tbl, err := NewTable(df, WithLogicalTypes(map[string]typesys.LogicalType{
		"c0": typesys.Integer,
		"c1": typesys.Double,
		"c2": typesys.Categorical,
		"c3": typesys.Datetime,
	}))
	require.NoError(t, err)

	ix, err := tbl.ILoc()
	require.NoError(t, err)

	for trial := 0; trial < 50; trial++ {
		rows := rng.Positions(1+rng.Intn(10), tbl.NumRows())
		col := rng.Intn(len(tbl.Columns()))

		res, err := ix.Get2(frame.List(rows...), frame.At(col))
		require.NoError(t, err)
		require.Equal(t, ResultColumn, res.Kind())
		assert.Equal(t, len(rows), res.Column().Len())

		want, _ := tbl.LogicalType(tbl.Columns()[col])
		got, ok := res.Column().LogicalType()
		require.True(t, ok)
		assert.True(t, want.Is(got))

		sub, err := ix.Get(frame.List(rows...))
		require.NoError(t, err)
		require.Equal(t, ResultTable, sub.Kind())
		assert.Equal(t, len(rows), sub.Table().NumRows())
		assert.Equal(t, tbl.Columns(), sub.Table().Columns())
	}
}

func TestILocDoesNotMutate(t *testing.T) {
	tbl := testTable(t)
	before := tbl.SemanticTags()

	ix, err := tbl.ILoc()
	require.NoError(t, err)

	_, err = ix.Get2(frame.All(), frame.At(0))
	require.NoError(t, err)

	after := tbl.SemanticTags()
	for name, want := range before {
		assert.True(t, want.Equal(after[name]), "tags of %s changed", name)
	}
}
