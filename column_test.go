package typedframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typedframe/typedframe/frame"
	"github.com/typedframe/typedframe/typesys"
)

func TestNewColumn(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := NewColumn(frame.NewSeries("age", frame.Int(30), frame.Int(41)))
		require.NoError(t, err)

		assert.Equal(t, "age", c.Name())
		assert.Equal(t, 2, c.Len())
		assert.True(t, c.UseStandardTags())

		_, ok := c.LogicalType()
		assert.False(t, ok)
		assert.Nil(t, c.SemanticTags())
	})

	t.Run("NameOverride", func(t *testing.T) {
		c, err := NewColumn(frame.NewSeries("raw", frame.Int(1)), WithColumnName("age"))
		require.NoError(t, err)
		assert.Equal(t, "age", c.Name())
	})

	t.Run("StandardTagsApplied", func(t *testing.T) {
		c, err := NewColumn(frame.NewSeries("age", frame.Int(30)),
			WithLogicalType(typesys.Integer))
		require.NoError(t, err)

		lt, ok := c.LogicalType()
		require.True(t, ok)
		assert.True(t, lt.Is(typesys.Integer))
		assert.True(t, c.SemanticTags().Has(typesys.TagNumeric))
	})

	t.Run("StandardTagsDisabled", func(t *testing.T) {
		c, err := NewColumn(frame.NewSeries("age", frame.Int(30)),
			WithLogicalType(typesys.Integer),
			WithColumnStandardTags(false))
		require.NoError(t, err)
		assert.Nil(t, c.SemanticTags())
	})

	t.Run("ValuesChecked", func(t *testing.T) {
		_, err := NewColumn(frame.NewSeries("age", frame.Int(30), frame.String("old")),
			WithLogicalType(typesys.Integer))
		var tm *TypeMismatchError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, "age", tm.Column)
		assert.Equal(t, 1, tm.Position)
	})

	t.Run("NullsAllowed", func(t *testing.T) {
		_, err := NewColumn(frame.NewSeries("age", frame.Int(30), frame.Null()),
			WithLogicalType(typesys.Integer))
		require.NoError(t, err)
	})

	t.Run("IntWidensToDouble", func(t *testing.T) {
		_, err := NewColumn(frame.NewSeries("score", frame.Float(1.5), frame.Int(2)),
			WithLogicalType(typesys.Double))
		require.NoError(t, err)
	})

	t.Run("ReservedTagsAllowedOnColumns", func(t *testing.T) {
		c, err := NewColumn(frame.NewSeries("id", frame.Int(1)),
			WithLogicalType(typesys.Integer),
			WithColumnTags(typesys.NewTags(typesys.TagIndex)))
		require.NoError(t, err)
		assert.True(t, c.SemanticTags().Has(typesys.TagIndex))
	})

	t.Run("NilData", func(t *testing.T) {
		_, err := NewColumn(nil)
		require.ErrorIs(t, err, ErrNilData)
	})

	t.Run("NonFrameBackendSkipsValueCheck", func(t *testing.T) {
		c, err := NewColumn(stubSeries{name: "s", n: 2},
			WithLogicalType(typesys.Integer))
		require.NoError(t, err)
		assert.Equal(t, "s", c.Name())
	})

	t.Run("TagsCopied", func(t *testing.T) {
		tags := typesys.NewTags("pii")
		c, err := NewColumn(frame.NewSeries("name", frame.String("a")),
			WithColumnTags(tags))
		require.NoError(t, err)

		delete(tags, "pii")
		assert.True(t, c.SemanticTags().Has("pii"))
	})
}
