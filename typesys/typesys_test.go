package typesys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typedframe/typedframe/frame"
)

func TestLogicalTypes(t *testing.T) {
	tests := []struct {
		lt         LogicalType
		typeString string
		physical   frame.Kind
		numeric    bool
	}{
		{Boolean, "boolean", frame.KindBool, false},
		{Categorical, "categorical", frame.KindString, false},
		{Datetime, "datetime", frame.KindTime, false},
		{Double, "double", frame.KindFloat, true},
		{Integer, "integer", frame.KindInt, true},
		{NaturalLanguage, "natural_language", frame.KindString, false},
		{Timedelta, "timedelta", frame.KindDuration, false},
		{Unknown, "unknown", frame.KindInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.lt.Name(), func(t *testing.T) {
			assert.Equal(t, tt.typeString, tt.lt.TypeString())
			assert.Equal(t, tt.physical, tt.lt.Physical())
			assert.Equal(t, tt.numeric, tt.lt.IsNumeric())
		})
	}

	t.Run("StandardTags", func(t *testing.T) {
		assert.True(t, Integer.StandardTags().Has(TagNumeric))
		assert.True(t, Categorical.StandardTags().Has(TagCategory))
		assert.Empty(t, Datetime.StandardTags())
	})

	t.Run("StandardTagsCopy", func(t *testing.T) {
		tags := Integer.StandardTags()
		delete(tags, TagNumeric)
		assert.True(t, Integer.StandardTags().Has(TagNumeric))
	})
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    LogicalType
		wantErr bool
	}{
		{"Integer", Integer, false},
		{"integer", Integer, false},
		{"natural_language", NaturalLanguage, false},
		{"NaturalLanguage", NaturalLanguage, false},
		{"DATETIME", Datetime, false},
		{"unknown", Unknown, false},
		{"decimal", LogicalType{}, true},
		{"", LogicalType{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lt, err := FromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name(), lt.Name())
		})
	}
}

func TestValidValue(t *testing.T) {
	ts := time.Now()

	tests := []struct {
		name string
		lt   LogicalType
		v    frame.Value
		want bool
	}{
		{"IntForInteger", Integer, frame.Int(1), true},
		{"FloatForInteger", Integer, frame.Float(1), false},
		{"IntWidensToDouble", Double, frame.Int(1), true},
		{"NullAlwaysValid", Integer, frame.Null(), true},
		{"TimeForDatetime", Datetime, frame.Time(ts), true},
		{"StringForDatetime", Datetime, frame.String("2024"), false},
		{"AnythingForUnknown", Unknown, frame.Bool(true), true},
		{"DurationForTimedelta", Timedelta, frame.Duration(time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lt.ValidValue(tt.v))
		})
	}
}

func TestTags(t *testing.T) {
	t.Run("SetOps", func(t *testing.T) {
		tags := NewTags("numeric", "index")
		assert.True(t, tags.Has("numeric"))
		assert.False(t, tags.Has("category"))

		union := tags.Union(NewTags("category"))
		assert.True(t, union.Has("category"))
		assert.True(t, union.Has("numeric"))

		stripped := tags.Without(TagIndex, TagTimeIndex)
		assert.False(t, stripped.Has(TagIndex))
		assert.True(t, stripped.Has("numeric"))
		// original untouched
		assert.True(t, tags.Has(TagIndex))
	})

	t.Run("NilMeansUnset", func(t *testing.T) {
		var unset Tags
		assert.Nil(t, unset.Clone())
		assert.Nil(t, unset.Without(TagIndex))
		assert.False(t, unset.Has(TagIndex))
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, NewTags("a", "b").Equal(NewTags("b", "a")))
		assert.False(t, NewTags("a").Equal(NewTags("a", "b")))
		assert.True(t, Tags(nil).Equal(NewTags()))
	})

	t.Run("Sorted", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, NewTags("c", "a", "b").Sorted())
	})
}

func TestListings(t *testing.T) {
	t.Run("LogicalTypes", func(t *testing.T) {
		descs := ListLogicalTypes()
		require.Len(t, descs, len(Registered()))
		assert.Equal(t, "Boolean", descs[0].Name)

		byName := map[string]TypeDescription{}
		for _, d := range descs {
			byName[d.Name] = d
		}
		assert.Equal(t, []string{"numeric"}, byName["Integer"].StandardTags)
		assert.Equal(t, "String", byName["Categorical"].PhysicalType)
	})

	t.Run("SemanticTags", func(t *testing.T) {
		descs := ListSemanticTags()

		byName := map[string]TagDescription{}
		for _, d := range descs {
			byName[d.Name] = d
		}
		assert.True(t, byName[TagNumeric].IsStandard)
		assert.Equal(t, []string{"Double", "Integer"}, byName[TagNumeric].ValidTypes)
		assert.False(t, byName[TagIndex].IsStandard)
		assert.Contains(t, byName[TagTimeIndex].ValidTypes, "Datetime")
	})
}
