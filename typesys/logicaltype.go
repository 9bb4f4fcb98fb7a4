package typesys

import (
	"fmt"
	"strings"

	"github.com/typedframe/typedframe/frame"
)

// LogicalType is a semantic classification of a column, distinct from the
// physical kind the values are stored as. A logical type carries the
// physical kind it expects and the standard semantic tags it implies.
//
// The zero value is not a valid logical type; use the registered types or
// FromString.
type LogicalType struct {
	name       string
	typeString string
	physical   frame.Kind
	standard   Tags
}

// Registered logical types.
var (
	// Unknown is the fallback type for columns declared without a logical
	// type. It places no constraint on the physical kind.
	Unknown = LogicalType{name: "Unknown", typeString: "unknown", physical: frame.KindInvalid}
	// Boolean represents true/false values.
	Boolean = LogicalType{name: "Boolean", typeString: "boolean", physical: frame.KindBool}
	// Categorical represents string values drawn from a discrete set.
	Categorical = LogicalType{name: "Categorical", typeString: "categorical", physical: frame.KindString, standard: NewTags(TagCategory)}
	// Datetime represents timestamps.
	Datetime = LogicalType{name: "Datetime", typeString: "datetime", physical: frame.KindTime}
	// Double represents floating point numbers.
	Double = LogicalType{name: "Double", typeString: "double", physical: frame.KindFloat, standard: NewTags(TagNumeric)}
	// Integer represents whole numbers.
	Integer = LogicalType{name: "Integer", typeString: "integer", physical: frame.KindInt, standard: NewTags(TagNumeric)}
	// NaturalLanguage represents free-form text.
	NaturalLanguage = LogicalType{name: "NaturalLanguage", typeString: "natural_language", physical: frame.KindString}
	// Timedelta represents elapsed-time values.
	Timedelta = LogicalType{name: "Timedelta", typeString: "timedelta", physical: frame.KindDuration}
)

var registered = []LogicalType{
	Boolean,
	Categorical,
	Datetime,
	Double,
	Integer,
	NaturalLanguage,
	Timedelta,
	Unknown,
}

// Name returns the display name of the logical type, e.g. "NaturalLanguage".
func (lt LogicalType) Name() string {
	return lt.name
}

// TypeString returns the snake_case identifier, e.g. "natural_language".
func (lt LogicalType) TypeString() string {
	return lt.typeString
}

// Physical returns the physical kind the type expects. KindInvalid means
// the type places no constraint.
func (lt LogicalType) Physical() frame.Kind {
	return lt.physical
}

// StandardTags returns a copy of the semantic tags the type implies.
func (lt LogicalType) StandardTags() Tags {
	if lt.standard == nil {
		return NewTags()
	}
	return lt.standard.Clone()
}

// IsNumeric reports whether the type carries the numeric standard tag.
func (lt LogicalType) IsNumeric() bool {
	return lt.standard.Has(TagNumeric)
}

// ValidValue reports whether a cell value is consistent with the type's
// physical kind. Nulls are always valid; integers widen to float.
func (lt LogicalType) ValidValue(v frame.Value) bool {
	if lt.physical == frame.KindInvalid || v.IsNull() {
		return true
	}
	if v.Kind() == lt.physical {
		return true
	}
	return lt.physical == frame.KindFloat && v.Kind() == frame.KindInt
}

// Is reports whether two logical types are the same registered type.
func (lt LogicalType) Is(o LogicalType) bool {
	return lt.name == o.name
}

// String returns the display name.
func (lt LogicalType) String() string {
	return lt.name
}

// Registered returns all registered logical types.
func Registered() []LogicalType {
	out := make([]LogicalType, len(registered))
	copy(out, registered)
	return out
}

// FromString resolves a logical type from its name or type string,
// case-insensitively: "Integer", "integer" and "INTEGER" all resolve.
func FromString(s string) (LogicalType, error) {
	for _, lt := range registered {
		if strings.EqualFold(s, lt.name) || strings.EqualFold(s, lt.typeString) {
			return lt, nil
		}
	}
	return LogicalType{}, fmt.Errorf("unknown logical type %q", s)
}
