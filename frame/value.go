package frame

import (
	"strconv"
	"time"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a missing value.
	KindNull
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindTime represents a timestamp value.
	KindTime
	// KindDuration represents an elapsed-time value.
	KindDuration
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindTime:
		return "Time"
	case KindDuration:
		return "Duration"
	default:
		return "Invalid"
	}
}

// Value is a small typed cell value used by Series and Frame.
//
// The representation avoids reflection and interface boxing so that
// selections stay cheap and allocation-free on the scalar path.
type Value struct {
	kind Kind
	i64  int64 // KindInt and KindDuration (nanoseconds)
	f64  float64
	s    string
	b    bool
	t    time.Time
}

// Null returns a missing value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i64: i}
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f64: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Time returns a timestamp value.
func Time(t time.Time) Value {
	return Value{kind: KindTime, t: t}
}

// Duration returns an elapsed-time value.
func Duration(d time.Duration) Value {
	return Value{kind: KindDuration, i64: int64(d)}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is missing.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean value if Kind is KindBool, otherwise false.
func (v Value) AsBool() bool {
	if v.kind == KindBool {
		return v.b
	}
	return false
}

// AsInt64 returns the int64 value if Kind is KindInt, otherwise 0.
func (v Value) AsInt64() int64 {
	if v.kind == KindInt {
		return v.i64
	}
	return 0
}

// AsFloat64 returns the float value. Integer values are widened.
func (v Value) AsFloat64() float64 {
	switch v.kind {
	case KindFloat:
		return v.f64
	case KindInt:
		return float64(v.i64)
	default:
		return 0
	}
}

// AsString returns the string value if Kind is KindString, otherwise empty string.
func (v Value) AsString() string {
	if v.kind == KindString {
		return v.s
	}
	return ""
}

// AsTime returns the timestamp value if Kind is KindTime, otherwise the zero time.
func (v Value) AsTime() time.Time {
	if v.kind == KindTime {
		return v.t
	}
	return time.Time{}
}

// AsDuration returns the duration value if Kind is KindDuration, otherwise 0.
func (v Value) AsDuration() time.Duration {
	if v.kind == KindDuration {
		return time.Duration(v.i64)
	}
	return 0
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt, KindDuration:
		return v.i64 == o.i64
	case KindFloat:
		return v.f64 == o.f64
	case KindString:
		return v.s == o.s
	case KindTime:
		return v.t.Equal(o.t)
	default:
		return false
	}
}

// String returns a human-readable rendering of the value.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindDuration:
		return time.Duration(v.i64).String()
	default:
		return "invalid"
	}
}
