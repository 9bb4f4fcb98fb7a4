package arrowtab

import (
	"errors"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"golang.org/x/sync/errgroup"

	"github.com/typedframe/typedframe/frame"
)

// ErrEmptyRecord is returned when converting a record without columns.
var ErrEmptyRecord = errors.New("record must have at least one column")

// MixedKindError indicates a frame column whose values do not share one
// kind and therefore cannot be mapped to a single Arrow type.
type MixedKindError struct {
	Column string
	Want   frame.Kind
	Got    frame.Kind
}

func (e *MixedKindError) Error() string {
	return fmt.Sprintf("column %q mixes %s and %s values", e.Column, e.Want, e.Got)
}

// UnsupportedTypeError indicates an Arrow column type the conversion does
// not handle.
type UnsupportedTypeError struct {
	Column string
	Type   arrow.DataType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("column %q has unsupported arrow type %s", e.Column, e.Type)
}

// FromFrame converts a frame into an Arrow record. Columns are built in
// parallel, one goroutine per column. If mem is nil, the default allocator
// is used. The caller owns the returned record and must release it.
func FromFrame(f *frame.Frame, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	names := f.ColumnNames()
	cols := make([]*frame.Series, len(names))
	for i, name := range names {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	kinds := make([]frame.Kind, len(names))
	arrs := make([]arrow.Array, len(names))
	g := new(errgroup.Group)
	for i := range names {
		g.Go(func() error {
			kind, err := columnKind(cols[i])
			if err != nil {
				return err
			}
			kinds[i] = kind
			arrs[i] = buildArray(mem, cols[i], kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, a := range arrs {
			if a != nil {
				a.Release()
			}
		}
		return nil, err
	}

	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		fields[i] = arrow.Field{Name: name, Type: arrowType(kinds[i]), Nullable: true}
	}

	rec := array.NewRecord(arrow.NewSchema(fields, nil), arrs, int64(f.NumRows()))
	for _, a := range arrs {
		a.Release()
	}
	return rec, nil
}

// ToFrame materializes an Arrow record into the in-memory frame
// representation the positional indexer supports.
func ToFrame(rec arrow.Record) (*frame.Frame, error) {
	if rec.NumCols() == 0 {
		return nil, ErrEmptyRecord
	}

	cols := make([]*frame.Series, rec.NumCols())
	for i := range cols {
		name := rec.ColumnName(i)
		values, err := readArray(name, rec.Column(i))
		if err != nil {
			return nil, err
		}
		cols[i] = frame.NewSeries(name, values...)
	}
	return frame.NewFrame(cols...)
}

// columnKind scans a column and settles its Arrow-facing kind. Nulls are
// skipped; integers widen to float when both occur.
func columnKind(s *frame.Series) (frame.Kind, error) {
	kind := frame.KindNull
	for i := 0; i < s.Len(); i++ {
		v, err := s.Value(i)
		if err != nil {
			return frame.KindInvalid, err
		}
		if v.IsNull() {
			continue
		}
		switch {
		case kind == frame.KindNull:
			kind = v.Kind()
		case kind == v.Kind():
		case kind == frame.KindInt && v.Kind() == frame.KindFloat:
			kind = frame.KindFloat
		case kind == frame.KindFloat && v.Kind() == frame.KindInt:
		default:
			return frame.KindInvalid, &MixedKindError{Column: s.Name(), Want: kind, Got: v.Kind()}
		}
	}
	return kind, nil
}

func arrowType(kind frame.Kind) arrow.DataType {
	switch kind {
	case frame.KindBool:
		return arrow.FixedWidthTypes.Boolean
	case frame.KindInt:
		return arrow.PrimitiveTypes.Int64
	case frame.KindFloat:
		return arrow.PrimitiveTypes.Float64
	case frame.KindString:
		return arrow.BinaryTypes.String
	case frame.KindTime:
		return arrow.FixedWidthTypes.Timestamp_us
	case frame.KindDuration:
		return arrow.FixedWidthTypes.Duration_ns
	default:
		return arrow.Null
	}
}

func buildArray(mem memory.Allocator, s *frame.Series, kind frame.Kind) arrow.Array {
	b := array.NewBuilder(mem, arrowType(kind))
	defer b.Release()

	for _, v := range s.Values() {
		if v.IsNull() {
			b.AppendNull()
			continue
		}
		switch kind {
		case frame.KindBool:
			b.(*array.BooleanBuilder).Append(v.AsBool())
		case frame.KindInt:
			b.(*array.Int64Builder).Append(v.AsInt64())
		case frame.KindFloat:
			b.(*array.Float64Builder).Append(v.AsFloat64())
		case frame.KindString:
			b.(*array.StringBuilder).Append(v.AsString())
		case frame.KindTime:
			b.(*array.TimestampBuilder).Append(arrow.Timestamp(v.AsTime().UnixMicro()))
		case frame.KindDuration:
			b.(*array.DurationBuilder).Append(arrow.Duration(v.AsDuration().Nanoseconds()))
		}
	}
	return b.NewArray()
}

func readArray(name string, arr arrow.Array) ([]frame.Value, error) {
	values := make([]frame.Value, arr.Len())
	for i := range values {
		if arr.IsNull(i) {
			values[i] = frame.Null()
			continue
		}
		switch a := arr.(type) {
		case *array.Boolean:
			values[i] = frame.Bool(a.Value(i))
		case *array.Int64:
			values[i] = frame.Int(a.Value(i))
		case *array.Int32:
			values[i] = frame.Int(int64(a.Value(i)))
		case *array.Float64:
			values[i] = frame.Float(a.Value(i))
		case *array.Float32:
			values[i] = frame.Float(float64(a.Value(i)))
		case *array.String:
			values[i] = frame.String(a.Value(i))
		case *array.Timestamp:
			dt := a.DataType().(*arrow.TimestampType)
			values[i] = frame.Time(a.Value(i).ToTime(dt.Unit).UTC())
		case *array.Duration:
			dt := a.DataType().(*arrow.DurationType)
			values[i] = frame.Duration(durationOf(a.Value(i), dt.Unit))
		case *array.Null:
			values[i] = frame.Null()
		default:
			return nil, &UnsupportedTypeError{Column: name, Type: arr.DataType()}
		}
	}
	return values, nil
}

func durationOf(v arrow.Duration, unit arrow.TimeUnit) time.Duration {
	switch unit {
	case arrow.Second:
		return time.Duration(v) * time.Second
	case arrow.Millisecond:
		return time.Duration(v) * time.Millisecond
	case arrow.Microsecond:
		return time.Duration(v) * time.Microsecond
	default:
		return time.Duration(v)
	}
}
