package frame

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Key is a positional selector resolved against a sequence of known length.
//
// A key addresses either a single position (At) or an ordered set of
// positions (Span, List, Mask). The distinction decides the shape of the
// selection result: scalar keys reduce dimensionality, set keys keep it.
type Key interface {
	// positions resolves the key against a sequence of length n.
	// scalar reports whether the key addresses exactly one element.
	positions(n int) (idx []int, scalar bool, err error)
}

type atKey struct {
	i int
}

// At returns a key selecting the single position i.
// Negative positions count from the end. Out-of-range positions error.
func At(i int) Key {
	return atKey{i: i}
}

func (k atKey) positions(n int) ([]int, bool, error) {
	i := k.i
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, true, &OutOfRangeError{Index: k.i, Length: n}
	}
	return []int{i}, true, nil
}

type spanKey struct {
	start, stop, step int
	all               bool
}

// Span returns a key selecting the half-open range [start, stop).
// Negative bounds count from the end; out-of-range bounds are clamped,
// so a span never errors on length.
func Span(start, stop int) Key {
	return spanKey{start: start, stop: stop, step: 1}
}

// SpanStep returns a span with an explicit step. A negative step walks
// the range backwards. A zero step errors at resolution time.
func SpanStep(start, stop, step int) Key {
	return spanKey{start: start, stop: stop, step: step}
}

// All returns a key selecting every position in order.
func All() Key {
	return spanKey{step: 1, all: true}
}

func (k spanKey) positions(n int) ([]int, bool, error) {
	if k.step == 0 {
		return nil, false, ErrInvalidStep
	}
	start, stop, step := k.start, k.stop, k.step
	if k.all {
		start, stop = 0, n
	}
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	var idx []int
	if step > 0 {
		start = clamp(start, 0, n)
		stop = clamp(stop, 0, n)
		for i := start; i < stop; i += step {
			idx = append(idx, i)
		}
		return idx, false, nil
	}
	start = clamp(start, -1, n-1)
	stop = clamp(stop, -1, n-1)
	for i := start; i > stop; i += step {
		idx = append(idx, i)
	}
	return idx, false, nil
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

type listKey struct {
	idx []int
}

// List returns a key selecting the given positions in the given order.
// Negative positions count from the end; every position is bounds-checked.
func List(idx ...int) Key {
	return listKey{idx: idx}
}

func (k listKey) positions(n int) ([]int, bool, error) {
	idx := make([]int, len(k.idx))
	for j, i := range k.idx {
		p := i
		if p < 0 {
			p += n
		}
		if p < 0 || p >= n {
			return nil, false, &OutOfRangeError{Index: i, Length: n}
		}
		idx[j] = p
	}
	return idx, false, nil
}

// Mask is a boolean row mask backed by a Roaring Bitmap.
// It selects the positions whose bit is set, in ascending order, and is
// only valid against sequences of exactly its declared length.
type Mask struct {
	length int
	bits   *roaring.Bitmap
}

// NewMask creates a mask of the given length with the given positions set.
func NewMask(length int, positions ...int) (*Mask, error) {
	bits := roaring.New()
	for _, p := range positions {
		if p < 0 || p >= length {
			return nil, &OutOfRangeError{Index: p, Length: length}
		}
		bits.Add(uint32(p))
	}
	return &Mask{length: length, bits: bits}, nil
}

// MaskOf creates a mask from a boolean slice, one bit per element.
func MaskOf(selected []bool) *Mask {
	bits := roaring.New()
	for i, s := range selected {
		if s {
			bits.Add(uint32(i))
		}
	}
	return &Mask{length: len(selected), bits: bits}
}

// Len returns the declared length of the mask.
func (m *Mask) Len() int {
	return m.length
}

// Count returns the number of selected positions.
func (m *Mask) Count() int {
	return int(m.bits.GetCardinality())
}

// Contains reports whether position i is selected.
func (m *Mask) Contains(i int) bool {
	if i < 0 || i >= m.length {
		return false
	}
	return m.bits.Contains(uint32(i))
}

// And returns the intersection of two masks of equal length.
func (m *Mask) And(o *Mask) (*Mask, error) {
	if m.length != o.length {
		return nil, &LengthMismatchError{What: "mask", Expected: m.length, Actual: o.length}
	}
	bits := roaring.And(m.bits, o.bits)
	return &Mask{length: m.length, bits: bits}, nil
}

// Or returns the union of two masks of equal length.
func (m *Mask) Or(o *Mask) (*Mask, error) {
	if m.length != o.length {
		return nil, &LengthMismatchError{What: "mask", Expected: m.length, Actual: o.length}
	}
	bits := roaring.Or(m.bits, o.bits)
	return &Mask{length: m.length, bits: bits}, nil
}

func (m *Mask) positions(n int) ([]int, bool, error) {
	if m.length != n {
		return nil, false, &LengthMismatchError{What: "mask", Expected: n, Actual: m.length}
	}
	idx := make([]int, 0, m.bits.GetCardinality())
	it := m.bits.Iterator()
	for it.HasNext() {
		idx = append(idx, int(it.Next()))
	}
	return idx, false, nil
}
