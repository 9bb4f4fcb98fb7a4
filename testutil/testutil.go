package testutil

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/typedframe/typedframe/frame"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Value returns a random value of the given kind. About one in ten values
// is null so selection paths see missing data.
func (r *RNG) Value(kind frame.Kind) frame.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value(kind)
}

func (r *RNG) value(kind frame.Kind) frame.Value {
	if r.rand.Intn(10) == 0 {
		return frame.Null()
	}

	switch kind {
	case frame.KindBool:
		return frame.Bool(r.rand.Intn(2) == 0)
	case frame.KindInt:
		return frame.Int(r.rand.Int63n(1_000_000))
	case frame.KindFloat:
		return frame.Float(r.rand.Float64() * 1000)
	case frame.KindString:
		return frame.String(fmt.Sprintf("s%06d", r.rand.Intn(1_000_000)))
	case frame.KindTime:
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		return frame.Time(base.Add(time.Duration(r.rand.Int63n(int64(365 * 24 * time.Hour)))))
	case frame.KindDuration:
		return frame.Duration(time.Duration(r.rand.Int63n(int64(time.Hour))))
	default:
		return frame.Null()
	}
}

// Series generates a random series of n values of the given kind.
// Locks only once per call (preferred over calling Value in a loop).
func (r *RNG) Series(name string, n int, kind frame.Kind) *frame.Series {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]frame.Value, n)
	for i := range values {
		values[i] = r.value(kind)
	}

	return frame.NewSeries(name, values...)
}

// Frame generates a random frame with rows rows and one column per kind,
// named c0, c1, ...
func (r *RNG) Frame(rows int, kinds ...frame.Kind) (*frame.Frame, error) {
	cols := make([]*frame.Series, len(kinds))
	for i, kind := range kinds {
		cols[i] = r.Series(fmt.Sprintf("c%d", i), rows, kind)
	}

	return frame.NewFrame(cols...)
}

// Positions returns k distinct pseudo-random positions in [0,n).
func (r *RNG) Positions(k, n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if k > n {
		k = n
	}

	return r.rand.Perm(n)[:k]
}
