// Package frame provides the in-memory tabular representation used by
// typedframe: a Series of typed cell values and a Frame of named columns,
// with positional selection over both.
//
// # Values
//
// Cells are small tagged values:
//
//   - Null: frame.Null()
//   - Bool: frame.Bool(true)
//   - Int: frame.Int(42)
//   - Float: frame.Float(3.14)
//   - String: frame.String("tech")
//   - Time: frame.Time(ts)
//   - Duration: frame.Duration(5 * time.Minute)
//
// # Keys
//
// Positional selection is expressed with keys:
//
//   - frame.At(2) selects a single position (negative counts from the end)
//   - frame.Span(0, 3) selects a half-open range, clamped like a slice
//   - frame.List(4, 0, 2) selects explicit positions in order
//   - frame.MaskOf([]bool{...}) selects by boolean mask (Roaring-backed)
//
// A scalar key reduces dimensionality (frame row -> series, series cell ->
// scalar); set keys preserve it. Results are carried in a Selection tagged
// union.
package frame
