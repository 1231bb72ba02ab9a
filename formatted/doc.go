// Package formatted provides an error that keeps a rendered copy of whatever it absorbed.
//
// It exposes a single concrete type Error that implements contract.Shape. Absorbing a
// value renders it once, eagerly, and stores the text; the source value is not kept.
//
// Key characteristics:
//   - Comparable value type (two errors with the same text are ==)
//   - Identity conversion for values that already are an Error
//   - Pluggable rendering via WithRenderer (fmt, go-spew, kr/pretty)
//   - A fixed placeholder text for Default
//
// From absorbs any value and Ensure adapts an error result for propagation.
package formatted
