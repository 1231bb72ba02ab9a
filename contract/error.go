// Package contract exposes the minimal surface shared by the catch-all error shapes.
//
// Implementations live in the unit, formatted and dynamic packages. None of them
// import each other; they only agree on the Shape interface defined here.
package contract

import "errors"

// Kind identifies one of the catch-all error shapes.
type Kind uint8

const (
	// KindUnknown is returned for errors that are not a catch-all shape.
	KindUnknown Kind = iota
	KindUnit
	KindFormatted
	KindDynamic
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindFormatted:
		return "formatted"
	case KindDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Shape is implemented by the catch-all error types only.
//
// Implementations must:
//   - Be value types that are safe to copy.
//   - Return themselves unchanged when their package's From receives a value
//     of their own type (the identity conversion).
//   - Absorb every other value, including the other shapes.
//
// Shape is a tag for inspection. Conversions never dispatch on it.
type Shape interface {
	error
	Kind() Kind
}

// KindOf reports the kind of the first catch-all shape found in err's chain.
func KindOf(err error) (Kind, bool) {
	var s Shape
	if !errors.As(err, &s) {
		return KindUnknown, false
	}

	return s.Kind(), true
}
