// Package unit provides a zero-sized error that only records that some error happened.
//
// Use it when the caller does not care which error occurred, only that one did:
//
//	if err := doSomething(); err != nil {
//		return unit.Ensure(err)
//	}
package unit

import "github.com/next-trace/scg-catchall/contract"

// Error carries no information. All values are equal.
type Error struct{}

// compile-time guarantee that Error implements contract.Shape
var _ contract.Shape = Error{}

const message = "some error occurred"

func (Error) Error() string       { return message }
func (Error) Kind() contract.Kind { return contract.KindUnit }

// Is reports whether target is a unit error, by value or by pointer.
func (Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return true
	case *Error:
		return t != nil
	default:
		return false
	}
}

// Default returns the unit error. It is the same as the zero value.
func Default() Error { return Error{} }

// From absorbs src and discards it. Copy whatever you need out of src first.
func From(src any) Error {
	// identity: src already is the unit error
	if e, ok := src.(Error); ok {
		return e
	}

	return Error{}
}

// Ensure converts a non-nil err to Error for propagation.
//
// Behavior:
//   - nil input => nil output
//   - anything else => Error{}
func Ensure(err error) error {
	if err == nil {
		return nil
	}

	return From(err)
}
