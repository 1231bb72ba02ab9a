package dynamic

import (
	"fmt"
	"reflect"

	"github.com/next-trace/scg-catchall/contract"
)

// Error holds an absorbed value behind an interface. The runtime type of the value
// is fixed at construction.
//
// Error is not comparable, so errors.Is never compares two payloads with ==.
type Error struct {
	_     [0]func()
	value any
}

// compile-time guarantee that Error implements contract.Shape
var _ contract.Shape = Error{}

func (Error) Kind() contract.Kind { return contract.KindDynamic }

func (e Error) Error() string {
	switch v := e.value.(type) {
	case nil:
		return "<nil>"
	case error:
		if isNil(v) {
			return "<nil>"
		}

		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Unwrap returns the absorbed value if it is a non-nil error, nil otherwise.
func (e Error) Unwrap() error {
	if err, ok := e.value.(error); ok && !isNil(err) {
		return err
	}

	return nil
}

// Value returns the absorbed value as any.
func (e Error) Value() any { return e.value }

// Type returns the runtime type of the absorbed value, nil if nothing was absorbed.
func (e Error) Type() reflect.Type { return reflect.TypeOf(e.value) }

// Default returns an Error holding the empty struct. It recovers as struct{}.
func Default() Error { return Error{value: struct{}{}} }

// isNil reports whether v holds a nil pointer, map, slice, func or chan.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
