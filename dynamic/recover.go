package dynamic

import (
	"fmt"
	"reflect"
)

// MismatchError is returned by Recover when the absorbed value is not of the
// requested type. Source is the Error that was passed in, unchanged.
type MismatchError struct {
	Want   reflect.Type
	Got    reflect.Type
	Source Error
}

func (m *MismatchError) Error() string {
	return fmt.Sprintf("dynamic: cannot recover %s as %s", typeName(m.Got), typeName(m.Want))
}

// Unwrap returns Source, so errors.As(err, &dynamic.Error{}) yields the container back.
func (m *MismatchError) Unwrap() error { return m.Source }

// Recover returns the absorbed value if its runtime type is exactly T.
//
// Matching is exact: an interface T never matches, since the stored value always
// has a concrete type. On mismatch the zero T and a *MismatchError are returned.
func Recover[T any](e Error) (T, error) {
	if !Holds[T](e) {
		var zero T
		return zero, &MismatchError{Want: reflect.TypeOf((*T)(nil)).Elem(), Got: e.Type(), Source: e}
	}

	return e.value.(T), nil
}

// Holds reports whether Recover[T] would succeed on e.
func Holds[T any](e Error) bool {
	got := e.Type()
	return got != nil && got == reflect.TypeOf((*T)(nil)).Elem()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
