package formatted

// From converts src to an Error.
//
// Behavior:
//   - src is an Error => returned as-is
//   - src is a non-nil *Error => the pointed-to Error
//   - src is a nil *Error => Default()
//   - otherwise src is rendered now and the text stored
func From(src any, opts ...Option) Error {
	switch e := src.(type) {
	case Error:
		return e
	case *Error:
		if e == nil {
			return Default()
		}

		return *e
	}

	return New(newConfig(opts).render(src))
}

// Ensure converts a non-nil err to Error for propagation. nil input => nil output.
func Ensure(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	return From(err, opts...)
}
