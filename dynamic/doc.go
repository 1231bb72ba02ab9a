// Package dynamic provides an error that keeps the absorbed value itself.
//
// Absorbing never fails. The value is recovered later by its exact concrete type with
// Recover; a failed recovery hands the container back untouched inside a
// *MismatchError, so nothing is lost:
//
//	v, err := dynamic.Recover[*os.PathError](e)
//	if err != nil {
//		var mm *dynamic.MismatchError
//		if errors.As(err, &mm) {
//			e = mm.Source // try another type
//		}
//	}
//
// An absorbed error stays visible to errors.Is and errors.As through Unwrap.
package dynamic
