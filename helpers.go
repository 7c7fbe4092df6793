package anyerr

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is;
// *Error containers are transparent to it via Unwrap.
//
// Example:
//
//	if anyerr.Is(err, os.ErrNotExist) {
//	    // handle missing file
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
// DowncastRef offers the same search with a generic signature.
//
// Example:
//
//	var pathErr *fs.PathError
//	if anyerr.As(err, &pathErr) {
//	    fmt.Println(pathErr.Path)
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
// This is a convenience wrapper around the standard library errors.Unwrap.
// On a container it returns the inner error.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}
