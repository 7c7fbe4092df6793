package anyerr

import (
	stderrors "errors"
	"iter"
)

// Chain iterates err's cause chain lazily, head to tail, following Unwrap
// until no source remains. A *Error argument starts at its inner error so
// the container itself never appears as a link. Iterating a nil error
// yields nothing.
//
// Example:
//
//	for cause := range anyerr.Chain(err) {
//	    fmt.Println(cause)
//	}
func Chain(err error) iter.Seq[error] {
	if e, ok := err.(*Error); ok {
		if e == nil {
			return func(func(error) bool) {}
		}
		err = e.err
	}
	return chain(err)
}

// RootCause returns the last link of err's cause chain: the error with no
// further source. Returns nil if err is nil.
//
// Example:
//
//	if errors.Is(anyerr.RootCause(err), io.EOF) {
//	    // clean end of stream
//	}
func RootCause(err error) error {
	if e, ok := err.(*Error); ok {
		if e == nil {
			return nil
		}
		err = e.err
	}

	var root error
	for cause := range chain(err) {
		root = cause
	}
	return root
}

func chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for e := err; e != nil; e = stderrors.Unwrap(e) {
			if !yield(e) {
				return
			}
		}
	}
}
