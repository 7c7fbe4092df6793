package anyerr

// Downcast recovers the exact value the container was built from: the
// concrete error given to From, or the value given to New, Newf, or Msg.
//
// It matches only the directly stored value, never a deeper chain link;
// use DowncastRef to search the whole chain. On a mismatch it returns the
// zero T and false, and the container is left untouched, so nothing is
// lost by a failed attempt.
//
// Example:
//
//	e := anyerr.From(&net.OpError{Op: "dial"})
//	if op, ok := anyerr.Downcast[*net.OpError](e); ok {
//	    fmt.Println(op.Op)
//	}
func Downcast[T any](e *Error) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}

	if m, ok := e.err.(*messageError); ok {
		if v, ok := m.value.(T); ok {
			return v, true
		}
		return zero, false
	}

	if v, ok := e.err.(T); ok {
		return v, true
	}
	return zero, false
}

// DowncastRef scans err's entire cause chain, head to tail, and returns
// the first link whose concrete type is T. Ad hoc links match against the
// value they were built from, so a container from Msg(v) matches v's
// type. Instantiate with a pointer type to inspect or mutate the matched
// link in place.
//
// Returns the zero T and false when no link matches.
//
// Example:
//
//	if pathErr, ok := anyerr.DowncastRef[*fs.PathError](err); ok {
//	    fmt.Println(pathErr.Path)
//	}
func DowncastRef[T any](err error) (T, bool) {
	for cause := range Chain(err) {
		if m, ok := cause.(*messageError); ok {
			if v, ok := m.value.(T); ok {
				return v, true
			}
			continue
		}
		if v, ok := cause.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
