package anyerr

// WrapWith attaches a lazily built context message to an error. The msg
// closure is invoked only when err is non-nil, so callers can defer
// expensive message formatting off the success path.
//
// Returns nil if err is nil; the closure is then never invoked.
//
// Example:
//
//	return anyerr.WrapWith(run(job), func() string {
//	    return "job " + job.Describe()
//	})
func WrapWith(err error, msg func() string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, msg())
}

// withMessage is one context layer of a cause chain: a message in front
// of the error it annotates. It owns no stack trace; the container (or a
// deeper link) holds that.
type withMessage struct {
	msg   string
	cause error
}

func (w *withMessage) Error() string {
	return w.msg
}

func (w *withMessage) Unwrap() error {
	return w.cause
}
