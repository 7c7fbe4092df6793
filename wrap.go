package anyerr

import "fmt"

// Wrap attaches a context message to an error, producing a new container
// whose top-level message is the context and whose source is the original
// error. The original is not mutated.
//
// The point-of-failure stack trace is forwarded, never recaptured:
// wrapping a *Error reuses its trace, and wrapping a plain error captures
// one only when its chain carries none.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return anyerr.Wrap(err, "failed to read config")
//	}
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, message)
}

// Wrapf attaches a formatted context message to an error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := store.Put(key, val); err != nil {
//	    return anyerr.Wrapf(err, "failed to persist %q", key)
//	}
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, fmt.Sprintf(format, args...))
}

// wrap builds the new chain head. Containers are unwrapped to their inner
// error so the chain stays free of container nodes, and their trace moves
// to the new container.
func wrap(err error, message string) *Error {
	var stack *Stack

	inner := err
	if e, ok := err.(*Error); ok {
		inner = e.err
		stack = e.stack
	}
	if stack == nil && chainStack(inner) == nil {
		stack = captureStack(4)
	}

	return &Error{
		err:   &withMessage{msg: message, cause: inner},
		stack: stack,
	}
}
