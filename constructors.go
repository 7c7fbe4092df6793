package anyerr

import "fmt"

// New creates a container from an ad hoc message. The resulting chain has
// length one and a fresh stack trace is captured when tracing is enabled.
//
// Example:
//
//	return anyerr.New("config missing")
func New(message string) *Error {
	return &Error{
		err:   &messageError{value: message},
		stack: captureStack(3),
	}
}

// Newf creates a container from a formatted message.
//
// Example:
//
//	return anyerr.Newf("invalid port: %d", port)
func Newf(format string, args ...any) *Error {
	return &Error{
		err:   &messageError{value: fmt.Sprintf(format, args...)},
		stack: captureStack(3),
	}
}

// Msg creates a container from any value that can be displayed, without
// requiring the value to be an error. The value itself is stored and can
// be recovered later with Downcast. Rendering uses fmt.Sprint, so types
// implementing fmt.Stringer keep their own display.
//
// Example:
//
//	return anyerr.Msg(status) // status implements fmt.Stringer only
func Msg(value any) *Error {
	return &Error{
		err:   &messageError{value: value},
		stack: captureStack(3),
	}
}

// From adopts an existing error into a container.
//
// Returns nil if err is nil. An existing *Error is returned unchanged.
// Otherwise err becomes the container's inner error and a stack trace is
// captured only when no link of err's chain already carries one; a chain
// never ends up with two traces.
//
// Example:
//
//	if err := os.Remove(path); err != nil {
//	    return anyerr.From(err)
//	}
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}

	var stack *Stack
	if chainStack(err) == nil {
		stack = captureStack(3)
	}
	return &Error{err: err, stack: stack}
}

// messageError is the inner error for ad hoc containers built by New,
// Newf, and Msg. It stores the original value so downcasting by value can
// return it, and has no source: an ad hoc container is always the root of
// its chain.
type messageError struct {
	value any
}

func (m *messageError) Error() string {
	return fmt.Sprint(m.value)
}
