package anyerr

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Error is the opaque error container.
//
// It owns exactly one underlying error and, optionally, a stack trace
// captured when the container was built. A container is immutable after
// construction; attaching context produces a new container whose source
// is the old error. Construction goes through the package functions
// (New, Newf, Msg, From, Wrap, Wrapf, WrapWith).
//
// A nil *Error and the zero Error value both behave as "no error":
// Error reports "<nil>" and the inspection methods return their zero
// results.
type Error struct {
	err   error
	stack *Stack
}

// Compile-time guarantees for the interfaces *Error participates in.
var (
	_ error         = (*Error)(nil)
	_ fmt.Formatter = (*Error)(nil)
	_ StackTracer   = (*Error)(nil)
)

// Error returns the top-level message only, without the cause chain.
// Use %+v formatting for the full diagnostic rendering.
func (e *Error) Error() string {
	if e == nil || e.err == nil {
		return "<nil>"
	}
	return e.err.Error()
}

// Unwrap returns the inner error so that errors.Is and errors.As
// traverse through the container into the cause chain.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Chain iterates the cause chain lazily, head to tail: the inner error
// first, then each successive source, the root cause last.
func (e *Error) Chain() iter.Seq[error] {
	if e == nil {
		return func(func(error) bool) {}
	}
	return chain(e.err)
}

// Root returns the root cause: the last link of the chain, the one with
// no further source.
func (e *Error) Root() error {
	if e == nil {
		return nil
	}
	return RootCause(e.err)
}

// StackTrace returns the trace captured at construction, or the trace
// carried by the nearest chain link that has one. A nil result means no
// trace is available: capture was disabled, compiled out, or never
// performed.
func (e *Error) StackTrace() *Stack {
	if e == nil {
		return nil
	}
	if e.stack != nil {
		return e.stack
	}
	return chainStack(e.err)
}

// Format implements fmt.Formatter.
//
//	%v, %s    top-level message only
//	%q        quoted top-level message
//	%+v       extended format: message, "caused by" chain, stack trace
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			io.WriteString(f, e.extended())
			return
		}
		io.WriteString(f, e.Error())
	case 's':
		io.WriteString(f, e.Error())
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	}
}

// extended renders the fixed diagnostic format: the top-level message,
// one zero-indexed "caused by" line per remaining chain link, and the
// stack trace block when a trace is available. The layout is a stable
// contract; tooling diffs it.
func (e *Error) extended() string {
	if e == nil || e.err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.err.Error())

	n := 0
	first := true
	for cause := range e.Chain() {
		if first {
			first = false
			continue
		}
		fmt.Fprintf(&b, "\ncaused by: %d: %v", n, cause)
		n++
	}

	if st := e.StackTrace(); st != nil {
		b.WriteString("\n\nstack trace:\n")
		b.WriteString(st.String())
	}

	return b.String()
}

// chainStack returns the trace of the first link in err's chain that
// carries one, or nil.
func chainStack(err error) *Stack {
	for cause := range chain(err) {
		if tracer, ok := cause.(StackTracer); ok {
			if st := tracer.StackTrace(); st != nil {
				return st
			}
		}
	}
	return nil
}
