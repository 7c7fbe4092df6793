package anyerr

import (
	"fmt"
	"runtime"
	"strings"
)

// TraceEnv is the environment variable gating stack trace capture.
// Capture is off unless it is set to a non-empty value other than "0".
const TraceEnv = "ANYERR_TRACE"

// StackTracer is implemented by errors that carry their own stack trace.
// It is the backtrace facet of the error contract this package consumes:
// when a wrapped error's chain contains a StackTracer with a non-nil
// trace, the container defers to it instead of capturing a second one.
type StackTracer interface {
	StackTrace() *Stack
}

// Stack is a snapshot of the call stack at a point of failure. It stores
// raw program counters; symbolization happens on demand in Frames.
type Stack struct {
	pcs []uintptr
}

// Frames resolves the snapshot to human-readable frames, innermost first,
// formatted as "function file:line". Runtime-internal frames below main
// are included; callers filtering output should do so on the strings.
func (s *Stack) Frames() []string {
	if s == nil || len(s.pcs) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(s.pcs)
	var trace []string
	for {
		frame, more := frames.Next()
		if frame == (runtime.Frame{}) {
			break
		}
		trace = append(trace, fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return trace
}

// String renders the trace one frame per line, each indented by a tab.
func (s *Stack) String() string {
	frames := s.Frames()
	if len(frames) == 0 {
		return ""
	}
	return "\t" + strings.Join(frames, "\n\t")
}
