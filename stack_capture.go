//go:build !anyerr_notrace

package anyerr

import (
	"os"
	"runtime"
)

const maxStackDepth = 32

// captureStack walks the current call stack, skipping skip frames so the
// trace starts at the constructor's caller. Returns nil when capture is
// disabled via TraceEnv. Capture is synchronous and happens at most once
// per container.
func captureStack(skip int) *Stack {
	if !traceEnabled() {
		return nil
	}

	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}
	return &Stack{pcs: pcs[:n]}
}

// traceEnabled reads TraceEnv on every capture. Reading per call keeps
// the toggle testable with t.Setenv; a Getenv is trivial next to the
// stack walk it gates.
func traceEnabled() bool {
	v := os.Getenv(TraceEnv)
	return v != "" && v != "0"
}
