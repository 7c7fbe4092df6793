// Package anyerr provides a single opaque error container for functions
// that can fail for many unrelated reasons.
//
// Instead of defining a dedicated error type per failure mode, a function
// returns *Error: a type-erased container that owns exactly one underlying
// error, optionally a stack trace captured at the point of failure, and a
// cause chain that grows one link per context attachment. The original
// concrete error is never lost; it can be recovered later by downcasting.
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (a container is never mutated; wrapping builds a new one)
//   - One error kind outward; no codes, no taxonomy imposed on callers
//   - The point-of-failure stack trace survives context attachment
//
// # Quick Start
//
// Creating errors:
//
//	// Ad hoc message error
//	err := anyerr.New("config missing")
//
//	// Formatted message error
//	err := anyerr.Newf("invalid port: %d", port)
//
//	// Adopt an existing concrete error
//	err := anyerr.From(os.ErrNotExist)
//
// Attaching context while propagating:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return anyerr.Wrapf(err, "failed to read config %s", path)
//	}
//
// Lazy context (the closure runs only on failure):
//
//	return anyerr.WrapWith(run(), func() string {
//	    return "pipeline " + describe(stages)
//	})
//
// Inspecting at the top of the stack:
//
//	if pathErr, ok := anyerr.DowncastRef[*fs.PathError](err); ok {
//	    // branch on the concrete cause
//	    _ = pathErr.Path
//	}
//	fmt.Printf("%+v\n", err) // message, cause chain, stack trace
//
// # Cause Chain
//
// Every wrap prepends a link: the newest context is the head, the root
// cause is the tail. Chain and (*Error).Chain iterate head to tail;
// RootCause returns the tail directly. The chain is immutable: wrapping
// produces a new container whose source is the old error, never an
// in-place edit.
//
// # Downcasting
//
// Downcast recovers the exact value a container was built from: the
// concrete error given to From, or the value given to New/Newf/Msg. It
// matches only the directly stored value. DowncastRef instead scans the
// whole cause chain and returns the first link of the requested type;
// instantiate it with a pointer type when the caller needs to inspect or
// mutate the matched link in place.
//
// # Stack Traces
//
// A container captures a stack trace at construction only when tracing is
// enabled and the wrapped error does not already carry one; there is
// never a second trace on the same chain. Context attachment forwards the
// original trace untouched. Tracing is off by default; set the
// ANYERR_TRACE environment variable to any value other than "0" to enable
// capture. Building with the anyerr_notrace tag removes capture entirely
// and StackTrace reports permanently unavailable.
//
// # Rendering
//
// The default rendering (Error, %v, %s) is the top-level message alone.
// The extended rendering (%+v) is a fixed diagnostic format:
//
//	failed to read config
//	caused by: 0: open app.toml: no such file or directory
//
// one "caused by: N:" line per chain link after the head, zero-indexed,
// followed by a stack trace block when one is available. ToJSON and
// MarshalJSON expose the same information as a structured report.
package anyerr
