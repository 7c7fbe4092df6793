//go:build anyerr_notrace

package anyerr

// captureStack is compiled out under the anyerr_notrace tag, for hosts
// without useful unwinding or where the capture cost is unacceptable.
// Containers work unchanged; StackTrace is permanently unavailable.
func captureStack(int) *Stack {
	return nil
}
