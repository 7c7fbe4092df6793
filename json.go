package anyerr

import (
	"encoding/json"
)

// ErrorReport is the JSON shape of a rendered container: the same
// information as the extended text format, structured. Unlike the text
// rendering it is meant for machine consumers (log pipelines, APIs), so
// the chain is explicit rather than prefixed lines.
type ErrorReport struct {
	// Message is the top-level message.
	Message string `json:"message"`

	// Causes lists the remaining chain links head to tail, by their
	// display text. Omitted when the chain has length one.
	Causes []string `json:"causes,omitempty"`

	// Stack is the captured trace, one frame per entry.
	// Omitted when no trace is available.
	Stack []string `json:"stack,omitempty"`
}

// ToJSON converts any error to an ErrorReport suitable for JSON
// serialization. Returns nil if err is nil.
//
// Plain errors produce a report with their message and chain; containers
// additionally contribute their stack trace.
//
// Example:
//
//	report := anyerr.ToJSON(err)
//	json.NewEncoder(w).Encode(report)
func ToJSON(err error) *ErrorReport {
	if err == nil {
		return nil
	}

	report := &ErrorReport{Message: err.Error()}

	first := true
	for cause := range Chain(err) {
		if first {
			report.Message = cause.Error()
			first = false
			continue
		}
		report.Causes = append(report.Causes, cause.Error())
	}

	// Same search as (*Error).StackTrace: the nearest chain link that
	// carries a trace contributes it, container or not.
	report.Stack = chainStack(err).Frames()

	return report
}

// MarshalJSON implements json.Marshaler so containers can be embedded in
// structs and logged by JSON-aware loggers without an explicit ToJSON
// call.
//
// Example:
//
//	err := anyerr.Wrap(cause, "failed to sync")
//	data, _ := json.Marshal(err)
//	// {"message":"failed to sync","causes":["connection reset"]}
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}
