package decode

import "fmt"

// DecodeError reports a payload that is not valid JSON.
type DecodeError struct {
	Wrapped error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON payload: %v", e.Wrapped)
}

func (e *DecodeError) Unwrap() error {
	return e.Wrapped
}

// ValidationError reports well-formed JSON missing required structure.
// Index is 1-based and zero when the failure is not tied to one element.
type ValidationError struct {
	Index int
	Field string

	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("question %d is missing required field: %s", e.Index, e.Field)
	}
	return e.Reason
}
