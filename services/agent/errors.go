package agent

import "fmt"

// UnparseableDateError is returned when free-form date text matches none of
// the recognized forms. It carries the original text so callers can echo it
// back to the guest.
type UnparseableDateError struct {
	Input string
}

func (e *UnparseableDateError) Error() string {
	return fmt.Sprintf("unparseable date: %q", e.Input)
}

// UnparseableTimeError is the time-of-day counterpart.
type UnparseableTimeError struct {
	Input string
}

func (e *UnparseableTimeError) Error() string {
	return fmt.Sprintf("unparseable time: %q", e.Input)
}

// ExternalFailureError wraps an unreachable collaborator (extractor, store,
// reservation sink). Never retried internally; the session is left unchanged
// so the guest's next message re-attempts the same step.
type ExternalFailureError struct {
	Op  string
	Err error
}

func (e *ExternalFailureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalFailureError) Unwrap() error {
	return e.Err
}

func newExternalFailure(op string, err error) error {
	return &ExternalFailureError{Op: op, Err: err}
}
