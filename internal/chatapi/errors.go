package chatapi

import "fmt"

// TransportError reports a network failure or an unexpected HTTP status.
// Transient: background polling recovers on the next tick, user-initiated
// actions may simply be retried.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError reports a business-rule failure from the server. The reason
// is surfaced to the user verbatim and never auto-retried.
type RejectedError struct {
	Op     string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// ValidationError is a local precondition failure, caught before any
// network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
