package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrMissingCredential    = errors.New("alphafold api key not configured")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnknownMode          = errors.New("unknown prediction mode")
	ErrNotImplemented       = errors.New("local ColabFold prediction not yet implemented")
	ErrLocalToolUnavailable = errors.New("ColabFold not installed")
)

// SubmissionRejectedError is returned when the remote service answers a
// submission with anything other than 202 Accepted. Body is kept verbatim.
type SubmissionRejectedError struct {
	Code int
	Body string
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("API request failed: %d", e.Code)
}
