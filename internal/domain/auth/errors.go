package auth

import "fmt"

// AuthError is returned when a sign-in or identity probe is rejected by the
// backend or fails in transit. Message is safe to show to the user; when the
// backend provided its own message it is preferred over a generic one.
type AuthError struct {
	Op         string // "login professor", "probe aluno", ...
	Message    string // user-facing text
	StatusCode int    // HTTP status, 0 for transport failures
	Err        error  // underlying cause, may be nil
}

func (e *AuthError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AuthError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when a backend payload does not match
// any recognized identity shape. Unrecognized shapes are rejected rather than
// silently defaulted.
type MalformedResponseError struct {
	Endpoint string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Endpoint, e.Reason)
}
