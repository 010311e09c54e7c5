package remote

import (
	"errors"
	"fmt"
)

// ErrUnreachable marks transport-level failures: DNS, refused connections,
// timeouts. The feed's public read path treats these as a cue to fall back
// to the built-in sample data; every other caller surfaces a plain
// "cannot reach server" message.
var ErrUnreachable = errors.New("cannot reach server")

// APIError is a reachable-but-unhappy response. Message is whatever the
// server said, verbatim; callers show it to the user and do not branch on
// Status beyond picking a fallback phrase when Message is empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func Unreachable(err error) bool { return errors.Is(err, ErrUnreachable) }

func unreachablef(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnreachable)...)
}

func fallbackMessage(status int) string {
	switch {
	case status == 404:
		return "resource not found"
	case status == 400:
		return "request rejected"
	case status == 401 || status == 403:
		return "session expired, please login again"
	default:
		return fmt.Sprintf("server error (status %d)", status)
	}
}
