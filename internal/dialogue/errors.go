package dialogue

import "errors"

var (
	// ErrInvalidSession reports a turn submitted with an unknown or missing id.
	ErrInvalidSession = errors.New("invalid or missing call id")
	// ErrSessionEnded reports a turn submitted after the session completed.
	ErrSessionEnded = errors.New("session has ended")
	// ErrNotFound reports a lookup of a session that does not exist.
	ErrNotFound = errors.New("session not found")
)
