package sessions

import "time"

// Repo defines the interface for session storage operations.
// Implementations must be safe for concurrent use.
type Repo interface {
	// Insert stores a new session. It fails with ErrDuplicateSession if the id is taken.
	Insert(session Session) error

	// Get retrieves a session by ID, or ErrSessionNotFound
	Get(sessionID string) (Session, error)

	// Delete removes a session by ID. Deleting an unknown ID is not an error.
	Delete(sessionID string) error

	// DeleteExpired removes at most limit sessions that are expired at now
	// and returns how many were removed.
	DeleteExpired(now time.Time, limit int) (int, error)

	// Count returns the number of stored sessions, expired or not
	Count() int
}
