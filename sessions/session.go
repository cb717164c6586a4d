package sessions

import "time"

// Session binds an opaque identifier to an authenticated username.
// Sessions are Active until they expire or are revoked; both end states are
// final and look the same as an unknown id to callers.
type Session struct {
	ID        string    // Opaque identifier, 128 random bits hex encoded
	Username  string    // User the session was issued to
	CreatedAt time.Time // When the session was created
	ExpiresAt time.Time // When the session expires; zero means never
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
