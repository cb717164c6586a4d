package auth

import (
	"net/url"

	"github.com/jrsteele09/go-session-server/cookies"
	"github.com/jrsteele09/go-session-server/sessions"
)

const (
	// SessionIDCookie carries the opaque session id (HttpOnly)
	SessionIDCookie = "session_id"
	// SessionUserCookie carries the URL-encoded username
	SessionUserCookie = "session_user"
)

// SessionLookup is the read side of the session registry.
type SessionLookup interface {
	Lookup(sessionID string) (sessions.Session, bool)
}

// Result is the outcome of an authentication check. Username and SessionID
// are empty unless Authenticated is true.
type Result struct {
	Authenticated bool
	Username      string
	SessionID     string
}

// Gate decides per request whether the caller holds a live session.
// It never mutates session state.
type Gate struct {
	sessions SessionLookup
}

func NewGate(sessions SessionLookup) *Gate {
	return &Gate{sessions: sessions}
}

// Authenticate requires both session cookies, a live session for the id, and
// that the session belongs to the user named by the username cookie. A stolen
// session id paired with a forged username is rejected.
func (g *Gate) Authenticate(jar cookies.Jar) Result {
	sessionID, ok := jar.Get(SessionIDCookie)
	if !ok || sessionID == "" {
		return Result{}
	}
	rawUser, ok := jar.Get(SessionUserCookie)
	if !ok || rawUser == "" {
		return Result{}
	}
	username, err := url.QueryUnescape(rawUser)
	if err != nil {
		return Result{}
	}

	session, ok := g.sessions.Lookup(sessionID)
	if !ok || session.Username != username {
		return Result{}
	}

	return Result{
		Authenticated: true,
		Username:      session.Username,
		SessionID:     session.ID,
	}
}
