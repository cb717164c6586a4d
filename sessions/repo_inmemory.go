package sessions

import (
	"sync"
	"time"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session // sessionID -> Session
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
	}
}

func (r *InMemoryRepo) Insert(session Session) error {
	if session.ID == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "session id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return apperrors.ErrDuplicateSession
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *InMemoryRepo) Get(sessionID string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, apperrors.ErrSessionNotFound
	}
	return session, nil
}

func (r *InMemoryRepo) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

func (r *InMemoryRepo) DeleteExpired(now time.Time, limit int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for sessionID, session := range r.sessions {
		if limit > 0 && removed >= limit {
			break
		}
		if session.Expired(now) {
			delete(r.sessions, sessionID)
			removed++
		}
	}
	return removed, nil
}

func (r *InMemoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
