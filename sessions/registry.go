package sessions

import (
	"context"
	"time"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	// maxIDAttempts bounds retries when a generated id collides with a live one.
	maxIDAttempts = 5
	// sweepBatch caps how many sessions one sweep pass deletes per lock hold.
	sweepBatch = 256
)

// Registry issues, validates and expires sessions. It is the only owner of
// session state; callers always receive copies.
type Registry struct {
	repo    Repo
	ttl     time.Duration
	nowTime func() time.Time
	newID   func() (string, error)
}

// RegistryOption defines a function type to modify the Registry instance.
type RegistryOption func(*Registry)

// WithRepo replaces the default in-memory repo
func WithRepo(repo Repo) RegistryOption {
	return func(r *Registry) {
		r.repo = repo
	}
}

// WithTTL sets the session lifetime. Zero means sessions never expire.
func WithTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		r.ttl = ttl
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.nowTime = nowFunc
	}
}

// WithIDGenerator sets the session id source (primarily for testing)
func WithIDGenerator(newID func() (string, error)) RegistryOption {
	return func(r *Registry) {
		r.newID = newID
	}
}

// NewRegistry creates a Registry backed by an InMemoryRepo unless WithRepo is given.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		repo:    NewInMemoryRepo(),
		nowTime: time.Now,
		newID:   NewID,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// TTL returns the configured session lifetime.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// Create issues a new session for username.
func (r *Registry) Create(username string) (Session, error) {
	if username == "" {
		return Session{}, apperrors.ErrEmptyUsername
	}

	now := r.nowTime()
	session := Session{
		Username:  username,
		CreatedAt: now,
	}
	if r.ttl > 0 {
		session.ExpiresAt = now.Add(r.ttl)
	}

	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		session.ID, err = r.newID()
		if err != nil {
			return Session{}, apperrors.Wrapf(err, "[Registry Create] generating session id")
		}
		err = r.repo.Insert(session)
		if err == nil {
			metrics.SetActiveSessions(r.repo.Count())
			return session, nil
		}
		if !apperrors.Is(err, apperrors.ErrDuplicateSession) {
			break
		}
	}
	return Session{}, apperrors.Wrapf(err, "[Registry Create] storing session")
}

// Lookup returns the session for sessionID if it exists and has not expired.
// An expired session found here is removed.
func (r *Registry) Lookup(sessionID string) (Session, bool) {
	session, err := r.active(sessionID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrSessionExpired) {
			log.Debug().Str("user", session.Username).Msg("session expired")
		}
		return Session{}, false
	}
	return session, true
}

// active returns ErrSessionNotFound or ErrSessionExpired alongside the stored
// session when it cannot be used.
func (r *Registry) active(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, apperrors.ErrSessionNotFound
	}

	session, err := r.repo.Get(sessionID)
	if err != nil {
		return Session{}, err
	}

	if session.Expired(r.nowTime()) {
		if err := r.repo.Delete(sessionID); err != nil {
			log.Err(err).Msg("failed to delete expired session")
		}
		metrics.SetActiveSessions(r.repo.Count())
		return session, apperrors.ErrSessionExpired
	}
	return session, nil
}

// Revoke removes the session. Unknown ids are ignored.
func (r *Registry) Revoke(sessionID string) {
	if sessionID == "" {
		return
	}
	if err := r.repo.Delete(sessionID); err != nil {
		log.Err(err).Msg("failed to revoke session")
		return
	}
	metrics.SetActiveSessions(r.repo.Count())
}

// Sweep removes every session that has expired and returns how many were
// removed. Deletion happens in batches so the repo lock is released between them.
func (r *Registry) Sweep() int {
	now := r.nowTime()
	total := 0
	for {
		removed, err := r.repo.DeleteExpired(now, sweepBatch)
		total += removed
		if err != nil {
			log.Err(err).Int("removed", total).Msg("session sweep failed")
			break
		}
		if removed < sweepBatch {
			break
		}
	}
	metrics.AddSessionsSwept(total)
	metrics.SetActiveSessions(r.repo.Count())
	return total
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				log.Debug().Int("removed", removed).Msg("swept expired sessions")
			}
		}
	}
}

// Len returns the number of sessions held, including expired ones not yet swept.
func (r *Registry) Len() int {
	return r.repo.Count()
}
