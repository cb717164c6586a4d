package auth

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-session-server/cookies"
	"github.com/jrsteele09/go-session-server/credentials"
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/internal/metrics"
	"github.com/jrsteele09/go-session-server/sessions"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Service runs the login and logout flows. Unlike Gate it mutates the
// session registry.
type Service struct {
	credentials credentials.Store
	registry    *sessions.Registry
	secure      bool
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithSecureCookies marks issued cookies Secure (HTTPS only)
func WithSecureCookies(secure bool) ServiceOption {
	return func(s *Service) {
		s.secure = secure
	}
}

// NewService wires the credential store and session registry together.
func NewService(store credentials.Store, registry *sessions.Registry, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("[NewService] credential store is required")
	}
	if registry == nil {
		return nil, errors.New("[NewService] session registry is required")
	}

	s := &Service{
		credentials: store,
		registry:    registry,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Login verifies the credentials and opens a session. Unknown users and wrong
// passwords both return ErrInvalidCredentials.
func (s *Service) Login(username, password string) (sessions.Session, error) {
	if !s.credentials.Verify(username, password) {
		metrics.IncLoginAttempts(metrics.ResultFailure)
		return sessions.Session{}, apperrors.ErrInvalidCredentials
	}

	session, err := s.registry.Create(username)
	if err != nil {
		metrics.IncLoginAttempts(metrics.ResultFailure)
		return sessions.Session{}, errors.Wrap(err, "[Login] failed to create session")
	}

	metrics.IncLoginAttempts(metrics.ResultSuccess)
	log.Info().Str("user", username).Str("sid", shortID(session.ID)).Msg("login")
	return session, nil
}

// Logout revokes the session. Unknown or empty ids are ignored.
func (s *Service) Logout(sessionID string) {
	metrics.IncLogouts()
	if sessionID == "" {
		return
	}
	s.registry.Revoke(sessionID)
	log.Info().Str("sid", shortID(sessionID)).Msg("logout")
}

// Cookies returns the Set-Cookie directives that hand a session to the client.
func (s *Service) Cookies(session sessions.Session) []string {
	opts := s.cookieOptions()
	if ttl := s.registry.TTL(); ttl > 0 {
		opts.MaxAge = int(ttl.Seconds())
	}

	idOpts := opts
	idOpts.HttpOnly = true

	return []string{
		cookies.Serialize(SessionIDCookie, session.ID, idOpts),
		cookies.Serialize(SessionUserCookie, url.QueryEscape(session.Username), opts),
	}
}

// ClearCookies returns the directives that expire both session cookies.
func (s *Service) ClearCookies() []string {
	opts := s.cookieOptions()
	opts.HttpOnly = true
	return []string{
		cookies.Expire(SessionIDCookie, opts),
		cookies.Expire(SessionUserCookie, opts),
	}
}

func (s *Service) cookieOptions() cookies.Options {
	return cookies.Options{
		Path:     "/",
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// shortID trims a session id for logs.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
