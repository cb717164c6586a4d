package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-session-server/auth"
	"github.com/jrsteele09/go-session-server/cookies"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyAuth stores the auth.Result of an authenticated request
	ContextKeyAuth ContextKey = "auth"
	// ContextKeyCookies stores the parsed cookies.Jar
	ContextKeyCookies ContextKey = "cookies"
)

// RequireSessionAuth is middleware for HTML routes that need a live session.
// Unauthenticated callers get a 401 page with a login link.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	unauthorizedTmpl := mustParseTemplate("unauthorized.html")

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			jar := cookies.FromRequest(r)
			res := s.gate.Authenticate(jar)
			if !res.Authenticated {
				render(w, http.StatusUnauthorized, unauthorizedTmpl, s.page(""))
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAuth, res)
			ctx = context.WithValue(ctx, ContextKeyCookies, jar)
			next(w, r.WithContext(ctx))
		}
	}
}

// AuthFromContext returns the result stored by RequireSessionAuth.
func AuthFromContext(ctx context.Context) (auth.Result, bool) {
	res, ok := ctx.Value(ContextKeyAuth).(auth.Result)
	return res, ok && res.Authenticated
}

// CookiesFromContext returns the jar stored by RequireSessionAuth.
func CookiesFromContext(ctx context.Context) cookies.Jar {
	jar, _ := ctx.Value(ContextKeyCookies).(cookies.Jar)
	return jar
}
