package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-session-server/cookies"
	"github.com/jrsteele09/go-session-server/internal/utils"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// SessionStatus is the JSON body of GET /api/session.
type SessionStatus struct {
	Authenticated   bool     `json:"authenticated"`
	Username        *string  `json:"username"`
	SessionID       *string  `json:"session_id"`
	Timestamp       int64    `json:"timestamp"`
	CookiesReceived []string `json:"cookies_received"`
}

// SessionStatusHandler reports whether the caller's cookies name a live session
func (s *Server) SessionStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jar := cookies.FromRequest(r)
		res := s.gate.Authenticate(jar)

		status := SessionStatus{
			Authenticated:   res.Authenticated,
			Timestamp:       s.nowTime().Unix(),
			CookiesReceived: jar.Names(),
		}
		if res.Authenticated {
			status.Username = utils.Ptr(res.Username)
			status.SessionID = utils.Ptr(res.SessionID)
		}
		writeJSON(w, http.StatusOK, status)
	}
}

// PreflightHandler answers CORS preflight requests; the headers come from CorsMiddleware
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// writeJSON writes v indented with four spaces
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		log.Err(err).Msg("Failed to encode JSON response")
	}
}
