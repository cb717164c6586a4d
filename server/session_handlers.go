package server

import (
	"net/http"

	"github.com/jrsteele09/go-session-server/auth"
	"github.com/jrsteele09/go-session-server/cookies"
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "Invalid username or password."
	msgMissingCredentials = "Username and password are required."
	msgInvalidForm        = "Invalid form data."
	msgLoginFailed        = "Login failed, please try again."
)

// pageData is shared by every HTML page
type pageData struct {
	AppName  string
	Username string
	Error    string
	Cookies  []cookieRow
}

type cookieRow struct {
	Name  string
	Value string
}

func (s *Server) page(username string) pageData {
	return pageData{AppName: s.config.GetAppName(), Username: username}
}

// IndexHandler sends authenticated callers to the dashboard and everyone else to the login form
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.gate.Authenticate(cookies.FromRequest(r)).Authenticated {
			http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

// LoginPageHandler displays the login form (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl := mustParseTemplate("login.html")

	return func(w http.ResponseWriter, r *http.Request) {
		res := s.gate.Authenticate(cookies.FromRequest(r))
		render(w, http.StatusOK, loginTmpl, s.page(res.Username))
	}
}

// LoginSubmissionHandler processes the login form submission (POST /login)
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	loginTmpl := mustParseTemplate("login.html")
	successTmpl := mustParseTemplate("login_success.html")

	return func(w http.ResponseWriter, r *http.Request) {
		loginError := func(status int, msg string) {
			data := s.page("")
			data.Error = msg
			render(w, status, loginTmpl, data)
		}

		if err := r.ParseForm(); err != nil {
			loginError(http.StatusBadRequest, msgInvalidForm)
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if username == "" || password == "" {
			loginError(http.StatusBadRequest, msgMissingCredentials)
			return
		}

		session, err := s.auth.Login(username, password)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
				log.Info().Str("user", username).Msg("login rejected")
				loginError(http.StatusUnauthorized, msgInvalidCredentials)
				return
			}
			log.Err(err).Msg("Failed to start session")
			loginError(http.StatusInternalServerError, msgLoginFailed)
			return
		}

		cookies.Write(w.Header(), s.auth.Cookies(session)...)
		render(w, http.StatusOK, successTmpl, s.page(session.Username))
	}
}

// LogoutHandler revokes the caller's session and expires both session cookies
func (s *Server) LogoutHandler() http.HandlerFunc {
	logoutTmpl := mustParseTemplate("logout.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if sessionID, ok := cookies.FromRequest(r).Get(auth.SessionIDCookie); ok {
			s.auth.Logout(sessionID)
		}

		cookies.Write(w.Header(), s.auth.ClearCookies()...)
		render(w, http.StatusOK, logoutTmpl, s.page(""))
	}
}

// DashboardHandler shows the protected page and the cookies the browser sent.
// It expects RequireSessionAuth in front of it.
func (s *Server) DashboardHandler() http.HandlerFunc {
	dashboardTmpl := mustParseTemplate("dashboard.html")

	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := AuthFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		jar := CookiesFromContext(r.Context())
		data := s.page(res.Username)
		for _, name := range jar.Names() {
			value, _ := jar.Get(name)
			data.Cookies = append(data.Cookies, cookieRow{Name: name, Value: value})
		}
		render(w, http.StatusOK, dashboardTmpl, data)
	}
}
