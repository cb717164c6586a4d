package server

import (
	"github.com/jrsteele09/go-session-server/internal/metrics"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))

	// LOGIN
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare(s.NoStoreMiddleware)...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleWare(s.NoStoreMiddleware)...))
	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare(s.NoStoreMiddleware)...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare(s.NoStoreMiddleware)...))

	// Session-aware pages
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare(s.NoStoreMiddleware, s.RequireSessionAuth())...))

	// API routes
	s.RegisterRouteHandler("GET "+RouteAPISession, ChainMiddleware(s.SessionStatusHandler(), s.APIMiddleware(s.NoStoreMiddleware)...))
	s.RegisterRouteHandler("OPTIONS "+RouteAPISession, ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))

	// Operational routes skip request logging to keep probes and scrapes out of the log
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.RecoverMiddleware))
	s.RegisterRouteHandler("GET "+RouteMetrics, metrics.Handler())
}
