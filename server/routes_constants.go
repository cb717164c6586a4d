package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex = "/{$}"

	// Session Routes - Login & Logout
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	// Protected pages
	RouteDashboard = "/dashboard"

	// API Routes
	RouteAPISession = "/api/session"

	// Operational Routes
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
