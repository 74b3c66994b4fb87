package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - GitHub OAuth flow
	RouteGithubLogin    = "/api/auth/github/login"
	RouteGithubCallback = "/api/auth/github/callback"

	// Auth Routes - Session
	RouteCurrentUser = "/api/auth/me"
	RouteLogout      = "/api/auth/logout"
)
