package server

import (
	"fmt"
	"net/http"
	"net/url"
)

const (
	// sessionCookieName is the name of the cookie correlating the browser
	// to its server-side login session
	sessionCookieName = "github_session_id"
)

// Error markers attached to the frontend redirect when a callback step fails
const (
	errReasonOAuthFailed   = "github_oauth_failed"
	errReasonUserFailed    = "github_user_failed"
	errReasonSessionFailed = "session_failed"
)

func (s *Server) SetLoginSessionCookie(w http.ResponseWriter, sessionID string, r *http.Request, maxAge int) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// sessionIDFromRequest returns the session ID from the request's session
// cookie, or "" when no cookie is present.
func sessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// redirectLoginSuccess sends the browser back to the frontend with the
// success marker the frontend polls for.
func (s *Server) redirectLoginSuccess(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.config.GetFrontendURL()+"?login=success", http.StatusFound)
}

// redirectLoginError sends the browser back to the frontend with a
// machine-readable failure reason instead of surfacing a raw error page
// mid-redirect.
func (s *Server) redirectLoginError(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, fmt.Sprintf("%s?error=%s", s.config.GetFrontendURL(), url.QueryEscape(reason)), http.StatusFound)
}
