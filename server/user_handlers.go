package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-github-login/github"
	"github.com/rs/zerolog/log"
)

// CurrentUserHandler returns the GitHub user record stored in the caller's
// login session, or 401 with an empty body when there is no session (or the
// session carries no user). Pure read; never creates a session.
func (s *Server) CurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := sessionIDFromRequest(r)
		if sessionID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		session, err := s.loginSessions.Get(sessionID)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if session.User == (github.User{}) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(session.User); err != nil {
			log.Err(err).Msg("CurrentUser: failed to encode response")
		}
	}
}

// LogoutHandler destroys the caller's login session entirely and clears the
// session cookie. Idempotent: logging out without an active session is a
// no-op and still returns 204.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessionID := sessionIDFromRequest(r); sessionID != "" {
			if err := s.loginSessions.Delete(sessionID); err != nil {
				log.Err(err).Msg("Logout: failed to delete session")
			}
		}

		s.SetLoginSessionCookie(w, "", r, -1) // Delete cookie
		w.WriteHeader(http.StatusNoContent)
	}
}
