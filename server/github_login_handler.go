package server

import (
	"net/http"
)

// GithubLoginHandler starts the OAuth flow by redirecting the browser to
// GitHub's authorize page. Pure URL construction; this step cannot fail
// locally.
func (s *Server) GithubLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.github.AuthorizationURL(), http.StatusFound)
	}
}
