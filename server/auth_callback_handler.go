package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-github-login/server/loginsession"
	"github.com/rs/zerolog/log"
)

// OAuthCallbackHandler completes the OAuth flow after GitHub redirects the
// browser back with an authorization code:
//  1. exchange the code for an access token
//  2. fetch the authenticated user's profile with the token
//  3. store the user record in a login session and set the session cookie
//  4. redirect back to the frontend
//
// Every failure exits with a redirect carrying a machine-readable error
// marker; a failed exchange never creates or mutates a session. The access
// token lives only within this handler and is never stored or logged.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.FormValue("code")
		if code == "" {
			log.Warn().Msg("Callback: missing code parameter")
			s.redirectLoginError(w, r, errReasonOAuthFailed)
			return
		}

		// 1. Exchange the single-use code for an access token. A response
		// without an access_token field fails the same way as a transport
		// error.
		oauth2Token, err := s.github.ExchangeCode(r.Context(), code)
		if err != nil {
			log.Err(err).Msg("Callback: token exchange failed")
			s.redirectLoginError(w, r, errReasonOAuthFailed)
			return
		}

		// 2. Fetch the user's profile. Optional profile fields (name,
		// email, avatar) come back empty, not as errors.
		user, err := s.github.FetchUser(r.Context(), oauth2Token.AccessToken)
		if err != nil {
			log.Err(err).Msg("Callback: user fetch failed")
			s.redirectLoginError(w, r, errReasonUserFailed)
			return
		}

		// 3. Reuse the browser's existing session if it has one, otherwise
		// mint a new one. A repeat login overwrites the stored record.
		sessionID := sessionIDFromRequest(r)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		now := time.Now()
		session := loginsession.Session{
			User:      *user,
			CreatedAt: now,
			ExpiresAt: now.Add(s.config.GetSessionTTL()),
		}
		if err := s.loginSessions.Upsert(sessionID, session); err != nil {
			log.Err(err).Msg("Callback: failed to store login session")
			s.redirectLoginError(w, r, errReasonSessionFailed)
			return
		}

		s.SetLoginSessionCookie(w, sessionID, r, int(s.config.GetSessionTTL().Seconds()))

		// 4. Back to the frontend with the success marker
		s.redirectLoginSuccess(w, r)
	}
}
