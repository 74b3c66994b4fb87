package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-github-login/server"
	"github.com/stretchr/testify/require"
)

func callbackRequest(code string) *http.Request {
	target := server.RouteGithubCallback
	if code != "" {
		target += "?code=" + code
	}
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestOAuthCallbackHandler_Success(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.do(callbackRequest("valid-code"))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, testFrontendURL+"?login=success", rec.Header().Get("Location"))

	// The provider saw the code and the token was used for the profile fetch
	require.Equal(t, "valid-code", f.provider.gotCode)
	require.Equal(t, testAccessToken, f.provider.gotToken)

	// The session holds the profile's login and the cookie points at it
	cookie := sessionCookie(t, rec)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)

	session, err := f.sessions.Get(cookie.Value)
	require.NoError(t, err)
	require.Equal(t, "octocat", session.User.Login)
}

func TestOAuthCallbackHandler_TokenExchangeFails(t *testing.T) {
	f := setupTestFixture(t)
	f.provider.exchangeErr = errors.New("oauth2: server response missing access_token")

	rec := f.do(callbackRequest("bad-code"))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, testFrontendURL+"?error=github_oauth_failed", rec.Header().Get("Location"))

	// No session created, no profile fetch attempted
	require.Zero(t, f.sessions.upserts)
	require.Zero(t, f.provider.fetchCalls)
}

func TestOAuthCallbackHandler_UserFetchFails(t *testing.T) {
	f := setupTestFixture(t)
	f.provider.fetchErr = errors.New("request failed")

	rec := f.do(callbackRequest("valid-code"))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, testFrontendURL+"?error=github_user_failed", rec.Header().Get("Location"))
	require.Zero(t, f.sessions.upserts)
}

func TestOAuthCallbackHandler_MissingCode(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.do(callbackRequest(""))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, testFrontendURL+"?error=github_oauth_failed", rec.Header().Get("Location"))

	// Short-circuits before any outbound call
	require.Zero(t, f.provider.exchangeCalls)
	require.Zero(t, f.sessions.upserts)
}

func TestOAuthCallbackHandler_ReusesExistingSession(t *testing.T) {
	f := setupTestFixture(t)

	first := f.do(callbackRequest("first-code"))
	firstCookie := sessionCookie(t, first)

	// Repeat login from the same browser overwrites the same session
	req := callbackRequest("second-code")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: firstCookie.Value})
	second := f.do(req)

	require.Equal(t, http.StatusFound, second.Code)
	require.Equal(t, firstCookie.Value, sessionCookie(t, second).Value)
	require.Equal(t, 2, f.sessions.upserts)
	require.Equal(t, firstCookie.Value, f.sessions.lastSessionID)
}
