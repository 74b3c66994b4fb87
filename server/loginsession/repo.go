package loginsession

import (
	"time"

	"github.com/jrsteele09/go-github-login/github"
)

// Session is the server-side login state correlated to the browser's
// session cookie. It holds exactly one logical attribute: the GitHub user
// record captured at login time.
type Session struct {
	// Core identity
	User github.User

	// Session management
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry time.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Repo defines the interface for login session storage. Sessions are keyed
// by an opaque identifier; different identifiers never contend.
type Repo interface {
	// Upsert creates or updates a session, overwriting any prior value
	Upsert(sessionID string, session Session) error

	// Get retrieves a session by ID
	Get(sessionID string) (Session, error)

	// Delete removes a session by ID; deleting an absent session is a no-op
	Delete(sessionID string) error

	// DeleteExpired removes sessions whose expiry precedes the given time
	DeleteExpired(now time.Time) error
}
