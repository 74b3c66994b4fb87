package loginsession

import (
	"fmt"
	"sync"
	"time"

	"github.com/jrsteele09/go-github-login/internal/errors"
)

// InMemoryLoginSessionRepo is an in-memory implementation of Repo. Sessions
// do not survive a process restart.
type InMemoryLoginSessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewInMemoryLoginSessionRepo creates a new in-memory login session repository
func NewInMemoryLoginSessionRepo() *InMemoryLoginSessionRepo {
	return &InMemoryLoginSessionRepo{
		sessions: make(map[string]Session),
	}
}

// Upsert creates or updates a login session
func (r *InMemoryLoginSessionRepo) Upsert(sessionID string, session Session) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = session
	return nil
}

// Get retrieves a login session by ID. Expired sessions are reported as
// not found.
func (r *InMemoryLoginSessionRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, fmt.Errorf("sessionID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, errors.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		return Session{}, errors.ErrSessionExpired
	}

	return session, nil
}

// Delete removes a login session. Deleting a session that does not exist
// is not an error.
func (r *InMemoryLoginSessionRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// DeleteExpired removes all sessions whose expiry precedes now.
func (r *InMemoryLoginSessionRepo) DeleteExpired(now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}
