package runtime

import (
	"care-chat/contract"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

var _ contract.ISessionRegistry = (*Registry)(nil)

// Registry maps each user ID to its single active session.
type Registry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	sessions map[string]contract.ISession
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		sessions: make(map[string]contract.ISession),
	}
}

// Register binds userID to session, last registration wins.
// The superseded session, if any, is returned and left open: closing it is the caller's decision.
func (r *Registry) Register(userID string, session contract.ISession) contract.ISession {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := r.sessions[userID]
	r.sessions[userID] = session
	if previous == session {
		return nil
	}
	return previous
}

func (r *Registry) Lookup(userID string) (contract.ISession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[userID]
	return session, ok
}

// Deregister removes userID only while it still points at session, so a slow
// disconnect of an old connection cannot evict a newer one.
func (r *Registry) Deregister(userID string, session contract.ISession) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[userID]
	if !ok || current != session {
		return false
	}
	delete(r.sessions, userID)
	return true
}

// CloseAll empties the registry then closes every session outside the lock,
// since closing a session calls back into Deregister.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := lo.Values(r.sessions)
	r.sessions = make(map[string]contract.ISession)
	r.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
	r.log.Info("All sessions closed", "count", len(sessions))
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
