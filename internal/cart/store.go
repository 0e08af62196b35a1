package cart

import "sync"

// Store hands out session-scoped carts keyed by session id. There is no
// cross-session sharing; eviction is left to process restarts because carts
// are intentionally ephemeral.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore builds an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first use.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return session
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if session, ok := st.sessions[id]; ok {
		return session
	}
	session = newSession(id)
	st.sessions[id] = session
	return session
}

// Peek returns the session for id without creating one.
func (st *Store) Peek(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
