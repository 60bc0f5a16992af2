package session

import (
	"sync"
)

// Session is the single shared holder for the current bearer token.
// Reads vastly outnumber writes; writes (login, refresh, logout) are
// serialized behind the mutex so racing refreshes cannot interleave
// partial updates. Subscribers observe every replace and clear.
type Session struct {
	mu          sync.RWMutex
	token       string
	subscribers []func(token string)
}

// NewSession builds a session handle, optionally seeded with a token.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Get returns the current token and whether one is present.
func (s *Session) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set replaces the stored token and notifies subscribers.
func (s *Session) Set(token string) {
	s.mu.Lock()
	s.token = token
	subs := make([]func(string), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(token)
	}
}

// Clear removes the token. Idempotent: clearing an empty session
// leaves it empty and still notifies subscribers with the empty token.
func (s *Session) Clear() {
	s.Set("")
}

// Subscribe registers a callback invoked after every Set/Clear with
// the new token value (empty on clear).
func (s *Session) Subscribe(fn func(token string)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
