package mwapi

import "sync"

// Session holds the process-wide session credential: the opaque cookie value
// installed by a successful bot login and replayed on every subsequent
// request. Writes happen once, during startup, but access is guarded so
// concurrent readers observe either no credential or the fully-installed
// value, never a partial write.
type Session struct {
	mu         sync.RWMutex
	credential string
}

// NewSession returns an empty session cell.
func NewSession() *Session {
	return &Session{}
}

// Get returns the current credential and whether one is installed.
func (s *Session) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.credential != ""
}

// Set installs the credential. A repeated login simply overwrites the prior
// value; there is no logout or rotation.
func (s *Session) Set(credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
}
