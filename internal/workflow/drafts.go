package workflow

import "sync"

// Drafts keeps one draft per session token. Each session drives its
// own flow sequentially; the mutex only guards against distinct
// sessions touching the map at once.
type Drafts struct {
	mu      sync.Mutex
	byToken map[string]*Draft
}

func NewDrafts() *Drafts {
	return &Drafts{byToken: make(map[string]*Draft)}
}

// Get returns the session's draft, creating a fresh one at the dance
// step if none exists.
func (s *Drafts) Get(token string) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byToken[token]
	if !ok {
		d = newDraft()
		s.byToken[token] = d
	}
	return d
}

// Discard drops the session's draft entirely (successful confirm or
// the user navigating away).
func (s *Drafts) Discard(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byToken, token)
}
