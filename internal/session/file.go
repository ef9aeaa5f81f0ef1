package session

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"tantsuball/internal/logger"
)

// FileStore keeps session identities in a single JSON file, the server
// counterpart of the browser localStorage the demo client used. A
// missing or malformed file simply yields an empty session set.
type FileStore struct {
	mu       sync.Mutex
	path     string
	sessions map[string]Identity
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:     path,
		sessions: make(map[string]Identity),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		return s, nil
	}

	if err := json.Unmarshal(data, &s.sessions); err != nil {
		// Corrupt session file: start empty, overwrite on next save
		logger.Get().Warn("Discarding malformed session file", "path", path, "error", err)
		s.sessions = make(map[string]Identity)
	}

	return s, nil
}

func (s *FileStore) Save(_ context.Context, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id.Token] = id
	return s.flush()
}

func (s *FileStore) Load(_ context.Context, token string) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (s *FileStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return nil
	}
	delete(s.sessions, token)
	return s.flush()
}

func (s *FileStore) Close() error {
	return nil
}

// flush writes the whole session map; callers hold s.mu.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
