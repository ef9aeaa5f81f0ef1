// Package session persists authenticated identities so a client can
// restore its session across process restarts without re-sending
// credentials. The store is a small key-value surface; anything that
// can hold one JSON record per token satisfies it.
package session

import (
	"context"
	"fmt"
	"time"
)

// Session store backends
const (
	BackendFile   = "file"
	BackendValkey = "valkey"
)

// Config настройки хранилища сессий
type Config struct {
	Backend        string
	FilePath       string
	ValkeyAddr     string
	ValkeyPassword string
	ValkeyHashKey  string
}

// Identity is the persisted record of a successful login. It never
// carries the password.
type Identity struct {
	Token   string    `json:"token"`
	UserID  string    `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is the durable key-value boundary for session identities.
// Load returns (nil, nil) for unknown tokens; corrupt persisted data
// is treated the same way, never as an error.
type Store interface {
	Save(ctx context.Context, id Identity) error
	Load(ctx context.Context, token string) (*Identity, error)
	Delete(ctx context.Context, token string) error
	Close() error
}

// NewStore builds the configured backend.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendValkey:
		return NewValkeyStore(cfg)
	case BackendFile, "":
		return NewFileStore(cfg.FilePath)
	default:
		return nil, fmt.Errorf("unknown session backend: %s", cfg.Backend)
	}
}
