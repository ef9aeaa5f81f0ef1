package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/rueidis"

	"tantsuball/internal/logger"
)

// ValkeyStore persists session identities in a Valkey/Redis hash,
// one field per token.
type ValkeyStore struct {
	client  rueidis.Client
	hashKey string
}

func NewValkeyStore(cfg Config) (*ValkeyStore, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{cfg.ValkeyAddr},
		Password:    cfg.ValkeyPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	hashKey := cfg.ValkeyHashKey
	if hashKey == "" {
		hashKey = "sessions"
	}

	return &ValkeyStore{client: client, hashKey: hashKey}, nil
}

func (s *ValkeyStore) Save(ctx context.Context, id Identity) error {
	payload, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	cmd := s.client.B().Hset().Key(s.hashKey).FieldValue().FieldValue(id.Token, string(payload)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *ValkeyStore) Load(ctx context.Context, token string) (*Identity, error) {
	cmd := s.client.B().Hget().Key(s.hashKey).Field(token).Build()
	raw, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("session lookup error: %w", err)
	}

	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		// Treat unreadable payloads as absence of a session
		logger.Get().Warn("Discarding malformed session record", "token", token, "error", err)
		return nil, nil
	}
	return &id, nil
}

func (s *ValkeyStore) Delete(ctx context.Context, token string) error {
	cmd := s.client.B().Hdel().Key(s.hashKey).Field(token).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *ValkeyStore) Close() error {
	s.client.Close()
	return nil
}
