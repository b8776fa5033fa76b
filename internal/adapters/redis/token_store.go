package redis

// Package redis provides a Redis-backed token store for shared terminals and
// kiosk deployments, where the session should survive the local filesystem.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eduportal/eduportal-mobile/internal/ports"
)

// TokenStore keeps the single bearer token under one Redis key.
type TokenStore struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewTokenStore creates a Redis-backed token store. A zero ttl means the
// token never expires server side; the bootstrap probes remain the authority
// on validity either way.
func NewTokenStore(client redis.UniversalClient, key string, ttl time.Duration) (*TokenStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = "eduportal:token"
	}
	return &TokenStore{client: client, key: key, ttl: ttl}, nil
}

var _ ports.TokenStore = (*TokenStore)(nil)

func (s *TokenStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("refusing to persist an empty token")
	}
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *TokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNoToken
		}
		return "", fmt.Errorf("redis get token: %w", err)
	}
	if token == "" {
		return "", ports.ErrNoToken
	}
	return token, nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis delete token: %w", err)
	}
	return nil
}
