package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ValkeyStore persists sessions in Valkey so they survive dashboard restarts.
type ValkeyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewValkeyStore(cfg Config) (*ValkeyStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.ValkeyAddr,
		Password:     cfg.ValkeyPassword,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 12 * time.Hour
	}

	return &ValkeyStore{client: rdb, ttl: ttl}, nil
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *ValkeyStore) Set(ctx context.Context, sid string, sess Session) error {
	key := sessionKey(sid)

	if err := s.client.HSet(ctx, key, "token", sess.Token, "role", sess.Role).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session TTL: %w", err)
	}
	return nil
}

func (s *ValkeyStore) Get(ctx context.Context, sid string) (Session, error) {
	values, err := s.client.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return Session{}, fmt.Errorf("session lookup error: %w", err)
	}
	if len(values) == 0 {
		return Session{}, ErrNoSession
	}

	return Session{Token: values["token"], Role: values["role"]}, nil
}

func (s *ValkeyStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *ValkeyStore) Close() error {
	return s.client.Close()
}
