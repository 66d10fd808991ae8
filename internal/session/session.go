// Package session persists the dashboard's only durable client state: the
// backend auth token and the user's role, keyed by an opaque session ID
// carried in a cookie.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNoSession = errors.New("no session")

// Session is the pair every protected page re-reads on render.
type Session struct {
	Token string
	Role  string
}

type Store interface {
	Set(ctx context.Context, sid string, sess Session) error
	Get(ctx context.Context, sid string) (Session, error)
	Clear(ctx context.Context, sid string) error
}

type Config struct {
	ValkeyAddr     string
	ValkeyPassword string
	CookieName     string
	TTL            time.Duration
}

// NewSID generates an opaque session identifier.
func NewSID() string {
	return uuid.New().String()
}

// MemoryStore keeps sessions in process memory. Used when no Valkey address
// is configured, and by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Set(_ context.Context, sid string, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sess
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
