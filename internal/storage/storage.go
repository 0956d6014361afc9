// Package storage defines the durable client-side storage that holds the
// session credentials between requests or program runs.
package storage

import (
	"context"
	"sync"
)

// Keys under which the session credentials are persisted.
const (
	KeyAccessToken  = "token"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// Reader reads persisted values.
type Reader interface {
	Get(key string) (string, bool)
}

// Store reads and writes persisted values.
type Store interface {
	Reader
	Set(key, value string) error
	Delete(keys ...string) error
}

type contextKey string

const storeContextKey = contextKey("store")

// NewContext returns a copy of ctx carrying the credential store.
func NewContext(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, storeContextKey, s)
}

// FromContext returns the credential store bound to ctx, if any.
func FromContext(ctx context.Context) (Store, bool) {
	s, ok := ctx.Value(storeContextKey).(Store)
	return s, ok
}

// Memory is a Store kept in process memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
