package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when a key has no live value
var ErrNotFound = errors.New("session value not found")

// Store keeps short-lived server-side state as JSON values
type Store interface {
	Get(ctx context.Context, key string, dst interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RedisStore keeps values in Redis
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Connect dials Redis and verifies the connection
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Get decodes the value stored under key into dst
func (s *RedisStore) Get(ctx context.Context, key string, dst interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read session: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode session: %w", err)
	}
	return nil
}

// Set stores value under key for ttl
func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Delete removes key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps values in process memory, for development and tests
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get decodes the value stored under key into dst
func (s *MemoryStore) Get(ctx context.Context, key string, dst interface{}) error {
	s.mu.Lock()
	entry, ok := s.entries[key]
	if ok && !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(entry.data, dst); err != nil {
		return fmt.Errorf("failed to decode session: %w", err)
	}
	return nil
}

// Set stores value under key for ttl; zero ttl never expires
func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

// Delete removes key
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}
