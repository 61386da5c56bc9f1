// Package redis persists the session record under a single Redis key, for
// kiosk-style deployments where client state lives off the local disk.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vetclinic/clinic-client/internal/core/domain"
)

const (
	defaultKey     = "vetclinic:session"
	defaultTimeout = 5 * time.Second
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Key     string
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RecordStore holds the serialized session under one key. Record operations
// are synchronous with a short per-call timeout, matching the session
// store's expectation of fast, non-suspending persistence.
type RecordStore struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

func NewRecordStore(client *redis.Client, key string) *RecordStore {
	if key == "" {
		key = defaultKey
	}
	return &RecordStore{client: client, key: key, timeout: defaultTimeout}
}

func (s *RecordStore) Load() ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("load session record: %w", err)
	}
	return data, nil
}

func (s *RecordStore) Save(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

// Delete removes the record; deleting an absent key is a no-op in Redis,
// which matches the logout idempotence contract.
func (s *RecordStore) Delete() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}
