package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sunstate/server/internal/wizard"
)

const redisKeyPrefix = "wizard:session:"

// RedisStore keeps wizard sessions in Redis so intake flows survive server
// restarts and can be shared across instances. Sessions still expire after
// the configured idle lifetime via key TTLs.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Create(ctx context.Context, w *wizard.Wizard) error {
	return s.Save(ctx, w)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*wizard.Wizard, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var w wizard.Wizard
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &w, nil
}

func (s *RedisStore) Save(ctx context.Context, w *wizard.Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", w.ID, err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+w.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", w.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
