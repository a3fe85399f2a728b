package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"comanda_manager/internal/apperrors"
)

const redisKeyPrefix = "comanda:collection:"

// RedisStore persists each collection as a JSON blob under a prefixed key.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Load(collection string, dest interface{}) error {
	ctx := context.Background()
	val, err := s.rdb.Get(ctx, redisKeyPrefix+collection).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	if val == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return apperrors.NewCorruptState(collection, err)
	}
	return nil
}

func (s *RedisStore) Save(collection string, value interface{}) error {
	ctx := context.Background()
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection, err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+collection, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) SaveAll(collections map[string]interface{}) error {
	for name, value := range collections {
		if err := s.Save(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
