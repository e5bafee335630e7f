package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultSessionKey     = "backoffice:session:token"
)

// RedisConfig captures the settings for the Redis-backed token store.
type RedisConfig struct {
	Addr string
	DB   int
	// Key is the well-known key the token lives under. Defaults to
	// defaultSessionKey.
	Key string
	// TTL expires the stored token server-side; zero keeps it until an
	// explicit Clear.
	TTL     time.Duration
	Timeout time.Duration
}

// RedisTokenStore keeps the token under a single well-known key, for
// deployments where several terminals share one operator session.
type RedisTokenStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisTokenStore initialises the client and validates connectivity
// with a bounded ping.
func NewRedisTokenStore(ctx context.Context, cfg RedisConfig) (*RedisTokenStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	key := cfg.Key
	if key == "" {
		key = defaultSessionKey
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

	return &RedisTokenStore{client: client, key: key, ttl: cfg.TTL}, nil
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get session: %w", err)
	}
	return token, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}
