package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a token has no live session. The Redis key
// carries the TTL, so an expired token and an unknown token are the same miss.
var ErrNoSession = errors.New("session not found")

const keyPrefix = "auth_"

// RedisStore maps opaque tokens to user ids with an expiry.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+token, userID, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	v, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Del(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// Ping reports whether the session store is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
