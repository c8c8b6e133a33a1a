package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the record under a single Redis key.
type RedisSlot struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// NewRedisSlot creates a slot for key. A zero ttl keeps the record until it
// is cleared.
func NewRedisSlot(client redis.Cmdable, key string, ttl time.Duration) *RedisSlot {
	return &RedisSlot{client: client, key: key, ttl: ttl}
}

func (s *RedisSlot) Get(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}
	return raw, nil
}

func (s *RedisSlot) Set(ctx context.Context, value []byte) error {
	return s.client.Set(ctx, s.key, value, s.ttl).Err()
}

func (s *RedisSlot) Delete(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
