package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMarkers keeps short-lived submitted-payment markers so a duplicate
// payment submission is refused even across a station restart. The backend is
// still expected to enforce idempotency; this is a best-effort client guard.
type RedisMarkers struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMarkers(client *redis.Client, ttl time.Duration) *RedisMarkers {
	return &RedisMarkers{Client: client, TTL: ttl}
}

func (m *RedisMarkers) PaymentMarkerKey(orderID string) string {
	return "payment:" + orderID
}

func (m *RedisMarkers) Exists(ctx context.Context, key string) (bool, error) {
	res, err := m.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (m *RedisMarkers) SetMarker(ctx context.Context, key string) error {
	return m.Client.Set(ctx, key, "1", m.TTL).Err()
}
