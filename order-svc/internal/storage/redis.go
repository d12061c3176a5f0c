package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// ReceiptMarkerKey identifies one generated receipt: the table plus the order
// at the head of the bill when it was rendered.
func (c *RedisCache) ReceiptMarkerKey(tableNumber int, orderRef string) string {
	return "receipt:" + strconv.Itoa(tableNumber) + ":" + orderRef
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key, url string) error {
	return c.Client.Set(ctx, key, url, c.TTL).Err()
}
