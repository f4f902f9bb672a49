package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vendorhub/core/config"
	"vendorhub/core/constants"
	"vendorhub/core/logger"
)

type Cache interface {
	// Parsed-feed cache: the merge layer reads cached external events between
	// syncs so a feed outage never blocks the availability view.
	SetFeedEvents(ctx context.Context, vendorID string, payload any, ttl time.Duration) error
	GetFeedEvents(ctx context.Context, vendorID string, dest any) (bool, error)
	ClearFeedEvents(ctx context.Context, vendorID string) error

	SetLastSync(ctx context.Context, vendorID string, t time.Time) error
	GetLastSync(ctx context.Context, vendorID string) (time.Time, bool, error)

	Ping(ctx context.Context) error
	Client() *redis.Client
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) SetFeedEvents(ctx context.Context, vendorID string, payload any, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, constants.RedisKeyFeedEvents+vendorID, data, ttl).Err()
}

func (c *redisCache) GetFeedEvents(ctx context.Context, vendorID string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, constants.RedisKeyFeedEvents+vendorID).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) ClearFeedEvents(ctx context.Context, vendorID string) error {
	return c.client.Del(ctx,
		constants.RedisKeyFeedEvents+vendorID,
		constants.RedisKeyLastSync+vendorID,
	).Err()
}

func (c *redisCache) SetLastSync(ctx context.Context, vendorID string, t time.Time) error {
	return c.client.Set(ctx, constants.RedisKeyLastSync+vendorID, t.UTC().Format(time.RFC3339), 0).Err()
}

func (c *redisCache) GetLastSync(ctx context.Context, vendorID string) (time.Time, bool, error) {
	val, err := c.client.Get(ctx, constants.RedisKeyLastSync+vendorID).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Client() *redis.Client {
	return c.client
}
