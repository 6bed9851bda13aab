package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"homefix/models"
	"homefix/utils"

	"github.com/go-redis/redis/v8"
)

// IdentityCache stores resolved identities keyed by user id.
type IdentityCache interface {
	Get(ctx context.Context, userID string) (models.Identity, bool, error)
	Set(ctx context.Context, id models.Identity) error
	Delete(ctx context.Context, userID string) error
}

// RedisIdentityCache keeps identities under auth:<userId> with a sliding TTL.
type RedisIdentityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisIdentityCache(client *redis.Client) *RedisIdentityCache {
	return &RedisIdentityCache{Client: client, TTL: utils.AuthCacheTTL}
}

func (c *RedisIdentityCache) key(userID string) string {
	return utils.AuthCachePrefix + userID
}

func (c *RedisIdentityCache) Get(ctx context.Context, userID string) (models.Identity, bool, error) {
	key := c.key(userID)
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Identity{}, false, nil
	}
	if err != nil {
		return models.Identity{}, false, err
	}

	var id models.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return models.Identity{}, false, err
	}
	// Slide the expiry on every hit.
	c.Client.Expire(ctx, key, c.TTL)
	return id, true, nil
}

func (c *RedisIdentityCache) Set(ctx context.Context, id models.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.key(id.UserID), raw, c.TTL).Err()
}

func (c *RedisIdentityCache) Delete(ctx context.Context, userID string) error {
	return c.Client.Del(ctx, c.key(userID)).Err()
}

// NoopIdentityCache always misses. Used when Redis is not configured.
type NoopIdentityCache struct{}

func (NoopIdentityCache) Get(context.Context, string) (models.Identity, bool, error) {
	return models.Identity{}, false, nil
}
func (NoopIdentityCache) Set(context.Context, models.Identity) error { return nil }
func (NoopIdentityCache) Delete(context.Context, string) error       { return nil }
