// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
)

// estimateKeyPrefix namespaces cache keys so other consumers of the same
// Redis instance do not collide.
const estimateKeyPrefix = "estimate:"

// RedisEstimateCache implements the EstimateCache using Redis.
type RedisEstimateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisEstimateCache creates a new Redis-backed estimate cache.
func NewRedisEstimateCache(client *redis.Client, ttl time.Duration) *RedisEstimateCache {
	return &RedisEstimateCache{
		client: client,
		ttl:    ttl,
	}
}

var _ adapter.EstimateCache = (*RedisEstimateCache)(nil)

// Get returns the cached estimate for the description, or nil on a miss.
func (c *RedisEstimateCache) Get(ctx context.Context, description string) (*entity.NutritionEstimate, error) {
	payload, err := c.client.Get(ctx, cacheKey(description)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var estimate entity.NutritionEstimate
	if err := json.Unmarshal(payload, &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// Set stores the estimate for the description with the configured TTL.
func (c *RedisEstimateCache) Set(ctx context.Context, description string, estimate *entity.NutritionEstimate) error {
	payload, err := json.Marshal(estimate)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(description), payload, c.ttl).Err()
}

// cacheKey hashes the normalized description so arbitrary user text maps to
// a fixed-length Redis key.
func cacheKey(description string) string {
	normalized := strings.ToLower(strings.TrimSpace(description))
	sum := sha256.Sum256([]byte(normalized))
	return estimateKeyPrefix + hex.EncodeToString(sum[:])
}
