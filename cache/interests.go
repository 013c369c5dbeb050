// Package cache mirrors the last interests a user picked into Redis. The
// mirror is a fallback read path only; MongoDB stays the source of truth.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"icebreaker/backend/icebreaker"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTTL bounds how long a mirrored interest set is kept.
const DefaultTTL = 30 * 24 * time.Hour

// InterestCache implements icebreaker.InterestCache using Redis.
type InterestCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewInterestCache connects to redisURL and verifies the connection.
func NewInterestCache(redisURL string) (*InterestCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewInterestCacheWithClient(client), nil
}

// NewInterestCacheWithClient creates a cache from an existing Redis client.
func NewInterestCacheWithClient(client *redis.Client) *InterestCache {
	return &InterestCache{
		client: client,
		prefix: "selectedInterests:",
		ttl:    DefaultTTL,
	}
}

func (c *InterestCache) key(userID primitive.ObjectID) string {
	return c.prefix + userID.Hex()
}

// SaveInterests replaces the mirrored set for userID.
func (c *InterestCache) SaveInterests(ctx context.Context, userID primitive.ObjectID, interests []string) error {
	if interests == nil {
		interests = []string{}
	}
	data, err := json.Marshal(interests)
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}
	if err := c.client.Set(ctx, c.key(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("save interests: %w", err)
	}
	return nil
}

// LoadInterests returns the mirrored set, or icebreaker.ErrNotFound when
// nothing is cached.
func (c *InterestCache) LoadInterests(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, icebreaker.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load interests: %w", err)
	}

	var interests []string
	if err := json.Unmarshal(data, &interests); err != nil {
		return nil, fmt.Errorf("unmarshal interests: %w", err)
	}
	return interests, nil
}

// Close closes the Redis connection.
func (c *InterestCache) Close() error {
	return c.client.Close()
}

// Ping checks if Redis is reachable.
func (c *InterestCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

var _ icebreaker.InterestCache = (*InterestCache)(nil)
