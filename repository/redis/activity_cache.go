package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/repository"
)

type activityCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewActivityCache creates a Redis-backed cache for the public activity listing.
func NewActivityCache(client *redislib.Client, ttl time.Duration) repository.ActivityCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &activityCache{
		client: client,
		prefix: "activities:list:",
		ttl:    ttl,
	}
}

func (c *activityCache) GetList(ctx context.Context, sport string) ([]domain.Activity, error) {
	result, err := c.client.Get(ctx, c.key(sport)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var activities []domain.Activity
	if err := json.Unmarshal([]byte(result), &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *activityCache) SetList(ctx context.Context, sport string, activities []domain.Activity) error {
	payload, err := json.Marshal(activities)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sport), payload, c.ttl).Err()
}

// Invalidate drops every cached listing. Mutations are rare enough that a
// full sweep is simpler than tracking which sport keys a change touches.
func (c *activityCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *activityCache) key(sport string) string {
	if sport == "" {
		sport = "all"
	}
	return fmt.Sprintf("%s%s", c.prefix, sport)
}
