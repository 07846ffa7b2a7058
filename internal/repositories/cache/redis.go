// Package cache holds the Redis-backed adapters for the readiness read path:
// a read-through summary cache and a pub/sub event publisher feeding the
// external realtime notification channel.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
)

const (
	summaryKeyPrefix = "readiness:summary:"
	eventChannel     = "project-events"

	// summaryTTL bounds staleness when an invalidation is lost.
	summaryTTL = 5 * time.Minute
)

// NewRedisClient creates and ping-checks a Redis client.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

// RedisSummaryCache stores readiness summaries as JSON under a per-project key.
type RedisSummaryCache struct {
	client *redis.Client
}

var _ portsrepo.SummaryCache = (*RedisSummaryCache)(nil)

// NewRedisSummaryCache creates a SummaryCache backed by the given client.
func NewRedisSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

func summaryKey(projectID string) string {
	return summaryKeyPrefix + projectID
}

// GetSummary retrieves a cached summary; (nil, nil) means cache miss.
func (c *RedisSummaryCache) GetSummary(ctx context.Context, projectID string) (*domain.ProjectReadiness, error) {
	raw, err := c.client.Get(ctx, summaryKey(projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached summary for project %s: %w", projectID, err)
	}

	var summary domain.ProjectReadiness
	if err := json.Unmarshal(raw, &summary); err != nil {
		// A corrupt entry is treated as a miss after dropping it.
		c.client.Del(ctx, summaryKey(projectID))
		return nil, nil
	}
	return &summary, nil
}

func (c *RedisSummaryCache) SetSummary(ctx context.Context, summary domain.ProjectReadiness) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to serialize summary for project %s: %w", summary.ProjectID, err)
	}
	if err := c.client.Set(ctx, summaryKey(summary.ProjectID), raw, summaryTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache summary for project %s: %w", summary.ProjectID, err)
	}
	return nil
}

func (c *RedisSummaryCache) InvalidateSummary(ctx context.Context, projectID string) error {
	if err := c.client.Del(ctx, summaryKey(projectID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached summary for project %s: %w", projectID, err)
	}
	return nil
}

// RedisEventPublisher publishes project events on a shared pub/sub channel.
// Delivery is fire-and-forget; subscribers that are offline miss the event.
type RedisEventPublisher struct {
	client *redis.Client
}

var _ portsrepo.EventPublisher = (*RedisEventPublisher)(nil)

// NewRedisEventPublisher creates an EventPublisher backed by the given client.
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{client: client}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, event portsrepo.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", event.Name, err)
	}
	if err := p.client.Publish(ctx, eventChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Name, err)
	}
	return nil
}

// NoopSummaryCache satisfies SummaryCache when Redis is not configured.
// Every read is a miss and writes are discarded.
type NoopSummaryCache struct{}

var _ portsrepo.SummaryCache = (*NoopSummaryCache)(nil)

func (NoopSummaryCache) GetSummary(context.Context, string) (*domain.ProjectReadiness, error) {
	return nil, nil
}
func (NoopSummaryCache) SetSummary(context.Context, domain.ProjectReadiness) error { return nil }
func (NoopSummaryCache) InvalidateSummary(context.Context, string) error           { return nil }

// NoopEventPublisher satisfies EventPublisher when Redis is not configured.
type NoopEventPublisher struct{}

var _ portsrepo.EventPublisher = (*NoopEventPublisher)(nil)

func (NoopEventPublisher) Publish(context.Context, portsrepo.Event) error { return nil }
