package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/pkg/platform/sentinel"
)

var redisOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "advisor_rules_cache_redis_duration_ms",
	Help:    "Latency of rule cache operations against Redis in milliseconds",
	Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
}, []string{"op"})

const (
	transferRulesKey = "advisor:rules:transfer"
	companyRulesKey  = "advisor:rules:company"
)

// redisEntry is the stored envelope; StoredAt keeps read-time staleness exact
// even when the key expiry and the local clock disagree.
type redisEntry[T any] struct {
	StoredAt time.Time `json:"stored_at"`
	Rules    *T        `json:"rules"`
}

// RedisCache shares rule snapshots across instances. Keys expire after the
// TTL and stored-at is re-checked on read.
type RedisCache struct {
	client   *redis.Client
	cacheTTL time.Duration
	now      func() time.Time
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithRedisClock overrides the time source, mainly for tests.
func WithRedisClock(now func() time.Time) RedisOption {
	return func(c *RedisCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewRedisCache constructs a Redis-backed rule cache. The client lifecycle is
// managed by the caller.
func NewRedisCache(client *redis.Client, cacheTTL time.Duration, opts ...RedisOption) *RedisCache {
	if cacheTTL <= 0 {
		cacheTTL = DefaultTTL
	}
	c := &RedisCache{
		client:   client,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// SaveTransferRules stores the transfer snapshot with key expiry set to the TTL.
func (c *RedisCache) SaveTransferRules(ctx context.Context, rules *models.TransferRules) error {
	return saveEntry(ctx, c, transferRulesKey, rules)
}

// FindTransferRules loads the transfer snapshot or returns sentinel.ErrNotFound.
func (c *RedisCache) FindTransferRules(ctx context.Context) (*models.TransferRules, error) {
	return findEntry[models.TransferRules](ctx, c, transferRulesKey)
}

// SaveCompanyRules stores the company snapshot with key expiry set to the TTL.
func (c *RedisCache) SaveCompanyRules(ctx context.Context, rules *models.CompanyRules) error {
	return saveEntry(ctx, c, companyRulesKey, rules)
}

// FindCompanyRules loads the company snapshot or returns sentinel.ErrNotFound.
func (c *RedisCache) FindCompanyRules(ctx context.Context) (*models.CompanyRules, error) {
	return findEntry[models.CompanyRules](ctx, c, companyRulesKey)
}

func saveEntry[T any](ctx context.Context, c *RedisCache, key string, rules *T) error {
	if rules == nil {
		return nil
	}
	start := time.Now()
	defer observe("save", start)

	payload, err := json.Marshal(redisEntry[T]{StoredAt: c.now().UTC(), Rules: rules})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, payload, c.cacheTTL).Err(); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func findEntry[T any](ctx context.Context, c *RedisCache, key string) (*T, error) {
	start := time.Now()
	defer observe("find", start)

	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var entry redisEntry[T]
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if entry.Rules == nil || c.now().Sub(entry.StoredAt) >= c.cacheTTL {
		return nil, sentinel.ErrNotFound
	}
	return entry.Rules, nil
}

func observe(op string, start time.Time) {
	redisOpDuration.WithLabelValues(op).Observe(float64(time.Since(start).Microseconds()) / 1000.0)
}
