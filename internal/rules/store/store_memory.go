// Package store caches the most recent rule snapshot per category.
package store

import (
	"context"
	"sync"
	"time"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/pkg/platform/sentinel"
)

// DefaultTTL is how long a fetched snapshot is served before re-acquisition.
const DefaultTTL = time.Hour

type cachedTransfer struct {
	rules    *models.TransferRules
	storedAt time.Time
}

type cachedCompany struct {
	rules    *models.CompanyRules
	storedAt time.Time
}

// InMemoryCache holds at most one snapshot per category. Staleness is
// evaluated when reading, never by a background sweeper.
type InMemoryCache struct {
	mu       sync.RWMutex
	transfer *cachedTransfer
	company  *cachedCompany
	cacheTTL time.Duration
	now      func() time.Time
}

// Option configures an InMemoryCache.
type Option func(*InMemoryCache)

// WithClock overrides the time source used for storedAt and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *InMemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewInMemoryCache creates a cache that serves snapshots for cacheTTL.
// A non-positive TTL falls back to DefaultTTL.
func NewInMemoryCache(cacheTTL time.Duration, opts ...Option) *InMemoryCache {
	if cacheTTL <= 0 {
		cacheTTL = DefaultTTL
	}
	c := &InMemoryCache{
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SaveTransferRules replaces the transfer snapshot. A nil snapshot is a no-op.
func (c *InMemoryCache) SaveTransferRules(_ context.Context, rules *models.TransferRules) error {
	if rules == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transfer = &cachedTransfer{rules: rules, storedAt: c.now()}
	return nil
}

// FindTransferRules returns the transfer snapshot while it is younger than the TTL.
// Returns sentinel.ErrNotFound otherwise.
func (c *InMemoryCache) FindTransferRules(_ context.Context) (*models.TransferRules, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.transfer != nil && c.fresh(c.transfer.storedAt) {
		return c.transfer.rules, nil
	}
	return nil, sentinel.ErrNotFound
}

// SaveCompanyRules replaces the company snapshot. A nil snapshot is a no-op.
func (c *InMemoryCache) SaveCompanyRules(_ context.Context, rules *models.CompanyRules) error {
	if rules == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.company = &cachedCompany{rules: rules, storedAt: c.now()}
	return nil
}

// FindCompanyRules returns the company snapshot while it is younger than the TTL.
// Returns sentinel.ErrNotFound otherwise.
func (c *InMemoryCache) FindCompanyRules(_ context.Context) (*models.CompanyRules, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.company != nil && c.fresh(c.company.storedAt) {
		return c.company.rules, nil
	}
	return nil, sentinel.ErrNotFound
}

func (c *InMemoryCache) fresh(storedAt time.Time) bool {
	return c.now().Sub(storedAt) < c.cacheTTL
}
