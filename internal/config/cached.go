/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"sync"
	"time"
)

// CachedProvider reuses a resolved Config until the cache refresh interval elapses.
// Resolution errors are never cached.
type CachedProvider struct {
	inner    Provider
	interval time.Duration
	now      func() time.Time

	mutex     sync.Mutex
	cached    *Config
	expiresAt time.Time
}

// NewCachedProvider wraps inner, reading the refresh interval from src
func NewCachedProvider(inner Provider, src Source) *CachedProvider {
	return &CachedProvider{
		inner:    inner,
		interval: CacheRefreshInterval(src),
		now:      time.Now,
	}
}

// Config returns the cached configuration, resolving it again once stale
func (p *CachedProvider) Config(ctx context.Context) (*Config, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	now := p.now()
	if p.cached != nil && now.Before(p.expiresAt) {
		return p.cached, nil
	}

	cfg, err := p.inner.Config(ctx)
	if err != nil {
		return nil, err
	}

	p.cached = cfg
	p.expiresAt = now.Add(p.interval)
	return cfg, nil
}

// Interval returns the refresh interval in use
func (p *CachedProvider) Interval() time.Duration {
	return p.interval
}
