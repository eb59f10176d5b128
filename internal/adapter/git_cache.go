// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/models"
	"github.com/patrickmn/go-cache"
)

// DefaultCacheWindow is how long collected repository info is reused.
const DefaultCacheWindow = 5 * time.Second

const repositoryInfoKey = "repository-info"

type cachedEntry struct {
	info       models.RepositoryInfo
	request    models.Request
	capturedAt time.Time
}

type cachedCollector struct {
	inner  RepositoryCollector
	store  *cache.Cache
	window time.Duration
	now    func() time.Time

	mu         sync.Mutex
	capturedAt time.Time

	logger *logger.Logger
}

// NewCachedCollector wraps inner with a single-entry cache valid for window
// (a non-positive window selects [DefaultCacheWindow]).
//
// The cache memoizes, it does not coalesce: two concurrent misses may both
// reach inner, and the later one wins the entry. A stored entry is only
// reused when it was collected for a request that covers the new one.
func NewCachedCollector(inner RepositoryCollector, window time.Duration, logger *logger.Logger) CachedCollector {
	if window <= 0 {
		window = DefaultCacheWindow
	}
	return &cachedCollector{
		inner:  inner,
		store:  cache.New(window, 0),
		window: window,
		now:    time.Now,
		logger: logger,
	}
}

// fresh reports whether an entry captured at capturedAt is still inside the
// window. go-cache keeps an item up to and including its expiry instant, so
// the strict bound is checked here.
func (c *cachedCollector) fresh(capturedAt time.Time) bool {
	return c.now().Sub(capturedAt) < c.window
}

func (c *cachedCollector) Collect(ctx context.Context, req models.Request) models.RepositoryInfo {
	if v, found := c.store.Get(repositoryInfoKey); !found {
		c.logger.Debug().Msg("repository info cache miss")
	} else if entry := v.(cachedEntry); !c.fresh(entry.capturedAt) {
		c.logger.Debug().Msg("repository info cache entry expired")
	} else if entry.request.Covers(req) {
		c.logger.Debug().Msg("repository info cache hit")
		return entry.info
	} else {
		c.logger.Debug().Msg("cached repository info misses requested fields")
	}

	info := c.inner.Collect(ctx, req)

	c.mu.Lock()
	c.capturedAt = c.now()
	c.store.Set(repositoryInfoKey, cachedEntry{info: info, request: req, capturedAt: c.capturedAt}, cache.DefaultExpiration)
	c.mu.Unlock()

	return info
}

func (c *cachedCollector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Flush()
	c.capturedAt = time.Time{}
}

func (c *cachedCollector) Status() models.CacheStatus {
	c.mu.Lock()
	capturedAt := c.capturedAt
	c.mu.Unlock()

	if capturedAt.IsZero() {
		return models.CacheStatus{}
	}

	_, found := c.store.Get(repositoryInfoKey)
	return models.CacheStatus{
		Cached:    true,
		Timestamp: capturedAt,
		Age:       c.now().Sub(capturedAt),
		Valid:     found && c.fresh(capturedAt),
	}
}
