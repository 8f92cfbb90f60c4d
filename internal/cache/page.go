// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go caches rendered public HTML in Valkey. A hit skips the content
// query, the review expansion and template execution.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"reviewpress/internal/metrics"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a page key.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err == redis.Nil {
		metrics.PageCacheLookup(false)
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		metrics.PageCacheLookup(false)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	metrics.PageCacheLookup(true)
	return val, true
}

// Set stores rendered HTML for a page key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// InvalidateContent removes the rendered page of one content item together
// with every listing, since any listing may include it.
func (pc *PageCache) InvalidateContent(ctx context.Context, id uuid.UUID) {
	if err := pc.client.Del(ctx, pageKeyPrefix+ContentKey(id)).Err(); err != nil {
		slog.Warn("page cache invalidate error", "content_id", id, "error", err)
	}
	pc.InvalidateListings(ctx)
}

// InvalidateListings removes the homepage and every category or type listing.
func (pc *PageCache) InvalidateListings(ctx context.Context) {
	n := deleteByPattern(ctx, pc.client, pageKeyPrefix+listPrefix+"*")
	slog.Debug("page cache listings invalidated", "deleted", n)
}

// InvalidateAll removes all cached pages. Used after menu changes, since
// every page embeds the header.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	if n := deleteByPattern(ctx, pc.client, pageKeyPrefix+"*"); n > 0 {
		slog.Info("page cache fully cleared", "deleted", n)
	}
}

const listPrefix = "list:"

// ContentKey returns the cache key for a rendered content item.
func ContentKey(id uuid.UUID) string {
	return "read:" + id.String()
}

// ListKey returns the cache key for a listing path such as "/" or
// "/c/phones/android".
func ListKey(path string) string {
	return listPrefix + path
}
