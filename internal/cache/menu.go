// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"reviewpress/internal/models"
)

const (
	menuKey = "nav:menu"

	// DefaultMenuTTL bounds how stale the header menu may get. Admin edits
	// to menus and pages invalidate it explicitly.
	DefaultMenuTTL = 5 * time.Minute
)

// MenuCache stores the assembled navigation menu as JSON in Valkey. Errors
// are logged and reported as misses so navigation falls back to the
// database.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache creates a menu cache. A zero ttl uses DefaultMenuTTL.
func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	if ttl == 0 {
		ttl = DefaultMenuTTL
	}
	return &MenuCache{client: client, ttl: ttl}
}

// Get returns the cached menu.
func (mc *MenuCache) Get(ctx context.Context) ([]models.MenuCategory, bool) {
	raw, err := mc.client.Get(ctx, menuKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("menu cache get error", "error", err)
		return nil, false
	}

	var menu []models.MenuCategory
	if err := json.Unmarshal(raw, &menu); err != nil {
		slog.Warn("menu cache decode error", "error", err)
		return nil, false
	}
	return menu, true
}

// Set stores the menu with the configured TTL.
func (mc *MenuCache) Set(ctx context.Context, menu []models.MenuCategory) {
	raw, err := json.Marshal(menu)
	if err != nil {
		slog.Warn("menu cache encode error", "error", err)
		return
	}
	if err := mc.client.Set(ctx, menuKey, raw, mc.ttl).Err(); err != nil {
		slog.Warn("menu cache set error", "error", err)
	}
}

// Invalidate removes the cached menu.
func (mc *MenuCache) Invalidate(ctx context.Context) {
	if err := mc.client.Del(ctx, menuKey).Err(); err != nil {
		slog.Warn("menu cache invalidate error", "error", err)
		return
	}
	slog.Debug("menu cache invalidated")
}
