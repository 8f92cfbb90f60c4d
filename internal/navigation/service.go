// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package navigation

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"reviewpress/internal/metrics"
	"reviewpress/internal/models"
)

// Source reads the flat menu tables.
type Source interface {
	ListCategories(ctx context.Context) ([]models.MenuCategory, error)
	ListItems(ctx context.Context) ([]models.MenuItem, error)
}

// Cache stores the assembled menu. Implementations own the expiry; a miss
// is reported as (nil, false).
type Cache interface {
	Get(ctx context.Context) ([]models.MenuCategory, bool)
	Set(ctx context.Context, menu []models.MenuCategory)
	Invalidate(ctx context.Context)
}

// Service serves the assembled menu, reading through the cache. Cached
// menus are never refreshed early: staleness is bounded by the cache TTL
// or by an explicit Invalidate after admin edits.
type Service struct {
	source Source
	cache  Cache
}

// NewService creates a navigation service. cache may be nil, in which
// case every call reads the database.
func NewService(source Source, cache Cache) *Service {
	return &Service{source: source, cache: cache}
}

// BuildMenu returns the ordered category list with items attached.
func (s *Service) BuildMenu(ctx context.Context) ([]models.MenuCategory, error) {
	if s.cache != nil {
		if menu, ok := s.cache.Get(ctx); ok {
			return menu, nil
		}
	}

	var (
		categories []models.MenuCategory
		items      []models.MenuItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.source.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.source.ListItems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}

	menu := Assemble(categories, items)
	metrics.NavigationBuilt()
	if s.cache != nil {
		s.cache.Set(ctx, menu)
	}
	slog.Debug("navigation menu assembled", "categories", len(menu), "items", len(items))
	return menu, nil
}

// Header returns the header view model with carousel pages.
func (s *Service) Header(ctx context.Context) ([]HeaderCategory, error) {
	menu, err := s.BuildMenu(ctx)
	if err != nil {
		return nil, err
	}
	return Header(menu, DefaultPageSize), nil
}

// Invalidate drops the cached menu so the next call re-reads the tables.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
