// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"reviewpress/internal/cache"
	"reviewpress/internal/engine"
	"reviewpress/internal/models"
	"reviewpress/internal/navigation"
	"reviewpress/internal/store"
)

// publicListLimit caps every public listing.
const publicListLimit = 24

// Public groups the handlers of the public site. Rendered pages are read
// through the Valkey page cache.
type Public struct {
	engine    *engine.Engine
	contents  *store.ContentStore
	menus     *store.MenuStore
	pages     *store.PageStore
	stats     *store.StatsStore
	nav       *navigation.Service
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil, in
// which case every request renders.
func NewPublic(eng *engine.Engine, contents *store.ContentStore, menus *store.MenuStore, pages *store.PageStore, stats *store.StatsStore, nav *navigation.Service, pageCache *cache.PageCache) *Public {
	return &Public{
		engine:    eng,
		contents:  contents,
		menus:     menus,
		pages:     pages,
		stats:     stats,
		nav:       nav,
		pageCache: pageCache,
	}
}

// Homepage lists the latest published content.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	p.listing(w, r, "Latest", models.ContentFilter{})
}

// Articles lists published articles.
func (p *Public) Articles(w http.ResponseWriter, r *http.Request) {
	p.listing(w, r, "Articles", models.ContentFilter{Type: models.ContentTypeArticle})
}

// Reviews lists published reviews.
func (p *Public) Reviews(w http.ResponseWriter, r *http.Request) {
	p.listing(w, r, "Reviews", models.ContentFilter{Type: models.ContentTypeReview})
}

// Category lists the content placed under a menu category.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	catSlug := chi.URLParam(r, "category")

	cat, err := p.menus.FindCategoryBySlug(ctx, catSlug)
	if err != nil {
		slog.Error("find category failed", "slug", catSlug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if cat == nil {
		http.NotFound(w, r)
		return
	}

	heading := cat.Name
	if page, err := p.pages.FindCategoryPage(ctx, cat.ID); err != nil {
		slog.Warn("find category page failed", "category_id", cat.ID, "error", err)
	} else if page != nil {
		heading = page.Title
	}

	p.listing(w, r, heading, models.ContentFilter{CategorySlug: cat.Slug})
}

// Subcategory lists the content placed under one item of a category.
func (p *Public) Subcategory(w http.ResponseWriter, r *http.Request) {
	catSlug, itemSlug := chi.URLParam(r, "category"), chi.URLParam(r, "sub")

	menu, err := p.nav.BuildMenu(r.Context())
	if err != nil {
		slog.Error("load menu failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	cat, item := navigation.Find(menu, catSlug, itemSlug)
	if cat == nil || item == nil {
		http.NotFound(w, r)
		return
	}

	p.listing(w, r, cat.Name+" / "+item.Name, models.ContentFilter{
		CategorySlug:    cat.Slug,
		SubcategorySlug: item.Slug,
	})
}

// Read renders one published item through its layout. A view is counted on
// every request, cached or not.
func (p *Public) Read(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	key := cache.ContentKey(id)

	if cached, ok := p.cached(r, key); ok {
		p.recordView(r, id)
		writeHTML(w, cached)
		return
	}

	ec, err := p.contents.FindExpanded(ctx, id)
	if err != nil {
		slog.Error("load content failed", "content_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if ec == nil || !ec.IsPublished() {
		http.NotFound(w, r)
		return
	}

	body, err := p.engine.Render(engine.FromExpanded(ec))
	if err != nil {
		slog.Error("render content failed", "content_id", id, "layout", ec.LayoutTemplate, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := &engine.PageData{
		Title:   ec.Title,
		Nav:     p.header(r),
		Content: template.HTML(body),
	}
	if ec.Description != nil {
		data.Description = *ec.Description
	}

	var buf bytes.Buffer
	if err := p.engine.RenderPage(&buf, data); err != nil {
		slog.Error("render page failed", "content_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.store(r, key, buf.Bytes())
	p.recordView(r, id)
	writeHTML(w, buf.Bytes())
}

// NavigationJSON returns the header menu with its carousel pages.
func (p *Public) NavigationJSON(w http.ResponseWriter, r *http.Request) {
	header, err := p.nav.Header(r.Context())
	if err != nil {
		slog.Error("navigation failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Navigation is unavailable.")
		return
	}
	writeJSON(w, http.StatusOK, header)
}

// listing renders a content grid for filter, cached under the request path.
func (p *Public) listing(w http.ResponseWriter, r *http.Request, heading string, filter models.ContentFilter) {
	key := cache.ListKey(r.URL.Path)
	if cached, ok := p.cached(r, key); ok {
		writeHTML(w, cached)
		return
	}

	filter.Status = models.ContentStatusPublished
	filter.Limit = publicListLimit
	items, err := p.contents.List(r.Context(), filter)
	if err != nil {
		slog.Error("list content failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := &engine.PageData{
		Title:   heading,
		Heading: heading,
		Nav:     p.header(r),
		Items:   make([]engine.ListItem, 0, len(items)),
	}
	for _, c := range items {
		data.Items = append(data.Items, engine.ListItemFrom(c))
	}

	var buf bytes.Buffer
	if err := p.engine.RenderList(&buf, data); err != nil {
		slog.Error("render listing failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.store(r, key, buf.Bytes())
	writeHTML(w, buf.Bytes())
}

// header returns the navigation header. A failure renders the page without
// a menu.
func (p *Public) header(r *http.Request) []navigation.HeaderCategory {
	header, err := p.nav.Header(r.Context())
	if err != nil {
		slog.Warn("navigation unavailable", "error", err)
	}
	return header
}

func (p *Public) cached(r *http.Request, key string) ([]byte, bool) {
	if p.pageCache == nil {
		return nil, false
	}
	return p.pageCache.Get(r.Context(), key)
}

func (p *Public) store(r *http.Request, key string, html []byte) {
	if p.pageCache != nil {
		p.pageCache.Set(r.Context(), key, html)
	}
}

func (p *Public) recordView(r *http.Request, id uuid.UUID) {
	if err := p.stats.RecordView(r.Context(), id); err != nil {
		slog.Warn("view not recorded", "content_id", id, "error", err)
	}
}

func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}
