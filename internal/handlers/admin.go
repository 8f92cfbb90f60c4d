// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for ReviewPress. Handlers are
// grouped by concern (admin, public, auth) and receive their dependencies
// through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"reviewpress/internal/cache"
	"reviewpress/internal/editor"
	"reviewpress/internal/engine"
	"reviewpress/internal/middleware"
	"reviewpress/internal/models"
	"reviewpress/internal/navigation"
	"reviewpress/internal/render"
	"reviewpress/internal/storage"
	"reviewpress/internal/store"
)

// topViewedLimit is the number of rows in the dashboard "most viewed" table.
const topViewedLimit = 10

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer  *render.Renderer
	editor    *editor.Service
	engine    *engine.Engine
	contents  *store.ContentStore
	users     *store.UserStore
	menus     *store.MenuStore
	pages     *store.PageStore
	media     *store.MediaStore
	stats     *store.StatsStore
	cacheLog  *store.CacheLogStore
	nav       *navigation.Service
	pageCache *cache.PageCache
	storage   *storage.Client
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil if S3 is not configured; uploads then answer 503.
func NewAdmin(renderer *render.Renderer, editorSvc *editor.Service, eng *engine.Engine, contents *store.ContentStore, users *store.UserStore, menus *store.MenuStore, pages *store.PageStore, media *store.MediaStore, stats *store.StatsStore, cacheLog *store.CacheLogStore, nav *navigation.Service, pageCache *cache.PageCache, storageClient *storage.Client) *Admin {
	return &Admin{
		renderer:  renderer,
		editor:    editorSvc,
		engine:    eng,
		contents:  contents,
		users:     users,
		menus:     menus,
		pages:     pages,
		media:     media,
		stats:     stats,
		cacheLog:  cacheLog,
		nav:       nav,
		pageCache: pageCache,
		storage:   storageClient,
	}
}

// Dashboard renders the admin dashboard with content counters and the most
// viewed items.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d := &models.Dashboard{}

	if err := a.contents.Counts(ctx, d); err != nil {
		slog.Error("dashboard counts failed", "error", err)
	}
	if n, err := a.media.Count(ctx); err != nil {
		slog.Error("dashboard media count failed", "error", err)
	} else {
		d.Media = n
	}
	if n, err := a.users.Count(ctx); err != nil {
		slog.Error("dashboard user count failed", "error", err)
	} else {
		d.Users = n
	}
	top, err := a.stats.TopViewed(ctx, topViewedLimit)
	if err != nil {
		slog.Error("dashboard top viewed failed", "error", err)
	}
	d.TopViewed = top

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    map[string]any{"Stats": d},
		Flashes: flashesFrom(r),
	})
}

// currentUser returns the signed-in user from the request session, or nil.
func currentUser(r *http.Request) *models.User {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return nil
	}
	return sess.User()
}

// idParam parses a UUID route parameter.
func idParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// flashMessages maps the ?flash= codes set by redirects to their text.
var flashMessages = map[string]render.Flash{
	"saved":    {Type: "success", Message: "Changes saved."},
	"partial":  {Type: "error", Message: "The content was saved but its review details were not. Please save again."},
	"status":   {Type: "success", Message: "Publishing status updated."},
	"deleted":  {Type: "success", Message: "Deleted."},
	"uploaded": {Type: "success", Message: "File uploaded."},
	"password": {Type: "success", Message: "Password updated."},
	"invalid":  {Type: "error", Message: "Some fields were invalid. Nothing was changed."},
	"failed":   {Type: "error", Message: "Something went wrong. Please try again."},
}

func flashesFrom(r *http.Request) []render.Flash {
	if f, ok := flashMessages[r.URL.Query().Get("flash")]; ok {
		return []render.Flash{f}
	}
	return nil
}
