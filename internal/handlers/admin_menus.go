// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"reviewpress/internal/models"
	"reviewpress/internal/render"
	"reviewpress/internal/slug"
	"reviewpress/internal/store"
)

// MenusPage lists the menu categories with their items.
func (a *Admin) MenusPage(w http.ResponseWriter, r *http.Request) {
	menu, err := a.freshMenu(r.Context())
	if err != nil {
		slog.Error("load menus failed", "error", err)
	}

	a.renderer.Page(w, r, "menus", &render.PageData{
		Title:   "Menus",
		Section: "menus",
		Data:    map[string]any{"Categories": menu},
		Flashes: flashesFrom(r),
	})
}

// CategoryCreate appends a category to the menu.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	slugValue := slug.Generate(name)
	if msg := validateMenuEntry(name, slugValue); msg != "" {
		slog.Warn("menu category rejected", "reason", msg)
		http.Redirect(w, r, "/admin/menus?flash=invalid", http.StatusSeeOther)
		return
	}

	created, err := a.menus.CreateCategory(r.Context(), &models.MenuCategory{
		Name: name,
		Slug: slugValue,
		Type: categoryType(r.FormValue("type")),
	})
	if err != nil {
		slog.Error("create menu category failed", "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(r.Context(), store.CacheEntityMenu, created.ID, "create")
	http.Redirect(w, r, "/admin/menus?flash=saved", http.StatusSeeOther)
}

// CategoryUpdate renames a category or changes its slug and type.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	cat, err := a.menus.FindCategory(r.Context(), id)
	if err != nil || cat == nil {
		if err != nil {
			slog.Error("find menu category failed", "category_id", id, "error", err)
		}
		http.NotFound(w, r)
		return
	}

	cat.Name = strings.TrimSpace(r.FormValue("name"))
	cat.Slug = slugOrName(r.FormValue("slug"), cat.Name)
	cat.Type = categoryType(r.FormValue("type"))
	if msg := validateMenuEntry(cat.Name, cat.Slug); msg != "" {
		slog.Warn("menu category rejected", "category_id", id, "reason", msg)
		http.Redirect(w, r, "/admin/menus?flash=invalid", http.StatusSeeOther)
		return
	}

	if err := a.menus.UpdateCategory(r.Context(), cat); err != nil {
		slog.Error("update menu category failed", "category_id", id, "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(r.Context(), store.CacheEntityMenu, id, "update")
	http.Redirect(w, r, "/admin/menus?flash=saved", http.StatusSeeOther)
}

// CategoryDelete removes a category with its items and pages.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := a.menus.DeleteCategory(r.Context(), id); err != nil {
		slog.Error("delete menu category failed", "category_id", id, "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(r.Context(), store.CacheEntityMenu, id, "delete")
	http.Redirect(w, r, "/admin/menus?flash=deleted", http.StatusSeeOther)
}

// CategoryMove swaps a category with its neighbour (?dir=up or ?dir=down).
func (a *Admin) CategoryMove(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	cats, err := a.menus.ListCategories(ctx)
	if err != nil {
		slog.Error("list menu categories failed", "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}
	ids := make([]uuid.UUID, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}

	order, moved := moveOrder(ids, id, r.URL.Query().Get("dir") == "up")
	if moved {
		if err := a.menus.ReorderCategories(ctx, order); err != nil {
			slog.Error("reorder menu categories failed", "error", err)
			http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
			return
		}
		a.menuChanged(ctx, store.CacheEntityMenu, id, "reorder")
	}
	http.Redirect(w, r, "/admin/menus", http.StatusSeeOther)
}

// ItemCreate appends an item to a category.
func (a *Admin) ItemCreate(w http.ResponseWriter, r *http.Request) {
	catID, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	imageURL := strings.TrimSpace(r.FormValue("image_url"))
	it := &models.MenuItem{
		CategoryID: catID,
		Name:       name,
		Slug:       slug.Generate(name),
		ImageURL:   optionalString(imageURL),
	}
	if msg := validateMenuItem(it.Name, it.Slug, imageURL); msg != "" {
		slog.Warn("menu item rejected", "category_id", catID, "reason", msg)
		http.Redirect(w, r, "/admin/menus?flash=invalid", http.StatusSeeOther)
		return
	}

	created, err := a.menus.CreateItem(r.Context(), it)
	if err != nil {
		slog.Error("create menu item failed", "category_id", catID, "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(r.Context(), store.CacheEntityMenu, created.ID, "create")
	http.Redirect(w, r, "/admin/menus?flash=saved", http.StatusSeeOther)
}

// ItemUpdate edits the name, slug and image of a menu item.
func (a *Admin) ItemUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	it, err := a.menus.FindItem(r.Context(), id)
	if err != nil || it == nil {
		if err != nil {
			slog.Error("find menu item failed", "item_id", id, "error", err)
		}
		http.NotFound(w, r)
		return
	}

	imageURL := strings.TrimSpace(r.FormValue("image_url"))
	it.Name = strings.TrimSpace(r.FormValue("name"))
	it.Slug = slugOrName(r.FormValue("slug"), it.Name)
	it.ImageURL = optionalString(imageURL)
	if msg := validateMenuItem(it.Name, it.Slug, imageURL); msg != "" {
		slog.Warn("menu item rejected", "item_id", id, "reason", msg)
		http.Redirect(w, r, "/admin/menus?flash=invalid", http.StatusSeeOther)
		return
	}

	if err := a.menus.UpdateItem(r.Context(), it); err != nil {
		slog.Error("update menu item failed", "item_id", id, "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(r.Context(), store.CacheEntityMenu, id, "update")
	http.Redirect(w, r, "/admin/menus?flash=saved", http.StatusSeeOther)
}

// ItemDelete removes a menu item and its subcategory page.
func (a *Admin) ItemDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := a.menus.DeleteItem(r.Context(), id); err != nil {
		slog.Error("delete menu item failed", "item_id", id, "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(r.Context(), store.CacheEntityMenu, id, "delete")
	http.Redirect(w, r, "/admin/menus?flash=deleted", http.StatusSeeOther)
}

// ItemMove swaps an item with its neighbour inside its category.
func (a *Admin) ItemMove(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	it, err := a.menus.FindItem(ctx, id)
	if err != nil || it == nil {
		if err != nil {
			slog.Error("find menu item failed", "item_id", id, "error", err)
		}
		http.NotFound(w, r)
		return
	}
	items, err := a.menus.ListItems(ctx)
	if err != nil {
		slog.Error("list menu items failed", "error", err)
		http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
		return
	}
	var ids []uuid.UUID
	for _, sibling := range items {
		if sibling.CategoryID == it.CategoryID {
			ids = append(ids, sibling.ID)
		}
	}

	order, moved := moveOrder(ids, id, r.URL.Query().Get("dir") == "up")
	if moved {
		if err := a.menus.ReorderItems(ctx, order); err != nil {
			slog.Error("reorder menu items failed", "error", err)
			http.Redirect(w, r, "/admin/menus?flash=failed", http.StatusSeeOther)
			return
		}
		a.menuChanged(ctx, store.CacheEntityMenu, id, "reorder")
	}
	http.Redirect(w, r, "/admin/menus", http.StatusSeeOther)
}

// PagesList renders the landing pages.
func (a *Admin) PagesList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pages, err := a.pages.List(ctx)
	if err != nil {
		slog.Error("list pages failed", "error", err)
	}
	menu, err := a.freshMenu(ctx)
	if err != nil {
		slog.Error("load menus failed", "error", err)
	}

	a.renderer.Page(w, r, "pages", &render.PageData{
		Title:   "Pages",
		Section: "pages",
		Data:    map[string]any{"Pages": pages, "Categories": menu},
		Flashes: flashesFrom(r),
	})
}

// PageCreate creates a landing page for a category or a subcategory.
func (a *Admin) PageCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	title := strings.TrimSpace(r.FormValue("title"))
	categoryID, okCat := optionalUUID(r.FormValue("category_id"))
	itemID, okItem := optionalUUID(r.FormValue("menu_item_id"))

	msg := validatePage(title, categoryID, itemID)
	if !okCat || !okItem {
		msg = "Unknown category or subcategory."
	}
	if msg == "" && itemID != nil {
		it, err := a.menus.FindItem(ctx, *itemID)
		switch {
		case err != nil:
			slog.Error("find menu item failed", "item_id", *itemID, "error", err)
			http.Redirect(w, r, "/admin/pages?flash=failed", http.StatusSeeOther)
			return
		case it == nil || it.CategoryID != *categoryID:
			msg = "The subcategory does not belong to the chosen category."
		}
	}
	if msg != "" {
		slog.Warn("page rejected", "reason", msg)
		http.Redirect(w, r, "/admin/pages?flash=invalid", http.StatusSeeOther)
		return
	}

	page, err := a.pages.Create(ctx, &models.Page{
		Title:      title,
		Slug:       slug.Generate(title),
		CategoryID: categoryID,
		MenuItemID: itemID,
	})
	if err != nil {
		slog.Error("create page failed", "error", err)
		http.Redirect(w, r, "/admin/pages?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(ctx, store.CacheEntityPage, page.ID, "create")
	http.Redirect(w, r, "/admin/pages?flash=saved", http.StatusSeeOther)
}

// PageDelete removes a landing page. Linked content keeps existing.
func (a *Admin) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := a.pages.Delete(r.Context(), id); err != nil {
		slog.Error("delete page failed", "page_id", id, "error", err)
		http.Redirect(w, r, "/admin/pages?flash=failed", http.StatusSeeOther)
		return
	}

	a.menuChanged(r.Context(), store.CacheEntityPage, id, "delete")
	http.Redirect(w, r, "/admin/pages?flash=deleted", http.StatusSeeOther)
}

// freshMenu reads the menu tables directly, so the admin never edits a
// cached copy.
func (a *Admin) freshMenu(ctx context.Context) ([]models.MenuCategory, error) {
	a.nav.Invalidate(ctx)
	return a.nav.BuildMenu(ctx)
}

// menuChanged drops the cached menu and every cached page, since each page
// embeds the header, and records the event.
func (a *Admin) menuChanged(ctx context.Context, entity string, id uuid.UUID, action string) {
	a.nav.Invalidate(ctx)
	if a.pageCache != nil {
		a.pageCache.InvalidateAll(ctx)
	}
	if a.cacheLog != nil {
		a.cacheLog.Log(ctx, entity, id, action)
	}
	slog.Info("navigation changed", "entity", entity, "id", id, "action", action)
}

// moveOrder swaps id with its neighbour in ids and returns the new order.
// moved is false when id is absent or already at that end.
func moveOrder(ids []uuid.UUID, id uuid.UUID, up bool) ([]store.ReorderItem, bool) {
	pos := -1
	for i, v := range ids {
		if v == id {
			pos = i
			break
		}
	}
	target := pos + 1
	if up {
		target = pos - 1
	}
	if pos < 0 || target < 0 || target >= len(ids) {
		return nil, false
	}

	ordered := append([]uuid.UUID(nil), ids...)
	ordered[pos], ordered[target] = ordered[target], ordered[pos]

	out := make([]store.ReorderItem, len(ordered))
	for i, v := range ordered {
		out[i] = store.ReorderItem{ID: v, Order: i}
	}
	return out, true
}

func categoryType(raw string) models.MenuCategoryType {
	if models.MenuCategoryType(raw) == models.MenuCategoryMegamenu {
		return models.MenuCategoryMegamenu
	}
	return models.MenuCategoryStandard
}

// slugOrName normalises an edited slug, deriving it from name when blank.
func slugOrName(raw, name string) string {
	if s := slug.Generate(raw); s != "" {
		return s
	}
	return slug.Generate(name)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
