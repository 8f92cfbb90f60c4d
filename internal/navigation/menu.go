// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package navigation assembles the site header menu from flat category and
// item rows and splits long item lists into carousel pages.
package navigation

import (
	"sort"

	"github.com/google/uuid"

	"reviewpress/internal/models"
)

// DefaultPageSize is the number of mega-menu items shown per carousel page.
const DefaultPageSize = 8

// Assemble groups items under their categories. Categories are ordered by
// order_index (name breaks ties), items likewise within each category.
// Items whose category is not in categories are dropped. Every returned
// category has a non-nil Items slice. The inputs are not modified.
func Assemble(categories []models.MenuCategory, items []models.MenuItem) []models.MenuCategory {
	byCategory := make(map[uuid.UUID][]models.MenuItem, len(categories))
	for _, c := range categories {
		byCategory[c.ID] = []models.MenuItem{}
	}
	for _, it := range items {
		list, ok := byCategory[it.CategoryID]
		if !ok {
			continue
		}
		byCategory[it.CategoryID] = append(list, it)
	}

	menu := make([]models.MenuCategory, 0, len(categories))
	for _, c := range categories {
		list := byCategory[c.ID]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].OrderIndex != list[j].OrderIndex {
				return list[i].OrderIndex < list[j].OrderIndex
			}
			return list[i].Name < list[j].Name
		})
		c.Items = list
		menu = append(menu, c)
	}

	sort.SliceStable(menu, func(i, j int) bool {
		if menu[i].OrderIndex != menu[j].OrderIndex {
			return menu[i].OrderIndex < menu[j].OrderIndex
		}
		return menu[i].Name < menu[j].Name
	})
	return menu
}

// Paginate splits items into consecutive pages of at most pageSize entries,
// preserving order. A non-positive pageSize uses DefaultPageSize. Empty
// input yields no pages.
func Paginate[T any](items []T, pageSize int) [][]T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(items) == 0 {
		return [][]T{}
	}

	pages := make([][]T, 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := min(start+pageSize, len(items))
		page := make([]T, end-start)
		copy(page, items[start:end])
		pages = append(pages, page)
	}
	return pages
}

// HeaderCategory is one entry of the site header. Pages is filled for
// mega-menu categories only.
type HeaderCategory struct {
	models.MenuCategory
	Path  string              `json:"path"`
	Pages [][]models.MenuItem `json:"pages,omitempty"`
}

// Header builds the view model consumed by the site header.
func Header(menu []models.MenuCategory, pageSize int) []HeaderCategory {
	out := make([]HeaderCategory, 0, len(menu))
	for _, c := range menu {
		h := HeaderCategory{MenuCategory: c, Path: "/c/" + c.Slug}
		if c.IsMegamenu() {
			h.Pages = Paginate(c.Items, pageSize)
		}
		out = append(out, h)
	}
	return out
}

// Find looks up a category and one of its items by slug in an assembled
// menu. item is nil when itemSlug is empty or not found; both are nil
// when the category is unknown.
func Find(menu []models.MenuCategory, catSlug, itemSlug string) (*models.MenuCategory, *models.MenuItem) {
	for i := range menu {
		c := &menu[i]
		if c.Slug != catSlug {
			continue
		}
		for j := range c.Items {
			if it := &c.Items[j]; it.Slug == itemSlug {
				return c, it
			}
		}
		return c, nil
	}
	return nil, nil
}
