// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuCategoryType controls how a category renders in the site header.
type MenuCategoryType string

const (
	MenuCategoryStandard MenuCategoryType = "standard"
	MenuCategoryMegamenu MenuCategoryType = "megamenu"
)

// MenuCategory is a top-level navigation entry. Items is populated by the
// navigation assembler and is never nil after assembly.
type MenuCategory struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	Type       MenuCategoryType `json:"type"`
	OrderIndex int              `json:"order_index"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	Items []MenuItem `json:"items"`
}

// IsMegamenu reports whether the category renders as a mega-menu.
func (c *MenuCategory) IsMegamenu() bool {
	return c.Type == MenuCategoryMegamenu
}

// MenuItem is an entry under exactly one category.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	ImageURL    *string   `json:"image_url"`
	Description *string   `json:"description"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Page is a landing page for a menu category (category page) or for a
// menu item (subcategory page). Content links to at most one page.
type Page struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	MenuItemID  *uuid.UUID `json:"menu_item_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Virtual fields filled by joins on menu_categories / menu_items.
	CategorySlug string `json:"category_slug,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	ItemSlug     string `json:"item_slug,omitempty"`
	ItemName     string `json:"item_name,omitempty"`
}

// IsSubcategory reports whether the page belongs to a menu item.
func (p *Page) IsSubcategory() bool {
	return p.MenuItemID != nil
}

// Path returns the public listing path for the page.
func (p *Page) Path() string {
	switch {
	case p.CategorySlug != "" && p.ItemSlug != "":
		return "/c/" + p.CategorySlug + "/" + p.ItemSlug
	case p.CategorySlug != "":
		return "/c/" + p.CategorySlug
	}
	return "/"
}
