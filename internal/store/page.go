// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"reviewpress/internal/models"
)

// PageStore manages category and subcategory landing pages.
type PageStore struct {
	db *sql.DB
}

// NewPageStore returns a new PageStore.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageSelect = `
	SELECT p.id, p.title, p.slug, p.description, p.category_id, p.menu_item_id,
	       p.created_at, p.updated_at,
	       COALESCE(mc.slug, ''), COALESCE(mc.name, ''),
	       COALESCE(mi.slug, ''), COALESCE(mi.name, '')
	FROM pages p
	LEFT JOIN menu_categories mc ON mc.id = p.category_id
	LEFT JOIN menu_items mi ON mi.id = p.menu_item_id`

func scanPage(scanner interface{ Scan(...any) error }) (*models.Page, error) {
	var p models.Page
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.CategoryID, &p.MenuItemID,
		&p.CreatedAt, &p.UpdatedAt,
		&p.CategorySlug, &p.CategoryName, &p.ItemSlug, &p.ItemName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PageStore) findOne(ctx context.Context, op, where string, args ...any) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx, pageSelect+" WHERE "+where, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// FindByID retrieves a page by ID. Returns nil if not found.
func (s *PageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	return s.findOne(ctx, "find page", "p.id = $1", id)
}

// FindByMenuItem returns the subcategory page of a menu item. Returns nil
// if the item has no page yet.
func (s *PageStore) FindByMenuItem(ctx context.Context, itemID uuid.UUID) (*models.Page, error) {
	return s.findOne(ctx, "find page by menu item", "p.menu_item_id = $1", itemID)
}

// FindCategoryPage returns the category page of a menu category. Returns
// nil if the category has no page yet.
func (s *PageStore) FindCategoryPage(ctx context.Context, categoryID uuid.UUID) (*models.Page, error) {
	return s.findOne(ctx, "find category page",
		"p.category_id = $1 AND p.menu_item_id IS NULL", categoryID)
}

// List returns every page ordered by category and item.
func (s *PageStore) List(ctx context.Context) ([]models.Page, error) {
	rows, err := s.db.QueryContext(ctx, pageSelect+`
		ORDER BY mc.order_index NULLS LAST, mi.order_index NULLS FIRST, p.title`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var out []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Create inserts a page and returns it with its joined slugs.
func (s *PageStore) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO pages (title, slug, description, category_id, menu_item_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.Title, p.Slug, p.Description, p.CategoryID, p.MenuItemID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return s.FindByID(ctx, id)
}

// Delete removes a page. Content linked to it keeps existing with a NULL page_id.
func (s *PageStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}
