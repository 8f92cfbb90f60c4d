// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reviewpress/internal/models"
)

// MenuStore manages navigation categories and their items. It is the
// live source behind the navigation service.
type MenuStore struct {
	db *sql.DB
}

// NewMenuStore returns a new MenuStore.
func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

const (
	categoryColumns = `id, name, slug, type, order_index, created_at, updated_at`
	itemColumns     = `id, category_id, name, slug, image_url, description, order_index, created_at, updated_at`
)

func scanCategory(scanner interface{ Scan(...any) error }) (*models.MenuCategory, error) {
	var c models.MenuCategory
	err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &c.OrderIndex, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanItem(scanner interface{ Scan(...any) error }) (*models.MenuItem, error) {
	var it models.MenuItem
	err := scanner.Scan(
		&it.ID, &it.CategoryID, &it.Name, &it.Slug, &it.ImageURL,
		&it.Description, &it.OrderIndex, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListCategories returns every category ordered by order_index.
func (s *MenuStore) ListCategories(ctx context.Context) ([]models.MenuCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM menu_categories ORDER BY order_index, name`)
	if err != nil {
		return nil, fmt.Errorf("list menu categories: %w", err)
	}
	defer rows.Close()

	var out []models.MenuCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu category: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListItems returns every menu item ordered by order_index.
func (s *MenuStore) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM menu_items ORDER BY order_index, name`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var out []models.MenuItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

// FindCategory retrieves a category by ID. Returns nil if not found.
func (s *MenuStore) FindCategory(ctx context.Context, id uuid.UUID) (*models.MenuCategory, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM menu_categories WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu category: %w", err)
	}
	return c, nil
}

// FindCategoryBySlug retrieves a category by slug. Returns nil if not found.
func (s *MenuStore) FindCategoryBySlug(ctx context.Context, slug string) (*models.MenuCategory, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM menu_categories WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu category by slug: %w", err)
	}
	return c, nil
}

// FindItem retrieves a menu item by ID. Returns nil if not found.
func (s *MenuStore) FindItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	it, err := scanItem(s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return it, nil
}

// CreateCategory inserts a category at the end of the menu.
func (s *MenuStore) CreateCategory(ctx context.Context, c *models.MenuCategory) (*models.MenuCategory, error) {
	created, err := scanCategory(s.db.QueryRowContext(ctx, `
		INSERT INTO menu_categories (name, slug, type, order_index)
		VALUES ($1, $2, $3, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM menu_categories))
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Type))
	if err != nil {
		return nil, fmt.Errorf("create menu category: %w", err)
	}
	return created, nil
}

// UpdateCategory modifies the name, slug and type of a category.
func (s *MenuStore) UpdateCategory(ctx context.Context, c *models.MenuCategory) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE menu_categories SET name = $1, slug = $2, type = $3, updated_at = NOW()
		WHERE id = $4
	`, c.Name, c.Slug, c.Type, c.ID)
	if err != nil {
		return fmt.Errorf("update menu category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category. Its items and pages cascade.
func (s *MenuStore) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM menu_categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete menu category: %w", err)
	}
	return nil
}

// CreateItem inserts an item at the end of its category.
func (s *MenuStore) CreateItem(ctx context.Context, it *models.MenuItem) (*models.MenuItem, error) {
	created, err := scanItem(s.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (category_id, name, slug, image_url, description, order_index)
		VALUES ($1, $2, $3, $4, $5,
		        (SELECT COALESCE(MAX(order_index) + 1, 0) FROM menu_items WHERE category_id = $1))
		RETURNING `+itemColumns,
		it.CategoryID, it.Name, it.Slug, it.ImageURL, it.Description))
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return created, nil
}

// UpdateItem modifies an item. Moving it to another category keeps its
// order_index.
func (s *MenuStore) UpdateItem(ctx context.Context, it *models.MenuItem) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE menu_items SET category_id = $1, name = $2, slug = $3, image_url = $4,
			description = $5, updated_at = NOW()
		WHERE id = $6
	`, it.CategoryID, it.Name, it.Slug, it.ImageURL, it.Description, it.ID)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// DeleteItem removes a menu item. Its subcategory page cascades.
func (s *MenuStore) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

// ReorderItem is one entry of a reorder request.
type ReorderItem struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}

// ReorderCategories updates order_index for several categories in a transaction.
func (s *MenuStore) ReorderCategories(ctx context.Context, items []ReorderItem) error {
	return s.reorder(ctx, "menu_categories", items)
}

// ReorderItems updates order_index for several menu items in a transaction.
func (s *MenuStore) ReorderItems(ctx context.Context, items []ReorderItem) error {
	return s.reorder(ctx, "menu_items", items)
}

// reorder is only called with the two table names above.
func (s *MenuStore) reorder(ctx context.Context, table string, items []ReorderItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE `+table+` SET order_index = $1, updated_at = $2 WHERE id = $3`)
	if err != nil {
		return fmt.Errorf("prepare reorder: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.Order, now, item.ID); err != nil {
			return fmt.Errorf("reorder %s %s: %w", table, item.ID, err)
		}
	}

	return tx.Commit()
}
