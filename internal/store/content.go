// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"reviewpress/internal/models"
)

// ContentStore handles all content-related database operations for
// articles and reviews.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

const contentColumns = `c.id, c.title, c.description, c.body, c.body_format, c.type, c.status,
	c.featured_image_url, c.author_id, c.page_id, c.published_at,
	c.layout_template, c.layout_settings, c.created_at, c.updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner, c *models.Content, extra ...any) error {
	dest := []any{
		&c.ID, &c.Title, &c.Description, &c.Body, &c.BodyFormat, &c.Type, &c.Status,
		&c.FeaturedImageURL, &c.AuthorID, &c.PageID, &c.PublishedAt,
		&c.LayoutTemplate, &c.LayoutSettings, &c.CreatedAt, &c.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// FindByID retrieves a content item by its UUID. Returns nil if not found.
func (s *ContentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	c := &models.Content{}
	err := scanContent(s.db.QueryRowContext(ctx,
		`SELECT `+contentColumns+`, COALESCE(u.display_name, '')
		FROM content c LEFT JOIN users u ON u.id = c.author_id
		WHERE c.id = $1`, id), c, &c.AuthorName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by id: %w", err)
	}
	return c, nil
}

// expandedQuery loads one content row with its relations aggregated as
// JSON arrays: review_details (each with nested rating_criteria) and pages.
const expandedQuery = `
SELECT ` + contentColumns + `, COALESCE(u.display_name, ''),
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', rd.id,
			'content_id', rd.content_id,
			'overall_score', rd.overall_score::float8,
			'youtube_url', rd.youtube_url,
			'gallery', rd.gallery,
			'product_specs', rd.product_specs,
			'rating_criteria', COALESCE((
				SELECT json_agg(json_build_object(
					'id', rc.id,
					'review_id', rc.review_id,
					'name', rc.name,
					'score', rc.score::float8,
					'sort_order', rc.sort_order
				) ORDER BY rc.sort_order, rc.name)
				FROM rating_criteria rc WHERE rc.review_id = rd.id
			), '[]'::json)
		))
		FROM review_details rd WHERE rd.content_id = c.id
	), '[]'::json),
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', p.id,
			'title', p.title,
			'slug', p.slug,
			'description', p.description,
			'category_id', p.category_id,
			'menu_item_id', p.menu_item_id,
			'created_at', p.created_at,
			'updated_at', p.updated_at,
			'category_slug', COALESCE(mc.slug, ''),
			'category_name', COALESCE(mc.name, ''),
			'item_slug', COALESCE(mi.slug, ''),
			'item_name', COALESCE(mi.name, '')
		))
		FROM pages p
		LEFT JOIN menu_categories mc ON mc.id = p.category_id
		LEFT JOIN menu_items mi ON mi.id = p.menu_item_id
		WHERE p.id = c.page_id
	), '[]'::json)
FROM content c
LEFT JOIN users u ON u.id = c.author_id
WHERE c.id = $1`

// FindExpanded retrieves a content item with its review details, rating
// criteria and page in one round trip. Returns nil if not found.
func (s *ContentStore) FindExpanded(ctx context.Context, id uuid.UUID) (*models.ExpandedContent, error) {
	ec := &models.ExpandedContent{}
	var reviews, pages []byte
	err := scanContent(s.db.QueryRowContext(ctx, expandedQuery, id), &ec.Content,
		&ec.AuthorName, &reviews, &pages)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find expanded content: %w", err)
	}

	if err := json.Unmarshal(reviews, &ec.ReviewDetails); err != nil {
		return nil, fmt.Errorf("decode review details: %w", err)
	}
	if err := json.Unmarshal(pages, &ec.Pages); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}
	return ec, nil
}

// Upsert inserts the content row when c.ID is nil and updates it by id
// otherwise. The stored row is returned.
func (s *ContentStore) Upsert(ctx context.Context, c *models.Content) (*models.Content, error) {
	settings := c.LayoutSettings
	if len(settings) == 0 {
		settings = json.RawMessage(`{}`)
	}
	format := c.BodyFormat
	if format == "" {
		format = models.BodyFormatHTML
	}

	result := &models.Content{}
	var err error
	if c.ID == uuid.Nil {
		err = scanContent(s.db.QueryRowContext(ctx, `
			INSERT INTO content AS c (title, description, body, body_format, type, status,
			                     featured_image_url, author_id, page_id, published_at,
			                     layout_template, layout_settings)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING `+contentColumns,
			c.Title, c.Description, c.Body, format, c.Type, c.Status,
			c.FeaturedImageURL, c.AuthorID, c.PageID, c.PublishedAt,
			c.LayoutTemplate, []byte(settings),
		), result)
	} else {
		err = scanContent(s.db.QueryRowContext(ctx, `
			UPDATE content AS c SET
				title = $1, description = $2, body = $3, body_format = $4, type = $5,
				status = $6, featured_image_url = $7, page_id = $8, published_at = $9,
				layout_template = $10, layout_settings = $11, updated_at = NOW()
			WHERE c.id = $12
			RETURNING `+contentColumns,
			c.Title, c.Description, c.Body, format, c.Type,
			c.Status, c.FeaturedImageURL, c.PageID, c.PublishedAt,
			c.LayoutTemplate, []byte(settings), c.ID,
		), result)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("update content %s: not found", c.ID)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("upsert content: %w", err)
	}
	return result, nil
}

// SetStatus changes the publishing state and timestamp of a content item.
// Returns nil if the item does not exist.
func (s *ContentStore) SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus, publishedAt *time.Time) (*models.Content, error) {
	result := &models.Content{}
	err := scanContent(s.db.QueryRowContext(ctx, `
		UPDATE content AS c SET status = $1, published_at = $2, updated_at = NOW()
		WHERE c.id = $3
		RETURNING `+contentColumns,
		status, publishedAt, id,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set content status: %w", err)
	}
	return result, nil
}

// List returns content matching the filter, newest first. Published
// listings sort by published_at, others by updated_at.
func (s *ContentStore) List(ctx context.Context, f models.ContentFilter) ([]models.Content, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Type != "" {
		where = append(where, "c.type = "+arg(f.Type))
	}
	if f.Status != "" {
		where = append(where, "c.status = "+arg(f.Status))
	}
	if f.CategorySlug != "" {
		where = append(where, "mc.slug = "+arg(f.CategorySlug))
	}
	if f.SubcategorySlug != "" {
		where = append(where, "mi.slug = "+arg(f.SubcategorySlug))
	}

	query := `SELECT ` + contentColumns + `, COALESCE(u.display_name, '')
		FROM content c
		LEFT JOIN users u ON u.id = c.author_id
		LEFT JOIN pages p ON p.id = c.page_id
		LEFT JOIN menu_categories mc ON mc.id = p.category_id
		LEFT JOIN menu_items mi ON mi.id = p.menu_item_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if f.Status == models.ContentStatusPublished {
		query += " ORDER BY c.published_at DESC NULLS LAST, c.created_at DESC"
	} else {
		query += " ORDER BY c.updated_at DESC"
	}
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		var c models.Content
		if err := scanContent(rows, &c, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Counts fills the content counters of the dashboard.
func (s *ContentStore) Counts(ctx context.Context, d *models.Dashboard) error {
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE type = 'article'),
			COUNT(*) FILTER (WHERE type = 'review'),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'published')
		FROM content
	`).Scan(&d.Articles, &d.Reviews, &d.Drafts, &d.Published)
	if err != nil {
		return fmt.Errorf("count content: %w", err)
	}
	return nil
}
