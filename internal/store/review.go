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

// ReviewStore persists review details and their rating criteria.
type ReviewStore struct {
	db *sql.DB
}

// NewReviewStore creates a new ReviewStore.
func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// UpsertDetails writes the review details row keyed by content id and
// returns the stored row. Criteria are not touched; see SyncCriteria.
func (s *ReviewStore) UpsertDetails(ctx context.Context, d *models.ReviewDetails) (*models.ReviewDetails, error) {
	gallery := d.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	specs := d.ProductSpecs
	if specs == nil {
		specs = models.ProductSpecs{}
	}

	result := &models.ReviewDetails{ContentID: d.ContentID, Gallery: gallery, ProductSpecs: specs}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO review_details (content_id, overall_score, youtube_url, gallery, product_specs)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (content_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			youtube_url = EXCLUDED.youtube_url,
			gallery = EXCLUDED.gallery,
			product_specs = EXCLUDED.product_specs,
			updated_at = NOW()
		RETURNING id, overall_score::float8, youtube_url
	`, d.ContentID, float64(d.OverallScore), d.YouTubeURL, gallery, specs,
	).Scan(&result.ID, &result.OverallScore, &result.YouTubeURL)
	if err != nil {
		return nil, fmt.Errorf("upsert review details: %w", err)
	}
	return result, nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// listCriteria returns the criteria of a review in display order.
func listCriteria(ctx context.Context, q queryer, reviewID uuid.UUID) ([]models.RatingCriterion, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, review_id, name, score::float8, sort_order
		FROM rating_criteria
		WHERE review_id = $1
		ORDER BY sort_order, name
	`, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list criteria: %w", err)
	}
	defer rows.Close()

	var out []models.RatingCriterion
	for rows.Next() {
		var rc models.RatingCriterion
		if err := rows.Scan(&rc.ID, &rc.ReviewID, &rc.Name, &rc.Score, &rc.SortOrder); err != nil {
			return nil, fmt.Errorf("scan criterion: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// criteriaDiff is the set of writes that turns the stored criteria into
// the desired list.
type criteriaDiff struct {
	update []models.RatingCriterion
	insert []models.RatingCriterion
	remove []uuid.UUID
}

// diffCriteria matches desired criteria to existing rows by id. Desired rows
// with an unknown or nil id are inserted, existing rows absent from desired
// are removed. SortOrder follows the position in desired.
func diffCriteria(existing, desired []models.RatingCriterion) criteriaDiff {
	stored := make(map[uuid.UUID]bool, len(existing))
	for _, rc := range existing {
		stored[rc.ID] = true
	}

	var d criteriaDiff
	kept := make(map[uuid.UUID]bool, len(desired))
	for i, rc := range desired {
		rc.SortOrder = i
		if rc.ID != uuid.Nil && stored[rc.ID] && !kept[rc.ID] {
			kept[rc.ID] = true
			d.update = append(d.update, rc)
			continue
		}
		rc.ID = uuid.Nil
		d.insert = append(d.insert, rc)
	}
	for _, rc := range existing {
		if !kept[rc.ID] {
			d.remove = append(d.remove, rc.ID)
		}
	}
	return d
}

// SyncCriteria replaces the criteria of a review with desired in one
// transaction: matched ids are updated, new rows inserted and missing rows
// deleted. Returns the stored criteria in display order.
func (s *ReviewStore) SyncCriteria(ctx context.Context, reviewID uuid.UUID, desired []models.RatingCriterion) ([]models.RatingCriterion, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin criteria sync: %w", err)
	}
	defer tx.Rollback()

	existing, err := listCriteria(ctx, tx, reviewID)
	if err != nil {
		return nil, err
	}

	d := diffCriteria(existing, desired)
	for _, id := range d.remove {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM rating_criteria WHERE id = $1 AND review_id = $2`, id, reviewID); err != nil {
			return nil, fmt.Errorf("delete criterion: %w", err)
		}
	}
	for _, rc := range d.update {
		if _, err := tx.ExecContext(ctx, `
			UPDATE rating_criteria SET name = $1, score = $2, sort_order = $3
			WHERE id = $4 AND review_id = $5
		`, rc.Name, float64(rc.Score), rc.SortOrder, rc.ID, reviewID); err != nil {
			return nil, fmt.Errorf("update criterion: %w", err)
		}
	}
	for _, rc := range d.insert {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO rating_criteria (review_id, name, score, sort_order)
			VALUES ($1, $2, $3, $4)
		`, reviewID, rc.Name, float64(rc.Score), rc.SortOrder); err != nil {
			return nil, fmt.Errorf("insert criterion: %w", err)
		}
	}

	stored, err := listCriteria(ctx, tx, reviewID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit criteria sync: %w", err)
	}
	return stored, nil
}
