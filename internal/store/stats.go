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

// StatsStore counts public views per content item.
type StatsStore struct {
	db *sql.DB
}

// NewStatsStore creates a new StatsStore.
func NewStatsStore(db *sql.DB) *StatsStore {
	return &StatsStore{db: db}
}

// RecordView increments the view counter of a content item.
func (s *StatsStore) RecordView(ctx context.Context, contentID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_stats (content_id, views, last_viewed_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (content_id) DO UPDATE SET
			views = content_stats.views + 1,
			last_viewed_at = NOW()
	`, contentID)
	if err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// TopViewed returns the most viewed content items.
func (s *StatsStore) TopViewed(ctx context.Context, limit int) ([]models.ContentStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cs.content_id, c.title, c.type, cs.views, cs.last_viewed_at
		FROM content_stats cs
		JOIN content c ON c.id = cs.content_id
		ORDER BY cs.views DESC, cs.last_viewed_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top viewed: %w", err)
	}
	defer rows.Close()

	var out []models.ContentStat
	for rows.Next() {
		var st models.ContentStat
		if err := rows.Scan(&st.ContentID, &st.Title, &st.Type, &st.Views, &st.LastViewedAt); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Views returns the view count of one content item, zero when never viewed.
func (s *StatsStore) Views(ctx context.Context, contentID uuid.UUID) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT views FROM content_stats WHERE content_id = $1`, contentID).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("views: %w", err)
	}
	return n, nil
}
