// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// starterCategories are created on an empty database so the header has
// something to show before an editor builds the real menu.
var starterCategories = []struct {
	name, slug, kind string
	items            []string
}{
	{"News", "news", "standard", nil},
	{"Reviews", "reviews", "megamenu", []string{"Phones", "Laptops", "Audio", "Wearables"}},
	{"Guides", "guides", "standard", nil},
}

// Seed populates an empty database with an admin account and the starter
// menu. It does nothing when any user already exists.
func Seed(db *sql.DB, adminEmail, adminPassword string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, 'admin')
	`, adminEmail, string(hash), "Admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	for i, c := range starterCategories {
		var catID string
		err := tx.QueryRow(`
			INSERT INTO menu_categories (name, slug, type, order_index)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, c.name, c.slug, c.kind, i).Scan(&catID)
		if err != nil {
			return fmt.Errorf("seed insert category %s: %w", c.slug, err)
		}

		for j, item := range c.items {
			_, err := tx.Exec(`
				INSERT INTO menu_items (category_id, name, slug, order_index)
				VALUES ($1, $2, lower($2), $3)
				ON CONFLICT (category_id, slug) DO NOTHING
			`, catID, item, j)
			if err != nil {
				return fmt.Errorf("seed insert menu item %s: %w", item, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with default admin user", "email", adminEmail)
	return nil
}
