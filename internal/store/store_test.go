// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"reviewpress/internal/database"
	"reviewpress/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "reviewpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "reviewpress")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway author and removes it, with everything it
// wrote, when the test ends.
func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()
	email := "store-" + uuid.NewString()[:8] + "@test.local"
	u, err := NewUserStore(db).Create(context.Background(), email, "password123", "Store Test", models.RoleAuthor)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM content WHERE author_id = $1", u.ID)
		db.Exec("DELETE FROM media WHERE uploader_id = $1", u.ID)
		db.Exec("DELETE FROM users WHERE id = $1", u.ID)
	})
	return u
}

// testCategory creates a menu category with a unique slug and removes it
// (cascading to its items and pages) when the test ends.
func testCategory(t *testing.T, db *sql.DB, kind models.MenuCategoryType) *models.MenuCategory {
	t.Helper()
	slug := "cat-" + uuid.NewString()[:8]
	c, err := NewMenuStore(db).CreateCategory(context.Background(), &models.MenuCategory{
		Name: "Category " + slug, Slug: slug, Type: kind,
	})
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM menu_categories WHERE id = $1", c.ID) })
	return c
}

func strPtr(s string) *string { return &s }
