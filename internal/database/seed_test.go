package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed only writes into an empty database, so calling it twice must be
	// safe even when other packages already created users.
	if err := Seed(db, "admin@reviewpress.local", "admin12345"); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db, "admin@reviewpress.local", "admin12345"); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount < 1 {
		t.Errorf("expected at least 1 user, got %d", userCount)
	}
}

func TestStarterCategories(t *testing.T) {
	seen := map[string]bool{}
	megamenus := 0
	for _, c := range starterCategories {
		if seen[c.slug] {
			t.Errorf("duplicate starter slug %q", c.slug)
		}
		seen[c.slug] = true
		if c.kind != "standard" && c.kind != "megamenu" {
			t.Errorf("category %q has invalid type %q", c.slug, c.kind)
		}
		if c.kind == "megamenu" {
			megamenus++
			if len(c.items) == 0 {
				t.Errorf("megamenu %q has no items", c.slug)
			}
		}
	}
	if megamenus == 0 {
		t.Error("expected at least one megamenu starter category")
	}
}
