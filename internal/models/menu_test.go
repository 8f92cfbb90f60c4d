package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestPagePath(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want string
	}{
		{name: "category page", page: Page{CategorySlug: "phones"}, want: "/c/phones"},
		{name: "subcategory page", page: Page{CategorySlug: "phones", ItemSlug: "android"}, want: "/c/phones/android"},
		{name: "standalone", page: Page{}, want: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.Path(); got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageIsSubcategory(t *testing.T) {
	item := uuid.New()
	if (&Page{}).IsSubcategory() {
		t.Error("page without menu item reported as subcategory")
	}
	if !(&Page{MenuItemID: &item}).IsSubcategory() {
		t.Error("page with menu item not reported as subcategory")
	}
}

func TestMenuCategoryIsMegamenu(t *testing.T) {
	if (&MenuCategory{Type: MenuCategoryStandard}).IsMegamenu() {
		t.Error("standard category reported as megamenu")
	}
	if !(&MenuCategory{Type: MenuCategoryMegamenu}).IsMegamenu() {
		t.Error("megamenu category not reported as megamenu")
	}
}
