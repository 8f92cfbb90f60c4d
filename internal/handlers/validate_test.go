// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidateMenuItem(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		slug     string
		imageURL string
		wantErr  bool
	}{
		{"valid", "Android", "android", "", false},
		{"valid with image", "Android", "android", "https://cdn.example.com/a.png", false},
		{"empty name", "", "", "", true},
		{"name without slug characters", "!!!", "", "", true},
		{"name too long", strings.Repeat("a", 101), "a", "", true},
		{"slug too long", "Android", strings.Repeat("a", 121), "", true},
		{"relative image", "Android", "android", "/img/a.png", true},
		{"javascript image", "Android", "android", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateMenuItem(tt.itemName, tt.slug, tt.imageURL)
			if (got != "") != tt.wantErr {
				t.Errorf("validateMenuItem() = %q, wantErr %v", got, tt.wantErr)
			}
		})
	}
}

func TestValidatePage(t *testing.T) {
	cat, item := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		title   string
		cat     *uuid.UUID
		item    *uuid.UUID
		wantErr bool
	}{
		{"standalone page", "About", nil, nil, false},
		{"category page", "Phones", &cat, nil, false},
		{"subcategory page", "Android", &cat, &item, false},
		{"subcategory without category", "Android", nil, &item, true},
		{"missing title", "", &cat, nil, true},
		{"title too long", strings.Repeat("x", 301), nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validatePage(tt.title, tt.cat, tt.item)
			if (got != "") != tt.wantErr {
				t.Errorf("validatePage() = %q, wantErr %v", got, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		display  string
		password string
		wantErr  string
	}{
		{"valid", "jane@example.com", "Jane", "password123", ""},
		{"missing email", "", "Jane", "password123", "Email is required."},
		{"bad email", "jane", "Jane", "password123", "Email address is not valid."},
		{"display form email", "Jane <jane@example.com>", "Jane", "password123", "Email address is not valid."},
		{"missing name", "jane@example.com", "", "password123", "Name is required."},
		{"short password", "jane@example.com", "Jane", "short", "Password must be at least 8 characters."},
		{"long password", "jane@example.com", "Jane", strings.Repeat("p", 73), "Password is too long (max 72 bytes)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateRegistration(tt.email, tt.display, tt.password); got != tt.wantErr {
				t.Errorf("validateRegistration() = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name    string
		next    string
		confirm string
		wantErr bool
	}{
		{"match", "newpassword", "newpassword", false},
		{"mismatch", "newpassword", "newpassw0rd", true},
		{"too short", "short", "short", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validatePasswordChange(tt.next, tt.confirm)
			if (got != "") != tt.wantErr {
				t.Errorf("validatePasswordChange() = %q, wantErr %v", got, tt.wantErr)
			}
		})
	}
}
