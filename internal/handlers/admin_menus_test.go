// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"testing"

	"github.com/google/uuid"

	"reviewpress/internal/models"
)

func TestMoveOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ids := []uuid.UUID{a, b, c}

	tests := []struct {
		name  string
		id    uuid.UUID
		up    bool
		want  []uuid.UUID
		moved bool
	}{
		{"middle up", b, true, []uuid.UUID{b, a, c}, true},
		{"middle down", b, false, []uuid.UUID{a, c, b}, true},
		{"first down", a, false, []uuid.UUID{b, a, c}, true},
		{"first up", a, true, nil, false},
		{"last down", c, false, nil, false},
		{"missing", uuid.New(), true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := moveOrder(ids, tt.id, tt.up)
			if moved != tt.moved {
				t.Fatalf("moved = %v, want %v", moved, tt.moved)
			}
			if !moved {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, item := range got {
				if item.ID != tt.want[i] || item.Order != i {
					t.Errorf("position %d = %+v, want id %s order %d", i, item, tt.want[i], i)
				}
			}
		})
	}

	if ids[0] != a || ids[1] != b || ids[2] != c {
		t.Error("moveOrder must not modify its input")
	}
}

func TestCategoryType(t *testing.T) {
	tests := []struct {
		raw  string
		want models.MenuCategoryType
	}{
		{"megamenu", models.MenuCategoryMegamenu},
		{"standard", models.MenuCategoryStandard},
		{"", models.MenuCategoryStandard},
		{"dropdown", models.MenuCategoryStandard},
	}
	for _, tt := range tests {
		if got := categoryType(tt.raw); got != tt.want {
			t.Errorf("categoryType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
