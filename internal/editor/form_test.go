package editor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"reviewpress/internal/layout"
	"reviewpress/internal/models"
)

func TestFlattenNil(t *testing.T) {
	if Flatten(nil) != nil {
		t.Error("Flatten(nil) should be nil")
	}
}

func TestFlattenLiftsRelations(t *testing.T) {
	desc := "Short"
	yt := "https://youtu.be/dQw4w9WgXcQ"
	catID, itemID, pageID := uuid.New(), uuid.New(), uuid.New()
	published := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	ec := &models.ExpandedContent{
		Content: models.Content{
			ID:             uuid.New(),
			Title:          "Phone X",
			Description:    &desc,
			Type:           models.ContentTypeReview,
			Status:         models.ContentStatusPublished,
			PublishedAt:    &published,
			LayoutTemplate: "basic-review",
			LayoutSettings: json.RawMessage(`{"award":"gold","showProsCons":false}`),
		},
		ReviewDetails: []models.ReviewDetails{{
			ID:           uuid.New(),
			OverallScore: 7,
			YouTubeURL:   &yt,
			Gallery:      []string{"https://img.example.com/1.jpg"},
			ProductSpecs: models.ParseProductSpecs([]byte(`{"RAM":"8 GB"}`)),
			Criteria:     []models.RatingCriterion{{Name: "Speed", Score: 8}},
		}},
		Pages: []models.Page{{ID: pageID, CategoryID: &catID, MenuItemID: &itemID}},
	}

	f := Flatten(ec)
	if f.Description != "Short" || f.Body != "" {
		t.Errorf("text fields = %q / %q", f.Description, f.Body)
	}
	if f.BodyFormat != models.BodyFormatHTML {
		t.Errorf("body format = %q, want html default", f.BodyFormat)
	}
	if f.LayoutTemplate != string(layout.BasicReview) {
		t.Errorf("layout = %q", f.LayoutTemplate)
	}
	if f.Settings.AwardLevel != "gold" {
		t.Errorf("legacy award not migrated: %+v", f.Settings)
	}
	if f.Settings.Resolve().ShowProsCons {
		t.Error("showProsCons=false should survive flattening")
	}
	if f.ReviewID != ec.ReviewDetails[0].ID || f.OverallScore != 7 || f.YouTubeURL != yt {
		t.Errorf("review fields = %+v", f)
	}
	if len(f.ProductSpecs) != 1 || f.ProductSpecs[0] != (models.SpecPair{Label: "RAM", Value: "8 GB"}) {
		t.Errorf("specs = %+v", f.ProductSpecs)
	}
	if *f.PageID != pageID || *f.CategoryID != catID || *f.MenuItemID != itemID {
		t.Errorf("page fields = %v %v %v", f.PageID, f.CategoryID, f.MenuItemID)
	}

	// The flattened slices are copies.
	f.Gallery[0] = "changed"
	if ec.ReviewDetails[0].Gallery[0] == "changed" {
		t.Error("Flatten must copy the gallery")
	}
}

func TestFlattenWithoutRelations(t *testing.T) {
	f := Flatten(&models.ExpandedContent{Content: models.Content{
		Type:           models.ContentTypeArticle,
		LayoutTemplate: "enhanced-review",
	}})
	if f.Gallery == nil || f.ProductSpecs == nil || f.Criteria == nil {
		t.Error("collections should be empty, not nil")
	}
	if f.CategoryID != nil || f.MenuItemID != nil {
		t.Error("no page means no category or item")
	}
	if f.LayoutTemplate != string(layout.Classic) {
		t.Errorf("layout = %q, want classic for article", f.LayoutTemplate)
	}
}

func TestNewForm(t *testing.T) {
	f := NewForm(models.ContentTypeReview)
	if !f.IsNew() || f.Status != models.ContentStatusDraft || f.LayoutTemplate != string(layout.Classic) {
		t.Errorf("NewForm(review) = %+v", f)
	}
	if g := NewForm("bogus"); g.Type != models.ContentTypeArticle {
		t.Errorf("invalid type should default to article, got %q", g.Type)
	}
}

func TestFormContentMapsEmptyToNull(t *testing.T) {
	f := NewForm(models.ContentTypeArticle)
	f.Title = "T"
	c, err := f.Content()
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if c.Description != nil || c.Body != nil || c.FeaturedImageURL != nil {
		t.Errorf("empty strings should be stored as NULL: %+v", c)
	}
	if string(c.LayoutSettings) != "{}" {
		t.Errorf("layout settings = %s", c.LayoutSettings)
	}
}
