package models

import (
	"testing"
	"time"
)

// TestContentIsPublished verifies that IsPublished returns true only for
// the "published" status.
func TestContentIsPublished(t *testing.T) {
	tests := []struct {
		name   string
		status ContentStatus
		want   bool
	}{
		{name: "published", status: ContentStatusPublished, want: true},
		{name: "draft", status: ContentStatusDraft, want: false},
		{name: "empty status", status: ContentStatus(""), want: false},
		{name: "unknown status", status: ContentStatus("archived"), want: false},
		{name: "uppercase PUBLISHED", status: ContentStatus("PUBLISHED"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Content{Status: tt.status}
			got := c.IsPublished()
			if got != tt.want {
				t.Errorf("Content{Status: %q}.IsPublished() = %v, want %v",
					tt.status, got, tt.want)
			}
		})
	}
}

func TestContentTypeValid(t *testing.T) {
	tests := []struct {
		ct   ContentType
		want bool
	}{
		{ContentTypeArticle, true},
		{ContentTypeReview, true},
		{ContentType("post"), false},
		{ContentType(""), false},
	}
	for _, tt := range tests {
		if got := tt.ct.Valid(); got != tt.want {
			t.Errorf("ContentType(%q).Valid() = %v, want %v", tt.ct, got, tt.want)
		}
	}
}

// TestContentPublishToggle verifies that publishing stamps published_at
// once and that unpublishing clears it.
func TestContentPublishToggle(t *testing.T) {
	c := &Content{Status: ContentStatusDraft}
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c.Publish(first)
	if c.Status != ContentStatusPublished {
		t.Fatalf("status after Publish = %q", c.Status)
	}
	if c.PublishedAt == nil || !c.PublishedAt.Equal(first) {
		t.Fatalf("published_at after Publish = %v, want %v", c.PublishedAt, first)
	}

	// Publishing again keeps the original timestamp.
	c.Publish(first.Add(time.Hour))
	if !c.PublishedAt.Equal(first) {
		t.Errorf("second Publish changed published_at to %v", c.PublishedAt)
	}

	c.Unpublish()
	if c.Status != ContentStatusDraft {
		t.Errorf("status after Unpublish = %q", c.Status)
	}
	if c.PublishedAt != nil {
		t.Errorf("published_at after Unpublish = %v, want nil", c.PublishedAt)
	}
}
