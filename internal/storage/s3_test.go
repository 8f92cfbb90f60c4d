package storage

import (
	"regexp"
	"testing"
	"time"
)

func TestNewUnconfigured(t *testing.T) {
	tests := []struct {
		name                     string
		endpoint, access, secret string
	}{
		{"no endpoint", "", "key", "secret"},
		{"no access key", "http://localhost:9000", "", "secret"},
		{"no secret", "http://localhost:9000", "key", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint, "us-east-1", tt.access, tt.secret, "media", "")
			if err != nil || c != nil {
				t.Errorf("New = (%v, %v), want (nil, nil)", c, err)
			}
		})
	}

	if _, err := New("http://localhost:9000", "us-east-1", "key", "secret", "", ""); err == nil {
		t.Error("expected error without a bucket")
	}
}

func TestFileURLAndExtractKey(t *testing.T) {
	key := "uploads/2026/10/abc.jpg"

	tests := []struct {
		name      string
		publicURL string
		wantURL   string
	}{
		{"path style", "", "http://localhost:9000/media/" + key},
		{"public url", "https://cdn.example.com/", "https://cdn.example.com/" + key},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("http://localhost:9000/", "us-east-1", "key", "secret", "media", tt.publicURL)
			if err != nil || c == nil {
				t.Fatalf("New: %v", err)
			}
			url := c.FileURL(key)
			if url != tt.wantURL {
				t.Errorf("FileURL = %q, want %q", url, tt.wantURL)
			}
			got, ok := c.ExtractS3Key(url)
			if !ok || got != key {
				t.Errorf("ExtractS3Key = (%q, %v), want (%q, true)", got, ok, key)
			}
			if _, ok := c.ExtractS3Key("https://elsewhere.example.com/x.jpg"); ok {
				t.Error("foreign URL matched")
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^uploads/2026/03/[0-9a-f-]{36}\.png$`)

	for _, ext := range []string{"png", ".png", "PNG"} {
		if key := ObjectKey(now, ext); !pattern.MatchString(key) {
			t.Errorf("ObjectKey(%q) = %q", ext, key)
		}
	}
	if ObjectKey(now, "png") == ObjectKey(now, "png") {
		t.Error("keys should be unique")
	}
}

func TestThumbnailKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"uploads/2026/03/abc.png", "uploads/2026/03/abc_thumb.jpg"},
		{"uploads/2026/03/abc", "uploads/2026/03/abc_thumb.jpg"},
		{"uploads/v1.2/abc", "uploads/v1.2/abc_thumb.jpg"},
	}
	for _, tt := range tests {
		if got := ThumbnailKey(tt.in); got != tt.want {
			t.Errorf("ThumbnailKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
