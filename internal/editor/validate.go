// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"reviewpress/internal/models"
	"reviewpress/internal/video"
)

// Validation limits for the content form.
const (
	maxTitleLen         = 300
	maxDescriptionLen   = 2_000
	maxBodyLen          = 200_000
	maxCriterionNameLen = 100
	maxCriteria         = 20
	maxGalleryImages    = 50
	maxSpecRows         = 100
)

// ValidationError reports the first invalid form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the form and returns the first problem found, or nil.
// Review-only fields are checked only for reviews.
func Validate(f *FormData) *ValidationError {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return invalid("title", "Title is required.")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return invalid("title", "Title is too long (max %d characters).", maxTitleLen)
	}
	if utf8.RuneCountInString(f.Description) > maxDescriptionLen {
		return invalid("description", "Description is too long (max 2,000 characters).")
	}
	if utf8.RuneCountInString(f.Body) > maxBodyLen {
		return invalid("body", "Body is too long (max 200,000 characters).")
	}
	if !f.Type.Valid() {
		return invalid("type", "Unknown content type %q.", f.Type)
	}
	if f.Status != models.ContentStatusDraft && f.Status != models.ContentStatusPublished {
		return invalid("status", "Unknown status %q.", f.Status)
	}
	if f.BodyFormat != "" && f.BodyFormat != models.BodyFormatHTML && f.BodyFormat != models.BodyFormatMarkdown {
		return invalid("body_format", "Unknown body format %q.", f.BodyFormat)
	}
	if f.FeaturedImageURL != "" && !isHTTPURL(f.FeaturedImageURL) {
		return invalid("featured_image_url", "Featured image must be an http(s) URL.")
	}
	if f.MenuItemID != nil && f.CategoryID == nil {
		return invalid("menu_item_id", "Choose a category before choosing a subcategory.")
	}

	if f.Type != models.ContentTypeReview {
		return nil
	}

	if !f.OverallScore.Valid() {
		return invalid("overall_score", "Overall score must be between 0 and %d.", models.MaxScore)
	}
	if f.YouTubeURL != "" {
		if _, ok := video.YouTubeID(f.YouTubeURL); !ok {
			return invalid("youtube_url", "YouTube URL is not recognised.")
		}
	}
	if len(f.Gallery) > maxGalleryImages {
		return invalid("gallery", "Too many gallery images (max %d).", maxGalleryImages)
	}
	for _, img := range f.Gallery {
		if !isHTTPURL(img) {
			return invalid("gallery", "Gallery image %q must be an http(s) URL.", img)
		}
	}
	if len(f.ProductSpecs) > maxSpecRows {
		return invalid("product_specs", "Too many specification rows (max %d).", maxSpecRows)
	}
	if len(f.Criteria) > maxCriteria {
		return invalid("criteria", "Too many rating criteria (max %d).", maxCriteria)
	}
	for i, rc := range f.Criteria {
		name := strings.TrimSpace(rc.Name)
		if name == "" {
			return invalid("criteria", "Criterion %d needs a name.", i+1)
		}
		if utf8.RuneCountInString(name) > maxCriterionNameLen {
			return invalid("criteria", "Criterion %q is too long (max %d characters).", name, maxCriterionNameLen)
		}
		if !rc.Score.Valid() {
			return invalid("criteria", "Score of %q must be between 0 and %d.", name, models.MaxScore)
		}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
