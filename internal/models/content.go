// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the rows stored in PostgreSQL and the small value
// types shared by the stores, the editor and the rendering engine.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ContentType distinguishes articles from reviews.
type ContentType string

const (
	ContentTypeArticle ContentType = "article"
	ContentTypeReview  ContentType = "review"
)

// ContentTypes lists every content type in display order.
var ContentTypes = []ContentType{ContentTypeArticle, ContentTypeReview}

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == ContentTypeArticle || t == ContentTypeReview
}

// ContentStatus represents the publishing state of a content item.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// BodyFormat records how the body was authored.
type BodyFormat string

const (
	BodyFormatHTML     BodyFormat = "html"
	BodyFormatMarkdown BodyFormat = "markdown"
)

// Content is an article or a review. LayoutSettings holds the raw JSONB
// document; decode it with layout.Decode before reading any key.
type Content struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Description      *string         `json:"description"`
	Body             *string         `json:"body"`
	BodyFormat       BodyFormat      `json:"body_format"`
	Type             ContentType     `json:"type"`
	Status           ContentStatus   `json:"status"`
	FeaturedImageURL *string         `json:"featured_image_url"`
	AuthorID         uuid.UUID       `json:"author_id"`
	PageID           *uuid.UUID      `json:"page_id"`
	PublishedAt      *time.Time      `json:"published_at"`
	LayoutTemplate   string          `json:"layout_template"`
	LayoutSettings   json.RawMessage `json:"layout_settings"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Virtual fields populated by listing queries.
	AuthorName string `json:"author_name,omitempty"`
}

// IsPublished returns true if the content item is in published status.
func (c *Content) IsPublished() bool {
	return c.Status == ContentStatusPublished
}

// IsReview returns true for review content.
func (c *Content) IsReview() bool {
	return c.Type == ContentTypeReview
}

// Publish moves the item to published, stamping published_at when it is
// not set yet.
func (c *Content) Publish(now time.Time) {
	c.Status = ContentStatusPublished
	if c.PublishedAt == nil {
		c.PublishedAt = &now
	}
}

// Unpublish moves the item back to draft and clears published_at.
func (c *Content) Unpublish() {
	c.Status = ContentStatusDraft
	c.PublishedAt = nil
}

// ExpandedContent is a content row with its relations expanded the way the
// read query returns them: zero or one review_details (each carrying its
// rating_criteria) and zero or one page.
type ExpandedContent struct {
	Content
	ReviewDetails []ReviewDetails `json:"review_details"`
	Pages         []Page          `json:"pages"`
}

// ContentFilter narrows public and admin listings. Zero values mean "any".
type ContentFilter struct {
	Type            ContentType
	Status          ContentStatus
	CategorySlug    string
	SubcategorySlug string
	Limit           int
}
