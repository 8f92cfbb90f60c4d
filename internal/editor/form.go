// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor assembles content records for the admin form and writes
// them back. Reads flatten the expanded relations into one FormData; saves
// fan the FormData out into the content, review and page rows.
package editor

import (
	"time"

	"github.com/google/uuid"

	"reviewpress/internal/layout"
	"reviewpress/internal/models"
)

// FormData is the flat shape edited in the admin content form. Review
// fields are ignored for articles.
type FormData struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Body             string
	BodyFormat       models.BodyFormat
	Type             models.ContentType
	Status           models.ContentStatus
	FeaturedImageURL string
	PublishedAt      *time.Time
	AuthorID         uuid.UUID
	AuthorName       string

	LayoutTemplate string
	Settings       layout.Settings

	PageID     *uuid.UUID
	CategoryID *uuid.UUID
	MenuItemID *uuid.UUID

	ReviewID     uuid.UUID
	OverallScore models.Score
	YouTubeURL   string
	Gallery      []string
	ProductSpecs models.ProductSpecs
	Criteria     []models.RatingCriterion
}

// IsNew reports whether the form describes content not stored yet.
func (f *FormData) IsNew() bool {
	return f.ID == uuid.Nil
}

// NewForm returns an empty form for the given type with a resolved layout.
func NewForm(t models.ContentType) *FormData {
	if !t.Valid() {
		t = models.ContentTypeArticle
	}
	return &FormData{
		Type:           t,
		Status:         models.ContentStatusDraft,
		BodyFormat:     models.BodyFormatHTML,
		LayoutTemplate: string(layout.Resolve("", t)),
		Gallery:        []string{},
		ProductSpecs:   models.ProductSpecs{},
		Criteria:       []models.RatingCriterion{},
	}
}

// Flatten converts an expanded content record into form data. The first
// review_details entry and the first page are lifted to top-level fields;
// missing relations leave their fields empty. Returns nil for nil input.
func Flatten(ec *models.ExpandedContent) *FormData {
	if ec == nil {
		return nil
	}

	f := &FormData{
		ID:               ec.ID,
		Title:            ec.Title,
		Description:      deref(ec.Description),
		Body:             deref(ec.Body),
		BodyFormat:       ec.BodyFormat,
		Type:             ec.Type,
		Status:           ec.Status,
		FeaturedImageURL: deref(ec.FeaturedImageURL),
		PublishedAt:      ec.PublishedAt,
		AuthorID:         ec.AuthorID,
		AuthorName:       ec.AuthorName,
		LayoutTemplate:   string(layout.Resolve(ec.LayoutTemplate, ec.Type)),
		Settings:         layout.Decode(ec.LayoutSettings),
		PageID:           ec.PageID,
		Gallery:          []string{},
		ProductSpecs:     models.ProductSpecs{},
		Criteria:         []models.RatingCriterion{},
	}
	if f.BodyFormat == "" {
		f.BodyFormat = models.BodyFormatHTML
	}

	if len(ec.ReviewDetails) > 0 {
		rd := ec.ReviewDetails[0]
		f.ReviewID = rd.ID
		f.OverallScore = rd.OverallScore
		f.YouTubeURL = deref(rd.YouTubeURL)
		if rd.Gallery != nil {
			f.Gallery = append([]string(nil), rd.Gallery...)
		}
		if rd.ProductSpecs != nil {
			f.ProductSpecs = append(models.ProductSpecs(nil), rd.ProductSpecs...)
		}
		if rd.Criteria != nil {
			f.Criteria = append([]models.RatingCriterion(nil), rd.Criteria...)
		}
	}

	if len(ec.Pages) > 0 {
		p := ec.Pages[0]
		id := p.ID
		f.PageID = &id
		f.CategoryID = p.CategoryID
		f.MenuItemID = p.MenuItemID
	}
	return f
}

// Content builds the content row described by the form. LayoutTemplate is
// taken as-is; Save resolves it first.
func (f *FormData) Content() (*models.Content, error) {
	settings, err := f.Settings.Encode()
	if err != nil {
		return nil, err
	}
	return &models.Content{
		ID:               f.ID,
		Title:            f.Title,
		Description:      optional(f.Description),
		Body:             optional(f.Body),
		BodyFormat:       f.BodyFormat,
		Type:             f.Type,
		Status:           f.Status,
		FeaturedImageURL: optional(f.FeaturedImageURL),
		AuthorID:         f.AuthorID,
		PageID:           f.PageID,
		PublishedAt:      f.PublishedAt,
		LayoutTemplate:   f.LayoutTemplate,
		LayoutSettings:   settings,
	}, nil
}

// ReviewDetails builds the review details row of the form for contentID.
func (f *FormData) ReviewDetails(contentID uuid.UUID) *models.ReviewDetails {
	return &models.ReviewDetails{
		ID:           f.ReviewID,
		ContentID:    contentID,
		OverallScore: f.OverallScore,
		YouTubeURL:   optional(f.YouTubeURL),
		Gallery:      f.Gallery,
		ProductSpecs: f.ProductSpecs,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps empty strings to NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
