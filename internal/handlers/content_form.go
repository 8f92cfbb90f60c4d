// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"reviewpress/internal/editor"
	"reviewpress/internal/layout"
	"reviewpress/internal/models"
)

// parseContentForm applies the submitted content form on top of base, which
// is either a fresh form or the stored record being edited. Fields the form
// does not carry (author, published_at, ids) are kept from base, and so is
// the type when the submitted one is unknown. Only input
// that cannot be decoded is reported here; the rest is left to
// editor.Validate.
func parseContentForm(values url.Values, base *editor.FormData) (*editor.FormData, *editor.ValidationError) {
	f := *base

	if t := models.ContentType(values.Get("type")); t.Valid() {
		f.Type = t
	}
	f.Title = strings.TrimSpace(values.Get("title"))
	f.Description = strings.TrimSpace(values.Get("description"))
	f.Body = values.Get("body")
	f.FeaturedImageURL = strings.TrimSpace(values.Get("featured_image_url"))
	f.LayoutTemplate = strings.TrimSpace(values.Get("layout_template"))

	f.BodyFormat = models.BodyFormatHTML
	if models.BodyFormat(values.Get("body_format")) == models.BodyFormatMarkdown {
		f.BodyFormat = models.BodyFormatMarkdown
	}
	f.Status = models.ContentStatusDraft
	if models.ContentStatus(values.Get("status")) == models.ContentStatusPublished {
		f.Status = models.ContentStatusPublished
	}

	var ok bool
	if f.CategoryID, ok = optionalUUID(values.Get("category_id")); !ok {
		return &f, &editor.ValidationError{Field: "category_id", Message: "Unknown category."}
	}
	if f.MenuItemID, ok = optionalUUID(values.Get("menu_item_id")); !ok {
		return &f, &editor.ValidationError{Field: "menu_item_id", Message: "Unknown subcategory."}
	}

	s := f.Settings
	s.ColorTheme = values.Get("color_theme")
	s.FontFamily = values.Get("font_family")
	s.FontSize = values.Get("font_size")
	s.TextAlignment = values.Get("text_alignment")
	s.Spacing = values.Get("spacing")
	s.ContentWidth = values.Get("content_width")

	if f.Type == models.ContentTypeReview {
		s.AwardLevel = strings.TrimSpace(values.Get("award_level"))
		s.ShowAwards = layout.Bool(values.Has("show_awards"))
		s.ShowRatingCriteria = layout.Bool(values.Has("show_rating_criteria"))
		s.ShowProsCons = layout.Bool(values.Has("show_pros_cons"))
		s.Pros = layout.SplitLines(values.Get("pros"))
		s.Cons = layout.SplitLines(values.Get("cons"))

		score, err := parseScore(values.Get("overall_score"))
		if err != nil {
			f.Settings = s
			return &f, &editor.ValidationError{Field: "overall_score", Message: "Overall score must be a number."}
		}
		f.OverallScore = score
		f.YouTubeURL = strings.TrimSpace(values.Get("youtube_url"))
		f.Gallery = nonNilLines(values.Get("gallery"))
		f.ProductSpecs = parseSpecRows(values["spec_label"], values["spec_value"])

		criteria, verr := parseCriteria(values["criterion_id"], values["criterion_name"], values["criterion_score"])
		if verr != nil {
			f.Settings = s
			return &f, verr
		}
		f.Criteria = criteria
	}

	f.Settings = s
	return &f, nil
}

// optionalUUID parses an optional id select. Empty means none; ok is false
// only for a non-empty value that is not a UUID.
func optionalUUID(raw string) (*uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return nil, false
	}
	return &id, true
}

// parseScore reads a score input. An empty field is zero.
func parseScore(raw string) (models.Score, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, err
	}
	return models.Score(v), nil
}

func nonNilLines(text string) []string {
	if lines := layout.SplitLines(text); lines != nil {
		return lines
	}
	return []string{}
}

// parseSpecRows pairs the label and value columns of the specs table,
// skipping rows where both are blank.
func parseSpecRows(labels, values []string) models.ProductSpecs {
	out := models.ProductSpecs{}
	for i, label := range labels {
		label = strings.TrimSpace(label)
		var value string
		if i < len(values) {
			value = strings.TrimSpace(values[i])
		}
		if label == "" && value == "" {
			continue
		}
		out = append(out, models.SpecPair{Label: label, Value: value})
	}
	return out
}

// parseCriteria pairs the criterion columns. Rows without a name are blank
// template rows and are skipped. A row keeps its id when it has one, so the
// criteria diff updates it in place.
func parseCriteria(ids, names, scores []string) ([]models.RatingCriterion, *editor.ValidationError) {
	out := []models.RatingCriterion{}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var rc models.RatingCriterion
		rc.Name = name
		if i < len(ids) {
			if id, err := uuid.Parse(strings.TrimSpace(ids[i])); err == nil {
				rc.ID = id
			}
		}
		var raw string
		if i < len(scores) {
			raw = scores[i]
		}
		score, err := parseScore(raw)
		if err != nil {
			return out, &editor.ValidationError{Field: "criteria", Message: "Score of " + strconv.Quote(name) + " must be a number."}
		}
		rc.Score = score
		rc.SortOrder = len(out)
		out = append(out, rc)
	}
	return out, nil
}
