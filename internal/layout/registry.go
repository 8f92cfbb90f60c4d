// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package layout holds the catalog of presentational templates for
// articles and reviews, the rule that picks the effective template for a
// content item, and the typed layout settings every template reads.
package layout

import "reviewpress/internal/models"

// Kind identifies one presentational template. The set is closed: the
// rendering engine switches over every Kind exhaustively.
type Kind string

const (
	Classic        Kind = "classic"
	Magazine       Kind = "magazine"
	Review         Kind = "review"
	BasicReview    Kind = "basic-review"
	EnhancedReview Kind = "enhanced-review"
	Gallery        Kind = "gallery"
	Technical      Kind = "technical"
)

// Descriptor describes a template in the admin picker.
type Descriptor struct {
	Kind           Kind
	Name           string
	Description    string
	Icon           string
	SupportedTypes []models.ContentType
}

// Supports reports whether the template can render content of type t.
func (d Descriptor) Supports(t models.ContentType) bool {
	for _, st := range d.SupportedTypes {
		if st == t {
			return true
		}
	}
	return false
}

var (
	both       = []models.ContentType{models.ContentTypeArticle, models.ContentTypeReview}
	reviewOnly = []models.ContentType{models.ContentTypeReview}
)

// registry is ordered: Resolve falls back to the first entry that supports
// the content type, so Classic must stay first.
var registry = []Descriptor{
	{
		Kind:           Classic,
		Name:           "Classic",
		Description:    "Single column with featured image on top.",
		Icon:           "file-text",
		SupportedTypes: both,
	},
	{
		Kind:           Magazine,
		Name:           "Magazine",
		Description:    "Full-bleed hero image with a two column body.",
		Icon:           "newspaper",
		SupportedTypes: both,
	},
	{
		Kind:           Review,
		Name:           "Review",
		Description:    "Score box, rating breakdown, specs and award badge.",
		Icon:           "star",
		SupportedTypes: reviewOnly,
	},
	{
		Kind:           BasicReview,
		Name:           "Basic review",
		Description:    "Compact review with score and rating breakdown.",
		Icon:           "star-half",
		SupportedTypes: reviewOnly,
	},
	{
		Kind:           EnhancedReview,
		Name:           "Enhanced review",
		Description:    "Review with score bars, pros and cons, video and specs.",
		Icon:           "award",
		SupportedTypes: reviewOnly,
	},
	{
		Kind:           Gallery,
		Name:           "Gallery",
		Description:    "Image carousel with lightbox above the text.",
		Icon:           "images",
		SupportedTypes: both,
	},
	{
		Kind:           Technical,
		Name:           "Technical",
		Description:    "Long-form layout with a table of contents sidebar.",
		Icon:           "cpu",
		SupportedTypes: both,
	},
}

// Registry returns a copy of every template descriptor in registry order.
func Registry() []Descriptor {
	out := make([]Descriptor, len(registry))
	for i, d := range registry {
		d.SupportedTypes = append([]models.ContentType(nil), d.SupportedTypes...)
		out[i] = d
	}
	return out
}

// Lookup returns the descriptor for id, if registered.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range registry {
		if string(d.Kind) == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Supported returns the descriptors usable for content type t.
func Supported(t models.ContentType) []Descriptor {
	var out []Descriptor
	for _, d := range registry {
		if d.Supports(t) {
			out = append(out, d)
		}
	}
	return out
}

// Resolve returns the template to use for content of type t. The requested
// id is kept when it is registered and supports t; otherwise the first
// registered template supporting t is returned. An unknown content type is
// treated as an article.
func Resolve(requested string, t models.ContentType) Kind {
	if !t.Valid() {
		t = models.ContentTypeArticle
	}
	if d, ok := Lookup(requested); ok && d.Supports(t) {
		return d.Kind
	}
	for _, d := range registry {
		if d.Supports(t) {
			return d.Kind
		}
	}
	return Classic
}
