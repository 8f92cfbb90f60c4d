// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"html/template"
	"math"
	"strconv"

	"reviewpress/internal/layout"
	"reviewpress/internal/models"
	"reviewpress/internal/video"
)

// View is what a layout template executes against. Builders fill only the
// sections their layout shows; templates render a section when its field
// is non-empty.
type View struct {
	Kind          layout.Kind
	Title         string
	Description   string
	Body          template.HTML
	FeaturedImage string
	Author        string
	PublishedAt   string // display form, "January 2, 2006"
	PublishedISO  string // machine form for <time datetime>
	Breadcrumb    []Crumb
	Theme         Theme

	Score    *ScoreView
	Criteria []CriterionView
	ShowBars bool
	Specs    models.ProductSpecs
	Award    *layout.Award
	Video    *VideoView
	Pros     []string
	Cons     []string
	Slides   []Slide
	TOC      []TOCEntry
}

// Theme carries the CSS classes derived from the layout settings.
type Theme struct {
	Root       string
	Typography string
	Spacing    string
	Width      string
}

// Crumb is one breadcrumb link.
type Crumb struct {
	Name string
	Path string
}

// ScoreView is the overall score box.
type ScoreView struct {
	Value   string
	Max     int
	Stars   float64
	Icons   []string // "full", "half" or "empty", five entries
	Percent int
}

// CriterionView is one row of the rating breakdown.
type CriterionView struct {
	Name    string
	Score   string
	Percent int
}

// VideoView is an embedded YouTube player.
type VideoView struct {
	ID        string
	EmbedURL  string
	Thumbnail string
}

// Slide is one gallery image. Prev and Next are the indices of the
// neighbouring slides, wrapping at both ends.
type Slide struct {
	Index    int
	URL      string
	Prev     int
	Next     int
	Position string
}

// TOCEntry is a table-of-contents link to a section anchor.
type TOCEntry struct {
	Anchor string
	Title  string
}

// technicalTOC is the fixed outline of the technical layout.
var technicalTOC = []TOCEntry{
	{Anchor: "overview", Title: "Overview"},
	{Anchor: "specifications", Title: "Specifications"},
	{Anchor: "analysis", Title: "Analysis"},
	{Anchor: "verdict", Title: "Verdict"},
}

// builder turns an article into the view of one layout. Builders do no
// I/O; the body is rendered once by Engine.Render and set afterwards.
type builder func(*Article, layout.Resolved) View

// builderFor maps every layout kind to its builder.
func builderFor(k layout.Kind) builder {
	switch k {
	case layout.Classic:
		return buildClassic
	case layout.Magazine:
		return buildMagazine
	case layout.Review:
		return buildReview
	case layout.BasicReview:
		return buildBasicReview
	case layout.EnhancedReview:
		return buildEnhancedReview
	case layout.Gallery:
		return buildGallery
	case layout.Technical:
		return buildTechnical
	}
	return nil
}

func buildClassic(a *Article, r layout.Resolved) View {
	v := common(a, r, layout.Classic)
	v.Score = scoreView(a.Review)
	return v
}

func buildMagazine(a *Article, r layout.Resolved) View {
	v := common(a, r, layout.Magazine)
	v.Score = scoreView(a.Review)
	return v
}

func buildReview(a *Article, r layout.Resolved) View {
	v := common(a, r, layout.Review)
	reviewSections(&v, a, r)
	v.Specs = specs(a.Review)
	v.Video = videoView(a.Review)
	return v
}

func buildBasicReview(a *Article, r layout.Resolved) View {
	v := common(a, r, layout.BasicReview)
	reviewSections(&v, a, r)
	v.Specs = specs(a.Review)
	v.Video = videoView(a.Review)
	return v
}

func buildEnhancedReview(a *Article, r layout.Resolved) View {
	v := common(a, r, layout.EnhancedReview)
	reviewSections(&v, a, r)
	v.Specs = specs(a.Review)
	v.Video = videoView(a.Review)
	v.ShowBars = len(v.Criteria) > 0
	return v
}

func buildGallery(a *Article, r layout.Resolved) View {
	v := common(a, r, layout.Gallery)
	v.Score = scoreView(a.Review)
	v.Slides = slides(a)
	return v
}

func buildTechnical(a *Article, r layout.Resolved) View {
	v := common(a, r, layout.Technical)
	v.TOC = append([]TOCEntry(nil), technicalTOC...)
	v.Specs = specs(a.Review)
	v.Score = scoreView(a.Review)
	if r.HasProsCons() {
		v.Pros, v.Cons = r.Pros, r.Cons
	}
	return v
}

// common fills the fields every layout shows.
func common(a *Article, r layout.Resolved, k layout.Kind) View {
	c := a.Content
	v := View{
		Kind:   k,
		Title:  c.Title,
		Author: c.AuthorName,
		Theme: Theme{
			Root:       r.ThemeClass(),
			Typography: r.TypographyClass(),
			Spacing:    r.SpacingClass(),
			Width:      r.WidthClass(),
		},
	}
	if c.Description != nil {
		v.Description = *c.Description
	}
	if c.FeaturedImageURL != nil {
		v.FeaturedImage = *c.FeaturedImageURL
	}
	if c.PublishedAt != nil {
		v.PublishedAt = c.PublishedAt.Format("January 2, 2006")
		v.PublishedISO = c.PublishedAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	if p := a.Page; p != nil {
		if p.CategorySlug != "" {
			v.Breadcrumb = append(v.Breadcrumb, Crumb{Name: p.CategoryName, Path: "/c/" + p.CategorySlug})
		}
		if p.ItemSlug != "" {
			v.Breadcrumb = append(v.Breadcrumb, Crumb{Name: p.ItemName, Path: p.Path()})
		}
	}
	return v
}

// reviewSections fills the score, breakdown, award and pros/cons shared by
// the three review layouts.
func reviewSections(v *View, a *Article, r layout.Resolved) {
	v.Score = scoreView(a.Review)
	if r.ShowRatingCriteria && a.Review != nil {
		for _, c := range a.Review.Criteria {
			v.Criteria = append(v.Criteria, CriterionView{
				Name:    c.Name,
				Score:   c.Score.String(),
				Percent: c.Score.Percent(),
			})
		}
	}
	if award, ok := r.Award(); ok {
		v.Award = &award
	}
	if r.HasProsCons() {
		v.Pros, v.Cons = r.Pros, r.Cons
	}
}

func scoreView(d *models.ReviewDetails) *ScoreView {
	if d == nil {
		return nil
	}
	stars := d.OverallScore.Stars()
	return &ScoreView{
		Value:   d.OverallScore.String(),
		Max:     models.MaxScore,
		Stars:   stars,
		Icons:   starIcons(stars),
		Percent: d.OverallScore.Percent(),
	}
}

// starIcons expands a 0-5 rating into five icons. A fraction of a half or
// more shows a half star.
func starIcons(stars float64) []string {
	icons := make([]string, 0, 5)
	full := int(math.Floor(stars))
	for i := 0; i < 5; i++ {
		switch {
		case i < full:
			icons = append(icons, "full")
		case i == full && stars-float64(full) >= 0.5:
			icons = append(icons, "half")
		default:
			icons = append(icons, "empty")
		}
	}
	return icons
}

func specs(d *models.ReviewDetails) models.ProductSpecs {
	if d == nil || len(d.ProductSpecs) == 0 {
		return nil
	}
	return d.ProductSpecs
}

func videoView(d *models.ReviewDetails) *VideoView {
	if d == nil || d.YouTubeURL == nil {
		return nil
	}
	id, ok := video.YouTubeID(*d.YouTubeURL)
	if !ok {
		return nil
	}
	return &VideoView{ID: id, EmbedURL: video.EmbedURL(id), Thumbnail: video.ThumbnailURL(id)}
}

// slides lists the featured image followed by the gallery images. The
// gallery copy of the featured image is skipped.
func slides(a *Article) []Slide {
	var urls []string
	var featured string
	if f := a.Content.FeaturedImageURL; f != nil && *f != "" {
		featured = *f
		urls = append(urls, featured)
	}
	if a.Review != nil {
		for _, u := range a.Review.Gallery {
			if u != "" && u != featured {
				urls = append(urls, u)
			}
		}
	}

	n := len(urls)
	out := make([]Slide, n)
	for i, u := range urls {
		out[i] = Slide{
			Index:    i,
			URL:      u,
			Prev:     (i - 1 + n) % n,
			Next:     (i + 1) % n,
			Position: strconv.Itoa(i+1) + " / " + strconv.Itoa(n),
		}
	}
	return out
}
