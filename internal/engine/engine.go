// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine renders public pages. Each content item is drawn by the
// layout its record resolves to; the rendered article is then wrapped in
// the site shell together with the navigation header.
package engine

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"reviewpress/internal/editor"
	"reviewpress/internal/layout"
	"reviewpress/internal/models"
	"reviewpress/internal/navigation"
	"reviewpress/internal/richtext"
)

//go:embed templates/*.html
var templateFS embed.FS

// Article is the input of a layout renderer: a content row with the
// relations the layouts read.
type Article struct {
	Content  models.Content
	Settings layout.Settings
	Review   *models.ReviewDetails // nil for articles and reviews without details
	Page     *models.Page
}

// FromExpanded builds an Article from the read query result, lifting the
// first page and, for reviews, the first review_details entry. Details left
// behind by an item switched to an article are not shown.
func FromExpanded(ec *models.ExpandedContent) *Article {
	a := &Article{
		Content:  ec.Content,
		Settings: layout.Decode(ec.LayoutSettings),
	}
	if ec.Content.IsReview() && len(ec.ReviewDetails) > 0 {
		d := ec.ReviewDetails[0]
		a.Review = &d
	}
	if len(ec.Pages) > 0 {
		p := ec.Pages[0]
		a.Page = &p
	}
	return a
}

// FromForm builds an Article from unsaved form data, for previews.
func FromForm(f *editor.FormData) (*Article, error) {
	c, err := f.Content()
	if err != nil {
		return nil, fmt.Errorf("preview content: %w", err)
	}
	c.AuthorName = f.AuthorName
	a := &Article{Content: *c, Settings: f.Settings}
	if c.IsReview() {
		d := f.ReviewDetails(f.ID)
		d.Criteria = f.Criteria
		a.Review = d
	}
	return a, nil
}

// PageData is the site shell around a rendered article or a listing.
type PageData struct {
	SiteName    string
	Title       string
	Description string
	Nav         []navigation.HeaderCategory
	Content     template.HTML // rendered article, for article pages
	Heading     string        // listing heading
	Items       []ListItem    // listing entries
	Year        int
}

// ListItem is one entry of a content listing.
type ListItem struct {
	Title       string
	Path        string
	Excerpt     string
	ImageURL    string
	Type        models.ContentType
	PublishedAt string
}

// ListItemFrom builds a listing entry from a content row.
func ListItemFrom(c models.Content) ListItem {
	item := ListItem{
		Title: c.Title,
		Path:  "/read/" + c.ID.String(),
		Type:  c.Type,
	}
	switch {
	case c.Description != nil && *c.Description != "":
		item.Excerpt = richtext.Excerpt(*c.Description, 200)
	case c.Body != nil:
		item.Excerpt = richtext.Excerpt(*c.Body, 200)
	}
	if c.FeaturedImageURL != nil {
		item.ImageURL = *c.FeaturedImageURL
	}
	if c.PublishedAt != nil {
		item.PublishedAt = c.PublishedAt.Format("Jan 2, 2006")
	}
	return item
}

// Engine renders the layouts and the site shell from embedded templates.
// Parsed templates are kept in memory after first use.
type Engine struct {
	siteName string
	cache    *templateCache
	funcs    template.FuncMap
}

// New creates an Engine. siteName is shown in the shell header.
func New(siteName string) *Engine {
	return &Engine{
		siteName: siteName,
		cache:    newTemplateCache(),
		funcs: template.FuncMap{
			"inc": func(i int) int { return i + 1 },
		},
	}
}

// View resolves the layout of a and builds its view, body included.
func (e *Engine) View(a *Article) (*View, error) {
	kind := layout.Resolve(a.Content.LayoutTemplate, a.Content.Type)
	build := builderFor(kind)
	if build == nil {
		return nil, fmt.Errorf("no renderer for layout %q", kind)
	}

	v := build(a, a.Settings.Resolve())

	if a.Content.Body != nil {
		body, err := richtext.Render(*a.Content.Body, a.Content.BodyFormat)
		if err != nil {
			return nil, fmt.Errorf("render body: %w", err)
		}
		v.Body = body
	}
	return &v, nil
}

// Render returns the article fragment for a, drawn by its resolved layout.
func (e *Engine) Render(a *Article) ([]byte, error) {
	v, err := e.View(a)
	if err != nil {
		return nil, err
	}

	tmpl, err := e.lookup(string(v.Kind), "templates/partials.html", "templates/"+string(v.Kind)+".html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "article", v); err != nil {
		return nil, fmt.Errorf("execute layout %s: %w", v.Kind, err)
	}
	return buf.Bytes(), nil
}

// RenderPage writes a full page around data.Content.
func (e *Engine) RenderPage(w io.Writer, data *PageData) error {
	return e.shell(w, "page", data)
}

// RenderList writes a full listing page of data.Items.
func (e *Engine) RenderList(w io.Writer, data *PageData) error {
	return e.shell(w, "listing", data)
}

func (e *Engine) shell(w io.Writer, name string, data *PageData) error {
	tmpl, err := e.lookup("shell:"+name, "templates/base.html", "templates/"+name+".html")
	if err != nil {
		return err
	}
	if data.SiteName == "" {
		data.SiteName = e.siteName
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	if err := tmpl.ExecuteTemplate(w, "site", data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return nil
}

// lookup returns the parsed template set for key, parsing files on a miss.
func (e *Engine) lookup(key string, files ...string) (*template.Template, error) {
	if tmpl := e.cache.get(key); tmpl != nil {
		return tmpl, nil
	}
	tmpl, err := template.New(key).Funcs(e.funcs).ParseFS(templateFS, files...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}
	e.cache.put(key, tmpl)
	return tmpl, nil
}
