// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the admin interface.
// Pages render in full or, for HTMX requests, as their "content" block.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"reviewpress/internal/layout"
	"reviewpress/internal/middleware"
	"reviewpress/internal/session"
)

//go:embed templates/admin/*.html
var adminFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section ("dashboard", "content", ...)
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash is a one-time notification message.
type Flash struct {
	Type    string // "success", "error", "info"
	Message string
}

// Options lists the allowed values of the enumerated layout settings, as
// shown in the content form selects.
type Options struct {
	ColorThemes    []string
	FontFamilies   []string
	FontSizes      []string
	TextAlignments []string
	Spacings       []string
	ContentWidths  []string
}

// SettingOptions returns the layout setting choices.
func SettingOptions() Options {
	return Options{
		ColorThemes:    layout.ColorThemes,
		FontFamilies:   layout.FontFamilies,
		FontSizes:      layout.FontSizes,
		TextAlignments: layout.TextAlignments,
		Spacings:       layout.Spacings,
		ContentWidths:  layout.ContentWidths,
	}
}

// Renderer holds the parsed admin templates, one set per page.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates render as full HTML documents without base.html.
var standaloneTemplates = map[string]bool{
	"login":    true,
	"register": true,
}

// New parses every admin page from the embedded filesystem, pairing each
// with the base layout. In devMode templates load TailwindCSS, HTMX and
// AlpineJS from their CDNs; otherwise they reference local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			"isDev": func() bool {
				return devMode
			},
			// uuidEq reports whether ptr is set and equal to val.
			"uuidEq": func(ptr *uuid.UUID, val uuid.UUID) bool {
				return ptr != nil && *ptr == val
			},
			// checked reads an optional toggle, falling back to def.
			"checked": func(b *bool, def bool) bool {
				if b == nil {
					return def
				}
				return *b
			},
			"lines": func(list []string) string {
				return strings.Join(list, "\n")
			},
			"date": func(t *time.Time) string {
				if t == nil {
					return ""
				}
				return t.Format("Jan 2, 2006 15:04")
			},
		},
	}

	entries, err := fs.ReadDir(adminFS, "templates/admin")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmplName := strings.TrimSuffix(name, ".html")

		var (
			tmpl     *template.Template
			parseErr error
		)
		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(
				adminFS, "templates/admin/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
				adminFS, "templates/admin/base.html", "templates/admin/"+name,
			)
		}
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}
		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full admin page, or only its "content" block when the
// request comes from HTMX. The CSRF token and session are taken from the
// request context.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus is Page with an explicit status code, used to re-render forms
// after a validation failure.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	execName := "base.html"
	switch {
	case isHTMX(r):
		execName = "content"
	case standaloneTemplates[name]:
		execName = name + ".html"
	}

	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		slog.Error("admin template failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

// Has reports whether a page template named name was parsed.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
