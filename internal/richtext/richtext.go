// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package richtext turns stored description and body text into safe HTML.
// Markdown is converted with goldmark first; every result then passes
// through a bluemonday policy before it reaches a template.
package richtext

import (
	"bytes"
	htmlstd "html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"reviewpress/internal/models"
)

// md is the configured goldmark instance, reused across calls. Raw HTML is
// passed through here and removed by the sanitizer afterwards.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("figure", "figcaption")
	p.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "code", "pre", "div")
	p.AllowAttrs("style").OnElements("span", "pre")
	p.AllowAttrs("loading").OnElements("img")
	p.RequireNoFollowOnLinks(true)
	return p
}

// MarkdownToHTML converts Markdown source into unsanitized HTML.
func MarkdownToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sanitize strips scripts, event handlers and other unsafe markup.
func Sanitize(raw string) string {
	return policy.Sanitize(raw)
}

// Render converts text stored in the given format into sanitized HTML
// ready for a template. Empty input yields an empty result.
func Render(text string, format models.BodyFormat) (template.HTML, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if format == models.BodyFormatMarkdown {
		converted, err := MarkdownToHTML(text)
		if err != nil {
			return "", err
		}
		text = converted
	}
	return template.HTML(Sanitize(text)), nil
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Excerpt returns plain text of at most limit runes for listings, cut at a
// word boundary with an ellipsis when shortened.
func Excerpt(text string, limit int) string {
	plain := strings.Join(strings.Fields(tagPattern.ReplaceAllString(text, " ")), " ")
	plain = htmlstd.UnescapeString(plain)

	runes := []rune(plain)
	if limit <= 0 || len(runes) <= limit {
		return plain
	}
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
