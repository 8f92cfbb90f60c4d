// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package layout

import (
	"encoding/json"
	"strings"
)

// Settings is the typed form of a content item's layout_settings document.
// Every field is optional; Resolve applies the documented defaults.
type Settings struct {
	AwardLevel         string
	ShowAwards         *bool
	ShowRatingCriteria *bool
	ShowProsCons       *bool
	ColorTheme         string
	FontFamily         string
	FontSize           string
	TextAlignment      string
	Spacing            string
	ContentWidth       string
	Pros               []string
	Cons               []string
}

// Stored keys. "award" is the legacy spelling of "awardLevel"; both are
// read and both are written.
const (
	keyAwardLevel         = "awardLevel"
	keyAwardLegacy        = "award"
	keyShowAwards         = "showAwards"
	keyShowRatingCriteria = "showRatingCriteria"
	keyShowProsCons       = "showProsCons"
	keyColorTheme         = "colorTheme"
	keyFontFamily         = "fontFamily"
	keyFontSize           = "fontSize"
	keyTextAlignment      = "textAlignment"
	keySpacing            = "spacing"
	keyContentWidth       = "contentWidth"
	keyPros               = "pros"
	keyCons               = "cons"
)

// Allowed values per enumerated key. The first entry is the default.
var (
	ColorThemes    = []string{"default", "dark", "sepia", "blue"}
	FontFamilies   = []string{"system", "serif", "sans", "mono"}
	FontSizes      = []string{"medium", "small", "large"}
	TextAlignments = []string{"left", "center", "right", "justify"}
	Spacings       = []string{"normal", "tight", "wide"}
	ContentWidths  = []string{"medium", "narrow", "wide", "full"}
)

// Resolved is Settings with every default applied. Renderers read only
// this type, so a missing key can never reach them.
type Resolved struct {
	AwardLevel         string
	ShowAwards         bool
	ShowRatingCriteria bool
	ShowProsCons       bool
	ColorTheme         string
	FontFamily         string
	FontSize           string
	TextAlignment      string
	Spacing            string
	ContentWidth       string
	Pros               []string
	Cons               []string
}

// Defaults returns the settings used when a document is empty.
func Defaults() Resolved {
	return Settings{}.Resolve()
}

// Resolve applies the per-key defaults. Enumerated values outside their
// allowed set fall back to the default as well.
func (s Settings) Resolve() Resolved {
	return Resolved{
		AwardLevel:         strings.TrimSpace(s.AwardLevel),
		ShowAwards:         boolOr(s.ShowAwards, true),
		ShowRatingCriteria: boolOr(s.ShowRatingCriteria, true),
		ShowProsCons:       boolOr(s.ShowProsCons, true),
		ColorTheme:         oneOf(s.ColorTheme, ColorThemes),
		FontFamily:         oneOf(s.FontFamily, FontFamilies),
		FontSize:           oneOf(s.FontSize, FontSizes),
		TextAlignment:      oneOf(s.TextAlignment, TextAlignments),
		Spacing:            oneOf(s.Spacing, Spacings),
		ContentWidth:       oneOf(s.ContentWidth, ContentWidths),
		Pros:               nonNil(s.Pros),
		Cons:               nonNil(s.Cons),
	}
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

func oneOf(v string, allowed []string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return allowed[0]
}

func nonNil(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// FromMap translates a stored layout_settings document into Settings.
// It is the only place that knows about legacy key names: awardLevel wins
// over award when both are present. Unknown keys are ignored.
func FromMap(m map[string]any) Settings {
	var s Settings
	if m == nil {
		return s
	}

	s.AwardLevel = stringKey(m, keyAwardLevel)
	if s.AwardLevel == "" {
		s.AwardLevel = stringKey(m, keyAwardLegacy)
	}
	s.ShowAwards = boolKey(m, keyShowAwards)
	s.ShowRatingCriteria = boolKey(m, keyShowRatingCriteria)
	s.ShowProsCons = boolKey(m, keyShowProsCons)
	s.ColorTheme = stringKey(m, keyColorTheme)
	s.FontFamily = stringKey(m, keyFontFamily)
	s.FontSize = stringKey(m, keyFontSize)
	s.TextAlignment = stringKey(m, keyTextAlignment)
	s.Spacing = stringKey(m, keySpacing)
	s.ContentWidth = stringKey(m, keyContentWidth)
	s.Pros = listKey(m, keyPros)
	s.Cons = listKey(m, keyCons)
	return s
}

// ToMap returns the document to store. Only set fields are written; the
// award level goes under both its current and its legacy key.
func (s Settings) ToMap() map[string]any {
	m := make(map[string]any)
	if level := strings.TrimSpace(s.AwardLevel); level != "" {
		m[keyAwardLevel] = level
		m[keyAwardLegacy] = level
	}
	putBool(m, keyShowAwards, s.ShowAwards)
	putBool(m, keyShowRatingCriteria, s.ShowRatingCriteria)
	putBool(m, keyShowProsCons, s.ShowProsCons)
	putString(m, keyColorTheme, s.ColorTheme)
	putString(m, keyFontFamily, s.FontFamily)
	putString(m, keyFontSize, s.FontSize)
	putString(m, keyTextAlignment, s.TextAlignment)
	putString(m, keySpacing, s.Spacing)
	putString(m, keyContentWidth, s.ContentWidth)
	if len(s.Pros) > 0 {
		m[keyPros] = nonNil(s.Pros)
	}
	if len(s.Cons) > 0 {
		m[keyCons] = nonNil(s.Cons)
	}
	return m
}

// Decode parses a stored JSON document. Malformed documents decode to
// empty Settings, which resolve to the defaults.
func Decode(raw []byte) Settings {
	if len(raw) == 0 {
		return Settings{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return Settings{}
	}
	return FromMap(m)
}

// Encode serializes the settings for the layout_settings column.
func (s Settings) Encode() ([]byte, error) {
	return json.Marshal(s.ToMap())
}

func stringKey(m map[string]any, key string) string {
	v, ok := m[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// boolKey accepts JSON booleans and the strings "true"/"false", which older
// form submissions stored.
func boolKey(m map[string]any, key string) *bool {
	var b bool
	switch v := m[key].(type) {
	case bool:
		b = v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "on":
			b = true
		case "false", "0", "off":
			b = false
		default:
			return nil
		}
	default:
		return nil
	}
	return &b
}

// listKey accepts a JSON array of strings or a newline separated string.
func listKey(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return nonNil(v)
	case string:
		return SplitLines(v)
	}
	return nil
}

// SplitLines turns textarea input into a list, dropping blank lines.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func putBool(m map[string]any, key string, b *bool) {
	if b != nil {
		m[key] = *b
	}
}

func putString(m map[string]any, key, v string) {
	if v = strings.TrimSpace(v); v != "" {
		m[key] = v
	}
}

// Bool returns a pointer to b, for building Settings literals.
func Bool(b bool) *bool {
	return &b
}
