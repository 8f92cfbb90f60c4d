// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package layout

import (
	"strings"
	"unicode"
)

// Award is a badge shown on reviews.
type Award struct {
	Level string
	Label string
}

// awardLabels maps the award levels offered in the admin form to their
// display text, in picker order.
var awardLabels = []Award{
	{Level: "editors-choice", Label: "Editor's Choice"},
	{Level: "best-value", Label: "Best Value"},
	{Level: "recommended", Label: "Recommended"},
	{Level: "innovation", Label: "Innovation Award"},
	{Level: "gold", Label: "Gold Award"},
	{Level: "silver", Label: "Silver Award"},
	{Level: "bronze", Label: "Bronze Award"},
}

// Awards lists the selectable award levels.
func Awards() []Award {
	out := make([]Award, len(awardLabels))
	copy(out, awardLabels)
	return out
}

// AwardFor returns the badge for level. Unknown levels get a label built
// from the level itself ("top-pick" becomes "Top Pick").
func AwardFor(level string) (Award, bool) {
	level = strings.TrimSpace(level)
	if level == "" {
		return Award{}, false
	}
	for _, a := range awardLabels {
		if a.Level == level {
			return a, true
		}
	}
	words := strings.FieldsFunc(level, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return Award{Level: level, Label: strings.Join(words, " ")}, true
}

// Award returns the badge to show, honoring ShowAwards.
func (r Resolved) Award() (Award, bool) {
	if !r.ShowAwards {
		return Award{}, false
	}
	return AwardFor(r.AwardLevel)
}

// HasProsCons reports whether a pros/cons block should be rendered.
func (r Resolved) HasProsCons() bool {
	return r.ShowProsCons && (len(r.Pros) > 0 || len(r.Cons) > 0)
}

// ThemeClass returns CSS classes for the color theme.
func (r Resolved) ThemeClass() string {
	switch r.ColorTheme {
	case "dark":
		return "bg-gray-900 text-gray-100"
	case "sepia":
		return "bg-amber-50 text-stone-800"
	case "blue":
		return "bg-sky-50 text-slate-900"
	}
	return "bg-white text-gray-900"
}

// TypographyClass returns CSS classes for font family, size and alignment.
func (r Resolved) TypographyClass() string {
	var family string
	switch r.FontFamily {
	case "serif":
		family = "font-serif"
	case "mono":
		family = "font-mono"
	default:
		family = "font-sans"
	}

	var size string
	switch r.FontSize {
	case "small":
		size = "text-sm"
	case "large":
		size = "text-lg"
	default:
		size = "text-base"
	}

	return family + " " + size + " text-" + r.TextAlignment
}

// SpacingClass returns the vertical rhythm class for body sections.
func (r Resolved) SpacingClass() string {
	switch r.Spacing {
	case "tight":
		return "space-y-2"
	case "wide":
		return "space-y-10"
	}
	return "space-y-6"
}

// WidthClass returns the max-width class of the content column.
func (r Resolved) WidthClass() string {
	switch r.ContentWidth {
	case "narrow":
		return "max-w-2xl"
	case "wide":
		return "max-w-6xl"
	case "full":
		return "max-w-none"
	}
	return "max-w-4xl"
}
