package layout

import (
	"encoding/json"
	"reflect"
	"testing"

	"reviewpress/internal/models"
)

// TestResolveTotal checks that every (requested, type) pair resolves to a
// template that supports the type.
func TestResolveTotal(t *testing.T) {
	requested := []string{"", "unknown", "CLASSIC"}
	for _, d := range Registry() {
		requested = append(requested, string(d.Kind))
	}

	for _, ct := range models.ContentTypes {
		for _, r := range requested {
			got := Resolve(r, ct)
			d, ok := Lookup(string(got))
			if !ok {
				t.Fatalf("Resolve(%q, %q) = %q, not registered", r, ct, got)
			}
			if !d.Supports(ct) {
				t.Errorf("Resolve(%q, %q) = %q, which does not support %q", r, ct, got, ct)
			}
		}
	}
}

// TestResolveKeepsSharedTemplates checks idempotence for templates that
// support both content types.
func TestResolveKeepsSharedTemplates(t *testing.T) {
	for _, d := range Registry() {
		if !d.Supports(models.ContentTypeArticle) || !d.Supports(models.ContentTypeReview) {
			continue
		}
		for _, ct := range models.ContentTypes {
			got := Resolve(string(d.Kind), ct)
			if got != d.Kind {
				t.Errorf("Resolve(%q, %q) = %q, want unchanged", d.Kind, ct, got)
			}
			if again := Resolve(string(got), ct); again != got {
				t.Errorf("Resolve not idempotent: %q then %q", got, again)
			}
		}
	}
}

func TestResolveFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		ct        models.ContentType
		want      Kind
	}{
		{name: "review template on article", requested: "review", ct: models.ContentTypeArticle, want: Classic},
		{name: "enhanced review on article", requested: "enhanced-review", ct: models.ContentTypeArticle, want: Classic},
		{name: "review template on review", requested: "review", ct: models.ContentTypeReview, want: Review},
		{name: "basic review on review", requested: "basic-review", ct: models.ContentTypeReview, want: BasicReview},
		{name: "empty request", requested: "", ct: models.ContentTypeReview, want: Classic},
		{name: "unknown request", requested: "brutalist", ct: models.ContentTypeArticle, want: Classic},
		{name: "unknown content type", requested: "review", ct: models.ContentType("podcast"), want: Classic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.requested, tt.ct); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.requested, tt.ct, got, tt.want)
			}
		})
	}
}

func TestRegistryClassicFirst(t *testing.T) {
	reg := Registry()
	if len(reg) != 7 {
		t.Fatalf("registry has %d templates, want 7", len(reg))
	}
	if reg[0].Kind != Classic {
		t.Errorf("first template = %q, want classic", reg[0].Kind)
	}
	for _, ct := range models.ContentTypes {
		if !reg[0].Supports(ct) {
			t.Errorf("classic does not support %q", ct)
		}
	}
}

// TestRegistryIsImmutable checks that callers cannot mutate the catalog.
func TestRegistryIsImmutable(t *testing.T) {
	reg := Registry()
	reg[0].Kind = "hacked"
	reg[0].SupportedTypes[0] = models.ContentType("hacked")

	again := Registry()
	if again[0].Kind != Classic {
		t.Errorf("registry kind mutated to %q", again[0].Kind)
	}
	if again[0].SupportedTypes[0] != models.ContentTypeArticle {
		t.Errorf("registry supported types mutated to %q", again[0].SupportedTypes[0])
	}
}

func TestSupported(t *testing.T) {
	if got := len(Supported(models.ContentTypeArticle)); got != 4 {
		t.Errorf("Supported(article) = %d templates, want 4", got)
	}
	if got := len(Supported(models.ContentTypeReview)); got != 7 {
		t.Errorf("Supported(review) = %d templates, want 7", got)
	}
}

// TestSettingsDefaults checks one documented default per key against an
// empty document.
func TestSettingsDefaults(t *testing.T) {
	r := FromMap(map[string]any{}).Resolve()

	tests := []struct {
		key  string
		got  any
		want any
	}{
		{"awardLevel", r.AwardLevel, ""},
		{"showAwards", r.ShowAwards, true},
		{"showRatingCriteria", r.ShowRatingCriteria, true},
		{"showProsCons", r.ShowProsCons, true},
		{"colorTheme", r.ColorTheme, "default"},
		{"fontFamily", r.FontFamily, "system"},
		{"fontSize", r.FontSize, "medium"},
		{"textAlignment", r.TextAlignment, "left"},
		{"spacing", r.Spacing, "normal"},
		{"contentWidth", r.ContentWidth, "medium"},
		{"pros", r.Pros, []string{}},
		{"cons", r.Cons, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("default %s = %#v, want %#v", tt.key, tt.got, tt.want)
			}
		})
	}

	if !reflect.DeepEqual(r, Defaults()) {
		t.Error("resolved empty document differs from Defaults()")
	}
}

func TestSettingsInvalidEnumFallsBack(t *testing.T) {
	r := FromMap(map[string]any{
		"colorTheme":    "neon",
		"fontSize":      "huge",
		"textAlignment": "diagonal",
		"spacing":       42,
		"contentWidth":  "WIDE",
	}).Resolve()

	if r.ColorTheme != "default" {
		t.Errorf("colorTheme = %q, want default", r.ColorTheme)
	}
	if r.FontSize != "medium" {
		t.Errorf("fontSize = %q, want medium", r.FontSize)
	}
	if r.TextAlignment != "left" {
		t.Errorf("textAlignment = %q, want left", r.TextAlignment)
	}
	if r.Spacing != "normal" {
		t.Errorf("spacing = %q, want normal", r.Spacing)
	}
	if r.ContentWidth != "wide" {
		t.Errorf("contentWidth = %q, want wide (case-insensitive)", r.ContentWidth)
	}
}

func TestSettingsExplicitValues(t *testing.T) {
	r := FromMap(map[string]any{
		"showAwards":         false,
		"showRatingCriteria": "false",
		"showProsCons":       "true",
		"colorTheme":         "sepia",
		"pros":               []any{"Bright screen", " ", "Fast"},
		"cons":               "Pricey\n\nHeavy",
	}).Resolve()

	if r.ShowAwards {
		t.Error("showAwards = true, want false")
	}
	if r.ShowRatingCriteria {
		t.Error(`showRatingCriteria "false" = true, want false`)
	}
	if !r.ShowProsCons {
		t.Error(`showProsCons "true" = false, want true`)
	}
	if r.ColorTheme != "sepia" {
		t.Errorf("colorTheme = %q, want sepia", r.ColorTheme)
	}
	if !reflect.DeepEqual(r.Pros, []string{"Bright screen", "Fast"}) {
		t.Errorf("pros = %#v", r.Pros)
	}
	if !reflect.DeepEqual(r.Cons, []string{"Pricey", "Heavy"}) {
		t.Errorf("cons = %#v", r.Cons)
	}
}

func TestAwardLegacyKey(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want string
	}{
		{name: "current key", doc: map[string]any{"awardLevel": "gold"}, want: "gold"},
		{name: "legacy key", doc: map[string]any{"award": "silver"}, want: "silver"},
		{name: "current wins", doc: map[string]any{"awardLevel": "gold", "award": "bronze"}, want: "gold"},
		{name: "empty current falls back", doc: map[string]any{"awardLevel": "", "award": "bronze"}, want: "bronze"},
		{name: "none", doc: map[string]any{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMap(tt.doc).AwardLevel; got != tt.want {
				t.Errorf("AwardLevel = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestAwardRoundTrip saves awardLevel and reads back both spellings.
func TestAwardRoundTrip(t *testing.T) {
	raw, err := Settings{AwardLevel: "best-value"}.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc["awardLevel"] != "best-value" {
		t.Errorf("stored awardLevel = %v, want best-value", doc["awardLevel"])
	}
	if doc["award"] != "best-value" {
		t.Errorf("stored award = %v, want best-value", doc["award"])
	}

	if got := Decode(raw).AwardLevel; got != "best-value" {
		t.Errorf("decoded AwardLevel = %q, want best-value", got)
	}
	delete(doc, "awardLevel")
	if got := FromMap(doc).AwardLevel; got != "best-value" {
		t.Errorf("legacy-only AwardLevel = %q, want best-value", got)
	}
}

func TestEncodeOmitsUnset(t *testing.T) {
	m := Settings{ShowAwards: Bool(false), Spacing: "wide"}.ToMap()
	want := map[string]any{"showAwards": false, "spacing": "wide"}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("ToMap = %#v, want %#v", m, want)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, raw := range []string{"", "null", "{not json", "[1,2]"} {
		if got := Decode([]byte(raw)).Resolve(); !reflect.DeepEqual(got, Defaults()) {
			t.Errorf("Decode(%q) did not resolve to defaults: %#v", raw, got)
		}
	}
}

func TestAwardFor(t *testing.T) {
	tests := []struct {
		level string
		label string
		ok    bool
	}{
		{"best-value", "Best Value", true},
		{"editors-choice", "Editor's Choice", true},
		{"top-pick", "Top Pick", true},
		{"", "", false},
	}
	for _, tt := range tests {
		a, ok := AwardFor(tt.level)
		if ok != tt.ok || a.Label != tt.label {
			t.Errorf("AwardFor(%q) = (%q, %v), want (%q, %v)", tt.level, a.Label, ok, tt.label, tt.ok)
		}
	}
}

func TestResolvedAwardHonorsToggle(t *testing.T) {
	r := Settings{AwardLevel: "gold", ShowAwards: Bool(false)}.Resolve()
	if _, ok := r.Award(); ok {
		t.Error("award shown with showAwards=false")
	}
	r = Settings{AwardLevel: "gold"}.Resolve()
	if a, ok := r.Award(); !ok || a.Label != "Gold Award" {
		t.Errorf("Award() = (%v, %v), want Gold Award", a, ok)
	}
}

func TestResolvedClasses(t *testing.T) {
	d := Defaults()
	if got := d.ThemeClass(); got != "bg-white text-gray-900" {
		t.Errorf("default ThemeClass = %q", got)
	}
	if got := d.TypographyClass(); got != "font-sans text-base text-left" {
		t.Errorf("default TypographyClass = %q", got)
	}
	if got := d.SpacingClass(); got != "space-y-6" {
		t.Errorf("default SpacingClass = %q", got)
	}
	if got := d.WidthClass(); got != "max-w-4xl" {
		t.Errorf("default WidthClass = %q", got)
	}

	dark := Settings{ColorTheme: "dark", ContentWidth: "full", Spacing: "tight"}.Resolve()
	if dark.ThemeClass() != "bg-gray-900 text-gray-100" || dark.WidthClass() != "max-w-none" || dark.SpacingClass() != "space-y-2" {
		t.Errorf("dark classes = %q %q %q", dark.ThemeClass(), dark.WidthClass(), dark.SpacingClass())
	}
}
