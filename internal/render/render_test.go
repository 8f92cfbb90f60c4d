// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"reviewpress/internal/editor"
	"reviewpress/internal/layout"
	"reviewpress/internal/middleware"
	"reviewpress/internal/models"
	"reviewpress/internal/session"
)

// helperSession returns a session suitable for rendering admin templates.
func helperSession(role models.Role) *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "test@reviewpress.local",
		DisplayName: "Test User",
		Role:        role,
	}
}

// helperRequest builds a request whose context carries sess.
func helperRequest(method, target string, sess *session.Data) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if sess != nil {
		req = req.WithContext(middleware.WithSession(req.Context(), sess))
	}
	return req
}

func newRenderer(t *testing.T, devMode bool) *Renderer {
	t.Helper()
	rn, err := New(devMode)
	if err != nil {
		t.Fatalf("New(devMode=%v): %v", devMode, err)
	}
	return rn
}

func TestNew(t *testing.T) {
	rn := newRenderer(t, true)

	for _, name := range []string{
		"dashboard", "content_list", "content_form", "menus",
		"pages", "media", "users", "account", "login", "register",
	} {
		if !rn.Has(name) {
			t.Errorf("expected template %q to be parsed", name)
		}
	}
	if rn.Has("base") {
		t.Error("base.html should not be registered as a page")
	}
}

func TestAssetMode(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
		want    string
		notWant string
	}{
		{"dev mode", true, "cdn.tailwindcss.com", "/static/css/admin.css"},
		{"prod mode", false, "/static/css/admin.css", "cdn.tailwindcss.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rn := newRenderer(t, tt.devMode)
			w := httptest.NewRecorder()
			rn.Page(w, helperRequest(http.MethodGet, "/admin/login", nil), "login", &PageData{Title: "Sign in"})

			body := w.Body.String()
			if !strings.Contains(body, tt.want) {
				t.Errorf("expected %q in output", tt.want)
			}
			if strings.Contains(body, tt.notWant) {
				t.Errorf("did not expect %q in output", tt.notWant)
			}
		})
	}
}

func TestPageRendering(t *testing.T) {
	rn := newRenderer(t, true)
	sess := helperSession(models.RoleAdmin)
	w := httptest.NewRecorder()

	rn.Page(w, helperRequest(http.MethodGet, "/admin/dashboard", sess), "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{"Stats": &models.Dashboard{
			Articles: 5, Reviews: 3, Media: 10, Users: 2,
			TopViewed: []models.ContentStat{{ContentID: uuid.New(), Title: "Phone review", Type: models.ContentTypeReview, Views: 42}},
		}},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"<!DOCTYPE html>", "ReviewPress", "Welcome back, Test User", `data-stat="articles">5<`, "Phone review", "/admin/users"} {
		if !strings.Contains(body, want) {
			t.Errorf("full page render missing %q", want)
		}
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
}

func TestSidebarByRole(t *testing.T) {
	tests := []struct {
		role      models.Role
		wantMenus bool
		wantUsers bool
	}{
		{models.RoleAdmin, true, true},
		{models.RoleEditor, true, false},
		{models.RoleAuthor, false, false},
	}

	rn := newRenderer(t, true)
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			sess := helperSession(tt.role)
			w := httptest.NewRecorder()
			rn.Page(w, helperRequest(http.MethodGet, "/admin/dashboard", sess), "dashboard", &PageData{
				Title: "Dashboard",
				Data:  map[string]any{"Stats": &models.Dashboard{}},
			})
			body := w.Body.String()
			if got := strings.Contains(body, `href="/admin/menus"`); got != tt.wantMenus {
				t.Errorf("menus link shown = %v, want %v", got, tt.wantMenus)
			}
			if got := strings.Contains(body, `href="/admin/users"`); got != tt.wantUsers {
				t.Errorf("users link shown = %v, want %v", got, tt.wantUsers)
			}
		})
	}
}

func TestHTMXPartialRendering(t *testing.T) {
	rn := newRenderer(t, true)
	sess := helperSession(models.RoleAdmin)
	req := helperRequest(http.MethodGet, "/admin/dashboard", sess)
	req.Header.Set("HX-Request", "true")

	w := httptest.NewRecorder()
	rn.Page(w, req, "dashboard", &PageData{
		Title: "Dashboard",
		Data:  map[string]any{"Stats": &models.Dashboard{Reviews: 1}},
	})

	body := w.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX partial should not contain the base layout")
	}
	if !strings.Contains(body, "Dashboard") {
		t.Error("HTMX partial should contain the content block")
	}
}

func TestStandaloneLogin(t *testing.T) {
	rn := newRenderer(t, true)
	w := httptest.NewRecorder()
	rn.Page(w, helperRequest(http.MethodGet, "/admin/login", nil), "login", &PageData{
		Title: "Sign in",
		Data:  map[string]any{"Error": "Invalid email or password.", "Email": "a@b.c"},
	})

	body := w.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("standalone page should render its own document")
	}
	if strings.Contains(body, "Welcome back") {
		t.Error("standalone page should not include the admin sidebar")
	}
	for _, want := range []string{"Invalid email or password.", `value="a@b.c"`} {
		if !strings.Contains(body, want) {
			t.Errorf("login page missing %q", want)
		}
	}
}

func TestPageStatus(t *testing.T) {
	rn := newRenderer(t, true)
	w := httptest.NewRecorder()
	rn.PageStatus(w, helperRequest(http.MethodPost, "/admin/register", nil), http.StatusUnprocessableEntity, "register", &PageData{
		Title: "Create account",
		Data:  map[string]any{"Error": "Email already registered."},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email already registered.") {
		t.Error("error message not rendered")
	}
}

func TestUnknownTemplate(t *testing.T) {
	rn := newRenderer(t, true)
	w := httptest.NewRecorder()
	rn.Page(w, helperRequest(http.MethodGet, "/", nil), "nope", &PageData{})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestCSRFTokenInjected(t *testing.T) {
	rn := newRenderer(t, true)
	h := middleware.NewCSRF(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rn.Page(w, r, "login", &PageData{Title: "Sign in"})
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/login", nil))

	var token string
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("no CSRF cookie set")
	}
	if !strings.Contains(w.Body.String(), `name="csrf_token" value="`+token+`"`) {
		t.Error("CSRF token not rendered into the form")
	}
}

func TestContentFormReview(t *testing.T) {
	rn := newRenderer(t, true)
	form := editor.NewForm(models.ContentTypeReview)
	form.Title = "Camera X review"
	form.OverallScore = 8.5
	form.Settings.AwardLevel = "gold"
	form.Settings.ShowProsCons = layout.Bool(false)
	form.Settings.Pros = []string{"Sharp lens", "Light"}
	form.Criteria = []models.RatingCriterion{{ID: uuid.New(), Name: "Battery", Score: 7}}
	form.ProductSpecs = models.ProductSpecs{{Label: "Weight", Value: "400 g"}}

	w := httptest.NewRecorder()
	rn.Page(w, helperRequest(http.MethodGet, "/admin/content/new", helperSession(models.RoleAuthor)), "content_form", &PageData{
		Title:   "New review",
		Section: "content",
		Data: map[string]any{
			"Form":    form,
			"Layouts": layout.Supported(models.ContentTypeReview),
			"Awards":  layout.Awards(),
			"Options": SettingOptions(),
			"Menu":    []models.MenuCategory{},
			"Error":   &editor.ValidationError{Field: "title", Message: "Title is too long."},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body:\n%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{
		`value="Camera X review"`,
		`name="overall_score" value="8.5"`,
		`value="gold" selected`,
		"Sharp lens\nLight",
		`value="Battery"`,
		`value="400 g"`,
		`data-layout-option="enhanced-review"`,
		`value="classic" checked`,
		`data-error="title"`,
		`data-section="review"`,
		`<option value="review" selected>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("content form missing %q", want)
		}
	}
	if strings.Contains(body, `name="show_pros_cons" value="1" checked`) {
		t.Error("pros/cons toggle should be unchecked")
	}
	if !strings.Contains(body, `name="show_awards" value="1" checked`) {
		t.Error("award toggle should default to checked")
	}
}

func TestContentFormArticleHidesReviewFields(t *testing.T) {
	rn := newRenderer(t, true)
	w := httptest.NewRecorder()
	rn.Page(w, helperRequest(http.MethodGet, "/admin/content/new", helperSession(models.RoleAuthor)), "content_form", &PageData{
		Data: map[string]any{
			"Form":    editor.NewForm(models.ContentTypeArticle),
			"Layouts": layout.Supported(models.ContentTypeArticle),
			"Options": SettingOptions(),
		},
	})

	body := w.Body.String()
	if strings.Contains(body, `data-section="review"`) {
		t.Error("article form should not show review fields")
	}
	if strings.Contains(body, `data-layout-option="enhanced-review"`) {
		t.Error("article form should not offer review-only layouts")
	}
	if !strings.Contains(body, `action="/admin/content"`) {
		t.Error("new form should post to the create route")
	}
	if !strings.Contains(body, `<option value="article" selected>`) || !strings.Contains(body, `<option value="review" >`) {
		t.Error("type selector should offer review with article selected")
	}
}
