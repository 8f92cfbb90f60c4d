// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"reviewpress/internal/editor"
	"reviewpress/internal/engine"
	"reviewpress/internal/layout"
	"reviewpress/internal/models"
	"reviewpress/internal/render"
)

// adminListLimit caps the admin content table.
const adminListLimit = 200

// ContentList renders the content table, optionally filtered by type and
// status.
func (a *Admin) ContentList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ContentFilter{Limit: adminListLimit}
	if t := models.ContentType(q.Get("type")); t.Valid() {
		filter.Type = t
	}
	switch s := models.ContentStatus(q.Get("status")); s {
	case models.ContentStatusDraft, models.ContentStatusPublished:
		filter.Status = s
	}

	items, err := a.contents.List(r.Context(), filter)
	if err != nil {
		slog.Error("list content failed", "error", err)
	}

	a.renderer.Page(w, r, "content_list", &render.PageData{
		Title:   "Content",
		Section: "content",
		Data: map[string]any{
			"Items":  items,
			"Type":   string(filter.Type),
			"Status": string(filter.Status),
		},
		Flashes: flashesFrom(r),
	})
}

// ContentNew renders an empty form for ?type=article or ?type=review.
func (a *Admin) ContentNew(w http.ResponseWriter, r *http.Request) {
	form := editor.NewForm(models.ContentType(r.URL.Query().Get("type")))
	a.renderForm(w, r, http.StatusOK, form, nil)
}

// ContentEdit renders the form of a stored item.
func (a *Admin) ContentEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	form, err := a.editor.Load(r.Context(), id)
	if err != nil {
		slog.Error("load content failed", "content_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if form == nil {
		http.NotFound(w, r)
		return
	}
	a.renderForm(w, r, http.StatusOK, form, nil)
}

// ContentCreate saves a new item from the form.
func (a *Admin) ContentCreate(w http.ResponseWriter, r *http.Request) {
	a.saveContent(w, r, uuid.Nil)
}

// ContentUpdate saves an existing item from the form.
func (a *Admin) ContentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	a.saveContent(w, r, id)
}

func (a *Admin) saveContent(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	base, status := a.formBase(r, id)
	if base == nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	form, verr := parseContentForm(r.PostForm, base)
	if verr != nil {
		a.renderForm(w, r, http.StatusUnprocessableEntity, form, verr)
		return
	}

	saved, err := a.editor.Save(r.Context(), form, currentUser(r))
	switch {
	case errors.Is(err, editor.ErrUnauthorized):
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	case errors.As(err, &verr):
		a.renderForm(w, r, http.StatusUnprocessableEntity, form, verr)
		return
	case err != nil && saved != nil:
		http.Redirect(w, r, "/admin/content/"+saved.ID.String()+"/edit?flash=partial", http.StatusSeeOther)
		return
	case err != nil:
		slog.Error("save content failed", "content_id", id, "error", err)
		a.renderForm(w, r, http.StatusInternalServerError, form,
			&editor.ValidationError{Message: "The content could not be saved. Please try again."})
		return
	}

	http.Redirect(w, r, "/admin/content/"+saved.ID.String()+"/edit?flash=saved", http.StatusSeeOther)
}

// formBase returns the form the submission is applied to: the stored
// record for edits, a new form otherwise. On failure it returns nil and the
// status to answer with.
func (a *Admin) formBase(r *http.Request, id uuid.UUID) (*editor.FormData, int) {
	if id == uuid.Nil {
		return editor.NewForm(models.ContentType(r.PostFormValue("type"))), http.StatusOK
	}
	form, err := a.editor.Load(r.Context(), id)
	if err != nil {
		slog.Error("load content failed", "content_id", id, "error", err)
		return nil, http.StatusInternalServerError
	}
	if form == nil {
		return nil, http.StatusNotFound
	}
	return form, http.StatusOK
}

// ContentToggle flips an item between draft and published.
func (a *Admin) ContentToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	updated, err := a.editor.ToggleStatus(r.Context(), id, currentUser(r))
	switch {
	case errors.Is(err, editor.ErrUnauthorized):
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	case err != nil:
		slog.Error("toggle status failed", "content_id", id, "error", err)
		http.Redirect(w, r, "/admin/content?flash=failed", http.StatusSeeOther)
		return
	case updated == nil:
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/admin/content?flash=status", http.StatusSeeOther)
}

// ContentPreview renders the submitted form through the public layouts
// without saving it.
func (a *Admin) ContentPreview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id, _ := uuid.Parse(r.PostFormValue("id"))
	base, status := a.formBase(r, id)
	if base == nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	form, verr := parseContentForm(r.PostForm, base)
	if verr != nil {
		http.Error(w, verr.Message, http.StatusUnprocessableEntity)
		return
	}
	if user := currentUser(r); user != nil && form.AuthorName == "" {
		form.AuthorName = user.DisplayName
	}

	article, err := engine.FromForm(form)
	if err != nil {
		slog.Error("preview failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	body, err := a.engine.Render(article)
	if err != nil {
		slog.Error("preview render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	nav, err := a.nav.Header(r.Context())
	if err != nil {
		slog.Warn("preview navigation unavailable", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.engine.RenderPage(w, &engine.PageData{
		Title:   "Preview: " + form.Title,
		Nav:     nav,
		Content: template.HTML(body),
	}); err != nil {
		slog.Error("preview shell failed", "error", err)
	}
}

func (a *Admin) renderForm(w http.ResponseWriter, r *http.Request, status int, form *editor.FormData, verr *editor.ValidationError) {
	menu, err := a.nav.BuildMenu(r.Context())
	if err != nil {
		slog.Error("load menu for content form failed", "error", err)
	}

	title := "Edit " + form.Title
	if form.IsNew() {
		title = "New " + string(form.Type)
	}

	a.renderer.PageStatus(w, r, status, "content_form", &render.PageData{
		Title:   title,
		Section: "content",
		Data: map[string]any{
			"Form":    form,
			"Layouts": layout.Supported(form.Type),
			"Awards":  layout.Awards(),
			"Options": render.SettingOptions(),
			"Menu":    menu,
			"Error":   verr,
		},
		Flashes: flashesFrom(r),
	})
}
