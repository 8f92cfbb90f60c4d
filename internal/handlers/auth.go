// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"reviewpress/internal/middleware"
	"reviewpress/internal/models"
	"reviewpress/internal/render"
	"reviewpress/internal/session"
	"reviewpress/internal/store"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	renderer  *render.Renderer
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		renderer:  renderer,
		sessions:  sessions,
		userStore: userStore,
	}
}

// LoginPage renders the sign-in form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign in",
		Data:  map[string]any{"Email": ""},
	})
}

// LoginSubmit checks the credentials and starts a session.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := normalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := a.userStore.FindByEmail(r.Context(), email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		a.loginError(w, r, http.StatusInternalServerError, email, "An unexpected error occurred.")
		return
	}
	if user == nil || !a.userStore.CheckPassword(user, password) {
		slog.Warn("login failed", "email", email, "remote", middleware.ClientIP(r))
		a.loginError(w, r, http.StatusUnauthorized, email, "Invalid email or password.")
		return
	}

	if err := a.startSession(w, r, user); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	slog.Info("user signed in", "user_id", user.ID)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// RegisterPage renders the sign-up form.
func (a *Auth) RegisterPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "register", &render.PageData{
		Title: "Create account",
		Data:  map[string]any{"Email": "", "DisplayName": ""},
	})
}

// RegisterSubmit creates an account and signs it in. The first account
// becomes an admin; later ones are authors.
func (a *Auth) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := normalizeEmail(r.FormValue("email"))
	displayName := strings.TrimSpace(r.FormValue("display_name"))
	password := r.FormValue("password")

	fail := func(status int, msg string) {
		a.renderer.PageStatus(w, r, status, "register", &render.PageData{
			Title: "Create account",
			Data:  map[string]any{"Error": msg, "Email": email, "DisplayName": displayName},
		})
	}

	if msg := validateRegistration(email, displayName, password); msg != "" {
		fail(http.StatusUnprocessableEntity, msg)
		return
	}
	existing, err := a.userStore.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("register lookup failed", "error", err)
		fail(http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if existing != nil {
		fail(http.StatusUnprocessableEntity, "An account with this email already exists.")
		return
	}

	user, err := a.userStore.Create(ctx, email, password, displayName, models.RoleAuthor)
	if err != nil {
		slog.Error("create user failed", "error", err)
		fail(http.StatusInternalServerError, "The account could not be created.")
		return
	}
	slog.Info("user registered", "user_id", user.ID, "role", user.Role)

	if err := a.startSession(w, r, user); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// Logout destroys the session and returns to the sign-in page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (a *Auth) startSession(w http.ResponseWriter, r *http.Request, user *models.User) error {
	if _, err := a.sessions.Create(r.Context(), w, session.FromUser(user)); err != nil {
		slog.Error("session create failed", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}

func (a *Auth) loginError(w http.ResponseWriter, r *http.Request, status int, email, msg string) {
	a.renderer.PageStatus(w, r, status, "login", &render.PageData{
		Title: "Sign in",
		Data:  map[string]any{"Error": msg, "Email": email},
	})
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
