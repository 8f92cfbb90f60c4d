// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package middleware holds the HTTP middleware of the site: session
// loading and role checks, CSRF protection, login rate limiting, request
// logging, panic recovery and security headers.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"reviewpress/internal/models"
	"reviewpress/internal/session"
)

type contextKey string

// SessionKey is the context key of the loaded session.
const SessionKey contextKey = "session"

// SessionLoader reads the session of a request. *session.Store implements it.
type SessionLoader interface {
	Get(ctx context.Context, r *http.Request) (*session.Data, error)
}

// LoadSession puts the request's session, if any, in the context. It never
// blocks a request; a failing store is treated as signed out.
func LoadSession(store SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				slog.Warn("session load failed", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}
			if data != nil {
				r = r.WithContext(WithSession(r.Context(), data))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth redirects requests without a session to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromCtx(r.Context()) == nil {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSiteManager allows admins and editors, who may edit menus and
// pages. Everyone else gets 403.
func RequireSiteManager(next http.Handler) http.Handler {
	return requireRole(next, models.RoleAdmin, models.RoleEditor)
}

// RequireAdmin allows admins only.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, models.RoleAdmin)
}

func requireRole(next http.Handler, roles ...models.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess != nil {
			for _, role := range roles {
				if sess.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
		}
		http.Error(w, "Forbidden", http.StatusForbidden)
	})
}

// WithSession returns a context carrying data.
func WithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, SessionKey, data)
}

// SessionFromCtx returns the loaded session, or nil when signed out.
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}
