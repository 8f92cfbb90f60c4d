// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains of
// ReviewPress. Routes are split into the public site and the admin panel,
// each with its own middleware stack.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"reviewpress/internal/handlers"
	"reviewpress/internal/metrics"
	"reviewpress/internal/middleware"
	"reviewpress/web"
)

// New creates the Chi router with all middleware and route groups wired
// up. loginLimiter throttles login and registration attempts per client.
func New(sessions middleware.SessionLoader, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, secureCookies bool, loginLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	r.Get("/health", healthHandler)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", staticHandler())

	// Public site.
	r.Get("/", public.Homepage)
	r.Get("/articles", public.Articles)
	r.Get("/reviews", public.Reviews)
	r.Get("/c/{category}", public.Category)
	r.Get("/c/{category}/{sub}", public.Subcategory)
	r.Get("/read/{id}", public.Read)
	r.Get("/api/navigation", public.NavigationJSON)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))

		// Auth pages, reachable without a session.
		r.Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Get("/register", auth.RegisterPage)
		r.With(loginLimiter.Middleware).Post("/register", auth.RegisterSubmit)
		r.Post("/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/", admin.Dashboard)
			r.Get("/dashboard", admin.Dashboard)

			r.Route("/content", func(r chi.Router) {
				r.Get("/", admin.ContentList)
				r.Get("/new", admin.ContentNew)
				r.Post("/", admin.ContentCreate)
				r.Post("/preview", admin.ContentPreview)
				r.Get("/{id}/edit", admin.ContentEdit)
				r.Post("/{id}", admin.ContentUpdate)
				r.Post("/{id}/toggle", admin.ContentToggle)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", admin.MediaLibrary)
				r.Post("/", admin.MediaUpload)
				r.Post("/{id}/delete", admin.MediaDelete)
			})

			r.Get("/account", admin.Account)
			r.Post("/account/password", admin.AccountPassword)

			// Menus and landing pages: admins and editors.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSiteManager)

				r.Route("/menus", func(r chi.Router) {
					r.Get("/", admin.MenusPage)
					r.Post("/", admin.CategoryCreate)
					r.Post("/{id}", admin.CategoryUpdate)
					r.Post("/{id}/move", admin.CategoryMove)
					r.Post("/{id}/delete", admin.CategoryDelete)
					r.Post("/{id}/items", admin.ItemCreate)
					r.Post("/items/{id}", admin.ItemUpdate)
					r.Post("/items/{id}/move", admin.ItemMove)
					r.Post("/items/{id}/delete", admin.ItemDelete)
				})

				r.Route("/pages", func(r chi.Router) {
					r.Get("/", admin.PagesList)
					r.Post("/", admin.PageCreate)
					r.Post("/{id}/delete", admin.PageDelete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.UsersList)
				r.Post("/{id}/role", admin.UserRole)
				r.Post("/{id}/delete", admin.UserDelete)
			})
		})
	})

	return r
}

// staticHandler serves the embedded web/static tree under /static/.
func staticHandler() http.Handler {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("router: static assets: " + err.Error())
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
