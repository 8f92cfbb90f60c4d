// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the ReviewPress server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reviewpress/internal/cache"
	"reviewpress/internal/config"
	"reviewpress/internal/database"
	"reviewpress/internal/editor"
	"reviewpress/internal/engine"
	"reviewpress/internal/handlers"
	"reviewpress/internal/middleware"
	"reviewpress/internal/navigation"
	"reviewpress/internal/render"
	"reviewpress/internal/router"
	"reviewpress/internal/session"
	"reviewpress/internal/storage"
	"reviewpress/internal/store"
)

const siteName = "ReviewPress"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Text logs in development, JSON everywhere else.
	var logHandler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	if cfg.IsDev() {
		logHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	userStore := store.NewUserStore(db)
	contentStore := store.NewContentStore(db)
	reviewStore := store.NewReviewStore(db)
	menuStore := store.NewMenuStore(db)
	pageStore := store.NewPageStore(db)
	mediaStore := store.NewMediaStore(db)
	statsStore := store.NewStatsStore(db)
	cacheLogStore := store.NewCacheLogStore(db)

	// Object storage is optional; without it media uploads are disabled.
	var storageClient *storage.Client
	if cfg.StorageEnabled() {
		storageClient, err = storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	pageCache := cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
	nav := navigation.NewService(menuStore, cache.NewMenuCache(valkeyClient, cfg.MenuCacheTTL))
	editorSvc := editor.NewService(contentStore, reviewStore, pageStore, menuStore,
		cache.NewContentInvalidator(pageCache, cacheLogStore))
	eng := engine.New(siteName)

	adminHandlers := handlers.NewAdmin(renderer, editorSvc, eng, contentStore, userStore, menuStore, pageStore, mediaStore, statsStore, cacheLogStore, nav, pageCache, storageClient)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	publicHandlers := handlers.NewPublic(eng, contentStore, menuStore, pageStore, statsStore, nav, pageCache)

	loginLimiter := middleware.PerMinute(cfg.LoginRatePerMinute)
	defer loginLimiter.Stop()

	r := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers, secureCookies, loginLimiter)

	// WriteTimeout covers media uploads of up to 10 MB plus thumbnailing.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
