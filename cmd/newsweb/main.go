// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the news site server.
// It loads configuration, wires the content client and pipelines, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsweb/internal/cms"
	"newsweb/internal/config"
	"newsweb/internal/fragment"
	"newsweb/internal/handlers"
	"newsweb/internal/middleware"
	"newsweb/internal/pipeline"
	"newsweb/internal/render"
	"newsweb/internal/router"
	"newsweb/web"
)

// newsEndpoint is the content-service API holding the announcements.
const newsEndpoint = "news"

func main() {
	// Text logs until the environment is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON outside development.
	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"cms", cfg.BaseURL,
		"cms_timeout", cfg.Timeout,
		"sanitize", cfg.Sanitize,
		"content_format", cfg.ContentFormat,
	)
	if cfg.BaseURL == "" {
		slog.Warn("content service not configured, news pages will show the failure message")
	}

	client := cms.New(cms.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})

	frags, err := fragment.New(fragment.Options{
		Sanitize: cfg.Sanitize,
		Markdown: cfg.IsMarkdown(),
	})
	if err != nil {
		slog.Error("failed to initialize fragment templates", "error", err)
		os.Exit(1)
	}

	// Page shells. In dev mode the layout loads unminified client assets.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	endpoint := client.Endpoint(newsEndpoint)
	list := pipeline.NewList(client, frags, endpoint)
	detail := pipeline.NewDetail(client, frags, endpoint)
	if cfg.IsDev() {
		list.SetObserver(traceState("list"))
		detail.SetObserver(traceState("detail"))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	limiter.SetTrustProxy(cfg.TrustProxy)
	defer limiter.Stop()

	publicHandlers := handlers.NewPublic(renderer, list, detail)
	r := router.New(publicHandlers, limiter, web.Static())

	// WriteTimeout must cover the upstream fetch plus rendering.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// traceState logs every pipeline state transition at debug level.
func traceState(name string) pipeline.Observer {
	return func(s pipeline.State) {
		slog.Debug("pipeline state", "pipeline", name, "state", s.String(), "terminal", s.Terminal())
	}
}
