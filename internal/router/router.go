// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// news site. Page routes sit behind a per-IP rate limiter because every
// page view costs one content-service request.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsweb/internal/handlers"
	"newsweb/internal/middleware"
)

// staticCacheControl applies to embedded assets, which only change on deploy.
const staticCacheControl = "public, max-age=3600"

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. static is served under /static/ and may be nil.
func New(public *handlers.Public, limiter *middleware.RateLimiter, static fs.FS) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	if static != nil {
		r.Handle("/static/*", staticHandler(static))
	}

	// News pages.
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/", public.Index)
		r.Get("/news", public.NewsList)
		r.Get("/news/", public.NewsList)
		r.Get("/news/post", public.NewsPost)
		r.Get("/news/post/", public.NewsPost)
	})

	return r
}

// staticHandler serves files from static with long-lived caching.
func staticHandler(static fs.FS) http.Handler {
	files := http.StripPrefix("/static/", http.FileServerFS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", staticCacheControl)
		files.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
