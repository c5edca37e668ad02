// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsweb/internal/cms"
	"newsweb/internal/fragment"
	"newsweb/internal/handlers"
	"newsweb/internal/middleware"
	"newsweb/internal/pipeline"
	"newsweb/internal/render"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

// newTestRouter wires the full stack against a fake content service.
func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/news":
			w.Write([]byte(`{"contents":[{"id":"a1","title":"Hello","content":"<p>hi</p>"}]}`))
		case "/api/v1/news/a1":
			w.Write([]byte(`{"id":"a1","title":"Hello","content":"<p>hi</p>"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	client := cms.New(cms.Config{BaseURL: upstream.URL, APIKey: "k"})
	frags, err := fragment.New(fragment.Options{})
	require.NoError(t, err)
	renderer, err := render.New(false)
	require.NoError(t, err)

	endpoint := client.Endpoint("news")
	public := handlers.NewPublic(renderer,
		pipeline.NewList(client, frags, endpoint),
		pipeline.NewDetail(client, frags, endpoint),
	)

	static := fstest.MapFS{"css/news.css": {Data: []byte("body{}")}}
	return New(public, limiter, static)
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		method, target string
		status         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/", http.StatusFound},
		{http.MethodGet, "/news", http.StatusOK},
		{http.MethodGet, "/news/", http.StatusOK},
		{http.MethodGet, "/news/post/?id=a1", http.StatusOK},
		{http.MethodGet, "/news/post?id=a1", http.StatusOK},
		{http.MethodGet, "/news/post/?id=zz", http.StatusNotFound},
		{http.MethodGet, "/news/post/", http.StatusBadRequest},
		{http.MethodGet, "/static/css/news.css", http.StatusOK},
		{http.MethodGet, "/unknown", http.StatusNotFound},
		{http.MethodPost, "/news/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGlobalMiddleware(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/", nil))

	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestStaticCaching(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/news.css", nil))

	assert.Equal(t, staticCacheControl, rec.Header().Get("Cache-Control"))
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestRateLimitedNewsRoutes(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	t.Cleanup(limiter.Stop)
	r := newTestRouter(t, limiter)

	get := func(target string) int {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get("/news/"))
	assert.Equal(t, http.StatusTooManyRequests, get("/news/post/?id=a1"))

	// Health and static assets are not limited.
	assert.Equal(t, http.StatusOK, get("/health"))
	assert.Equal(t, http.StatusOK, get("/static/css/news.css"))
}
