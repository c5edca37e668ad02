package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Run("generates an id when none is supplied", func(t *testing.T) {
		var got string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = RequestIDFromCtx(r.Context())
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/news/", nil))

		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("request id %q should be a UUID: %v", got, err)
		}
		if rr.Header().Get(RequestIDHeader) != got {
			t.Errorf("response header: got %q, want %q", rr.Header().Get(RequestIDHeader), got)
		}
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		var got string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = RequestIDFromCtx(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/news/", nil)
		req.Header.Set(RequestIDHeader, "edge-42")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if got != "edge-42" {
			t.Errorf("request id: got %q, want %q", got, "edge-42")
		}
	})

	t.Run("replaces oversized incoming header", func(t *testing.T) {
		var got string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = RequestIDFromCtx(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/news/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if len(got) > maxRequestIDLength {
			t.Errorf("request id should be regenerated, got length %d", len(got))
		}
	})
}

func TestRequestIDFromCtxWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := RequestIDFromCtx(req.Context()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
