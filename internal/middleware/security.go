// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// ContentSecurityPolicy is sent with every response. Scripts come from this
// origin and the htmx CDN. Article bodies are CMS rich text, so images may
// come from any https host, inline styles are allowed, and embedded players
// may load in https frames.
const ContentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://unpkg.com; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' https: data:; " +
	"frame-src https:; " +
	"object-src 'none'; " +
	"base-uri 'self'; " +
	"frame-ancestors 'self'"

// SecureHeaders adds security-related HTTP headers to every response.
// Pages are rebuilt from a fresh content fetch on each request, so they are
// also marked no-cache to keep intermediaries from serving stale news.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// Legacy XSS filter off; CSP covers it.
		h.Set("X-XSS-Protection", "0")

		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "interest-cohort=()")
		h.Set("Content-Security-Policy", ContentSecurityPolicy)

		if h.Get("Cache-Control") == "" {
			h.Set("Cache-Control", "no-cache")
		}

		next.ServeHTTP(w, r)
	})
}
