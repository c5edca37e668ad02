// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides the page shells that embed pipeline containers.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

//go:embed templates/pages/*.html
var pagesFS embed.FS

// SiteName is shown in titles, header and footer.
const SiteName = "お知らせ"

// PageData holds all data passed to page templates.
type PageData struct {
	Title       string        // Page title for <title> and the section heading
	Section     string        // "news" or "post"; used as a body class
	ContainerID string        // id of the element that holds Container
	Container   template.HTML // markup written by the pipeline
	State       string        // terminal pipeline state, exposed as data-state
	SiteName    string
	Year        int
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing every page template from the embedded
// filesystem, each paired with the base layout. When devMode is true the
// layout loads unminified client assets.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// isDev returns true when the app runs in development mode.
			"isDev": func() bool {
				return devMode
			},
		},
	}

	entries, err := fs.ReadDir(pagesFS, "templates/pages")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			pagesFS, "templates/pages/base.html", "templates/pages/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Page renders a full page or an HTMX partial with the given status code.
// For HTMX requests only the "content" block is sent, always with 200:
// htmx does not swap 4xx/5xx responses, and the partial's data-state already
// tells the client how the run ended. Output is buffered so a template
// failure still produces a clean 500.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	if data.SiteName == "" {
		data.SiteName = SiteName
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	execName := "base.html"
	if isHTMX(r) {
		execName = "content"
		status = http.StatusOK
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		slog.Error("page render failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
