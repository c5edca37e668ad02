// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public news pages.
// Each request runs one fresh pipeline into its own container and then
// renders the page shell around it.
package handlers

import (
	"log/slog"
	"net/http"

	"newsweb/internal/middleware"
	"newsweb/internal/pipeline"
	"newsweb/internal/render"
)

// Container names; they become element ids in the page shells.
const (
	ListContainer   = "news-list"
	DetailContainer = "news-detail"
)

// Page titles.
const (
	listTitle   = "お知らせ一覧"
	detailTitle = "お知らせ"
)

// idParam is the query parameter carrying the item id on the detail page.
const idParam = "id"

// Public groups handlers for the news list and detail pages.
type Public struct {
	renderer *render.Renderer
	list     *pipeline.List
	detail   *pipeline.Detail
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, list *pipeline.List, detail *pipeline.Detail) *Public {
	return &Public{
		renderer: renderer,
		list:     list,
		detail:   detail,
	}
}

// Index redirects the site root to the news list.
func (p *Public) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/news/", http.StatusFound)
}

// NewsList renders the list page. Empty and failed lists still render the
// page shell with the corresponding message in the container.
func (p *Public) NewsList(w http.ResponseWriter, r *http.Request) {
	buf := pipeline.NewBuffer(ListContainer)
	res := p.list.Run(r.Context(), buf)

	slog.Debug("news list rendered",
		"state", res.State.String(),
		"count", res.Count,
		"request_id", middleware.RequestIDFromCtx(r.Context()),
	)

	p.renderer.Page(w, r, StatusFor(res), "news", &render.PageData{
		Title:       listTitle,
		Section:     "news",
		ContainerID: buf.Name(),
		Container:   buf.HTML(),
		State:       res.State.String(),
	})
}

// NewsPost renders the detail page for the item named by the "id" query
// parameter.
func (p *Public) NewsPost(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(idParam)

	buf := pipeline.NewBuffer(DetailContainer)
	res := p.detail.Run(r.Context(), id, buf)

	slog.Debug("news detail rendered",
		"id", id,
		"state", res.State.String(),
		"reason", string(res.Reason),
		"request_id", middleware.RequestIDFromCtx(r.Context()),
	)

	p.renderer.Page(w, r, StatusFor(res), "post", &render.PageData{
		Title:       detailTitle,
		Section:     "post",
		ContainerID: buf.Name(),
		Container:   buf.HTML(),
		State:       res.State.String(),
	})
}

// StatusFor maps a pipeline result to the HTTP status of the page.
// render.Page sends HTMX partials with 200 regardless.
func StatusFor(res pipeline.Result) int {
	if res.State != pipeline.Failed {
		return http.StatusOK
	}
	switch res.Reason {
	case pipeline.ReasonMissingID:
		return http.StatusBadRequest
	case pipeline.ReasonNotFound:
		return http.StatusNotFound
	case pipeline.ReasonRenderError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
