// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"html/template"
	"log/slog"

	"newsweb/internal/cms"
	"newsweb/internal/fragment"
)

// Fragments renders content items into markup. *fragment.Renderer satisfies it.
type Fragments interface {
	Summary(item cms.Item) (template.HTML, error)
	Detail(item cms.Item) (template.HTML, error)
}

// List is the news list pipeline: fetch the collection, render one summary
// per item and write them into the list container.
type List struct {
	fetcher     Fetcher
	fragments   Fragments
	endpoint    string
	placeholder bool
	observer    Observer
}

// NewList creates a list pipeline reading from endpoint. The loading
// placeholder is shown by default.
func NewList(fetcher Fetcher, fragments Fragments, endpoint string) *List {
	return &List{
		fetcher:     fetcher,
		fragments:   fragments,
		endpoint:    endpoint,
		placeholder: true,
	}
}

// SetPlaceholder toggles the loading placeholder written on entering Loading.
// Call before the pipeline is shared between goroutines.
func (l *List) SetPlaceholder(show bool) { l.placeholder = show }

// SetObserver registers a state observer. Call before the pipeline is
// shared between goroutines.
func (l *List) SetObserver(o Observer) { l.observer = o }

// Run executes one list render into dst and returns the terminal result.
// Items keep the order returned by the service. Every summary is built
// before dst is touched, so a failing item leaves no partial list behind.
func (l *List) Run(ctx context.Context, dst Container) Result {
	notify(l.observer, Loading)
	if l.placeholder {
		dst.Replace(fragment.ListLoading)
	}

	col, err := l.fetcher.FetchCollection(ctx, l.endpoint)
	if err != nil {
		slog.Error("news list fetch failed", "endpoint", l.endpoint, "error", err)
		return l.fail(dst, ReasonFetchError, err)
	}

	if len(col.Contents) == 0 {
		dst.Replace(fragment.ListEmpty)
		notify(l.observer, Empty)
		return Result{State: Empty}
	}

	parts := make([]template.HTML, 0, len(col.Contents))
	for _, item := range col.Contents {
		markup, err := l.fragments.Summary(item)
		if err != nil {
			slog.Error("news list render failed", "endpoint", l.endpoint, "id", item.ID, "error", err)
			return l.fail(dst, ReasonRenderError, err)
		}
		parts = append(parts, markup)
	}

	dst.Replace("")
	for _, p := range parts {
		dst.Append(p)
	}

	notify(l.observer, Populated)
	return Result{State: Populated, Count: len(parts)}
}

func (l *List) fail(dst Container, reason Reason, err error) Result {
	dst.Replace(fragment.ListFailed)
	notify(l.observer, Failed)
	return Result{State: Failed, Reason: reason, Err: err}
}
