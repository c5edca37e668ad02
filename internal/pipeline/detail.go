// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"newsweb/internal/cms"
	"newsweb/internal/fragment"
)

// Detail is the news detail pipeline: fetch one item by id and replace the
// detail container with its rendered article.
type Detail struct {
	fetcher     Fetcher
	fragments   Fragments
	endpoint    string
	placeholder bool
	observer    Observer
}

// NewDetail creates a detail pipeline reading from endpoint.
func NewDetail(fetcher Fetcher, fragments Fragments, endpoint string) *Detail {
	return &Detail{
		fetcher:     fetcher,
		fragments:   fragments,
		endpoint:    endpoint,
		placeholder: true,
	}
}

// SetPlaceholder toggles the loading placeholder written on entering Loading.
func (d *Detail) SetPlaceholder(show bool) { d.placeholder = show }

// SetObserver registers a state observer.
func (d *Detail) SetObserver(o Observer) { d.observer = o }

// Run executes one detail render for id into dst. An empty id fails
// immediately with ReasonMissingID and no request is made.
func (d *Detail) Run(ctx context.Context, id string, dst Container) Result {
	notify(d.observer, Loading)

	if id == "" {
		slog.Warn("news detail requested without id", "endpoint", d.endpoint)
		return d.fail(dst, ReasonMissingID, cms.ErrMissingID)
	}

	if d.placeholder {
		dst.Replace(fragment.DetailLoading)
	}

	item, err := d.fetcher.FetchItem(ctx, d.endpoint, id)
	if err != nil {
		reason := ReasonFetchError
		switch {
		case cms.IsNotFound(err):
			reason = ReasonNotFound
		case errors.Is(err, cms.ErrMissingID):
			reason = ReasonMissingID
		}
		slog.Error("news detail fetch failed", "endpoint", d.endpoint, "id", id, "reason", reason, "error", err)
		return d.fail(dst, reason, err)
	}

	markup, err := d.fragments.Detail(*item)
	if err != nil {
		slog.Error("news detail render failed", "endpoint", d.endpoint, "id", id, "error", err)
		return d.fail(dst, ReasonRenderError, err)
	}

	dst.Replace(markup)
	notify(d.observer, Populated)
	return Result{State: Populated, Count: 1}
}

func (d *Detail) fail(dst Container, reason Reason, err error) Result {
	dst.Replace(fragment.DetailFailed)
	notify(d.observer, Failed)
	return Result{State: Failed, Reason: reason, Err: err}
}
