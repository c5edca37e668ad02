// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pipeline implements the fetch → transform → render sequences for
// the news list and news detail views. Each Run is a small state machine
// that starts in Loading and ends in exactly one terminal state; a new Run
// always starts over with a fresh fetch.
package pipeline

import (
	"context"

	"newsweb/internal/cms"
)

// State is a pipeline state.
type State int

const (
	Loading State = iota
	Populated
	Empty
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Populated:
		return "populated"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions follow s within a run.
func (s State) Terminal() bool {
	return s != Loading
}

// Reason explains why a run ended in Failed.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonFetchError  Reason = "fetch_error"
	ReasonNotFound    Reason = "not_found"
	ReasonMissingID   Reason = "missing_id"
	ReasonRenderError Reason = "render_error"
)

// Result is the outcome of one pipeline run.
type Result struct {
	State  State
	Reason Reason
	Count  int   // fragments written (list: items, detail: 0 or 1)
	Err    error // underlying error, never shown to end users
}

// Observer is notified of every state a run enters, in order.
type Observer func(State)

// Fetcher is the subset of the content client the pipelines depend on.
// *cms.Client satisfies it.
type Fetcher interface {
	FetchCollection(ctx context.Context, endpoint string) (*cms.Collection, error)
	FetchItem(ctx context.Context, endpoint, id string) (*cms.Item, error)
}

func notify(o Observer, s State) {
	if o != nil {
		o(s)
	}
}
