// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"html/template"
	"strings"
)

// Container is the markup target a pipeline writes into. A container is
// owned by exactly one pipeline run; nothing else writes to it while the
// run is in progress.
type Container interface {
	// Replace discards the current contents and sets them to markup.
	Replace(markup template.HTML)
	// Append adds markup after the current contents.
	Append(markup template.HTML)
	// HTML returns the current contents.
	HTML() template.HTML
}

// Buffer is an in-memory Container identified by a stable name
// (e.g. "news-list"). A zero Buffer is an empty, unnamed container.
type Buffer struct {
	name  string
	parts []template.HTML
}

// NewBuffer creates an empty named buffer.
func NewBuffer(name string) *Buffer {
	return &Buffer{name: name}
}

// Name returns the container name used as the element id in page shells.
func (b *Buffer) Name() string { return b.name }

func (b *Buffer) Replace(markup template.HTML) {
	b.parts = b.parts[:0]
	if markup != "" {
		b.parts = append(b.parts, markup)
	}
}

func (b *Buffer) Append(markup template.HTML) {
	b.parts = append(b.parts, markup)
}

func (b *Buffer) HTML() template.HTML {
	var sb strings.Builder
	for _, p := range b.parts {
		sb.WriteString(string(p))
	}
	return template.HTML(sb.String())
}
