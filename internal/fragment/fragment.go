// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fragment turns content items into HTML fragments. Every function
// here is pure: it takes an item and returns markup without touching any
// container, so fragments can be tested on their own.
//
// Item content is service-authored HTML and is inserted without escaping:
// the content service is a trusted source. Deployments that cannot accept
// that trust boundary enable Options.Sanitize, which passes content through
// an allow-list policy before it is rendered. Bodies authored as Markdown
// are converted to HTML first when Options.Markdown is set.
package fragment

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"newsweb/internal/cms"
	"newsweb/internal/excerpt"
	"newsweb/internal/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fixed user-facing markup for the pipeline states.
const (
	ListLoading   template.HTML = `<li id="loading">読み込み中...</li>`
	ListEmpty     template.HTML = `<li>現在お知らせはありません。</li>`
	ListFailed    template.HTML = `<li>データの取得に失敗しました。</li>`
	DetailLoading template.HTML = `<p class="loading">読み込み中...</p>`
	DetailFailed  template.HTML = `<p>記事を読み込めませんでした。</p>`
)

// Fallback values for optional item fields.
const (
	NoDateList           = "日付未定"
	NoDateDetail         = "日付なし"
	NoCategory           = "カテゴリーなし"
	PlaceholderThumbnail = "https://dummyimage.com/960x600.jpg"
)

// ErrInvalidItem is returned for items missing a required field.
var ErrInvalidItem = errors.New("fragment: invalid item")

// Options configures a Renderer.
type Options struct {
	// ExcerptLength is the summary excerpt length; 0 uses excerpt.DefaultMaxLength.
	ExcerptLength int
	// Sanitize passes detail content through an allow-list policy.
	Sanitize bool
	// Markdown treats item content as Markdown instead of rich-text HTML.
	Markdown bool
}

// Renderer builds summary and detail fragments from content items.
// It is safe for concurrent use.
type Renderer struct {
	tmpl          *template.Template
	excerptLength int
	policy        *bluemonday.Policy // nil when content is trusted as-is
	markdown      bool
}

// summaryData is the view model for templates/summary.html.
type summaryData struct {
	ID          string
	Title       string
	PublishedAt string
	Date        string
	Category    string
	Excerpt     string
}

// detailData is the view model for templates/detail.html.
type detailData struct {
	Title           string
	PublishedAt     string
	Date            string
	Category        string
	ThumbnailURL    string
	ThumbnailWidth  int
	ThumbnailHeight int
	Content         template.HTML
}

// New parses the embedded fragment templates.
func New(opts Options) (*Renderer, error) {
	tmpl, err := template.New("fragments").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse fragment templates: %w", err)
	}

	r := &Renderer{
		tmpl:          tmpl,
		excerptLength: opts.ExcerptLength,
		markdown:      opts.Markdown,
	}
	if r.excerptLength <= 0 {
		r.excerptLength = excerpt.DefaultMaxLength
	}
	if opts.Sanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r, nil
}

// Summary renders the list entry for item: a link to its detail page, the
// publish date (or NoDateList), an optional category badge, the title and a
// plain-text excerpt of the content.
func (r *Renderer) Summary(item cms.Item) (template.HTML, error) {
	if err := validate(item); err != nil {
		return "", err
	}

	body, err := r.body(item)
	if err != nil {
		return "", err
	}

	date := item.PublishedDate()
	if date == "" {
		date = NoDateList
	}

	data := summaryData{
		ID:          item.ID,
		Title:       item.Title,
		PublishedAt: item.PublishedAt,
		Date:        date,
		Category:    item.CategoryName(),
		// The excerpt may contain entities from the source HTML; decode them
		// so the template escapes the text exactly once.
		Excerpt: html.UnescapeString(excerpt.Extract(body, r.excerptLength)),
	}
	return r.execute("summary", data)
}

// Detail renders the full article view for item.
func (r *Renderer) Detail(item cms.Item) (template.HTML, error) {
	if err := validate(item); err != nil {
		return "", err
	}
	body, err := r.body(item)
	if err != nil {
		return "", err
	}

	data := detailData{
		Title:        item.Title,
		PublishedAt:  item.PublishedAt,
		Date:         item.PublishedDate(),
		Category:     item.CategoryName(),
		ThumbnailURL: PlaceholderThumbnail,
		Content:      r.content(body),
	}
	if data.Date == "" {
		data.Date = NoDateDetail
	}
	if data.Category == "" {
		data.Category = NoCategory
	}
	if item.Thumbnail != nil && item.Thumbnail.URL != "" {
		data.ThumbnailURL = item.Thumbnail.URL
		data.ThumbnailWidth = item.Thumbnail.Width
		data.ThumbnailHeight = item.Thumbnail.Height
	}

	return r.execute("detail", data)
}

// body returns the item content as HTML.
func (r *Renderer) body(item cms.Item) (string, error) {
	if !r.markdown {
		return item.Content, nil
	}
	out, err := markdown.ToHTML(item.Content)
	if err != nil {
		return "", fmt.Errorf("item %q: %w", item.ID, err)
	}
	return out, nil
}

// content marks the item body as safe markup, sanitizing it first when a
// policy is configured.
func (r *Renderer) content(body string) template.HTML {
	if r.policy != nil {
		body = r.policy.Sanitize(body)
	}
	return template.HTML(body)
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s fragment: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func validate(item cms.Item) error {
	if item.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	}
	if item.Title == "" {
		return fmt.Errorf("%w: item %q has empty title", ErrInvalidItem, item.ID)
	}
	return nil
}
