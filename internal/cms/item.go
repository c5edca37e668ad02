// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cms

// Item is a single news article as returned by the content service.
// Content holds service-authored HTML and is treated as trusted markup.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PublishedAt string    `json:"publishedAt,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Content     string    `json:"content"`
	Thumbnail   *Image    `json:"thumbnail,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
	RevisedAt   string    `json:"revisedAt,omitempty"`
}

// Category is the reference object attached to an item. A nil category
// means the item is uncategorized.
type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Image is a media reference (used for thumbnails).
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Collection is the list endpoint response. TotalCount, Offset and Limit
// are informational only; the whole list is expected in one response.
type Collection struct {
	Contents   []Item `json:"contents"`
	TotalCount int    `json:"totalCount"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

// PublishedDate returns the date portion (first 10 characters) of
// PublishedAt, or "" when the item has no publish timestamp.
func (i *Item) PublishedDate() string {
	if len(i.PublishedAt) > 10 {
		return i.PublishedAt[:10]
	}
	return i.PublishedAt
}

// CategoryName returns the category name, or "" when uncategorized.
func (i *Item) CategoryName() string {
	if i.Category == nil {
		return ""
	}
	return i.Category.Name
}
