// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cms is the client for the headless content service that supplies
// news items. It performs single authenticated GET requests and decodes the
// JSON responses; it never retries and never caches.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// apiKeyHeader carries the service credential on every request.
	apiKeyHeader = "X-API-KEY"

	// apiPrefix is the versioned API path under the service base URL.
	apiPrefix = "/api/v1/"

	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody limits how much of an error response ends up in logs.
	maxErrorBody = 512
)

// Config holds the connection settings for the content service. It is
// provided once at startup and not modified afterwards.
type Config struct {
	BaseURL    string        // e.g. "https://example.microcms.io"
	APIKey     string        // sent as X-API-KEY
	Timeout    time.Duration // 0 uses DefaultTimeout
	HTTPClient *http.Client  // optional; overrides Timeout when set
}

// Client retrieves collections and single items from the content service.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    hc,
	}
}

// Endpoint returns the full URL of a named API endpoint,
// e.g. Endpoint("news") → "{base}/api/v1/news".
func (c *Client) Endpoint(name string) string {
	return c.baseURL + apiPrefix + strings.Trim(name, "/")
}

// collectionBody mirrors Collection but detects a missing "contents" key.
type collectionBody struct {
	Contents   *[]Item `json:"contents"`
	TotalCount int     `json:"totalCount"`
	Offset     int     `json:"offset"`
	Limit      int     `json:"limit"`
}

// FetchCollection retrieves every item from endpoint in service order.
func (c *Client) FetchCollection(ctx context.Context, endpoint string) (*Collection, error) {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var raw collectionBody
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &FetchError{URL: endpoint, Err: fmt.Errorf("decode collection: %w", err)}
	}
	if raw.Contents == nil {
		return nil, &FetchError{URL: endpoint, Err: errors.New("decode collection: missing contents")}
	}

	return &Collection{
		Contents:   *raw.Contents,
		TotalCount: raw.TotalCount,
		Offset:     raw.Offset,
		Limit:      raw.Limit,
	}, nil
}

// FetchItem retrieves the item with the given id from endpoint. It returns
// ErrMissingID for an empty id and *NotFoundError when the service answers 404.
func (c *Client) FetchItem(ctx context.Context, endpoint, id string) (*Item, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	target := strings.TrimRight(endpoint, "/") + "/" + url.PathEscape(id)
	body, err := c.get(ctx, target)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, &FetchError{URL: target, Err: fmt.Errorf("decode item: %w", err)}
	}
	return &item, nil
}

// get performs one authenticated GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: target, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &FetchError{
			URL:    target,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	return body, nil
}
