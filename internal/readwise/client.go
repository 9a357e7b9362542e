package readwise

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL  = "https://readwise.io/api/v3"
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 100
	DefaultMaxPages = 5

	maxErrorBody = 512
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	UserAgent string

	// PageSize is the page_size sent to the list endpoint.
	PageSize int
	// MaxPages bounds how many pages List follows.
	MaxPages int

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client talks to the Reader API. It is safe for concurrent use.
type Client struct {
	base      string
	token     string
	userAgent string
	pageSize  int
	maxPages  int
	http      *http.Client
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		base:      strings.TrimRight(opts.BaseURL, "/"),
		token:     strings.TrimSpace(opts.Token),
		userAgent: opts.UserAgent,
		pageSize:  opts.PageSize,
		maxPages:  opts.MaxPages,
		http:      hc,
	}
}

// HasToken reports whether the client has a token to authenticate with.
func (c *Client) HasToken() bool { return c.token != "" }

type listResponse struct {
	Count          int        `json:"count"`
	NextPageCursor string     `json:"nextPageCursor"`
	Results        []Document `json:"results"`
}

// List returns the documents in location, following page cursors up to the
// configured page limit.
func (c *Client) List(ctx context.Context, location string) ([]Document, error) {
	if !ValidLocation(location) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}

	var (
		docs   []Document
		cursor string
	)
	for page := 0; page < c.maxPages; page++ {
		q := url.Values{}
		q.Set("location", location)
		q.Set("page_size", fmt.Sprint(c.pageSize))
		if cursor != "" {
			q.Set("pageCursor", cursor)
		}

		var resp listResponse
		if err := c.do(ctx, http.MethodGet, "/list/", q, nil, &resp); err != nil {
			return nil, err
		}
		docs = append(docs, resp.Results...)
		if resp.NextPageCursor == "" {
			break
		}
		cursor = resp.NextPageCursor
	}
	return docs, nil
}

// Get fetches one document including its HTML content.
func (c *Client) Get(ctx context.Context, id string) (Document, error) {
	q := url.Values{}
	q.Set("id", id)
	q.Set("withHtmlContent", "true")

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/list/", q, nil, &resp); err != nil {
		return Document{}, err
	}
	if len(resp.Results) == 0 {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return resp.Results[0], nil
}

// Move changes the location of a document.
func (c *Client) Move(ctx context.Context, id, location string) error {
	if !ValidLocation(location) {
		return fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	body := map[string]string{"location": location}
	return c.do(ctx, http.MethodPatch, "/update/"+url.PathEscape(id)+"/", nil, body, nil)
}

// Delete removes a document.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/delete/"+url.PathEscape(id)+"/", nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c.token == "" {
		return ErrNoToken
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("readwise: encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("readwise: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("readwise: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("readwise: decoding %s response: %w", path, err)
	}
	return nil
}
