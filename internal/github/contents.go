// Package github lists directory contents through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/brabenetz/archiv-index/internal/versions"
)

// Defaults for the archived settings4j documentation.
const (
	DefaultAPIURL = "https://api.github.com"
	DefaultOwner  = "brabenetz"
	DefaultRepo   = "settings4j"
	DefaultPath   = "archiv"
	DefaultRef    = "gh-pages"

	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "archiv-index"
	acceptHeader     = "application/vnd.github.v3+json"
)

// Client fetches one directory listing from the contents endpoint.
type Client struct {
	apiURL    string
	owner     string
	repo      string
	path      string
	ref       string
	userAgent string
	hc        *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL overrides the API base URL, e.g. for GitHub Enterprise or tests.
func WithAPIURL(u string) Option { return func(c *Client) { c.apiURL = u } }

// WithRepository sets the repository owner and name.
func WithRepository(owner, repo string) Option {
	return func(c *Client) { c.owner, c.repo = owner, repo }
}

// WithPath sets the directory to list and the branch, tag, or commit to read it at.
func WithPath(path, ref string) Option {
	return func(c *Client) { c.path, c.ref = path, ref }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.hc = hc } }

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc = &http.Client{Timeout: d} }
}

// WithUserAgent sets the User-Agent header GitHub requires.
func WithUserAgent(ua string) Option { return func(c *Client) { c.userAgent = ua } }

// NewClient creates a Client for the settings4j archive unless options say otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		apiURL:    DefaultAPIURL,
		owner:     DefaultOwner,
		repo:      DefaultRepo,
		path:      DefaultPath,
		ref:       DefaultRef,
		userAgent: defaultUserAgent,
		hc:        &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ContentsURL returns GET {api}/repos/{owner}/{repo}/contents/{path}?ref={ref}.
func (c *Client) ContentsURL() string {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.apiURL, c.owner, c.repo, c.path)
	if c.ref != "" {
		u += "?ref=" + url.QueryEscape(c.ref)
	}
	return u
}

// List fetches the directory listing in response order.
func (c *Client) List(ctx context.Context) ([]versions.ListingEntry, error) {
	u := c.ContentsURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &Error{Kind: KindFetch, URL: u, Cause: err}
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindFetch, URL: u, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &Error{Kind: KindNotFound, URL: u, Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &Error{Kind: KindStatus, URL: u, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindFetch, URL: u, Cause: fmt.Errorf("read body: %w", err)}
	}

	var entries []versions.ListingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Value == "object" {
			err = fmt.Errorf("%s is not a directory: %w", c.path, err)
		}
		return nil, &Error{Kind: KindDecode, URL: u, Status: resp.StatusCode, Cause: err}
	}
	return entries, nil
}
