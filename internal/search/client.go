package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/indaco/poet/internal/logging"
	"github.com/indaco/poet/internal/version"
)

// DefaultURL is the PyPI search page.
const DefaultURL = "https://pypi.org/search/"

// maxBodySize caps how much of a results page is read.
const maxBodySize = 5 * 1024 * 1024

// Searcher finds packages matching a query.
// Implementations never fail: any problem yields an empty mapping.
type Searcher interface {
	Search(ctx context.Context, query string) *Candidates
}

// Client queries a PyPI-compatible HTML search page.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Verify Client implements Searcher.
var _ Searcher = (*Client)(nil)

// NewClient creates a Client for baseURL. An empty baseURL selects DefaultURL
// and a nil httpClient selects http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Search performs a single request for query and parses the results.
// Transport errors and error statuses are logged and produce an empty mapping.
func (c *Client) Search(ctx context.Context, query string) *Candidates {
	logger := logging.FromContext(ctx)

	body, err := c.fetch(ctx, query)
	if err != nil {
		logger.Debug("package search failed", "query", query, "err", err)
		return NewCandidates()
	}
	defer body.Close()

	candidates := Parse(io.LimitReader(body, maxBodySize))
	logger.Debug("package search done", "query", query, "results", candidates.Len())
	return candidates
}

// fetch issues the GET request and returns the response body on success.
func (c *Client) fetch(ctx context.Context, query string) (io.ReadCloser, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search url %q: %w", c.baseURL, err)
	}
	params := u.Query()
	params.Set("q", query)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "poet/"+version.GetVersion())
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u.Redacted(), err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, u.Redacted())
	}

	return resp.Body, nil
}
