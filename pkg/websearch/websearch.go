package websearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	mhttp "github.com/feedarr/feedarr/pkg/http"
)

// Searcher pattern-matches an IMDB id out of generic search-engine result
// markup. It is the lowest-confidence resolution step; any later successful
// provider match supersedes its answer.
type Searcher interface {
	FindImdbID(ctx context.Context, query string) (string, error)
}

var imdbIDRegex = regexp.MustCompile(`tt\d{7,}`)

// Client scrapes a search endpoint for IMDB ids
type Client struct {
	baseURL string
	client  mhttp.HTTPClient
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a web search fallback client. baseURL is the search endpoint;
// the query is appended as the q parameter.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  mhttp.NewRateLimitedClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FindImdbID searches for the query plus an imdb hint and returns the first
// IMDB id found in the result markup. An empty id with nil error means the
// markup contained none.
func (c *Client) FindImdbID(ctx context.Context, query string) (string, error) {
	params := url.Values{"q": []string{query + " imdb"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("accept", "text/html")

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected search response status: %s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	return imdbIDRegex.FindString(string(b)), nil
}
