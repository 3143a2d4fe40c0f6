package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	mhttp "github.com/feedarr/feedarr/pkg/http"
)

// ClientInterface is the secondary metadata provider surface: a string-id
// database searched by title, used as a fallback and cross-check source
type ClientInterface interface {
	SearchByTitle(ctx context.Context, title string, year *int) (*Result, error)
}

// Result is a secondary-provider match
type Result struct {
	ImdbID string
	Title  string
	Year   *int
}

// Client talks to an OMDb-compatible API
type Client struct {
	baseURL string
	apiKey  string
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

// New creates a secondary provider client
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  mhttp.NewRateLimitedClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type searchResponse struct {
	Response string `json:"Response"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	ImdbID   string `json:"imdbID"`
}

// SearchByTitle looks up a title, optionally constrained by year. A nil
// result means the provider had no match.
func (c *Client) SearchByTitle(ctx context.Context, title string, year *int) (*Result, error) {
	params := url.Values{
		"apikey": []string{c.apiKey},
		"t":      []string{title},
	}
	if year != nil {
		params.Set("y", strconv.Itoa(*year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected secondary provider status: %s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, err
	}

	// the API reports misses with Response=False and a 200 status
	if !strings.EqualFold(resp.Response, "true") || resp.ImdbID == "" {
		return nil, nil
	}

	result := &Result{
		ImdbID: resp.ImdbID,
		Title:  resp.Title,
	}
	// year can be a range for series, take the leading year
	if len(resp.Year) >= 4 {
		if y, err := strconv.Atoi(resp.Year[:4]); err == nil {
			result.Year = &y
		}
	}

	return result, nil
}
