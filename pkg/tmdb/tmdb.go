package tmdb

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
	"github.com/oapi-codegen/nullable"
)

// ClientInterface is the primary metadata provider surface consumed by the
// resolver
type ClientInterface interface {
	SearchMovie(ctx context.Context, query string, year *int) (*Movie, error)
	GetMovieDetails(ctx context.Context, id int) (*MovieDetails, error)
	FindByImdbID(ctx context.Context, imdbID string) (*Movie, error)
	SearchTV(ctx context.Context, query string) (*TV, error)
	GetTVDetails(ctx context.Context, id int) (*TVDetails, error)
}

// Movie is a search or find result
type Movie struct {
	ID          int                       `json:"id"`
	Title       string                    `json:"title"`
	ReleaseDate nullable.Nullable[string] `json:"release_date,omitempty"`
}

// MovieDetails is the full record for a movie id
type MovieDetails struct {
	ID          int                       `json:"id"`
	Title       string                    `json:"title"`
	ImdbID      nullable.Nullable[string] `json:"imdb_id,omitempty"`
	ReleaseDate nullable.Nullable[string] `json:"release_date,omitempty"`
}

// TV is a TV search result
type TV struct {
	ID           int                       `json:"id"`
	Name         string                    `json:"name"`
	FirstAirDate nullable.Nullable[string] `json:"first_air_date,omitempty"`
}

// TVDetails is the full record for a TV id including external ids
type TVDetails struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	ExternalIDs ExternalIDs `json:"external_ids"`
}

// ExternalIDs carries cross-provider identifiers for a TV record
type ExternalIDs struct {
	ImdbID nullable.Nullable[string] `json:"imdb_id,omitempty"`
	TvdbID nullable.Nullable[int]    `json:"tvdb_id,omitempty"`
}

// ReleaseYear extracts the year from a yyyy-mm-dd release date, nil when the
// provider omitted it
func ReleaseYear(date nullable.Nullable[string]) *int {
	value, err := date.Get()
	if err != nil || len(value) < 4 {
		return nil
	}

	year, err := strconv.Atoi(value[:4])
	if err != nil {
		return nil
	}
	return &year
}

// SetRequestAPIKey returns a request editor adding bearer auth
func SetRequestAPIKey(apiKey string) func(ctx context.Context, req *http.Request) error {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

// Client talks to a TMDB-compatible metadata API
type Client struct {
	baseURL       string
	client        mhttp.HTTPClient
	requestEditor func(ctx context.Context, req *http.Request) error
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a metadata client for the given base URL and API key
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	c := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		client:        mhttp.NewRateLimitedClient(),
		requestEditor: SetRequestAPIKey(apiKey),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type searchMovieResponse struct {
	Results []Movie `json:"results"`
}

type searchTVResponse struct {
	Results []TV `json:"results"`
}

type findResponse struct {
	MovieResults []Movie `json:"movie_results"`
}

// SearchMovie returns the first movie candidate for a query, constrained by
// year when known. A nil result means no candidate.
func (c *Client) SearchMovie(ctx context.Context, query string, year *int) (*Movie, error) {
	params := url.Values{"query": []string{query}}
	if year != nil {
		params.Set("year", strconv.Itoa(*year))
	}

	var resp searchMovieResponse
	if err := c.getJSON(ctx, "/3/search/movie?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// GetMovieDetails fetches the record for a movie id
func (c *Client) GetMovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	var details MovieDetails
	if err := c.getJSON(ctx, "/3/movie/"+strconv.Itoa(id), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// FindByImdbID resolves a movie record from an IMDB id
func (c *Client) FindByImdbID(ctx context.Context, imdbID string) (*Movie, error) {
	var resp findResponse
	path := "/3/find/" + url.PathEscape(imdbID) + "?external_source=imdb_id"
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	if len(resp.MovieResults) == 0 {
		return nil, nil
	}
	return &resp.MovieResults[0], nil
}

// SearchTV returns the first TV candidate for a query
func (c *Client) SearchTV(ctx context.Context, query string) (*TV, error) {
	params := url.Values{"query": []string{query}}

	var resp searchTVResponse
	if err := c.getJSON(ctx, "/3/search/tv?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// GetTVDetails fetches the record for a TV id including external ids
func (c *Client) GetTVDetails(ctx context.Context, id int) (*TVDetails, error) {
	var details TVDetails
	path := "/3/tv/" + strconv.Itoa(id) + "?append_to_response=external_ids"
	if err := c.getJSON(ctx, path, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	if err := c.requestEditor(ctx, req); err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected metadata response status: %s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, out)
}
