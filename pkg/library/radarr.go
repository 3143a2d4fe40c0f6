package library

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

// RadarrClient talks to a Radarr-compatible held-library API for movies
type RadarrClient struct {
	baseURL string
	apiKey  string
	client  mhttp.HTTPClient
}

// RadarrOption configures a RadarrClient
type RadarrOption func(*RadarrClient)

// WithRadarrHTTPClient sets the underlying http client
func WithRadarrHTTPClient(client mhttp.HTTPClient) RadarrOption {
	return func(c *RadarrClient) {
		c.client = client
	}
}

// NewRadarr creates a movie held-library client
func NewRadarr(baseURL, apiKey string, opts ...RadarrOption) (*RadarrClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	c := &RadarrClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  mhttp.NewRateLimitedClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type radarrMovie struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	TmdbID     int    `json:"tmdbId"`
	ImdbID     string `json:"imdbId"`
	SizeOnDisk int64  `json:"sizeOnDisk"`
	MovieFile  *struct {
		RelativePath string `json:"relativePath"`
		Size         int64  `json:"size"`
	} `json:"movieFile"`
}

func (m radarrMovie) held() HeldMovie {
	held := HeldMovie{
		ID:         m.ID,
		Title:      m.Title,
		Year:       m.Year,
		TmdbID:     m.TmdbID,
		ImdbID:     m.ImdbID,
		SizeOnDisk: m.SizeOnDisk,
	}
	if m.MovieFile != nil {
		held.File = &HeldFile{
			RelativePath: m.MovieFile.RelativePath,
			SizeMB:       float64(m.MovieFile.Size) / (1 << 20),
		}
	}
	return held
}

// LookupByTmdbID fetches the held entry for a TMDB id, nil when the library
// does not track it
func (c *RadarrClient) LookupByTmdbID(ctx context.Context, tmdbID int) (*HeldMovie, error) {
	var movies []radarrMovie
	path := "/api/v3/movie?tmdbId=" + strconv.Itoa(tmdbID)
	if err := c.getJSON(ctx, path, &movies); err != nil {
		return nil, err
	}

	if len(movies) == 0 {
		return nil, nil
	}

	held := movies[0].held()
	return &held, nil
}

// LookupByTitle returns held candidates for a search term
func (c *RadarrClient) LookupByTitle(ctx context.Context, term string) ([]HeldMovie, error) {
	var movies []radarrMovie
	path := "/api/v3/movie/lookup?term=" + url.QueryEscape(term)
	if err := c.getJSON(ctx, path, &movies); err != nil {
		return nil, err
	}

	held := make([]HeldMovie, 0, len(movies))
	for _, m := range movies {
		held = append(held, m.held())
	}
	return held, nil
}

func (c *RadarrClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected library response status: %s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, out)
}
