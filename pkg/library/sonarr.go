package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	mhttp "github.com/feedarr/feedarr/pkg/http"
)

// SonarrClient talks to a Sonarr-compatible held-library API for shows
type SonarrClient struct {
	baseURL string
	apiKey  string
	client  mhttp.HTTPClient
}

// SonarrOption configures a SonarrClient
type SonarrOption func(*SonarrClient)

// WithSonarrHTTPClient sets the underlying http client
func WithSonarrHTTPClient(client mhttp.HTTPClient) SonarrOption {
	return func(c *SonarrClient) {
		c.client = client
	}
}

// NewSonarr creates a series held-library client
func NewSonarr(baseURL, apiKey string, opts ...SonarrOption) (*SonarrClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	c := &SonarrClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  mhttp.NewRateLimitedClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type sonarrSeries struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	TvdbID  int    `json:"tvdbId"`
	TmdbID  int    `json:"tmdbId"`
	Seasons []struct {
		SeasonNumber int `json:"seasonNumber"`
	} `json:"seasons"`
}

func (s sonarrSeries) held() HeldSeries {
	held := HeldSeries{
		ID:     s.ID,
		Title:  s.Title,
		Year:   s.Year,
		TvdbID: s.TvdbID,
		TmdbID: s.TmdbID,
	}
	for _, season := range s.Seasons {
		held.Seasons = append(held.Seasons, season.SeasonNumber)
	}
	return held
}

// LookupByTvdbID fetches the held series for a TVDB id, nil when untracked
func (c *SonarrClient) LookupByTvdbID(ctx context.Context, tvdbID int) (*HeldSeries, error) {
	var series []sonarrSeries
	path := "/api/v3/series?tvdbId=" + strconv.Itoa(tvdbID)
	if err := c.getJSON(ctx, path, &series); err != nil {
		return nil, err
	}

	if len(series) == 0 {
		return nil, nil
	}

	held := series[0].held()
	return &held, nil
}

// ListSeries returns every held series
func (c *SonarrClient) ListSeries(ctx context.Context) ([]HeldSeries, error) {
	var series []sonarrSeries
	if err := c.getJSON(ctx, "/api/v3/series", &series); err != nil {
		return nil, err
	}

	held := make([]HeldSeries, 0, len(series))
	for _, s := range series {
		held = append(held, s.held())
	}
	return held, nil
}

func (c *SonarrClient) getJSON(ctx context.Context, path string, out any) error {
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
