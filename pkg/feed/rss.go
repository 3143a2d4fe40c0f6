package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	mhttp "github.com/feedarr/feedarr/pkg/http"
)

// RSS fetches items from RSS 2.0 feeds. Fields the engine does not consume
// are dropped at decode time.
type RSS struct {
	client mhttp.HTTPClient
}

// RSSOption configures an RSS fetcher
type RSSOption func(*RSS)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) RSSOption {
	return func(r *RSS) {
		r.client = client
	}
}

// NewRSS creates an RSS fetcher
func NewRSS(opts ...RSSOption) *RSS {
	r := &RSS{
		client: mhttp.NewRateLimitedClient(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// Fetch retrieves and decodes the current items of a feed. Items without a
// guid fall back to their link so every item stays addressable.
func (r *RSS) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	items := make([]Item, 0, len(doc.Channel.Items))
	for _, entry := range doc.Channel.Items {
		item := Item{
			Title:       entry.Title,
			Link:        entry.Link,
			GUID:        entry.GUID,
			Description: entry.Description,
		}
		if item.GUID == "" {
			item.GUID = entry.Link
		}
		if published, ok := parsePubDate(entry.PubDate); ok {
			item.PubDate = &published
		}
		items = append(items, item)
	}

	return items, nil
}

// pubDateLayouts are tried in order; feeds are loose about date formats
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

func parsePubDate(value string) (time.Time, bool) {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
