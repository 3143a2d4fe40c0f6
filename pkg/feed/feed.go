package feed

import (
	"context"
	"time"
)

// Item is a single syndicated release announcement. The fetching mechanics
// live outside this module; the engine only consumes items.
type Item struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	GUID        string     `json:"guid"`
	PubDate     *time.Time `json:"pubDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Fetcher retrieves the current items of a named feed
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]Item, error)
}
