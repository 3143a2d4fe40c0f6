package library

import "context"

// HeldFile describes the existing file behind a held library entry. The
// relative path feeds back into the title parser when scoring what is
// already on disk.
type HeldFile struct {
	RelativePath string  `json:"relativePath"`
	SizeMB       float64 `json:"sizeMB"`
}

// HeldMovie is a movie the held-library system already tracks
type HeldMovie struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	TmdbID     int       `json:"tmdbId"`
	ImdbID     string    `json:"imdbId,omitempty"`
	SizeOnDisk int64     `json:"sizeOnDisk"`
	File       *HeldFile `json:"movieFile,omitempty"`
}

// HeldSeries is a show the held-library system already tracks
type HeldSeries struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	TvdbID  int    `json:"tvdbId"`
	TmdbID  int    `json:"tmdbId"`
	Seasons []int  `json:"seasons,omitempty"`
}

// MovieClient is the held-library lookup surface for movies
type MovieClient interface {
	LookupByTmdbID(ctx context.Context, tmdbID int) (*HeldMovie, error)
	LookupByTitle(ctx context.Context, term string) ([]HeldMovie, error)
}

// SeriesClient is the held-library lookup surface for shows
type SeriesClient interface {
	LookupByTvdbID(ctx context.Context, tvdbID int) (*HeldSeries, error)
	ListSeries(ctx context.Context) ([]HeldSeries, error)
}
