package manager

import (
	"context"

	"github.com/feedarr/feedarr/pkg/library"
	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/omdb"
	"github.com/feedarr/feedarr/pkg/quality"
	"github.com/feedarr/feedarr/pkg/resolve"
	"github.com/feedarr/feedarr/pkg/storage"
	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/feedarr/feedarr/pkg/tmdb"
	"github.com/feedarr/feedarr/pkg/websearch"
	"go.uber.org/zap"
)

// Progress step names reported to the monitoring surface
const (
	StepMovies = "movies"
	StepTV     = "tv"
)

// Progress is a structured progress event emitted while a feed is synced
type Progress struct {
	Step      string `json:"step"`
	Processed int    `json:"processedCount"`
	Total     int    `json:"totalCount"`
	Errors    int    `json:"errorCount"`
}

// ProgressFunc consumes progress events. It must not block.
type ProgressFunc func(Progress)

// RunStats are the aggregate statistics of one feed sync run
type RunStats struct {
	RunID     string `json:"runId"`
	Feed      string `json:"feed"`
	Processed int    `json:"processed"`
	New       int    `json:"new"`
	Upgraded  int    `json:"upgraded"`
	Ignored   int    `json:"ignored"`
	Attention int    `json:"attention"`
	Errors    int    `json:"errors"`
}

func (s *RunStats) count(status storage.ReleaseStatus) {
	switch status {
	case storage.ReleaseStatusNew:
		s.New++
	case storage.ReleaseStatusUpgradeCandidate:
		s.Upgraded++
	case storage.ReleaseStatusIgnored:
		s.Ignored++
	case storage.ReleaseStatusAttentionNeeded:
		s.Attention++
	}
}

func (s *RunStats) countTv(status storage.TvStatus) {
	switch status {
	case storage.TvStatusNewShow, storage.TvStatusNewSeason:
		s.New++
	case storage.TvStatusIgnored:
		s.Ignored++
	}
}

// Manager drives feed items through the parse, resolve, score and classify
// pipeline and owns all writes to the persisted release records
type Manager struct {
	store    storage.Storage
	tmdb     tmdb.ClientInterface
	omdb     omdb.ClientInterface
	search   websearch.Searcher
	movies   library.MovieClient
	series   library.SeriesClient
	settings quality.Settings
	progress ProgressFunc
}

// Option configures a Manager
type Option func(*Manager)

// WithWebSearch enables the lowest-confidence identifier fallback
func WithWebSearch(s websearch.Searcher) Option {
	return func(m *Manager) {
		m.search = s
	}
}

// WithProgress registers a progress event consumer
func WithProgress(fn ProgressFunc) Option {
	return func(m *Manager) {
		m.progress = fn
	}
}

func New(store storage.Storage, tmdbClient tmdb.ClientInterface, omdbClient omdb.ClientInterface, movies library.MovieClient, series library.SeriesClient, settings quality.Settings, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		tmdb:     tmdbClient,
		omdb:     omdbClient,
		movies:   movies,
		series:   series,
		settings: settings,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// newResolver builds a fresh resolver for a run. Memoization and the
// rate-limit breaker reset at the run boundary.
func (m *Manager) newResolver() *resolve.Resolver {
	opts := []resolve.Option{resolve.WithLimiter(resolve.NewLimiter())}
	if m.search != nil {
		opts = append(opts, resolve.WithWebSearch(m.search))
	}
	return resolve.New(m.tmdb, m.omdb, opts...)
}

func (m *Manager) report(p Progress) {
	if m.progress != nil {
		m.progress(p)
	}
}

func (m *Manager) finishRun(ctx context.Context, stats RunStats, kind string) {
	log := logger.FromCtx(ctx)

	err := m.store.FinishSyncRun(ctx, model.SyncRun{
		RunID:     stats.RunID,
		Feed:      stats.Feed,
		Kind:      kind,
		Processed: int32(stats.Processed),
		NewCount:  int32(stats.New),
		Upgraded:  int32(stats.Upgraded),
		Ignored:   int32(stats.Ignored),
		Errors:    int32(stats.Errors),
	})
	if err != nil {
		log.Warnw("failed to record sync run result", "runId", stats.RunID, zap.Error(err))
	}
}
