package resolve

import (
	"context"
	"strconv"

	"github.com/feedarr/feedarr/pkg/cache"
	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/omdb"
	"github.com/feedarr/feedarr/pkg/parse"
	"github.com/feedarr/feedarr/pkg/tmdb"
	"github.com/feedarr/feedarr/pkg/websearch"
	"go.uber.org/zap"
)

// Identifiers are the canonical external ids for a release. A manual flag
// pins its field: automated resolution passes pinned fields through
// unchanged until the pin is cleared.
type Identifiers struct {
	TmdbID       *int    `json:"tmdbId,omitempty"`
	TmdbIDManual bool    `json:"tmdbIdManual,omitempty"`
	ImdbID       *string `json:"imdbId,omitempty"`
	ImdbIDManual bool    `json:"imdbIdManual,omitempty"`
	TvdbID       *int    `json:"tvdbId,omitempty"`
	TvdbIDManual bool    `json:"tvdbIdManual,omitempty"`
}

// Complete reports whether both a primary and secondary id are present
func (i Identifiers) Complete() bool {
	return i.TmdbID != nil && i.ImdbID != nil
}

// Request carries everything known about a title before resolution
type Request struct {
	Title      string
	CleanTitle string
	Year       *int
	Existing   Identifiers
}

// Resolver chains metadata providers to turn a noisy title into canonical
// identifiers. Every step is independently fallible: failures are logged and
// the chain advances, it never aborts.
type Resolver struct {
	tmdb    tmdb.ClientInterface
	omdb    omdb.ClientInterface
	search  websearch.Searcher
	limiter *Limiter

	// per-run memoization so one feed batch never repeats a provider query
	movieSearches *cache.Cache[string, *tmdb.Movie]
	tvSearches    *cache.Cache[string, *tmdb.TV]
}

// Option configures a Resolver
type Option func(*Resolver)

// WithWebSearch enables the best-effort web search fallback
func WithWebSearch(s websearch.Searcher) Option {
	return func(r *Resolver) {
		r.search = s
	}
}

// WithLimiter shares a rate-limit breaker across resolvers in one run
func WithLimiter(l *Limiter) Option {
	return func(r *Resolver) {
		r.limiter = l
	}
}

// New creates a Resolver over the primary and secondary providers
func New(primary tmdb.ClientInterface, secondary omdb.ClientInterface, opts ...Option) *Resolver {
	r := &Resolver{
		tmdb:          primary,
		omdb:          secondary,
		limiter:       NewLimiter(),
		movieSearches: cache.New[string, *tmdb.Movie](),
		tvSearches:    cache.New[string, *tmdb.TV](),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Limiter exposes the resolver's provider breaker
func (r *Resolver) Limiter() *Limiter {
	return r.limiter
}

// ResolveMovie runs the resolution chain for a movie title. Steps run in
// strict order and short-circuit as soon as both identifiers are present and
// validated. Manually pinned fields are never altered.
func (r *Resolver) ResolveMovie(ctx context.Context, req Request) Identifiers {
	log := logger.FromCtx(ctx, "title", req.Title)
	ids := req.Existing

	// step 1: cross-validate when both ids are already known
	if ids.TmdbID != nil && ids.ImdbID != nil {
		r.crossValidate(ctx, &ids, req.Year)
		return ids
	}

	// step 2: derive the secondary id from the primary record
	if ids.TmdbID != nil && ids.ImdbID == nil && !ids.ImdbIDManual {
		r.adoptImdbFromDetails(ctx, &ids)
	}
	if ids.Complete() {
		return ids
	}

	// step 3: derive the primary id from the secondary id
	if ids.ImdbID != nil && ids.TmdbID == nil && !ids.TmdbIDManual {
		r.adoptTmdbFromImdb(ctx, &ids)
	}
	if ids.Complete() {
		return ids
	}

	// step 4: primary-provider title search, year gated
	if ids.TmdbID == nil && !ids.TmdbIDManual {
		queries := []string{req.CleanTitle}
		if normalized := parse.Normalize(req.Title); normalized != parse.Normalize(req.CleanTitle) {
			queries = append(queries, normalized)
		}

		for _, query := range queries {
			if query == "" {
				continue
			}
			movie := r.searchMovie(ctx, query, req.Year)
			if movie == nil {
				continue
			}
			if !yearMatches(req.Year, tmdb.ReleaseYear(movie.ReleaseDate)) {
				log.Debugw("discarding candidate on year mismatch", "candidate", movie.Title, "query", query)
				continue
			}
			ids.TmdbID = &movie.ID
			break
		}
	}
	if ids.TmdbID != nil && ids.ImdbID == nil && !ids.ImdbIDManual {
		r.adoptImdbFromDetails(ctx, &ids)
	}
	if ids.Complete() {
		return ids
	}

	// step 5: secondary-provider title search
	if ids.ImdbID == nil && !ids.ImdbIDManual && !r.limiter.Disabled(ProviderSecondary) {
		result, err := r.omdb.SearchByTitle(ctx, req.CleanTitle, req.Year)
		if err != nil {
			r.limiter.Observe(ProviderSecondary, err)
			log.Warnw("secondary provider search failed", zap.Error(err))
		} else if result != nil {
			ids.ImdbID = &result.ImdbID
		}
	}
	if ids.ImdbID != nil && ids.TmdbID == nil && !ids.TmdbIDManual {
		r.adoptTmdbFromImdb(ctx, &ids)
	}
	if ids.Complete() {
		return ids
	}

	// step 6: web search fallback, lowest confidence
	if ids.ImdbID == nil && !ids.ImdbIDManual && r.search != nil && !r.limiter.Disabled(ProviderWebSearch) {
		found, err := r.search.FindImdbID(ctx, req.CleanTitle)
		if err != nil {
			r.limiter.Observe(ProviderWebSearch, err)
			log.Debugw("web search fallback failed", zap.Error(err))
		} else if found != "" {
			ids.ImdbID = &found
		}
	}
	if ids.ImdbID != nil && ids.TmdbID == nil && !ids.TmdbIDManual {
		r.adoptTmdbFromImdb(ctx, &ids)
	}

	return ids
}

// crossValidate fetches the primary record and compares its secondary id to
// the held one. On disagreement it attempts a year-gated correction of the
// primary id; a failed gate keeps the original and logs the discrepancy.
func (r *Resolver) crossValidate(ctx context.Context, ids *Identifiers, year *int) {
	log := logger.FromCtx(ctx)

	if r.limiter.Disabled(ProviderPrimary) {
		return
	}

	details, err := r.tmdb.GetMovieDetails(ctx, *ids.TmdbID)
	if err != nil {
		r.limiter.Observe(ProviderPrimary, err)
		log.Warnw("cross-validation fetch failed", "tmdbId", *ids.TmdbID, zap.Error(err))
		return
	}
	if details == nil {
		return
	}

	reported, err := details.ImdbID.Get()
	if err != nil || reported == "" || reported == *ids.ImdbID {
		return
	}

	log.Warnw("identifier cross-check mismatch",
		"tmdbId", *ids.TmdbID,
		"heldImdbId", *ids.ImdbID,
		"providerImdbId", reported)

	if ids.TmdbIDManual {
		return
	}

	replacement, err := r.tmdb.FindByImdbID(ctx, *ids.ImdbID)
	if err != nil {
		r.limiter.Observe(ProviderPrimary, err)
		log.Warnw("cross-validation correction lookup failed", "imdbId", *ids.ImdbID, zap.Error(err))
		return
	}
	if replacement == nil {
		return
	}

	if !yearMatches(year, tmdb.ReleaseYear(replacement.ReleaseDate)) {
		log.Warnw("keeping original primary id, correction failed year gate",
			"tmdbId", *ids.TmdbID,
			"candidateTmdbId", replacement.ID,
			"year", year)
		return
	}

	log.Infow("corrected primary id from secondary id",
		"previousTmdbId", *ids.TmdbID,
		"tmdbId", replacement.ID)
	ids.TmdbID = &replacement.ID
}

func (r *Resolver) adoptImdbFromDetails(ctx context.Context, ids *Identifiers) {
	log := logger.FromCtx(ctx)

	if r.limiter.Disabled(ProviderPrimary) {
		return
	}

	details, err := r.tmdb.GetMovieDetails(ctx, *ids.TmdbID)
	if err != nil {
		r.limiter.Observe(ProviderPrimary, err)
		log.Warnw("primary details fetch failed", "tmdbId", *ids.TmdbID, zap.Error(err))
		return
	}
	if details == nil {
		return
	}

	if imdbID, err := details.ImdbID.Get(); err == nil && imdbID != "" {
		ids.ImdbID = &imdbID
	}
}

func (r *Resolver) adoptTmdbFromImdb(ctx context.Context, ids *Identifiers) {
	log := logger.FromCtx(ctx)

	if r.limiter.Disabled(ProviderPrimary) {
		return
	}

	movie, err := r.tmdb.FindByImdbID(ctx, *ids.ImdbID)
	if err != nil {
		r.limiter.Observe(ProviderPrimary, err)
		log.Warnw("primary lookup by secondary id failed", "imdbId", *ids.ImdbID, zap.Error(err))
		return
	}
	if movie == nil {
		return
	}

	ids.TmdbID = &movie.ID
}

func (r *Resolver) searchMovie(ctx context.Context, query string, year *int) *tmdb.Movie {
	log := logger.FromCtx(ctx)

	if r.limiter.Disabled(ProviderPrimary) {
		return nil
	}

	key := cacheKey(query, year)
	if cached, ok := r.movieSearches.Get(key); ok {
		return cached
	}

	movie, err := r.tmdb.SearchMovie(ctx, query, year)
	if err != nil {
		r.limiter.Observe(ProviderPrimary, err)
		log.Warnw("primary title search failed", "query", query, zap.Error(err))
		return nil
	}

	r.movieSearches.Set(key, movie)
	return movie
}

func cacheKey(query string, year *int) string {
	if year == nil {
		return query
	}
	return query + "|" + strconv.Itoa(*year)
}

// yearMatches applies the year gate: an unknown year accepts anything, a
// known year requires an exact match.
func yearMatches(want, got *int) bool {
	if want == nil {
		return true
	}
	if got == nil {
		return false
	}
	return *want == *got
}
