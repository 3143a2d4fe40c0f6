package resolve

import (
	"context"
	"strings"

	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/parse"
	"github.com/feedarr/feedarr/pkg/tmdb"
	"go.uber.org/zap"
)

// KnownShow is a show the engine already tracks; matching against these
// avoids repeating external lookups for shows seen in earlier runs
type KnownShow struct {
	Name   string
	TvdbID *int
	TmdbID *int
}

// ShowRequest carries everything known about a show before resolution
type ShowRequest struct {
	Name     string
	Year     *int
	Existing Identifiers
	Known    []KnownShow
}

// ResolveShow resolves identifiers for a TV show. A fuzzy, year-agnostic
// name match against already-known shows takes precedence over fresh
// external search; the external chain mirrors the movie one with the TV
// provider as the primary source of truth.
func (r *Resolver) ResolveShow(ctx context.Context, req ShowRequest) Identifiers {
	log := logger.FromCtx(ctx, "show", req.Name)
	ids := req.Existing

	if ids.TvdbID != nil && ids.TmdbID != nil {
		return ids
	}

	// known shows first
	if known := matchKnownShow(req.Name, req.Known); known != nil {
		if ids.TvdbID == nil && !ids.TvdbIDManual && known.TvdbID != nil {
			ids.TvdbID = known.TvdbID
		}
		if ids.TmdbID == nil && !ids.TmdbIDManual && known.TmdbID != nil {
			ids.TmdbID = known.TmdbID
		}
		if ids.TvdbID != nil {
			return ids
		}
	}

	// fresh external search
	if ids.TmdbID == nil && !ids.TmdbIDManual {
		show := r.searchTV(ctx, req.Name)
		if show != nil {
			ids.TmdbID = &show.ID
		}
	}

	if ids.TmdbID != nil && ids.TvdbID == nil && !ids.TvdbIDManual && !r.limiter.Disabled(ProviderPrimary) {
		details, err := r.tmdb.GetTVDetails(ctx, *ids.TmdbID)
		if err != nil {
			r.limiter.Observe(ProviderPrimary, err)
			log.Warnw("tv details fetch failed", "tmdbId", *ids.TmdbID, zap.Error(err))
			return ids
		}

		if tvdbID, err := details.ExternalIDs.TvdbID.Get(); err == nil && tvdbID != 0 {
			ids.TvdbID = &tvdbID
		}
		if ids.ImdbID == nil && !ids.ImdbIDManual {
			if imdbID, err := details.ExternalIDs.ImdbID.Get(); err == nil && imdbID != "" {
				ids.ImdbID = &imdbID
			}
		}
	}

	return ids
}

func (r *Resolver) searchTV(ctx context.Context, name string) *tmdb.TV {
	log := logger.FromCtx(ctx)

	if r.limiter.Disabled(ProviderPrimary) {
		return nil
	}

	if cached, ok := r.tvSearches.Get(name); ok {
		return cached
	}

	show, err := r.tmdb.SearchTV(ctx, name)
	if err != nil {
		r.limiter.Observe(ProviderPrimary, err)
		log.Warnw("tv title search failed", "query", name, zap.Error(err))
		return nil
	}

	r.tvSearches.Set(name, show)
	return show
}

// matchKnownShow compares normalized names, accepting an exact match or a
// containment either way. Year is deliberately ignored: show feeds rarely
// carry one and held shows span years.
func matchKnownShow(name string, known []KnownShow) *KnownShow {
	normalized := parse.Normalize(name)
	if normalized == "" {
		return nil
	}

	for i := range known {
		candidate := parse.Normalize(known[i].Name)
		if candidate == "" {
			continue
		}
		if candidate == normalized ||
			strings.Contains(candidate, normalized) ||
			strings.Contains(normalized, candidate) {
			return &known[i]
		}
	}

	return nil
}
