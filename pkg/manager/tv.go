package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feedarr/feedarr/pkg/feed"
	"github.com/feedarr/feedarr/pkg/library"
	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/parse"
	"github.com/feedarr/feedarr/pkg/quality"
	"github.com/feedarr/feedarr/pkg/resolve"
	"github.com/feedarr/feedarr/pkg/storage"
	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SyncTVFeed reconciles one TV feed's items against the persisted release
// records. Held series are snapshotted once per run; the known-show cache
// feeds the resolver's fuzzy match.
func (m *Manager) SyncTVFeed(ctx context.Context, feedName string, items []feed.Item) (RunStats, error) {
	log := logger.FromCtx(ctx, "feed", feedName)
	stats := RunStats{RunID: uuid.NewString(), Feed: feedName}

	if _, err := m.store.CreateSyncRun(ctx, model.SyncRun{RunID: stats.RunID, Feed: feedName, Kind: "tv"}); err != nil {
		return stats, fmt.Errorf("failed to record sync run: %w", err)
	}

	resolver := m.newResolver()

	known, err := m.knownShows(ctx)
	if err != nil {
		log.Warnw("failed to load known shows", zap.Error(err))
	}

	held := m.heldSeriesIndex(ctx, resolver.Limiter())

	err = m.store.WithTx(ctx, func(tx storage.Storage) error {
		for _, item := range items {
			m.report(Progress{Step: StepTV, Processed: stats.Processed, Total: len(items), Errors: stats.Errors})

			status, err := m.syncTVItem(ctx, tx, resolver, held, known, item)
			stats.Processed++
			if err != nil {
				stats.Errors++
				log.Warnw("failed to reconcile item", "guid", item.GUID, zap.Error(err))
				continue
			}
			stats.countTv(status)
		}
		return nil
	})

	m.finishRun(ctx, stats, "tv")
	m.report(Progress{Step: StepTV, Processed: stats.Processed, Total: len(items), Errors: stats.Errors})

	if err != nil {
		return stats, fmt.Errorf("tv feed sync failed: %w", err)
	}

	log.Infow("tv feed synced",
		"runId", stats.RunID,
		"processed", stats.Processed,
		"new", stats.New,
		"ignored", stats.Ignored,
		"errors", stats.Errors)
	return stats, nil
}

func (m *Manager) syncTVItem(ctx context.Context, store storage.Storage, resolver *resolve.Resolver, held *seriesIndex, known []resolve.KnownShow, item feed.Item) (storage.TvStatus, error) {
	log := logger.FromCtx(ctx)

	existing, err := store.GetTvRelease(ctx, item.GUID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return storage.TvStatusNone, err
	}

	// terminal records are preserved verbatim
	if existing != nil && existing.TvStatus().Terminal() {
		return existing.TvStatus(), nil
	}

	show := parse.ParseShow(item.Title)
	parsed := parse.Parse(item.Title)

	ids := resolve.Identifiers{}
	if existing != nil {
		ids = tvReleaseIdentifiers(existing)
	}

	resolved := resolver.ResolveShow(ctx, resolve.ShowRequest{
		Name:     show.Name,
		Year:     parse.Year(item.Title),
		Existing: ids,
		Known:    known,
	})

	series := held.lookup(resolved.TvdbID, show.Name)

	var heldSeasons []int
	if series != nil {
		heldSeasons = series.Seasons
	}

	status := ClassifyShow(quality.IsAllowed(parsed, m.settings), heldSeasons, series != nil, show.Season)

	if resolved.TvdbID != nil || resolved.TmdbID != nil {
		_, err := store.SaveShow(ctx, model.Show{
			Name:           show.Name,
			NormalizedName: parse.Normalize(show.Name),
			TvdbID:         intToInt32(resolved.TvdbID),
			TmdbID:         intToInt32(resolved.TmdbID),
		})
		if err != nil {
			log.Warnw("failed to cache show", "show", show.Name, zap.Error(err))
		}
	}

	record := buildTvRelease(item, show, resolved, status, existing)
	if _, err := store.UpsertTvRelease(ctx, record); err != nil {
		return status, fmt.Errorf("failed to persist tv release: %w", err)
	}

	return status, nil
}

// knownShows loads the show cache as resolver match candidates
func (m *Manager) knownShows(ctx context.Context) ([]resolve.KnownShow, error) {
	shows, err := m.store.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	known := make([]resolve.KnownShow, 0, len(shows))
	for _, show := range shows {
		known = append(known, resolve.KnownShow{
			Name:   show.Name,
			TvdbID: int32ToInt(show.TvdbID),
			TmdbID: int32ToInt(show.TmdbID),
		})
	}

	return known, nil
}

// seriesIndex is a per-run snapshot of the held-library series list
type seriesIndex struct {
	byTvdbID map[int]*library.HeldSeries
	byName   map[string]*library.HeldSeries
}

func (ix *seriesIndex) lookup(tvdbID *int, name string) *library.HeldSeries {
	if ix == nil {
		return nil
	}
	if tvdbID != nil {
		if series, ok := ix.byTvdbID[*tvdbID]; ok {
			return series
		}
	}
	if series, ok := ix.byName[parse.Normalize(name)]; ok {
		return series
	}
	return nil
}

func (m *Manager) heldSeriesIndex(ctx context.Context, limiter *resolve.Limiter) *seriesIndex {
	log := logger.FromCtx(ctx)

	ix := &seriesIndex{
		byTvdbID: make(map[int]*library.HeldSeries),
		byName:   make(map[string]*library.HeldSeries),
	}

	if m.series == nil || limiter.Disabled(resolve.ProviderLibrary) {
		return ix
	}

	series, err := m.series.ListSeries(ctx)
	if err != nil {
		limiter.Observe(resolve.ProviderLibrary, err)
		log.Warnw("failed to list held series", zap.Error(err))
		return ix
	}

	for i := range series {
		s := &series[i]
		if s.TvdbID != 0 {
			ix.byTvdbID[s.TvdbID] = s
		}
		ix.byName[parse.Normalize(s.Title)] = s
	}

	return ix
}

func buildTvRelease(item feed.Item, show parse.ShowTitle, ids resolve.Identifiers, status storage.TvStatus, existing *storage.TvRelease) storage.TvRelease {
	now := time.Now().UTC()

	record := model.TvRelease{
		GUID:          item.GUID,
		Title:         item.Title,
		ShowName:      show.Name,
		Season:        intToInt32(show.Season),
		TvdbID:        intToInt32(ids.TvdbID),
		TvdbIDManual:  &ids.TvdbIDManual,
		TmdbID:        intToInt32(ids.TmdbID),
		TmdbIDManual:  &ids.TmdbIDManual,
		ImdbID:        ids.ImdbID,
		Status:        string(status),
		LastCheckedAt: &now,
	}

	if existing != nil {
		record.CreatedAt = existing.CreatedAt
	}

	return storage.TvRelease{TvRelease: record}
}

func tvReleaseIdentifiers(r *storage.TvRelease) resolve.Identifiers {
	ids := resolve.Identifiers{
		TvdbID: int32ToInt(r.TvdbID),
		TmdbID: int32ToInt(r.TmdbID),
		ImdbID: r.ImdbID,
	}
	if r.TvdbIDManual != nil {
		ids.TvdbIDManual = *r.TvdbIDManual
	}
	if r.TmdbIDManual != nil {
		ids.TmdbIDManual = *r.TmdbIDManual
	}
	return ids
}
