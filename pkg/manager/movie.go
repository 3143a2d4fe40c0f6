package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// SyncMovieFeed reconciles one movie feed's items against the persisted
// release records. All writes for the batch share one transaction; an item
// failure is counted and logged but never aborts the batch.
func (m *Manager) SyncMovieFeed(ctx context.Context, feedName string, items []feed.Item) (RunStats, error) {
	log := logger.FromCtx(ctx, "feed", feedName)
	stats := RunStats{RunID: uuid.NewString(), Feed: feedName}

	if _, err := m.store.CreateSyncRun(ctx, model.SyncRun{RunID: stats.RunID, Feed: feedName, Kind: "movie"}); err != nil {
		return stats, fmt.Errorf("failed to record sync run: %w", err)
	}

	resolver := m.newResolver()

	err := m.store.WithTx(ctx, func(tx storage.Storage) error {
		for _, item := range items {
			m.report(Progress{Step: StepMovies, Processed: stats.Processed, Total: len(items), Errors: stats.Errors})

			status, err := m.syncMovieItem(ctx, tx, resolver, item)
			stats.Processed++
			if err != nil {
				stats.Errors++
				log.Warnw("failed to reconcile item", "guid", item.GUID, zap.Error(err))
				continue
			}
			stats.count(status)
		}
		return nil
	})

	m.finishRun(ctx, stats, "movie")
	m.report(Progress{Step: StepMovies, Processed: stats.Processed, Total: len(items), Errors: stats.Errors})

	if err != nil {
		return stats, fmt.Errorf("movie feed sync failed: %w", err)
	}

	log.Infow("movie feed synced",
		"runId", stats.RunID,
		"processed", stats.Processed,
		"new", stats.New,
		"upgraded", stats.Upgraded,
		"ignored", stats.Ignored,
		"errors", stats.Errors)
	return stats, nil
}

func (m *Manager) syncMovieItem(ctx context.Context, store storage.Storage, resolver *resolve.Resolver, item feed.Item) (storage.ReleaseStatus, error) {
	existing, err := store.GetRelease(ctx, item.GUID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return storage.ReleaseStatusNone, err
	}

	// terminal records are preserved verbatim
	if existing != nil && existing.ReleaseStatus().Terminal() {
		return existing.ReleaseStatus(), nil
	}

	parsed := parse.Parse(item.Title)
	cleanTitle := parse.CleanTitle(item.Title)
	year := parse.Year(item.Title)

	ids := resolve.Identifiers{}
	if existing != nil {
		ids = releaseIdentifiers(existing)
	}

	resolved := resolver.ResolveMovie(ctx, resolve.Request{
		Title:      item.Title,
		CleanTitle: cleanTitle,
		Year:       year,
		Existing:   ids,
	})

	held := m.lookupHeldMovie(ctx, resolver.Limiter(), resolved, cleanTitle, year)

	newScore := quality.Score(parsed, m.settings, quality.ScoreContext{IsDubbed: parse.IsDubbed(item.Title)})

	var existingScore float64
	var sizeDeltaPercent float64
	if held != nil {
		existingScore, sizeDeltaPercent = m.scoreHeld(held, parsed.SizeMB)
	}

	status := Classify(ClassifyInput{
		Allowed:          quality.IsAllowed(parsed, m.settings),
		HeldMatch:        held != nil,
		HasPrimaryID:     resolved.TmdbID != nil,
		ScoreDelta:       newScore - existingScore,
		SizeDeltaPercent: sizeDeltaPercent,
	}, m.settings)

	record := buildRelease(item, parsed, cleanTitle, year, resolved, held, existingScore, newScore, status, existing)
	if _, err := store.UpsertRelease(ctx, record); err != nil {
		return status, fmt.Errorf("failed to persist release: %w", err)
	}

	return status, nil
}

// scoreHeld scores the file already on disk. A filename that parses to
// nothing degrades to the size heuristic inside the scorer rather than
// scoring the held file as worthless.
func (m *Manager) scoreHeld(held *library.HeldMovie, candidateSizeMB *float64) (score, sizeDeltaPercent float64) {
	if held.File == nil {
		// tracked but nothing on disk, any admissible candidate outgrows it
		return 0, 100
	}

	heldParsed := parse.Parse(held.File.RelativePath)
	if heldParsed.SizeMB == nil && held.File.SizeMB > 0 {
		size := held.File.SizeMB
		heldParsed.SizeMB = &size
	}

	score = quality.Score(heldParsed, m.settings, quality.ScoreContext{IsDubbed: parse.IsDubbed(held.File.RelativePath)})

	if held.File.SizeMB > 0 && candidateSizeMB != nil {
		sizeDeltaPercent = (*candidateSizeMB - held.File.SizeMB) / held.File.SizeMB * 100
	}

	return score, sizeDeltaPercent
}

func (m *Manager) lookupHeldMovie(ctx context.Context, limiter *resolve.Limiter, ids resolve.Identifiers, cleanTitle string, year *int) *library.HeldMovie {
	log := logger.FromCtx(ctx)

	if m.movies == nil || limiter.Disabled(resolve.ProviderLibrary) {
		return nil
	}

	if ids.TmdbID != nil {
		held, err := m.movies.LookupByTmdbID(ctx, *ids.TmdbID)
		if err != nil {
			limiter.Observe(resolve.ProviderLibrary, err)
			log.Warnw("held-library lookup by id failed", "tmdbId", *ids.TmdbID, zap.Error(err))
		} else if held != nil {
			return held
		}
		return nil
	}

	candidates, err := m.movies.LookupByTitle(ctx, cleanTitle)
	if err != nil {
		limiter.Observe(resolve.ProviderLibrary, err)
		log.Warnw("held-library lookup by title failed", "term", cleanTitle, zap.Error(err))
		return nil
	}

	for i := range candidates {
		if year == nil || candidates[i].Year == *year {
			return &candidates[i]
		}
	}

	return nil
}

func buildRelease(item feed.Item, parsed parse.ParsedRelease, cleanTitle string, year *int, ids resolve.Identifiers, held *library.HeldMovie, existingScore, newScore float64, status storage.ReleaseStatus, existing *storage.Release) storage.Release {
	now := time.Now().UTC()

	record := model.Release{
		GUID:          item.GUID,
		Title:         item.Title,
		CleanTitle:    &cleanTitle,
		Year:          intToInt32(year),
		Resolution:    strPtr(string(parsed.Resolution)),
		Source:        strPtr(string(parsed.Source)),
		Codec:         strPtr(string(parsed.Codec)),
		Audio:         strPtr(parsed.Audio),
		SizeMb:        parsed.SizeMB,
		Languages:     joinLanguages(parsed.Languages),
		TmdbID:        intToInt32(ids.TmdbID),
		TmdbIDManual:  &ids.TmdbIDManual,
		ImdbID:        ids.ImdbID,
		ImdbIDManual:  &ids.ImdbIDManual,
		NewScore:      &newScore,
		Status:        string(status),
		LastCheckedAt: &now,
	}

	if held != nil {
		libraryID := int32(held.ID)
		record.LibraryMovieID = &libraryID
		record.ExistingScore = &existingScore
	}

	if existing != nil {
		record.CreatedAt = existing.CreatedAt
	}

	return storage.Release{Release: record}
}

func releaseIdentifiers(r *storage.Release) resolve.Identifiers {
	ids := resolve.Identifiers{
		TmdbID: int32ToInt(r.TmdbID),
		ImdbID: r.ImdbID,
	}
	if r.TmdbIDManual != nil {
		ids.TmdbIDManual = *r.TmdbIDManual
	}
	if r.ImdbIDManual != nil {
		ids.ImdbIDManual = *r.ImdbIDManual
	}
	return ids
}

func joinLanguages(langs []string) *string {
	if len(langs) == 0 {
		return nil
	}
	joined := strings.Join(langs, ",")
	return &joined
}

func strPtr(s string) *string {
	return &s
}

func intToInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}

func int32ToInt(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
