package cmd

import (
	"context"
	"fmt"

	"github.com/feedarr/feedarr/config"
	"github.com/feedarr/feedarr/pkg/feed"
	mhttp "github.com/feedarr/feedarr/pkg/http"
	"github.com/feedarr/feedarr/pkg/library"
	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/manager"
	"github.com/feedarr/feedarr/pkg/omdb"
	"github.com/feedarr/feedarr/pkg/storage/sqlite"
	"github.com/feedarr/feedarr/pkg/tmdb"
	"github.com/feedarr/feedarr/pkg/websearch"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync configured feeds against the release records",
	Long:  `Sync configured feeds against the release records`,
}

// syncMoviesCmd syncs every configured movie feed
var syncMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Sync configured movie feeds",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, m, err := buildManager()
		if err != nil {
			log.Fatal("failed to set up manager", zap.Error(err))
		}

		fetcher := feed.NewRSS()
		for _, f := range cfg.Feeds.Movies {
			items, err := fetcher.Fetch(ctx, f.URL)
			if err != nil {
				log.Errorw("failed to fetch feed", "feed", f.Name, zap.Error(err))
				continue
			}

			stats, err := m.SyncMovieFeed(ctx, f.Name, items)
			if err != nil {
				log.Errorw("failed to sync feed", "feed", f.Name, zap.Error(err))
				continue
			}

			fmt.Printf("%s: processed=%d new=%d upgraded=%d ignored=%d attention=%d errors=%d\n",
				f.Name, stats.Processed, stats.New, stats.Upgraded, stats.Ignored, stats.Attention, stats.Errors)
		}
	},
}

// syncTVCmd syncs every configured tv feed
var syncTVCmd = &cobra.Command{
	Use:   "tv",
	Short: "Sync configured tv feeds",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, m, err := buildManager()
		if err != nil {
			log.Fatal("failed to set up manager", zap.Error(err))
		}

		fetcher := feed.NewRSS()
		for _, f := range cfg.Feeds.TV {
			items, err := fetcher.Fetch(ctx, f.URL)
			if err != nil {
				log.Errorw("failed to fetch feed", "feed", f.Name, zap.Error(err))
				continue
			}

			stats, err := m.SyncTVFeed(ctx, f.Name, items)
			if err != nil {
				log.Errorw("failed to sync feed", "feed", f.Name, zap.Error(err))
				continue
			}

			fmt.Printf("%s: processed=%d new=%d ignored=%d errors=%d\n",
				f.Name, stats.Processed, stats.New, stats.Ignored, stats.Errors)
		}
	},
}

// syncRunsCmd lists recent sync runs
var syncRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent sync runs",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}

		runs, err := store.ListSyncRuns(ctx, 20)
		if err != nil {
			log.Fatal("failed to list sync runs", zap.Error(err))
		}

		for _, run := range runs {
			finished := "running"
			if run.FinishedAt != nil {
				finished = run.FinishedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%s  %-6s %-20s processed=%d new=%d upgraded=%d ignored=%d errors=%d finished=%s\n",
				run.RunID, run.Kind, run.Feed, run.Processed, run.NewCount, run.Upgraded, run.Ignored, run.Errors, finished)
		}
	},
}

// buildManager wires every configured collaborator into a manager. Disabled
// providers stay nil so the pipeline degrades instead of calling them.
func buildManager() (config.Config, *manager.Manager, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to read configurations: %w", err)
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	tmdbClient, err := tmdb.New(cfg.TMDB.URL(), cfg.TMDB.APIKey, tmdb.WithHTTPClient(rateLimitedClient(cfg.TMDB)))
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to create metadata client: %w", err)
	}

	omdbClient, err := omdb.New(cfg.OMDB.URL(), cfg.OMDB.APIKey)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to create secondary metadata client: %w", err)
	}

	var movies library.MovieClient
	if cfg.Radarr.Enabled() {
		c, err := library.NewRadarr(cfg.Radarr.URL(), cfg.Radarr.APIKey)
		if err != nil {
			return cfg, nil, fmt.Errorf("failed to create movie library client: %w", err)
		}
		movies = c
	}

	var series library.SeriesClient
	if cfg.Sonarr.Enabled() {
		c, err := library.NewSonarr(cfg.Sonarr.URL(), cfg.Sonarr.APIKey)
		if err != nil {
			return cfg, nil, fmt.Errorf("failed to create series library client: %w", err)
		}
		series = c
	}

	var opts []manager.Option
	if cfg.WebSearch.Enabled() {
		searcher, err := websearch.New(cfg.WebSearch.URL())
		if err != nil {
			return cfg, nil, fmt.Errorf("failed to create web search client: %w", err)
		}
		opts = append(opts, manager.WithWebSearch(searcher))
	}

	return cfg, manager.New(store, tmdbClient, omdbClient, movies, series, cfg.Quality, opts...), nil
}

func rateLimitedClient(p config.Provider) *mhttp.RateLimitedClient {
	var opts []mhttp.ClientOption
	if p.MaxRetries > 0 {
		opts = append(opts, mhttp.WithMaxRetries(p.MaxRetries))
	}
	if p.BaseBackoff > 0 {
		opts = append(opts, mhttp.WithBaseBackoff(p.BaseBackoff))
	}
	return mhttp.NewRateLimitedClient(opts...)
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncMoviesCmd)
	syncCmd.AddCommand(syncTVCmd)
	syncCmd.AddCommand(syncRunsCmd)
}
