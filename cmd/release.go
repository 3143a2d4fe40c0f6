package cmd

import (
	"context"
	"fmt"

	"github.com/feedarr/feedarr/config"
	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/storage"
	"github.com/feedarr/feedarr/pkg/storage/sqlite"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	releaseStatus string
	releaseTV     bool
)

// releaseCmd represents the release command
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "inspect release records",
	Long:  `inspect release records`,
}

// releaseListCmd lists persisted release records
var releaseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List release records and their classification",
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

		if releaseTV {
			listTvReleases(ctx, store, log)
			return
		}
		listMovieReleases(ctx, store, log)
	},
}

func listMovieReleases(ctx context.Context, store storage.Storage, log *zap.SugaredLogger) {
	var releases []*storage.Release
	var err error
	if releaseStatus != "" {
		releases, err = store.ListReleasesByStatus(ctx, storage.ReleaseStatus(releaseStatus))
	} else {
		releases, err = store.ListReleases(ctx)
	}
	if err != nil {
		log.Fatal("failed to list releases", zap.Error(err))
	}

	for _, r := range releases {
		size := "-"
		if r.SizeMb != nil {
			size = humanize.IBytes(uint64(*r.SizeMb * 1024 * 1024))
		}
		score := float64(0)
		if r.NewScore != nil {
			score = *r.NewScore
		}
		fmt.Printf("%-18s %8s %7.1f  %s\n", r.Status, size, score, r.Title)
	}
}

func listTvReleases(ctx context.Context, store storage.Storage, log *zap.SugaredLogger) {
	releases, err := store.ListTvReleases(ctx)
	if err != nil {
		log.Fatal("failed to list tv releases", zap.Error(err))
	}

	for _, r := range releases {
		season := "-"
		if r.Season != nil {
			season = fmt.Sprintf("S%02d", *r.Season)
		}
		fmt.Printf("%-12s %-4s %-30s %s\n", r.Status, season, r.ShowName, r.Title)
	}
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.AddCommand(releaseListCmd)

	releaseListCmd.Flags().StringVarP(&releaseStatus, "status", "s", "", "filter by status")
	releaseListCmd.Flags().BoolVar(&releaseTV, "tv", false, "list tv releases instead of movies")
}
