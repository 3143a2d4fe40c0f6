package cmd

import (
	"fmt"
	"strings"

	"github.com/feedarr/feedarr/config"
	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/parse"
	"github.com/feedarr/feedarr/pkg/quality"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// scoreCmd scores a release title against the configured settings. Debugging
// aid for weight tuning.
var scoreCmd = &cobra.Command{
	Use:   "score <title>...",
	Short: "Parse and score a release title",
	Long:  `Parse a release title and score it against the configured quality settings`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		for _, title := range args {
			parsed := parse.Parse(title)
			score := quality.Score(parsed, cfg.Quality, quality.ScoreContext{IsDubbed: parse.IsDubbed(title)})

			size := "-"
			if parsed.SizeMB != nil {
				size = humanize.IBytes(uint64(*parsed.SizeMB * 1024 * 1024))
			}

			languages := "-"
			if len(parsed.Languages) > 0 {
				languages = strings.Join(parsed.Languages, ",")
			}

			fmt.Printf("%s\n", title)
			fmt.Printf("  resolution=%s source=%s codec=%s audio=%s size=%s languages=%s\n",
				parsed.Resolution, parsed.Source, parsed.Codec, parsed.Audio, size, languages)
			fmt.Printf("  score=%.1f allowed=%t\n", score, quality.IsAllowed(parsed, cfg.Quality))
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
