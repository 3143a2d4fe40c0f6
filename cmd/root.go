package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "feedarr",
	Short: "feedarr cli",
	Long:  `reconcile release feeds against a held media library`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("FEEDARR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")

	viper.SetDefault("omdb.scheme", "https")
	viper.SetDefault("omdb.host", "www.omdbapi.com")
	viper.SetDefault("omdb.apiKey", "")

	viper.SetDefault("webSearch.host", "")

	viper.SetDefault("radarr.scheme", "http")
	viper.SetDefault("radarr.host", "")
	viper.SetDefault("radarr.apiKey", "")

	viper.SetDefault("sonarr.scheme", "http")
	viper.SetDefault("sonarr.host", "")
	viper.SetDefault("sonarr.apiKey", "")

	viper.SetDefault("storage.filePath", "feedarr.sqlite")
}
