package config

import (
	"errors"
	"testing"

	"github.com/feedarr/feedarr/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)

		_, err := New(cu)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")

		c, err := New(cu)
		require.Nil(t, err)

		assert.Equal(t, "my-tmdb-key", c.TMDB.APIKey)
		assert.Equal(t, "https://api.themoviedb.org", c.TMDB.URL())
		assert.Equal(t, "https://www.omdbapi.com", c.OMDB.URL())
		assert.Equal(t, "http://radarr.local:7878", c.Radarr.URL())
		assert.True(t, c.Radarr.Enabled())
		assert.False(t, c.Sonarr.Enabled())
		assert.Equal(t, "feedarr.db", c.Storage.FilePath)

		require.Len(t, c.Feeds.Movies, 1)
		assert.Equal(t, "movies", c.Feeds.Movies[0].Name)
		require.Len(t, c.Feeds.TV, 1)

		// scoring settings default when the file carries none
		assert.NotEmpty(t, c.Quality.Resolutions)
		assert.Equal(t, float64(20), c.Quality.UpgradeThreshold)
	})

	t.Run("missing storage path fails validation", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")

		_, err := New(cu)
		assert.NotNil(t, err)
	})

	t.Run("malformed feed url fails validation", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("storage.filePath", "feedarr.db")
		cu.SetDefault("feeds.movies", []map[string]string{
			{"name": "movies", "url": "not-a-url"},
		})

		_, err := New(cu)
		assert.NotNil(t, err)
	})
}

func TestProviderURL(t *testing.T) {
	assert.Empty(t, Provider{}.URL())
	assert.Equal(t, "https://api.example.com", Provider{Host: "api.example.com"}.URL())
	assert.Equal(t, "http://api.example.com", Provider{Scheme: "http", Host: "api.example.com"}.URL())
}
