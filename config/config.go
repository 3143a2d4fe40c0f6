package config

import (
	"fmt"
	"time"

	"github.com/feedarr/feedarr/pkg/quality"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TMDB      Provider         `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	OMDB      Provider         `json:"omdb" yaml:"omdb" mapstructure:"omdb"`
	WebSearch Provider         `json:"webSearch" yaml:"webSearch" mapstructure:"webSearch"`
	Radarr    Provider         `json:"radarr" yaml:"radarr" mapstructure:"radarr"`
	Sonarr    Provider         `json:"sonarr" yaml:"sonarr" mapstructure:"sonarr"`
	Storage   Storage          `json:"storage" yaml:"storage" mapstructure:"storage"`
	Feeds     Feeds            `json:"feeds" yaml:"feeds" mapstructure:"feeds"`
	Quality   quality.Settings `json:"quality" yaml:"quality" mapstructure:"quality"`
}

// Provider is the endpoint configuration for one external collaborator. A
// provider with no host is treated as disabled.
type Provider struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// URL renders the provider endpoint, empty when no host is configured
func (p Provider) URL() string {
	if p.Host == "" {
		return ""
	}

	scheme := p.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + p.Host
}

// Enabled reports whether the provider has an endpoint configured
func (p Provider) Enabled() bool {
	return p.Host != ""
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// Feed is one syndicated feed to reconcile against
type Feed struct {
	Name string `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	URL  string `json:"url" yaml:"url" mapstructure:"url" validate:"required,url"`
}

type Feeds struct {
	Movies []Feed `json:"movies" yaml:"movies" mapstructure:"movies" validate:"dive"`
	TV     []Feed `json:"tv" yaml:"tv" mapstructure:"tv" validate:"dive"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	if c.Quality.Resolutions == nil {
		c.Quality = quality.DefaultSettings()
	}

	return c, c.Validate()
}

// Validate checks structural constraints on the configuration
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
