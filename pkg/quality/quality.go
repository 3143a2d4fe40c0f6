package quality

import (
	"slices"

	"github.com/feedarr/feedarr/pkg/parse"
)

// ResolutionRule configures a single resolution category
type ResolutionRule struct {
	Allowed bool    `json:"allowed" yaml:"allowed" mapstructure:"allowed"`
	Weight  float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// Settings is the read-only scoring configuration for a run
type Settings struct {
	Resolutions              map[string]ResolutionRule `json:"resolutions" yaml:"resolutions" mapstructure:"resolutions" validate:"required"`
	ResolutionFallbackWeight float64                   `json:"resolutionFallbackWeight" yaml:"resolutionFallbackWeight" mapstructure:"resolutionFallbackWeight"`
	SourceWeights            map[string]float64        `json:"sourceWeights" yaml:"sourceWeights" mapstructure:"sourceWeights"`
	SourceFallbackWeight     float64                   `json:"sourceFallbackWeight" yaml:"sourceFallbackWeight" mapstructure:"sourceFallbackWeight"`
	CodecWeights             map[string]float64        `json:"codecWeights" yaml:"codecWeights" mapstructure:"codecWeights"`
	CodecFallbackWeight      float64                   `json:"codecFallbackWeight" yaml:"codecFallbackWeight" mapstructure:"codecFallbackWeight"`
	AudioWeights             map[string]float64        `json:"audioWeights" yaml:"audioWeights" mapstructure:"audioWeights"`
	AudioFallbackWeight      float64                   `json:"audioFallbackWeight" yaml:"audioFallbackWeight" mapstructure:"audioFallbackWeight"`
	PreferredCodecs          []string                  `json:"preferredCodecs" yaml:"preferredCodecs" mapstructure:"preferredCodecs"`
	DiscouragedCodecs        []string                  `json:"discouragedCodecs" yaml:"discouragedCodecs" mapstructure:"discouragedCodecs"`
	DubbedPenalty            float64                   `json:"dubbedPenalty" yaml:"dubbedPenalty" mapstructure:"dubbedPenalty" validate:"gte=0"`
	PreferredLanguageBonus   float64                   `json:"preferredLanguageBonus" yaml:"preferredLanguageBonus" mapstructure:"preferredLanguageBonus" validate:"gte=0"`
	PreferredLanguages       []string                  `json:"preferredLanguages" yaml:"preferredLanguages" mapstructure:"preferredLanguages"`
	UpgradeThreshold         float64                   `json:"upgradeThreshold" yaml:"upgradeThreshold" mapstructure:"upgradeThreshold" validate:"gte=0"`
	MinSizeIncreasePercent   float64                   `json:"minSizeIncreasePercent" yaml:"minSizeIncreasePercent" mapstructure:"minSizeIncreasePercent" validate:"gte=0"`
}

// ScoreContext carries per-release scoring inputs that are not part of the
// parsed attributes
type ScoreContext struct {
	IsDubbed          bool
	PreferredLanguage string
}

const (
	// degraded-score cap for held files whose names parse to nothing
	sizeHeuristicDivisor = 100
	sizeHeuristicCap     = 50
)

// Score computes the additive weighted quality score for a parsed release.
// Each attribute contributes its table weight, falling back to the table's
// fallback weight for unrecognized categories. The function is pure and
// monotone in every weight.
//
// A release with no recognizable attributes but a known size degrades to a
// capped size heuristic so a large unparseable file is not treated as
// worthless.
func Score(p parse.ParsedRelease, s Settings, ctx ScoreContext) float64 {
	if p.Attributeless() {
		if p.SizeMB == nil {
			return 0
		}
		return min(*p.SizeMB/sizeHeuristicDivisor, sizeHeuristicCap)
	}

	score := resolutionWeight(p.Resolution, s)
	score += tableWeight(s.SourceWeights, string(p.Source), s.SourceFallbackWeight)
	score += tableWeight(s.CodecWeights, string(p.Codec), s.CodecFallbackWeight)
	score += tableWeight(s.AudioWeights, p.Audio, s.AudioFallbackWeight)

	if ctx.IsDubbed {
		score -= s.DubbedPenalty
	}

	if hasPreferredLanguage(p.Languages, s.PreferredLanguages, ctx.PreferredLanguage) {
		score += s.PreferredLanguageBonus
	}

	return score
}

// IsAllowed reports whether the release's resolution is admissible. Codec
// preference lists are advisory and never gate admission.
func IsAllowed(p parse.ParsedRelease, s Settings) bool {
	rule, ok := s.Resolutions[string(p.Resolution)]
	if !ok {
		return false
	}
	return rule.Allowed
}

// CodecPreference returns the advisory codec signal: 1 for preferred,
// -1 for discouraged, 0 for neutral.
func CodecPreference(p parse.ParsedRelease, s Settings) int {
	if slices.Contains(s.PreferredCodecs, string(p.Codec)) {
		return 1
	}
	if slices.Contains(s.DiscouragedCodecs, string(p.Codec)) {
		return -1
	}
	return 0
}

func resolutionWeight(r parse.Resolution, s Settings) float64 {
	rule, ok := s.Resolutions[string(r)]
	if !ok {
		return s.ResolutionFallbackWeight
	}
	return rule.Weight
}

func tableWeight(table map[string]float64, key string, fallback float64) float64 {
	w, ok := table[key]
	if !ok {
		return fallback
	}
	return w
}

func hasPreferredLanguage(langs, preferred []string, extra string) bool {
	for _, l := range langs {
		if l == extra && extra != "" {
			return true
		}
		if slices.Contains(preferred, l) {
			return true
		}
	}
	return false
}

// DefaultSettings returns a sane scoring configuration used when none is
// provided
func DefaultSettings() Settings {
	return Settings{
		Resolutions: map[string]ResolutionRule{
			string(parse.Resolution2160p): {Allowed: true, Weight: 100},
			string(parse.Resolution1080p): {Allowed: true, Weight: 80},
			string(parse.Resolution720p):  {Allowed: true, Weight: 50},
			string(parse.Resolution480p):  {Allowed: false, Weight: 20},
		},
		ResolutionFallbackWeight: 10,
		SourceWeights: map[string]float64{
			string(parse.SourceRemux):  40,
			string(parse.SourceBluray): 35,
			string(parse.SourceWebDL):  30,
			string(parse.SourceWebRip): 20,
			string(parse.SourceHDTV):   15,
			string(parse.SourceDVD):    10,
			string(parse.SourceCam):    -50,
		},
		SourceFallbackWeight: 5,
		CodecWeights: map[string]float64{
			string(parse.CodecX265): 20,
			string(parse.CodecX264): 10,
		},
		CodecFallbackWeight: 0,
		AudioWeights: map[string]float64{
			"Atmos":  25,
			"TrueHD": 20,
			"DTS-HD": 18,
			"DTS":    12,
			"DD5.1":  10,
			"EAC3":   10,
			"AC3":    6,
			"AAC":    4,
			"FLAC":   8,
			"MP3":    1,
		},
		AudioFallbackWeight:    0,
		PreferredCodecs:        []string{string(parse.CodecX265)},
		DiscouragedCodecs:      []string{},
		DubbedPenalty:          15,
		PreferredLanguageBonus: 10,
		PreferredLanguages:     []string{"en"},
		UpgradeThreshold:       20,
		MinSizeIncreasePercent: 10,
	}
}
