package parse

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolution is a recognized video resolution category
type Resolution string

const (
	Resolution2160p   Resolution = "2160p"
	Resolution1080p   Resolution = "1080p"
	Resolution720p    Resolution = "720p"
	Resolution480p    Resolution = "480p"
	ResolutionUnknown Resolution = "UNKNOWN"
)

// Source is the media source category of a release
type Source string

const (
	SourceRemux  Source = "REMUX"
	SourceBluray Source = "BLURAY"
	SourceWebDL  Source = "WEBDL"
	SourceWebRip Source = "WEBRIP"
	SourceHDTV   Source = "HDTV"
	SourceDVD    Source = "DVD"
	SourceCam    Source = "CAM"
	SourceOther  Source = "OTHER"
)

// Codec is the video codec category of a release
type Codec string

const (
	CodecX265    Codec = "x265"
	CodecX264    Codec = "x264"
	CodecUnknown Codec = "UNKNOWN"
)

// AudioUnknown is the audio sentinel when no format marker matched
const AudioUnknown = "Unknown"

// ParsedRelease holds the attributes extracted from a release title.
// Parsing is a pure function of the title; the same title always produces
// the same ParsedRelease.
type ParsedRelease struct {
	Resolution Resolution `json:"resolution"`
	Source     Source     `json:"source"`
	Codec      Codec      `json:"codec"`
	Audio      string     `json:"audio"`
	SizeMB     *float64   `json:"sizeMB,omitempty"`
	Languages  []string   `json:"languages,omitempty"`
}

// Attributeless reports whether nothing beyond sentinels was recognized.
// Scoring degrades to a size heuristic for such releases.
func (p ParsedRelease) Attributeless() bool {
	return p.Resolution == ResolutionUnknown &&
		p.Source == SourceOther &&
		p.Codec == CodecUnknown &&
		p.Audio == AudioUnknown
}

// rule ties a pattern to the category it proves. Tables are ordered and the
// first matching rule wins; rule order is part of the parsing contract.
type rule[T ~string] struct {
	pattern *regexp.Regexp
	value   T
}

var resolutionRules = []rule[Resolution]{
	{regexp.MustCompile(`(?i)\b(2160p|4k|uhd)\b`), Resolution2160p},
	{regexp.MustCompile(`(?i)\b(1080p|1080i|fhd)\b`), Resolution1080p},
	{regexp.MustCompile(`(?i)\b720p\b`), Resolution720p},
	{regexp.MustCompile(`(?i)\b(480p|480i|sd)\b`), Resolution480p},
}

var sourceRules = []rule[Source]{
	{regexp.MustCompile(`(?i)\bremux\b`), SourceRemux},
	{regexp.MustCompile(`(?i)\b(blu.?ray|bdrip|brrip)\b`), SourceBluray},
	{regexp.MustCompile(`(?i)\bweb.?dl\b`), SourceWebDL},
	{regexp.MustCompile(`(?i)\b(webrip|web)\b`), SourceWebRip},
	{regexp.MustCompile(`(?i)\b(hdtv|pdtv|sdtv)\b`), SourceHDTV},
	{regexp.MustCompile(`(?i)\b(dvdrip|dvd)\b`), SourceDVD},
	{regexp.MustCompile(`(?i)\b(camrip|cam|telesync|ts|telecine)\b`), SourceCam},
}

var codecRules = []rule[Codec]{
	{regexp.MustCompile(`(?i)\b(x265|h.?265|hevc)\b`), CodecX265},
	{regexp.MustCompile(`(?i)\b(x264|h.?264|avc)\b`), CodecX264},
}

var audioRules = []rule[string]{
	{regexp.MustCompile(`(?i)\batmos\b`), "Atmos"},
	{regexp.MustCompile(`(?i)\btrue.?hd\b`), "TrueHD"},
	{regexp.MustCompile(`(?i)\bdts.?(hd|x)\b`), "DTS-HD"},
	{regexp.MustCompile(`(?i)\bdts\b`), "DTS"},
	{regexp.MustCompile(`(?i)\bdd[\s._+]?5[._]1\b`), "DD5.1"},
	{regexp.MustCompile(`(?i)\b(ddp|dd\+|eac3|e.?ac.?3)\b`), "EAC3"},
	{regexp.MustCompile(`(?i)\b(dd|ac3)\b`), "AC3"},
	{regexp.MustCompile(`(?i)\baac\b`), "AAC"},
	{regexp.MustCompile(`(?i)\bflac\b`), "FLAC"},
	{regexp.MustCompile(`(?i)\bmp3\b`), "MP3"},
}

// language markers map release-name tokens to ISO-639-1 codes
var languageRules = []rule[string]{
	{regexp.MustCompile(`(?i)\b(french|vostfr|vff|truefrench)\b`), "fr"},
	{regexp.MustCompile(`(?i)\b(german|deutsch)\b`), "de"},
	{regexp.MustCompile(`(?i)\b(spanish|castellano|latino)\b`), "es"},
	{regexp.MustCompile(`(?i)\b(italian|ita)\b`), "it"},
	{regexp.MustCompile(`(?i)\b(russian|rus)\b`), "ru"},
	{regexp.MustCompile(`(?i)\bhindi\b`), "hi"},
	{regexp.MustCompile(`(?i)\b(japanese|jpn)\b`), "ja"},
	{regexp.MustCompile(`(?i)\b(korean|kor)\b`), "ko"},
	{regexp.MustCompile(`(?i)\b(english|eng)\b`), "en"},
}

var (
	sizeRegex      = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s?(gib|gb|mib|mb|kb)\b`)
	dubbedRegex    = regexp.MustCompile(`(?i)\b(dubbed|dub|md|line[. ]dubbed)\b`)
	yearRegex      = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	nonAlphaNum    = regexp.MustCompile(`[^a-z0-9]+`)
	parenthetical  = regexp.MustCompile(`[(\[{][^)\]}]*[)\]}]`)
	titleCutoff    = regexp.MustCompile(`(?i)[ ._\-]+(19\d{2}|20\d{2}|2160p|4k|uhd|1080p|1080i|720p|480p|bluray|blu-ray|bdrip|brrip|remux|web-?dl|webrip|web|hdtv|dvdrip|dvd|x265|x264|hevc|h264|h265|proper|repack|extended|unrated)\b.*$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

func matchFirst[T ~string](title string, rules []rule[T], fallback T) T {
	for _, r := range rules {
		if r.pattern.MatchString(title) {
			return r.value
		}
	}
	return fallback
}

// Parse extracts structured attributes from a release title. Unmatched
// categories resolve to their UNKNOWN/OTHER sentinels rather than erroring.
func Parse(title string) ParsedRelease {
	parsed := ParsedRelease{
		Resolution: matchFirst(title, resolutionRules, ResolutionUnknown),
		Source:     matchFirst(title, sourceRules, SourceOther),
		Codec:      matchFirst(title, codecRules, CodecUnknown),
		Audio:      matchFirst(title, audioRules, AudioUnknown),
	}

	if size, ok := parseSize(title); ok {
		parsed.SizeMB = &size
	}

	parsed.Languages = parseLanguages(title)

	return parsed
}

// parseSize extracts a size-with-unit marker and normalizes it to megabytes
func parseSize(title string) (float64, bool) {
	m := sizeRegex.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(m[2]) {
	case "gb", "gib":
		return value * 1024, true
	case "kb":
		return value / 1024, true
	default:
		return value, true
	}
}

// parseLanguages collects every recognized audio-language marker as a set of
// ISO-639-1 codes, in rule order
func parseLanguages(title string) []string {
	var langs []string
	seen := make(map[string]struct{})
	for _, r := range languageRules {
		if !r.pattern.MatchString(title) {
			continue
		}
		if _, ok := seen[r.value]; ok {
			continue
		}
		seen[r.value] = struct{}{}
		langs = append(langs, r.value)
	}
	return langs
}

// IsDubbed reports whether the title carries a dubbed-audio marker
func IsDubbed(title string) bool {
	return dubbedRegex.MatchString(title)
}

// Year extracts a plausible release year from the title, nil if absent
func Year(title string) *int {
	m := yearRegex.FindString(title)
	if m == "" {
		return nil
	}

	year, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &year
}

// Normalize lowers the title to a fuzzy matching key: lowercase, punctuation
// stripped, whitespace collapsed. Not meant for display.
func Normalize(title string) string {
	lowered := strings.ToLower(title)
	stripped := nonAlphaNum.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(stripped, " "))
}

// CleanTitle strips trailing year-and-quality suffixes and parenthetical
// annotations to produce a search key. It is a heuristic; callers should
// treat the result as a hint rather than ground truth.
func CleanTitle(title string) string {
	cleaned := parenthetical.ReplaceAllString(title, " ")
	cleaned = titleCutoff.ReplaceAllString(cleaned, "")
	cleaned = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(cleaned)
	cleaned = strings.TrimSpace(whitespaceRuns.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return strings.TrimSpace(title)
	}
	return titleCaser.String(cleaned)
}

var titleCaser = cases.Title(language.English)
