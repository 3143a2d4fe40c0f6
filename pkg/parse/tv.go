package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// ShowTitle is a show name and season number extracted from a release title
type ShowTitle struct {
	Name   string
	Season *int
}

// season markers in precedence order; the first matching marker wins
var seasonRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bS(\d{1,2})\s?E\d{1,3}\b`),
	regexp.MustCompile(`(?i)\bseason[. _-]?(\d{1,2})\b`),
	regexp.MustCompile(`(?i)\bS(\d{1,2})\b`),
}

// ParseShow splits a TV release title into a show name and season number.
// Titles without a season marker fall back to the whole cleaned title with a
// nil season.
func ParseShow(title string) ShowTitle {
	for _, r := range seasonRules {
		loc := r.FindStringSubmatchIndex(title)
		if loc == nil {
			continue
		}

		season, err := strconv.Atoi(title[loc[2]:loc[3]])
		if err != nil {
			continue
		}

		name := cleanShowName(title[:loc[0]])
		if name == "" {
			name = CleanTitle(title)
		}

		return ShowTitle{Name: name, Season: &season}
	}

	return ShowTitle{Name: CleanTitle(title)}
}

func cleanShowName(fragment string) string {
	cleaned := parenthetical.ReplaceAllString(fragment, " ")
	cleaned = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(cleaned)
	cleaned = strings.TrimSpace(whitespaceRuns.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return ""
	}
	return titleCaser.String(cleaned)
}
