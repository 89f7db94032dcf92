package service

import (
	"math"
	"regexp"
	"strings"
)

const wordsPerMinute = 200

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug derives a slug from title: lowercase, runs of anything but
// a-z and 0-9 collapse into one hyphen, no leading or trailing hyphens.
// The result may be empty for titles without latin letters or digits.
func GenerateSlug(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// ReadingTime is ceil(words / 200) minutes, never less than one.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			normalized = append(normalized, tag)
		}
	}
	return normalized
}

// optionalText returns nil for blank values so that they are not stored.
func optionalText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
