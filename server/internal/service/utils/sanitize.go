package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy keeps no markup at all; policies are safe for concurrent use.
var plainText = bluemonday.StrictPolicy()

// encoded markup needs one round per encoding level
const maxSanitizeRounds = 8

// SanitizeText strips HTML markup from user supplied text and trims it.
// The API returns plain text, so entities are decoded and the result sanitized
// again until it no longer changes; entity-encoded tags never survive decoding.
func SanitizeText(text string) string {
	for i := 0; i < maxSanitizeRounds; i++ {
		next := html.UnescapeString(plainText.Sanitize(text))
		if next == text {
			return strings.TrimSpace(text)
		}
		text = next
	}
	// nested deeper than any real input
	return ""
}
