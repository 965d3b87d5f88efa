package reviewlens

import (
	"regexp"
	"strings"
)

var blankLines = regexp.MustCompile(`\n[ \t\r]*\n\s*`)

// ParseReviews splits free text into reviews on blank lines. Blocks are
// trimmed, empty blocks are dropped, and IDs are assigned from 1 in order.
func ParseReviews(text string) []Review {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	if text == "" {
		return nil
	}

	var reviews []Review
	for _, block := range blankLines.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		reviews = append(reviews, Review{ID: len(reviews) + 1, Text: block})
	}
	return reviews
}
