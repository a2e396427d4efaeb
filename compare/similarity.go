// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compare

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/danielhkuo/survaudit/models"
)

// DefaultThreshold is the similarity score at or above which two texts are
// classified as "similar" rather than "different".
const DefaultThreshold = 0.9

var dmp = diffmatchpatch.New()

// Similarity returns a lexical similarity score in [0,1] for two strings:
// twice the number of matching runes divided by the total rune count.
// Equal strings score exactly 1.0; unequal strings always score below it.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0
	}
	matched := 0
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	return 2 * float64(matched) / float64(total)
}

// textStatus classifies a similarity score against a threshold.
func textStatus(score, threshold float64) string {
	if score == 1.0 {
		return models.TextExact
	}
	if score >= threshold {
		return models.TextSimilar
	}
	return models.TextDifferent
}
