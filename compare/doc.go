// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package compare diffs questions across two questionnaire versions.

# Text Similarity

Similarity scores two strings in [0,1] using a diff-based matched-rune
ratio (sergi/go-diff). Exact equality short-circuits to 1.0. A score is
classified against a threshold (DefaultThreshold = 0.9):

	1.0          → exact
	>= threshold → similar
	otherwise    → different

CompareTexts applies this per language across the union of both sides'
language codes (compared case-insensitively, output sorted by language).

# Coded Items

CompareChoices, CompareMatrixRows, and CompareMatrixColumns share one
generic routine over anything exposing a code and multilingual texts.
Matrix columns are flattened across column groups before diffing. Codes
are enumerated in first-seen order, old side first, so output is
deterministic for snapshot-style assertions.

# Questions and Surveys

CompareQuestions combines the top-level text diff with either the choice
diff or the matrix row/column diffs (when either side is a Matrix) and
classifies by precedence:

	structure_changed > text_changed > identical

CompareSurveys matches two question lists by normalized code, emits
added/removed entries for one-sided codes, and returns a ComparisonResult
whose diffs are keyed by normalized code.
*/
package compare
