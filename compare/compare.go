// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compare

import (
	"sort"
	"strings"

	"github.com/danielhkuo/survaudit/models"
)

// Text comparison

// buildTextIndex maps lowercased language code to text. First occurrence
// wins on duplicate languages.
func buildTextIndex(texts []models.LocalizedText) map[string]string {
	index := make(map[string]string, len(texts))
	for _, lt := range texts {
		lang := strings.ToLower(lt.Language)
		if _, ok := index[lang]; !ok {
			index[lang] = lt.Text
		}
	}
	return index
}

// CompareTexts compares two multilingual text lists and returns one
// TextDiff per language in the union of both sides, sorted by language
// code. Languages present on only one side come back as added or removed.
func CompareTexts(old, new []models.LocalizedText, threshold float64) []models.TextDiff {
	oldMap := buildTextIndex(old)
	newMap := buildTextIndex(new)

	langs := make([]string, 0, len(oldMap)+len(newMap))
	for lang := range oldMap {
		langs = append(langs, lang)
	}
	for lang := range newMap {
		if _, ok := oldMap[lang]; !ok {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)

	diffs := make([]models.TextDiff, 0, len(langs))
	for _, lang := range langs {
		oldText, inOld := oldMap[lang]
		newText, inNew := newMap[lang]
		switch {
		case !inOld:
			diffs = append(diffs, models.TextDiff{
				Language: lang, Status: models.TextAdded, Similarity: 0.0, NewText: newText,
			})
		case !inNew:
			diffs = append(diffs, models.TextDiff{
				Language: lang, Status: models.TextRemoved, Similarity: 0.0, OldText: oldText,
			})
		default:
			score := Similarity(oldText, newText)
			diffs = append(diffs, models.TextDiff{
				Language:   lang,
				Status:     textStatus(score, threshold),
				Similarity: score,
				OldText:    oldText,
				NewText:    newText,
			})
		}
	}
	return diffs
}

// Coded-item comparison

// compareCodedItems diffs two ordered lists of code-identified items. Codes
// are enumerated in first-seen order, old side first, so the output is
// stable across runs. Matched items carry their full per-language text
// diffs regardless of status.
func compareCodedItems[T models.CodedItem](old, new []T, threshold float64) []models.ChoiceDiff {
	oldMap := make(map[string]T, len(old))
	for _, item := range old {
		oldMap[item.ItemCode()] = item
	}
	newMap := make(map[string]T, len(new))
	for _, item := range new {
		newMap[item.ItemCode()] = item
	}

	var codes []string
	seen := make(map[string]bool, len(old)+len(new))
	for _, item := range old {
		if !seen[item.ItemCode()] {
			seen[item.ItemCode()] = true
			codes = append(codes, item.ItemCode())
		}
	}
	for _, item := range new {
		if !seen[item.ItemCode()] {
			seen[item.ItemCode()] = true
			codes = append(codes, item.ItemCode())
		}
	}

	var diffs []models.ChoiceDiff
	for _, code := range codes {
		oldItem, inOld := oldMap[code]
		newItem, inNew := newMap[code]
		switch {
		case !inOld:
			diffs = append(diffs, models.ChoiceDiff{Code: code, Status: models.ChoiceAdded})
		case !inNew:
			diffs = append(diffs, models.ChoiceDiff{Code: code, Status: models.ChoiceRemoved})
		default:
			textDiffs := CompareTexts(oldItem.ItemTexts(), newItem.ItemTexts(), threshold)
			status := models.ChoiceUnchanged
			for _, td := range textDiffs {
				if td.Status != models.TextExact {
					status = models.ChoiceTextChanged
					break
				}
			}
			diffs = append(diffs, models.ChoiceDiff{Code: code, Status: status, TextDiffs: textDiffs})
		}
	}
	return diffs
}

// CompareChoices diffs two answer option lists by code.
func CompareChoices(old, new []models.AnswerOption, threshold float64) []models.ChoiceDiff {
	return compareCodedItems(old, new, threshold)
}

// CompareMatrixRows diffs two matrix row lists by code.
func CompareMatrixRows(old, new []models.MatrixRow, threshold float64) []models.ChoiceDiff {
	return compareCodedItems(old, new, threshold)
}

// CompareMatrixColumns flattens the column groups of each side into a
// single ordered column list, ignoring group boundaries, then diffs by
// code.
func CompareMatrixColumns(old, new []models.MatrixColumnGroup, threshold float64) []models.ChoiceDiff {
	var oldCols, newCols []models.MatrixColumn
	for _, grp := range old {
		oldCols = append(oldCols, grp.Columns...)
	}
	for _, grp := range new {
		newCols = append(newCols, grp.Columns...)
	}
	return compareCodedItems(oldCols, newCols, threshold)
}

// Question-level comparison

// CompareQuestions produces a full diff for a single question present in
// both surveys. The caller guarantees old and new represent the same
// question; this function only diffs. If either side is a Matrix the
// matrix rows and columns are compared and choices are skipped, so a type
// change across editions never crashes the comparison.
//
// The returned diff's Code is old.Code; the survey differ overwrites it
// with the normalized matching key.
func CompareQuestions(old, new models.Question, threshold float64) models.QuestionDiff {
	textDiffs := CompareTexts(old.Texts, new.Texts, threshold)

	var choiceDiffs, rowDiffs, colDiffs []models.ChoiceDiff
	if old.ElementType == models.TypeMatrix || new.ElementType == models.TypeMatrix {
		rowDiffs = CompareMatrixRows(old.MatrixRows, new.MatrixRows, threshold)
		colDiffs = CompareMatrixColumns(old.MatrixColumnGroups, new.MatrixColumnGroups, threshold)
	} else {
		choiceDiffs = CompareChoices(old.Choices, new.Choices, threshold)
	}

	hasTextChange := false
	for _, td := range textDiffs {
		if td.Status != models.TextExact {
			hasTextChange = true
			break
		}
	}
	hasStructureChange := false
	hasChildTextChange := false
	for _, group := range [][]models.ChoiceDiff{choiceDiffs, rowDiffs, colDiffs} {
		for _, cd := range group {
			switch cd.Status {
			case models.ChoiceAdded, models.ChoiceRemoved:
				hasStructureChange = true
			case models.ChoiceTextChanged:
				hasChildTextChange = true
			}
		}
	}

	status := models.StatusIdentical
	switch {
	case hasStructureChange:
		status = models.StatusStructureChanged
	case hasTextChange || hasChildTextChange:
		status = models.StatusTextChanged
	}

	return models.QuestionDiff{
		Code:           old.Code,
		ElementType:    old.ElementType,
		Status:         status,
		TextDiffs:      textDiffs,
		ChoiceDiffs:    choiceDiffs,
		MatrixRowDiffs: rowDiffs,
		MatrixColDiffs: colDiffs,
	}
}

// Full survey comparison

// CompareSurveys compares two full question lists and returns a
// ComparisonResult. Questions are matched by normalized code, which is what
// lets a Final-edition export line up with an Impact-edition export whose
// codes differ only by the edition prefix. On duplicate normalized codes
// within one side the last question wins.
func CompareSurveys(questionsA, questionsB []models.Question, sourceA, sourceB string, threshold float64) models.ComparisonResult {
	mapA := make(map[string]models.Question, len(questionsA))
	for _, q := range questionsA {
		mapA[q.NormalizedCode()] = q
	}
	mapB := make(map[string]models.Question, len(questionsB))
	for _, q := range questionsB {
		mapB[q.NormalizedCode()] = q
	}

	var codes []string
	seen := make(map[string]bool, len(questionsA)+len(questionsB))
	for _, q := range questionsA {
		if code := q.NormalizedCode(); !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	for _, q := range questionsB {
		if code := q.NormalizedCode(); !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	diffs := make([]models.QuestionDiff, 0, len(codes))
	for _, code := range codes {
		qa, inA := mapA[code]
		qb, inB := mapB[code]
		switch {
		case !inA:
			diffs = append(diffs, models.QuestionDiff{
				Code: code, ElementType: qb.ElementType, Status: models.StatusAdded,
			})
		case !inB:
			diffs = append(diffs, models.QuestionDiff{
				Code: code, ElementType: qa.ElementType, Status: models.StatusRemoved,
			})
		default:
			diff := CompareQuestions(qa, qb, threshold)
			// Report the normalized matching key, not the raw code.
			diff.Code = code
			diffs = append(diffs, diff)
		}
	}

	return models.ComparisonResult{SourceA: sourceA, SourceB: sourceB, QuestionDiffs: diffs}
}
