// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"strconv"

	"github.com/danielhkuo/survaudit/models"
)

// LT builds a LocalizedText.
func LT(lang, text string) models.LocalizedText {
	return models.LocalizedText{Language: lang, Text: text}
}

func codeID(code string) int {
	if id, err := strconv.Atoi(code); err == nil {
		return id
	}
	return 0
}

// Option builds a single-language answer option.
func Option(code, text string) models.AnswerOption {
	return models.AnswerOption{ID: codeID(code), Code: code, Texts: []models.LocalizedText{LT("en", text)}}
}

// Row builds a single-language matrix row.
func Row(code, text string) models.MatrixRow {
	return models.MatrixRow{ID: codeID(code), Code: code, Texts: []models.LocalizedText{LT("en", text)}}
}

// Col builds a single-language matrix column.
func Col(code, text string) models.MatrixColumn {
	return models.MatrixColumn{ID: codeID(code), Code: code, Texts: []models.LocalizedText{LT("en", text)}}
}

// ColGroup wraps columns in a single column group.
func ColGroup(cols ...models.MatrixColumn) models.MatrixColumnGroup {
	return models.MatrixColumnGroup{ID: 1, Columns: cols}
}

// Question builds a SingleChoice question with one English text.
func Question(code, text string) models.Question {
	return models.Question{
		ID:          1,
		Code:        code,
		ElementType: models.TypeSingleChoice,
		Texts:       []models.LocalizedText{LT("en", text)},
	}
}

// SectionQuestion builds a question placed in a named section.
func SectionQuestion(code, section string, index int) models.Question {
	q := Question(code, "Text for "+code)
	q.SectionName = section
	q.SectionIndex = index
	return q
}

// MatrixQuestion builds a Matrix question from rows and column groups.
func MatrixQuestion(code, text string, rows []models.MatrixRow, groups []models.MatrixColumnGroup) models.Question {
	return models.Question{
		ID:                 1,
		Code:               code,
		ElementType:        models.TypeMatrix,
		Texts:              []models.LocalizedText{LT("en", text)},
		MatrixRows:         rows,
		MatrixColumnGroups: groups,
	}
}
