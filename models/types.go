// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// Element type constants
const (
	TypeSingleChoice   = "SingleChoice"
	TypeMultipleChoice = "MultipleChoice"
	TypeOpenQuestion   = "OpenQuestion"
	TypeMatrix         = "Matrix"
	TypeDropdown       = "Dropdown"
)

// Text diff status constants
const (
	TextExact     = "exact"
	TextSimilar   = "similar"
	TextDifferent = "different"
	TextAdded     = "added"
	TextRemoved   = "removed"
)

// Coded-item diff status constants
const (
	ChoiceUnchanged   = "unchanged"
	ChoiceTextChanged = "text_changed"
	ChoiceAdded       = "added"
	ChoiceRemoved     = "removed"
)

// Question diff status constants
const (
	StatusIdentical        = "identical"
	StatusTextChanged      = "text_changed"
	StatusStructureChanged = "structure_changed"
	StatusAdded            = "added"
	StatusRemoved          = "removed"
)

// Domain types

// LocalizedText is a single text value with its language code.
type LocalizedText struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// AnswerOption is one selectable choice inside a question.
type AnswerOption struct {
	ID             int             `json:"id"`
	Code           string          `json:"code"`
	Texts          []LocalizedText `json:"texts"`
	AllowTextEntry bool            `json:"allow_text_entry"`
	Exclusive      bool            `json:"exclusive"`
}

// MatrixColumn is a column (answer option) inside a matrix column group.
type MatrixColumn struct {
	ID         int             `json:"id"`
	Code       string          `json:"code"`
	Texts      []LocalizedText `json:"texts"`
	ChoiceType string          `json:"choice_type"`
}

// MatrixColumnGroup is a presentational group of columns in a matrix
// question. Group membership is never compared; all columns of a question
// are flattened into one code-keyed set for diffing.
type MatrixColumnGroup struct {
	ID         int            `json:"id"`
	Columns    []MatrixColumn `json:"columns"`
	ChoiceType string         `json:"choice_type"`
}

// MatrixRow is a row (sub-question) inside a matrix.
type MatrixRow struct {
	ID    int             `json:"id"`
	Code  string          `json:"code"`
	Texts []LocalizedText `json:"texts"`
}

// Question is the normalized representation of any questionnaire element.
// For Matrix questions Choices is empty and MatrixRows/MatrixColumnGroups
// carry the structure; for all other types the reverse holds. A Question is
// immutable once parsed - the comparison pipeline only reads it.
type Question struct {
	ID                 int                 `json:"id"`
	Code               string              `json:"code"`
	ElementType        string              `json:"element_type"`
	Texts              []LocalizedText     `json:"texts"`
	HintTexts          []LocalizedText     `json:"hint_texts,omitempty"`
	Choices            []AnswerOption      `json:"choices,omitempty"`
	MatrixRows         []MatrixRow         `json:"matrix_rows,omitempty"`
	MatrixColumnGroups []MatrixColumnGroup `json:"matrix_column_groups,omitempty"`
	ForceResponse      bool                `json:"force_response"`
	SectionName        string              `json:"section_name,omitempty"`
	SectionIndex       int                 `json:"section_index"`
	Conditions         []any               `json:"conditions,omitempty"`
}

// GetText returns the question text for language, falling back to the
// first available text.
func (q Question) GetText(language string) string {
	langLower := strings.ToLower(language)
	for _, lt := range q.Texts {
		if strings.ToLower(lt.Language) == langLower {
			return lt.Text
		}
	}
	if len(q.Texts) > 0 {
		return q.Texts[0].Text
	}
	return ""
}

// NormalizedCode returns the code with any survey-type prefix stripped for
// cross-survey matching. Derived on every call, never cached.
func (q Question) NormalizedCode() string {
	return NormalizeCode(q.Code)
}

// FlattenedColumns returns all matrix columns across all column groups in
// their original order.
func (q Question) FlattenedColumns() []MatrixColumn {
	var cols []MatrixColumn
	for _, grp := range q.MatrixColumnGroups {
		cols = append(cols, grp.Columns...)
	}
	return cols
}

// CodedItem is the shared shape of every code-identified sub-entity
// (answer option, matrix row, matrix column). The generic differ in the
// compare package operates on exactly these two accessors.
type CodedItem interface {
	ItemCode() string
	ItemTexts() []LocalizedText
}

func (o AnswerOption) ItemCode() string           { return o.Code }
func (o AnswerOption) ItemTexts() []LocalizedText { return o.Texts }

func (r MatrixRow) ItemCode() string           { return r.Code }
func (r MatrixRow) ItemTexts() []LocalizedText { return r.Texts }

func (c MatrixColumn) ItemCode() string           { return c.Code }
func (c MatrixColumn) ItemTexts() []LocalizedText { return c.Texts }

// Diff types

// TextDiff is the comparison result for a single language's text.
type TextDiff struct {
	Language   string  `json:"language"`
	Status     string  `json:"status"`
	Similarity float64 `json:"similarity"`
	OldText    string  `json:"old_text"`
	NewText    string  `json:"new_text"`
}

// ChoiceDiff is the comparison result for a single coded item (answer
// option, matrix row, or matrix column).
type ChoiceDiff struct {
	Code      string     `json:"code"`
	Status    string     `json:"status"`
	TextDiffs []TextDiff `json:"text_diffs,omitempty"`
}

// QuestionDiff is the full diff for one question across two questionnaires.
type QuestionDiff struct {
	Code           string       `json:"code"`
	ElementType    string       `json:"element_type"`
	Status         string       `json:"status"`
	TextDiffs      []TextDiff   `json:"text_diffs,omitempty"`
	ChoiceDiffs    []ChoiceDiff `json:"choice_diffs,omitempty"`
	MatrixRowDiffs []ChoiceDiff `json:"matrix_row_diffs,omitempty"`
	MatrixColDiffs []ChoiceDiff `json:"matrix_column_diffs,omitempty"`
}

// ComparisonResult is the complete comparison output for two
// questionnaires. SourceA and SourceB are opaque caller-supplied labels.
type ComparisonResult struct {
	SourceA       string         `json:"source_a"`
	SourceB       string         `json:"source_b"`
	QuestionDiffs []QuestionDiff `json:"question_diffs"`
}

// Matched returns the diffs for questions present in both sources.
func (r ComparisonResult) Matched() []QuestionDiff {
	var out []QuestionDiff
	for _, d := range r.QuestionDiffs {
		if d.Status != StatusAdded && d.Status != StatusRemoved {
			out = append(out, d)
		}
	}
	return out
}

// Added returns the diffs for questions only present in source B.
func (r ComparisonResult) Added() []QuestionDiff {
	var out []QuestionDiff
	for _, d := range r.QuestionDiffs {
		if d.Status == StatusAdded {
			out = append(out, d)
		}
	}
	return out
}

// Removed returns the diffs for questions only present in source A.
func (r ComparisonResult) Removed() []QuestionDiff {
	var out []QuestionDiff
	for _, d := range r.QuestionDiffs {
		if d.Status == StatusRemoved {
			out = append(out, d)
		}
	}
	return out
}
