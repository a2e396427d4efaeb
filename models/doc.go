// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the normalized questionnaire data model and the diff
result types shared by every other package.

# Domain Types

  - LocalizedText: one text value with its language code
  - AnswerOption: selectable choice inside a question
  - MatrixRow: sub-question inside a Matrix question
  - MatrixColumn / MatrixColumnGroup: Matrix answer structure
  - Question: the central entity, one per parsed survey element

For Matrix questions the structure lives in MatrixRows and
MatrixColumnGroups and Choices is empty; all other element types use
Choices. Column groups exist only for presentation - comparison flattens
every group of a question into a single code-keyed set.

# Code Normalization

NormalizeCode strips the single-character survey-edition prefix (F/f/I/i,
when followed by an uppercase letter) so that, e.g., "FUnternehmenArt" from
a Final export and "IUnternehmenArt" from an Impact export match under the
shared key "UnternehmenArt". A small alias table corrects known typos in
source data. Question.NormalizedCode applies the same rule and is computed
on every call.

# Diff Types

  - TextDiff: per-language comparison of one text field
  - ChoiceDiff: comparison of one coded item (option, row, or column)
  - QuestionDiff: full diff for one question
  - ComparisonResult: all question diffs for one source pair, with
    Matched/Added/Removed filter views

Diff values are produced by the compare package and never mutated after
construction.

# Status Constants

Text statuses:

	exact, similar, different, added, removed

Coded-item statuses:

	unchanged, text_changed, added, removed

Question statuses:

	identical, text_changed, structure_changed, added, removed
*/
package models
