// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package parse turns raw survey JSON exports into normalized Question
values.

Only question-like elements (SingleChoice, MultipleChoice, OpenQuestion,
Matrix, Dropdown) are kept. All localized text passes through CleanText,
which strips markup and entity noise so the comparison engine sees plain
prose. Matrix elements store their rows in the export's top-level choices
list; the parser moves them into MatrixRows and leaves Choices empty.

Filename helpers extract the embedded export date (ExtractDate,
SortFilesByDate) and the short display name (ShortName) used as source
labels downstream.
*/
package parse
