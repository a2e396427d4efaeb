// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/danielhkuo/survaudit/models"
	"github.com/danielhkuo/survaudit/parse"
	"github.com/danielhkuo/survaudit/sections"
)

// Arrow joins the two source identifiers of a directed diff pair key.
const Arrow = " → "

// ItemView is the projection of one coded item.
type ItemView struct {
	Code  string            `json:"code"`
	Texts map[string]string `json:"texts"`
}

// QuestionView is the full question projection handed to renderers. Matrix
// questions carry flattened rows and columns; all other types carry
// choices.
type QuestionView struct {
	ID            int               `json:"id"`
	Code          string            `json:"code"`
	ElementType   string            `json:"element_type"`
	SectionName   string            `json:"section_name,omitempty"`
	Texts         map[string]string `json:"texts"`
	Choices       []ItemView        `json:"choices,omitempty"`
	MatrixRows    []ItemView        `json:"matrix_rows,omitempty"`
	MatrixColumns []ItemView        `json:"matrix_columns,omitempty"`
}

// Meta summarizes one export run for the rendering layer.
type Meta struct {
	Sources        []string           `json:"sources"`
	ShortNames     map[string]string  `json:"short_names"`
	Reference      string             `json:"reference"`
	Languages      []string           `json:"languages"`
	Sections       []sections.Section `json:"sections"`
	TotalQuestions int                `json:"total_questions"`
	StatusCounts   map[string]int     `json:"status_counts"`
}

// Data is the complete comparison export: meta, the per-source question
// projections keyed by normalized code, and the per-pair diffs keyed by
// "<sourceA> → <sourceB>" then normalized code.
type Data struct {
	Meta      Meta                                      `json:"meta"`
	Questions map[string]map[string]QuestionView        `json:"questions"`
	Diffs     map[string]map[string]models.QuestionDiff `json:"diffs"`
}

// PairKey labels the directed comparison of two sources.
func PairKey(sourceA, sourceB string) string {
	return sourceA + Arrow + sourceB
}

func textsToMap(texts []models.LocalizedText) map[string]string {
	out := make(map[string]string, len(texts))
	for _, lt := range texts {
		out[lt.Language] = lt.Text
	}
	return out
}

func questionView(q models.Question) QuestionView {
	view := QuestionView{
		ID:          q.ID,
		Code:        q.Code,
		ElementType: q.ElementType,
		SectionName: q.SectionName,
		Texts:       textsToMap(q.Texts),
	}
	if q.ElementType == models.TypeMatrix {
		for _, r := range q.MatrixRows {
			view.MatrixRows = append(view.MatrixRows, ItemView{Code: r.Code, Texts: textsToMap(r.Texts)})
		}
		for _, c := range q.FlattenedColumns() {
			view.MatrixColumns = append(view.MatrixColumns, ItemView{Code: c.Code, Texts: textsToMap(c.Texts)})
		}
		return view
	}
	for _, c := range q.Choices {
		view.Choices = append(view.Choices, ItemView{Code: c.Code, Texts: textsToMap(c.Texts)})
	}
	return view
}

// statusPriority orders question statuses worst-first for the summary
// counts.
var statusPriority = []string{
	models.StatusStructureChanged,
	models.StatusTextChanged,
	models.StatusAdded,
	models.StatusRemoved,
	models.StatusIdentical,
}

func priorityIndex(status string) int {
	for i, s := range statusPriority {
		if s == status {
			return i
		}
	}
	return len(statusPriority)
}

// Build assembles the export payload from comparison results and the
// ordered sources that produced them. The section grouping and alias
// annotations come from the normalizer; reference names the source whose
// ordering wins.
func Build(results []models.ComparisonResult, sources []sections.Source, norm *sections.Normalizer, reference string) Data {
	sourceNames := make([]string, 0, len(sources))
	shortNames := make(map[string]string, len(sources))
	for _, src := range sources {
		sourceNames = append(sourceNames, src.Name)
		shortNames[src.Name] = parse.ShortName(src.Name)
	}

	langSet := map[string]bool{}
	questions := make(map[string]map[string]QuestionView, len(sources))
	codeSet := map[string]bool{}
	for _, src := range sources {
		byCode := make(map[string]QuestionView, len(src.Questions))
		for _, q := range src.Questions {
			for _, lt := range q.Texts {
				langSet[lt.Language] = true
			}
			code := q.NormalizedCode()
			byCode[code] = questionView(q)
			codeSet[code] = true
		}
		questions[src.Name] = byCode
	}
	languages := make([]string, 0, len(langSet))
	for lang := range langSet {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	diffs := make(map[string]map[string]models.QuestionDiff, len(results))
	worst := map[string]string{}
	for _, result := range results {
		byCode := make(map[string]models.QuestionDiff, len(result.QuestionDiffs))
		for _, qd := range result.QuestionDiffs {
			byCode[qd.Code] = qd
			if current, ok := worst[qd.Code]; !ok || priorityIndex(qd.Status) < priorityIndex(current) {
				worst[qd.Code] = qd.Status
			}
		}
		diffs[PairKey(result.SourceA, result.SourceB)] = byCode
	}
	statusCounts := map[string]int{
		models.StatusIdentical:        0,
		models.StatusTextChanged:      0,
		models.StatusStructureChanged: 0,
		models.StatusAdded:            0,
		models.StatusRemoved:          0,
	}
	for _, status := range worst {
		statusCounts[status]++
	}

	return Data{
		Meta: Meta{
			Sources:        sourceNames,
			ShortNames:     shortNames,
			Reference:      reference,
			Languages:      languages,
			Sections:       norm.OrderedSections(sources),
			TotalQuestions: len(codeSet),
			StatusCounts:   statusCounts,
		},
		Questions: questions,
		Diffs:     diffs,
	}
}

// Save writes the export payload as indented JSON, creating parent
// directories as needed.
func Save(data Data, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export data: %w", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}
