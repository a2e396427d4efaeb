// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package master

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/survaudit/models"
)

// ItemRecord is the persisted shape of one coded item.
type ItemRecord struct {
	Code  string            `yaml:"code"`
	Texts map[string]string `yaml:"texts"`
}

// Record is the persisted shape of one master question. Empty collections
// and zero-valued section fields are omitted so the file stays compact and
// hand-editable.
type Record struct {
	ElementType   string            `yaml:"element_type"`
	SectionName   string            `yaml:"section_name,omitempty"`
	SectionIndex  int               `yaml:"section_index,omitempty"`
	Texts         map[string]string `yaml:"texts"`
	Choices       []ItemRecord      `yaml:"choices,omitempty"`
	MatrixRows    []ItemRecord      `yaml:"matrix_rows,omitempty"`
	MatrixColumns []ItemRecord      `yaml:"matrix_columns,omitempty"`
}

// Master is the long-lived reference question set, keyed by normalized
// question code.
type Master map[string]Record

func textsToMap(texts []models.LocalizedText) map[string]string {
	out := make(map[string]string, len(texts))
	for _, lt := range texts {
		out[lt.Language] = lt.Text
	}
	return out
}

func mapToTexts(texts map[string]string) []models.LocalizedText {
	langs := make([]string, 0, len(texts))
	for lang := range texts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	out := make([]models.LocalizedText, 0, len(langs))
	for _, lang := range langs {
		out = append(out, models.LocalizedText{Language: lang, Text: texts[lang]})
	}
	return out
}

// QuestionToRecord converts a single Question to its persisted shape.
// Matrix columns are flattened across column groups.
func QuestionToRecord(q models.Question) Record {
	rec := Record{
		ElementType:  q.ElementType,
		SectionName:  q.SectionName,
		SectionIndex: q.SectionIndex,
		Texts:        textsToMap(q.Texts),
	}
	for _, c := range q.Choices {
		rec.Choices = append(rec.Choices, ItemRecord{Code: c.Code, Texts: textsToMap(c.Texts)})
	}
	for _, r := range q.MatrixRows {
		rec.MatrixRows = append(rec.MatrixRows, ItemRecord{Code: r.Code, Texts: textsToMap(r.Texts)})
	}
	for _, col := range q.FlattenedColumns() {
		rec.MatrixColumns = append(rec.MatrixColumns, ItemRecord{Code: col.Code, Texts: textsToMap(col.Texts)})
	}
	return rec
}

// Extract builds a master keyed by normalized question code. A later
// question with the same normalized code overwrites an earlier one.
func Extract(questions []models.Question) Master {
	m := make(Master, len(questions))
	for _, q := range questions {
		m[q.NormalizedCode()] = QuestionToRecord(q)
	}
	return m
}

// Merge combines per-export masters given oldest to newest. The newest
// export wins on colliding codes; older exports fill in codes absent from
// all newer ones.
func Merge(masters ...Master) Master {
	merged := Master{}
	for _, m := range masters {
		for code, rec := range m {
			merged[code] = rec
		}
	}
	return merged
}

// Save writes the master to a YAML file, creating parent directories as
// needed. Keys are emitted in sorted order so the file diffs cleanly and
// survives hand edits.
func Save(m Master, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create master dir: %w", err)
		}
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode master: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write master %s: %w", path, err)
	}
	return nil
}

// Load reads a master YAML file back. An empty file yields an empty
// master.
func Load(path string) (Master, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read master %s: %w", path, err)
	}
	m := Master{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse master %s: %w", path, err)
	}
	return m, nil
}

// ToQuestions reconstructs Question values from a loaded master, in sorted
// code order. IDs are synthesized as 0; section fields default when the
// record omits them. The reconstruction is lossless for every field the
// record shape captures.
func ToQuestions(m Master) []models.Question {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]models.Question, 0, len(codes))
	for _, code := range codes {
		rec := m[code]
		q := models.Question{
			Code:         code,
			ElementType:  rec.ElementType,
			Texts:        mapToTexts(rec.Texts),
			SectionName:  rec.SectionName,
			SectionIndex: rec.SectionIndex,
		}
		for _, c := range rec.Choices {
			q.Choices = append(q.Choices, models.AnswerOption{Code: c.Code, Texts: mapToTexts(c.Texts)})
		}
		for _, r := range rec.MatrixRows {
			q.MatrixRows = append(q.MatrixRows, models.MatrixRow{Code: r.Code, Texts: mapToTexts(r.Texts)})
		}
		if len(rec.MatrixColumns) > 0 {
			grp := models.MatrixColumnGroup{}
			for _, col := range rec.MatrixColumns {
				grp.Columns = append(grp.Columns, models.MatrixColumn{Code: col.Code, Texts: mapToTexts(col.Texts)})
			}
			q.MatrixColumnGroups = []models.MatrixColumnGroup{grp}
		}
		out = append(out, q)
	}
	return out
}
