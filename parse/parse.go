// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package parse

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/danielhkuo/survaudit/models"
)

// questionTypes lists the element types treated as questions; every other
// element (text blocks, page breaks) is skipped.
var questionTypes = map[string]bool{
	models.TypeSingleChoice:   true,
	models.TypeMultipleChoice: true,
	models.TypeOpenQuestion:   true,
	models.TypeMatrix:         true,
	models.TypeDropdown:       true,
}

var (
	datePattern = regexp.MustCompile(`_(\d{8})_\d{4}\.json$`)
	htmlTagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
)

// Filename utilities

// ExtractDate returns the YYYYMMDD date string embedded in an export
// filename like "survey_IPf_..._20260127_1248.json", or "" if absent.
func ExtractDate(filename string) string {
	if m := datePattern.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	return ""
}

// SortFilesByDate orders export paths by their filename date, oldest
// first. Files without a date sort to the front, in their given order.
func SortFilesByDate(files []string) []string {
	sorted := append([]string(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := ExtractDate(filepath.Base(sorted[i])), ExtractDate(filepath.Base(sorted[j]))
		if di == "" {
			di = "00000000"
		}
		if dj == "" {
			dj = "00000000"
		}
		return di < dj
	})
	return sorted
}

// ShortName returns the display name embedded in an export filename, the
// field between the first two underscores ("survey_IPf_..." → "IPf").
func ShortName(filename string) string {
	parts := strings.Split(filename, "_")
	if len(parts) >= 2 {
		return parts[1]
	}
	return filename
}

// Text cleanup

// CleanText strips HTML tags, decodes entities, drops zero-width spaces,
// turns non-breaking spaces into plain ones, and collapses runs of spaces
// and tabs.
func CleanText(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\u200b", "")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Raw export shapes

type rawText struct {
	LanguageCode string `json:"languageCode"`
	Text         string `json:"text"`
}

type rawChoice struct {
	ID             int       `json:"id"`
	Code           string    `json:"code"`
	Text           []rawText `json:"text"`
	AllowTextEntry bool      `json:"allowTextEntry"`
	Exclusive      bool      `json:"exclusive"`
}

type rawColumnGroup struct {
	ID         int         `json:"id"`
	Choices    []rawChoice `json:"choices"`
	ChoiceType string      `json:"choiceType"`
}

type rawElement struct {
	ID            int              `json:"id"`
	Code          string           `json:"code"`
	ElementType   string           `json:"elementType"`
	Text          []rawText        `json:"text"`
	HintText      []rawText        `json:"hintText"`
	Choices       []rawChoice      `json:"choices"`
	ColumnGroups  []rawColumnGroup `json:"columnGroups"`
	ForceResponse bool             `json:"forceResponse"`
	Conditions    []any            `json:"conditions"`
}

type rawSection struct {
	Name     string       `json:"name"`
	Elements []rawElement `json:"elements"`
}

type rawSurvey struct {
	Sections []rawSection `json:"sections"`
}

func parseLocalized(raw []rawText) []models.LocalizedText {
	if len(raw) == 0 {
		return nil
	}
	out := make([]models.LocalizedText, 0, len(raw))
	for _, item := range raw {
		out = append(out, models.LocalizedText{
			Language: strings.ToLower(item.LanguageCode),
			Text:     CleanText(item.Text),
		})
	}
	return out
}

func parseElement(el rawElement, sectionName string, sectionIndex int) (models.Question, bool) {
	if !questionTypes[el.ElementType] {
		return models.Question{}, false
	}

	q := models.Question{
		ID:            el.ID,
		Code:          el.Code,
		ElementType:   el.ElementType,
		Texts:         parseLocalized(el.Text),
		HintTexts:     parseLocalized(el.HintText),
		ForceResponse: el.ForceResponse,
		SectionName:   sectionName,
		SectionIndex:  sectionIndex,
		Conditions:    el.Conditions,
	}

	if el.ElementType == models.TypeMatrix {
		// Matrix rows are the element's top-level choices list.
		for _, c := range el.Choices {
			q.MatrixRows = append(q.MatrixRows, models.MatrixRow{
				ID: c.ID, Code: c.Code, Texts: parseLocalized(c.Text),
			})
		}
		for _, cg := range el.ColumnGroups {
			grp := models.MatrixColumnGroup{ID: cg.ID, ChoiceType: cg.ChoiceType}
			for _, c := range cg.Choices {
				grp.Columns = append(grp.Columns, models.MatrixColumn{
					ID: c.ID, Code: c.Code, Texts: parseLocalized(c.Text),
				})
			}
			q.MatrixColumnGroups = append(q.MatrixColumnGroups, grp)
		}
		return q, true
	}

	for _, c := range el.Choices {
		q.Choices = append(q.Choices, models.AnswerOption{
			ID:             c.ID,
			Code:           c.Code,
			Texts:          parseLocalized(c.Text),
			AllowTextEntry: c.AllowTextEntry,
			Exclusive:      c.Exclusive,
		})
	}
	return q, true
}

// Public API

// ParseSurvey decodes a full survey export and returns its questions in
// document order.
func ParseSurvey(data []byte) ([]models.Question, error) {
	var survey rawSurvey
	if err := json.Unmarshal(data, &survey); err != nil {
		return nil, fmt.Errorf("decode survey export: %w", err)
	}
	var questions []models.Question
	for idx, section := range survey.Sections {
		for _, el := range section.Elements {
			if q, ok := parseElement(el, section.Name, idx); ok {
				questions = append(questions, q)
			}
		}
	}
	return questions, nil
}

// LoadAndParse reads an export file and returns its parsed questions.
func LoadAndParse(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export %s: %w", path, err)
	}
	questions, err := ParseSurvey(data)
	if err != nil {
		return nil, fmt.Errorf("parse export %s: %w", path, err)
	}
	return questions, nil
}
