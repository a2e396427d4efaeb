// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danielhkuo/survaudit/export"
	"github.com/danielhkuo/survaudit/models"
)

//go:embed report.html.tmpl
var templateFS embed.FS

// statusColors maps diff statuses to the report's badge colors.
var statusColors = map[string]string{
	models.StatusIdentical:        "green",
	models.StatusTextChanged:      "yellow",
	models.StatusStructureChanged: "red",
	models.StatusAdded:            "grey",
	models.StatusRemoved:          "grey",
}

type statusCell struct {
	Pair   string
	Status string
	Color  string
}

type rowView struct {
	Code     string
	Text     string
	Statuses []statusCell
}

type sectionView struct {
	Name    string
	Aliases string
	Rows    []rowView
}

type reportView struct {
	Meta     export.Meta
	Language string
	Pairs    []string
	Sections []sectionView
}

// questionText finds a display text for a normalized code, preferring the
// requested language, scanning sources in meta order.
func questionText(data export.Data, code, language string) string {
	for _, source := range data.Meta.Sources {
		q, ok := data.Questions[source][code]
		if !ok {
			continue
		}
		if text, ok := q.Texts[language]; ok && text != "" {
			return text
		}
		for _, text := range q.Texts {
			if text != "" {
				return text
			}
		}
	}
	return ""
}

// Report renders a self-contained HTML comparison report from the export
// payload.
func Report(data export.Data, defaultLanguage string) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "report.html.tmpl")
	if err != nil {
		return "", fmt.Errorf("parse report template: %w", err)
	}

	pairs := make([]string, 0, len(data.Diffs))
	for pair := range data.Diffs {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)

	language := strings.ToLower(defaultLanguage)
	view := reportView{Meta: data.Meta, Language: defaultLanguage, Pairs: pairs}
	for _, section := range data.Meta.Sections {
		sv := sectionView{Name: section.Name, Aliases: strings.Join(section.Aliases, ", ")}
		for _, code := range section.Codes {
			row := rowView{Code: code, Text: questionText(data, code, language)}
			for _, pair := range pairs {
				if qd, ok := data.Diffs[pair][code]; ok {
					row.Statuses = append(row.Statuses, statusCell{
						Pair:   pair,
						Status: qd.Status,
						Color:  statusColors[qd.Status],
					})
				}
			}
			sv.Rows = append(sv.Rows, row)
		}
		view.Sections = append(view.Sections, sv)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

// Save writes rendered HTML to a file, creating parent directories as
// needed.
func Save(html, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
