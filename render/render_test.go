package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/survaudit/export"
	"github.com/danielhkuo/survaudit/models"
	"github.com/danielhkuo/survaudit/sections"
)

func fixtureData() export.Data {
	return export.Data{
		Meta: export.Meta{
			Sources:    []string{"master", "survey_IPf_20260127_1248.json"},
			ShortNames: map[string]string{"master": "master", "survey_IPf_20260127_1248.json": "IPf"},
			Reference:  "master",
			Languages:  []string{"de-ch", "en"},
			Sections: []sections.Section{
				{Name: "Einleitung", Codes: []string{"Q1"}},
				{Name: "Finanzen", Codes: []string{"Q2"}, Aliases: []string{"Finanzielles"}},
			},
			TotalQuestions: 2,
			StatusCounts: map[string]int{
				models.StatusIdentical:   1,
				models.StatusTextChanged: 1,
			},
		},
		Questions: map[string]map[string]export.QuestionView{
			"master": {
				"Q1": {Code: "Q1", Texts: map[string]string{"de-ch": "Hallo", "en": "Hello"}},
				"Q2": {Code: "Q2", Texts: map[string]string{"en": "Revenue?"}},
			},
		},
		Diffs: map[string]map[string]models.QuestionDiff{
			export.PairKey("master", "survey_IPf_20260127_1248.json"): {
				"Q1": {Code: "Q1", Status: models.StatusIdentical},
				"Q2": {Code: "Q2", Status: models.StatusTextChanged},
			},
		},
	}
}

func TestReport_ContainsSectionsCodesAndBadges(t *testing.T) {
	html, err := Report(fixtureData(), "de-CH")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	for _, want := range []string{
		"Einleitung",
		"Finanzen",
		"Q1",
		"Q2",
		models.StatusIdentical,
		models.StatusTextChanged,
		"Finanzielles", // collapsed section variants are listed
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReport_PrefersRequestedLanguage(t *testing.T) {
	html, err := Report(fixtureData(), "de-CH")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(html, "Hallo") {
		t.Error("report should show the de-ch text for Q1")
	}
	// Q2 has no de-ch text, any available language serves as fallback
	if !strings.Contains(html, "Revenue?") {
		t.Error("report should fall back to an available language for Q2")
	}
}

func TestReport_EmptyDataStillRenders(t *testing.T) {
	html, err := Report(export.Data{}, "en")
	if err != nil {
		t.Fatalf("Report on empty data: %v", err)
	}
	if !strings.Contains(html, "<html") {
		t.Error("expected a complete HTML document")
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "index.html")
	if err := Save("<html></html>", path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("saved content = %q", data)
	}
}
