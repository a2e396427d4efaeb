package sections

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/survaudit/models"
	"github.com/danielhkuo/survaudit/testutil"
)

func source(name string, questions ...models.Question) Source {
	return Source{Name: name, Questions: questions}
}

func TestBuild_StripsWhitespace(t *testing.T) {
	norm := Build([]Source{
		source("master", testutil.SectionQuestion("Q1", "  Finanzen ", 1)),
	}, "master", nil)

	if got := norm.Normalize("  Finanzen "); got != "Finanzen" {
		t.Errorf("Normalize = %q, want Finanzen", got)
	}
}

func TestNormalize_UnseenNameFallsBackToStrippedForm(t *testing.T) {
	norm := Build(nil, "master", nil)
	if got := norm.Normalize("  Neues Kapitel "); got != "Neues Kapitel" {
		t.Errorf("Normalize(unseen) = %q, want stripped form", got)
	}
}

func TestBuild_ExplicitAliasAppliesToStrippedName(t *testing.T) {
	aliases := map[string]string{"Finanzielles": "Finanzen"}
	norm := Build([]Source{
		source("master", testutil.SectionQuestion("Q1", "Finanzen", 1)),
		source("new", testutil.SectionQuestion("Q2", " Finanzielles ", 1)),
	}, "master", aliases)

	if got := norm.Normalize(" Finanzielles "); got != "Finanzen" {
		t.Errorf("Normalize = %q, want alias target Finanzen", got)
	}
	if got := norm.AliasesFor("Finanzen"); len(got) != 1 || got[0] != "Finanzielles" {
		t.Errorf("AliasesFor(Finanzen) = %v, want [Finanzielles]", got)
	}
}

func TestBuild_FuzzyMergePrefersReferenceSpelling(t *testing.T) {
	ref := "Charakterisierung des Projekts"
	variant := "Charakterisierung des Projektes"

	// Reference spelling wins no matter which source comes first in the
	// slice: orderSources puts the reference up front.
	for _, srcs := range [][]Source{
		{
			source("master", testutil.SectionQuestion("Q1", ref, 1)),
			source("new", testutil.SectionQuestion("Q2", variant, 1)),
		},
		{
			source("new", testutil.SectionQuestion("Q2", variant, 1)),
			source("master", testutil.SectionQuestion("Q1", ref, 1)),
		},
	} {
		norm := Build(srcs, "master", nil)
		if got := norm.Normalize(variant); got != ref {
			t.Errorf("Normalize(%q) = %q, want reference spelling %q", variant, got, ref)
		}
		if got := norm.AliasesFor(ref); len(got) != 1 || got[0] != variant {
			t.Errorf("AliasesFor(%q) = %v, want [%q]", ref, got, variant)
		}
	}
}

func TestBuild_DissimilarNamesStaySeparate(t *testing.T) {
	norm := Build([]Source{
		source("master", testutil.SectionQuestion("Q1", "Finanzen", 1)),
		source("new", testutil.SectionQuestion("Q2", "Projektteam", 1)),
	}, "master", nil)

	if got := norm.Normalize("Projektteam"); got != "Projektteam" {
		t.Errorf("Normalize(Projektteam) = %q, want unchanged", got)
	}
	if got := norm.AliasesFor("Finanzen"); len(got) != 0 {
		t.Errorf("AliasesFor(Finanzen) = %v, want empty", got)
	}
}

func TestBuild_TransitiveVariantsCollapseToOneTarget(t *testing.T) {
	norm := Build([]Source{
		source("master", testutil.SectionQuestion("Q1", "Charakterisierung des Projekts", 1)),
		source("s1", testutil.SectionQuestion("Q2", "Charakterisierung des Projektes", 1)),
		source("s2", testutil.SectionQuestion("Q3", "Charakterisierung der Projekte", 1)),
	}, "master", nil)

	for _, raw := range []string{
		"Charakterisierung des Projektes",
		"Charakterisierung der Projekte",
	} {
		if got := norm.Normalize(raw); got != "Charakterisierung des Projekts" {
			t.Errorf("Normalize(%q) = %q, want the reference spelling", raw, got)
		}
	}
	if got := norm.AliasesFor("Charakterisierung des Projekts"); len(got) != 2 {
		t.Errorf("AliasesFor = %v, want both variants", got)
	}
}

func TestAllAliases_ListsOnlyMergedSections(t *testing.T) {
	norm := Build([]Source{
		source("master",
			testutil.SectionQuestion("Q1", "Charakterisierung des Projekts", 1),
			testutil.SectionQuestion("Q2", "Finanzen", 2),
		),
		source("new", testutil.SectionQuestion("Q3", "Charakterisierung des Projektes", 1)),
	}, "master", nil)

	got := norm.AllAliases()
	want := []Section{{
		Name:    "Charakterisierung des Projekts",
		Aliases: []string{"Charakterisierung des Projektes"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllAliases mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedSections_ReferenceOrderAndCodeDedupe(t *testing.T) {
	master := source("master",
		testutil.SectionQuestion("Intro1", "Einleitung", 1),
		testutil.SectionQuestion("Fin1", "Finanzen", 2),
	)
	newer := source("new",
		testutil.SectionQuestion("FFin1", "Finanzen", 1), // same normalized code as Fin1
		testutil.SectionQuestion("Extra1", "Anhang", 2),
	)
	norm := Build([]Source{newer, master}, "master", nil)

	got := norm.OrderedSections([]Source{newer, master})
	want := []Section{
		{Name: "Einleitung", Codes: []string{"Intro1"}},
		{Name: "Finanzen", Codes: []string{"Fin1"}},
		{Name: "Anhang", Codes: []string{"Extra1"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OrderedSections mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedSections_MissingSectionNameFallsBackToOther(t *testing.T) {
	q := testutil.Question("Loose1", "No section set")
	norm := Build([]Source{source("master", q)}, "master", nil)

	got := norm.OrderedSections([]Source{source("master", q)})
	if len(got) != 1 || got[0].Name != DefaultSection {
		t.Fatalf("sections = %+v, want single %q bucket", got, DefaultSection)
	}
	if len(got[0].Codes) != 1 || got[0].Codes[0] != "Loose1" {
		t.Errorf("codes = %v, want [Loose1]", got[0].Codes)
	}
}

func TestOrderedSections_SortsBySectionIndexWithinSource(t *testing.T) {
	src := source("master",
		testutil.SectionQuestion("Later1", "Anhang", 5),
		testutil.SectionQuestion("First1", "Einleitung", 1),
	)
	norm := Build([]Source{src}, "master", nil)

	got := norm.OrderedSections([]Source{src})
	if len(got) != 2 || got[0].Name != "Einleitung" || got[1].Name != "Anhang" {
		t.Errorf("section order = %+v, want Einleitung before Anhang", got)
	}
}

func TestLoadAliases_MissingFileIsNotAnError(t *testing.T) {
	aliases, err := LoadAliases(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadAliases(missing) returned error: %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("aliases = %v, want empty map", aliases)
	}
}

func TestLoadAliases_ReadsYAMLMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	content := "Finanzielles: Finanzen\nTeam & Organisation: Projektteam\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	aliases, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases returned error: %v", err)
	}
	want := map[string]string{
		"Finanzielles":        "Finanzen",
		"Team & Organisation": "Projektteam",
	}
	if diff := cmp.Diff(want, aliases); diff != "" {
		t.Errorf("alias map mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAliases_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	if err := os.WriteFile(path, []byte("- not\n- a\n- mapping\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAliases(path); err == nil {
		t.Error("expected an error for non-mapping YAML")
	}
}
