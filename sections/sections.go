// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sections

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/survaudit/compare"
	"github.com/danielhkuo/survaudit/models"
)

// MergeThreshold is the similarity score at or above which two section
// names are auto-merged.
const MergeThreshold = 0.92

// DefaultSection is the bucket for questions without a section name.
const DefaultSection = "Other"

// Source is one questionnaire export: a label and its question list.
// Sources are passed as an ordered slice so that first-seen ordering is
// deterministic.
type Source struct {
	Name      string
	Questions []models.Question
}

// Section is one entry of the ordered section grouping.
type Section struct {
	Name    string   `json:"name"`
	Codes   []string `json:"codes"`
	Aliases []string `json:"aliases,omitempty"`
}

// LoadAliases reads a {variant: canonical} section alias map from a YAML
// file. A missing file means no aliases are configured and is not an
// error.
func LoadAliases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read alias file: %w", err)
	}
	aliases := map[string]string{}
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("parse alias file %s: %w", path, err)
	}
	return aliases, nil
}

// Normalizer maps raw section names to canonical ones and produces the
// reference-ordered section grouping. Build once per multi-source run.
type Normalizer struct {
	nameMap        map[string]string   // raw name → canonical name
	aliasDisplay   map[string][]string // canonical name → collapsed variants
	canonicalOrder []string
	reference      string
}

// Build constructs a Normalizer over the distinct raw section names seen
// across all sources, reference source first. Canonicalization runs in
// three phases: whitespace strip, explicit alias substitution, and fuzzy
// merge of near-duplicates with reference-source preference. Merges are
// resolved through a union-find so chains collapse to one target.
func Build(sources []Source, reference string, aliases map[string]string) *Normalizer {
	if aliases == nil {
		aliases = map[string]string{}
	}
	ordered := orderSources(sources, reference)

	// First-seen raw names per source, in question order.
	rawBySource := make(map[string][]string, len(ordered))
	for _, src := range ordered {
		var names []string
		seen := map[string]bool{}
		for _, q := range src.Questions {
			name := q.SectionName
			if name == "" {
				name = DefaultSection
			}
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		rawBySource[src.Name] = names
	}

	// Phase 1: strip whitespace.
	nameMap := map[string]string{}
	var rawOrder []string
	for _, src := range ordered {
		for _, raw := range rawBySource[src.Name] {
			if _, ok := nameMap[raw]; !ok {
				rawOrder = append(rawOrder, raw)
				nameMap[raw] = strings.TrimSpace(raw)
			}
		}
	}

	// Phase 2: explicit aliases. The stripped candidate is checked first,
	// the raw (pre-strip) name second.
	for _, raw := range rawOrder {
		if canonical, ok := aliases[nameMap[raw]]; ok {
			nameMap[raw] = canonical
		} else if canonical, ok := aliases[raw]; ok {
			nameMap[raw] = canonical
		}
	}

	// Distinct canonical names after phases 1+2, first-seen order.
	var canonicalNames []string
	seenCanonical := map[string]bool{}
	for _, src := range ordered {
		for _, raw := range rawBySource[src.Name] {
			cn := nameMap[raw]
			if !seenCanonical[cn] {
				seenCanonical[cn] = true
				canonicalNames = append(canonicalNames, cn)
			}
		}
	}

	// Phase 3: fuzzy merge via union-find. A name already merged away is
	// skipped; reference-source names win, otherwise the earlier name does.
	refNames := map[string]bool{}
	for _, raw := range rawBySource[reference] {
		refNames[nameMap[raw]] = true
	}
	parent := make(map[string]string, len(canonicalNames))
	for _, name := range canonicalNames {
		parent[name] = name
	}
	for i, nameA := range canonicalNames {
		if find(parent, nameA) != nameA {
			continue
		}
		for _, nameB := range canonicalNames[i+1:] {
			if find(parent, nameB) != nameB {
				continue
			}
			sim := compare.Similarity(strings.ToLower(nameA), strings.ToLower(nameB))
			if sim < MergeThreshold {
				continue
			}
			if !refNames[nameA] && refNames[nameB] {
				parent[nameA] = nameB
			} else {
				parent[nameB] = nameA
			}
		}
	}
	for _, raw := range rawOrder {
		nameMap[raw] = find(parent, nameMap[raw])
	}

	// Variant display map: stripped spellings that collapsed into a
	// different canonical name.
	aliasDisplay := map[string][]string{}
	var canonicalOrder []string
	seenFinal := map[string]bool{}
	for _, raw := range rawOrder {
		canonical := nameMap[raw]
		if !seenFinal[canonical] {
			seenFinal[canonical] = true
			canonicalOrder = append(canonicalOrder, canonical)
		}
		stripped := strings.TrimSpace(raw)
		if stripped == canonical {
			continue
		}
		if !containsString(aliasDisplay[canonical], stripped) {
			aliasDisplay[canonical] = append(aliasDisplay[canonical], stripped)
		}
	}

	return &Normalizer{
		nameMap:        nameMap,
		aliasDisplay:   aliasDisplay,
		canonicalOrder: canonicalOrder,
		reference:      reference,
	}
}

// find resolves a name to its merge target with path compression.
func find(parent map[string]string, name string) string {
	root := name
	for parent[root] != root {
		root = parent[root]
	}
	for parent[name] != root {
		parent[name], name = root, parent[name]
	}
	return root
}

// Normalize returns the canonical section name for a raw section name.
// Names never seen during Build fall back to their stripped form.
func (n *Normalizer) Normalize(rawName string) string {
	if canonical, ok := n.nameMap[rawName]; ok {
		return canonical
	}
	return strings.TrimSpace(rawName)
}

// AliasesFor returns the distinct variant names that collapsed into a
// canonical name, or an empty list.
func (n *Normalizer) AliasesFor(canonicalName string) []string {
	return append([]string(nil), n.aliasDisplay[canonicalName]...)
}

// AllAliases returns every canonical name with at least one variant, in
// first-seen canonical order.
func (n *Normalizer) AllAliases() []Section {
	var out []Section
	for _, name := range n.canonicalOrder {
		if variants := n.aliasDisplay[name]; len(variants) > 0 {
			out = append(out, Section{Name: name, Aliases: append([]string(nil), variants...)})
		}
	}
	return out
}

// OrderedSections groups normalized question codes by canonical section,
// ordered by the reference source's section appearance and extended with
// sections only found in other sources. Within a source, questions are
// visited in section-index order (stable, preserving element order inside
// a section). Each normalized code is placed exactly once, at its first
// occurrence across the whole iteration.
func (n *Normalizer) OrderedSections(sources []Source) []Section {
	var sectionOrder []string
	sectionCodes := map[string][]string{}
	seenCodes := map[string]bool{}

	for _, src := range orderSources(sources, n.reference) {
		questions := append([]models.Question(nil), src.Questions...)
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].SectionIndex < questions[j].SectionIndex
		})
		for _, q := range questions {
			name := q.SectionName
			if name == "" {
				name = DefaultSection
			}
			canonical := n.Normalize(name)
			if _, ok := sectionCodes[canonical]; !ok {
				sectionOrder = append(sectionOrder, canonical)
				sectionCodes[canonical] = []string{}
			}
			code := q.NormalizedCode()
			if !seenCodes[code] {
				seenCodes[code] = true
				sectionCodes[canonical] = append(sectionCodes[canonical], code)
			}
		}
	}

	out := make([]Section, 0, len(sectionOrder))
	for _, name := range sectionOrder {
		out = append(out, Section{
			Name:    name,
			Codes:   sectionCodes[name],
			Aliases: n.aliasDisplay[name],
		})
	}
	return out
}

// orderSources returns the sources with the reference first, preserving
// the given order otherwise.
func orderSources(sources []Source, reference string) []Source {
	out := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src.Name == reference {
			out = append(out, src)
		}
	}
	for _, src := range sources {
		if src.Name != reference {
			out = append(out, src)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
