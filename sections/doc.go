// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sections normalizes free-form section names across multiple
questionnaire exports into a stable canonical taxonomy.

Section names in real exports vary by whitespace, typos, and small
spelling differences ("Charakterisierung des Projekts" vs
"Charakterisierung des Projektes"). Build collapses them in three phases:

 1. Strip: leading/trailing whitespace is removed from every raw name.
 2. Explicit alias: an operator-authored {variant: canonical} YAML map is
    applied; the stripped candidate is checked before the raw spelling.
 3. Fuzzy merge: remaining near-duplicates (case-insensitive similarity
    >= 0.92) are merged through a union-find, preferring the reference
    source's spelling, otherwise the earlier-seen name.

Questions without a section fall into "Other".

The resulting Normalizer answers Normalize (raw → canonical), AliasesFor /
AllAliases (which variants collapsed where, for reporting), and
OrderedSections, a reference-ordered section → normalized-code grouping in
which every question code appears exactly once.
*/
package sections
