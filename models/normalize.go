// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"unicode"
)

// codeAliases maps known data-entry typos to their corrected codes. Checked
// by exact full-string match against both the acronym-excepted and the
// prefix-stripped form of a code. New typos found in real exports belong
// here, not in the stripping rule.
var codeAliases = map[string]string{
	"IPRErgenisse": "IPRErgebnisse", // typo in the Impact survey
}

// codeAcronyms lists code prefixes that look like a survey-type prefix but
// are part of the code itself and must never be stripped.
var codeAcronyms = []string{"IPR"}

// NormalizeCode strips the survey-type prefix (F/f/I/i) from a question
// code so codes from different survey editions match.
//
// The prefix is dropped only when the second character is an uppercase
// letter; codes like "Istartup" stay untouched, which keeps the function
// idempotent for round-tripped codes. The rule is purely syntactic and
// makes no attempt at semantic disambiguation.
func NormalizeCode(code string) string {
	if code == "" {
		return code
	}
	for _, acr := range codeAcronyms {
		if strings.HasPrefix(code, acr) {
			if alias, ok := codeAliases[code]; ok {
				return alias
			}
			return code
		}
	}
	runes := []rune(code)
	if len(runes) > 1 && strings.ContainsRune("FfIi", runes[0]) && unicode.IsUpper(runes[1]) {
		code = string(runes[1:])
	}
	if alias, ok := codeAliases[code]; ok {
		return alias
	}
	return code
}
