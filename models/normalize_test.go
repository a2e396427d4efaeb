package models

import "testing"

func TestNormalizeCode_StripsSurveyPrefix(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"FUnternehmenArt", "UnternehmenArt"},
		{"IUnternehmenArt", "UnternehmenArt"},
		{"fGruendungsjahr", "Gruendungsjahr"},
		{"iGruendungsjahr", "Gruendungsjahr"},
	}
	for _, tc := range cases {
		if got := NormalizeCode(tc.code); got != tc.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestNormalizeCode_LeavesNonPrefixedCodesAlone(t *testing.T) {
	cases := []string{
		"",               // empty passes through
		"Istartup",       // lowercase second character, not a prefix
		"UnternehmenArt", // no trigger letter
		"X",              // single character
		"Q1",
	}
	for _, code := range cases {
		if got := NormalizeCode(code); got != code {
			t.Errorf("NormalizeCode(%q) = %q, want unchanged", code, got)
		}
	}
}

func TestNormalizeCode_AcronymException(t *testing.T) {
	if got := NormalizeCode("IPRErgebnisse"); got != "IPRErgebnisse" {
		t.Errorf("IPR codes must not be stripped, got %q", got)
	}
}

func TestNormalizeCode_AliasCorrectsKnownTypo(t *testing.T) {
	if got := NormalizeCode("IPRErgenisse"); got != "IPRErgebnisse" {
		t.Errorf("NormalizeCode(IPRErgenisse) = %q, want IPRErgebnisse", got)
	}
}

func TestNormalizeCode_Idempotent(t *testing.T) {
	codes := []string{
		"FUnternehmenArt", "IUnternehmenArt", "fGruendungsjahr", "Istartup",
		"IPRErgenisse", "IPRErgebnisse", "", "Q1", "UnternehmenArt",
	}
	for _, code := range codes {
		once := NormalizeCode(code)
		twice := NormalizeCode(once)
		if once != twice {
			t.Errorf("NormalizeCode not idempotent for %q: %q then %q", code, once, twice)
		}
	}
}

func TestQuestion_NormalizedCode(t *testing.T) {
	q := Question{Code: "FUnternehmenArt"}
	if got := q.NormalizedCode(); got != "UnternehmenArt" {
		t.Errorf("NormalizedCode() = %q, want UnternehmenArt", got)
	}
	// Derived from the current code, never cached
	q.Code = "IGruendungsjahr"
	if got := q.NormalizedCode(); got != "Gruendungsjahr" {
		t.Errorf("NormalizedCode() after code change = %q, want Gruendungsjahr", got)
	}
}
