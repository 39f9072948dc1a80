package rules

import (
	"sort"
	"strings"
	"testing"
)

func TestEveryRuleHasValidMetadata(t *testing.T) {
	all := All()
	if len(all) < 70 {
		t.Fatalf("registry holds %d rules; the audit engine expects the full set", len(all))
	}
	for _, r := range all {
		if r.ID == "" {
			t.Error("rule with empty id")
		}
		if !r.Severity.Valid() {
			t.Errorf("rule %s severity %q outside {minor, moderate, major}", r.ID, r.Severity)
		}
		if !strings.HasPrefix(r.FCRASection, "FCRA §") {
			t.Errorf("rule %s has malformed FCRA section %q", r.ID, r.FCRASection)
		}
	}
}

func TestIDsAreUnique(t *testing.T) {
	ids := map[string]bool{}
	for _, r := range All() {
		if ids[r.ID] {
			t.Errorf("duplicate rule id %s", r.ID)
		}
		ids[r.ID] = true
	}
}

func TestLookupUnknownAppliesDefaults(t *testing.T) {
	r := Lookup("SOME_FUTURE_RULE")
	if r.Severity != DefaultSeverity {
		t.Errorf("severity = %s, want default", r.Severity)
	}
	if r.FCRASection != DefaultFCRASection {
		t.Errorf("section = %s, want default", r.FCRASection)
	}
	if Known("SOME_FUTURE_RULE") {
		t.Error("unknown id should not be registered")
	}
}

func TestLookupKnown(t *testing.T) {
	r := Lookup("BALANCE_MISMATCH")
	if r.Severity != SeverityMajor {
		t.Errorf("BALANCE_MISMATCH severity = %s", r.Severity)
	}
	if r.Category != "comparison" {
		t.Errorf("BALANCE_MISMATCH category = %s", r.Category)
	}
}

func TestLegacyModernPairsShareSeverity(t *testing.T) {
	pairs := [][2]string{
		{"BALANCE_MISMATCH", "cross_bureau_balance_conflict"},
		{"OPEN_DATE_MISMATCH", "open_date_mismatch"},
		{"FIRST_DELINQUENCY_DATE_NOT_FROZEN", "fcra_dofd_invalid"},
		{"CURRENT_STATUS_WITH_PAST_DUE", "current_but_pastdue"},
	}
	for _, p := range pairs {
		a, b := Lookup(p[0]), Lookup(p[1])
		if a.Severity != b.Severity {
			t.Errorf("twin rules %s/%s disagree on severity", p[0], p[1])
		}
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	ranks := []int{SeverityMinor.Rank(), SeverityModerate.Rank(), SeverityMajor.Rank()}
	if !sort.IntsAreSorted(ranks) {
		t.Errorf("severity ranks out of order: %v", ranks)
	}
	if Severity("critical").Rank() != 0 {
		t.Error("unknown severity should rank zero")
	}
	if Severity("critical").Valid() {
		t.Error("unknown severity should be invalid")
	}
}
