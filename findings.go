package metro2

import "github.com/redteamhero/metro2/rules"

// Findings flattens every violation in an audited payload — tradeline,
// inquiry, and personal-info — for callers that only need the aggregate
// view.
//
// Example usage:
//
//	audited := metro2.RunAllAudits(payload)
//	f := audited.Findings()
//	if f.HasRule("BALANCE_MISMATCH") {
//	    // queue a cross-bureau dispute letter
//	}
func (p *AuditPayload) Findings() *Findings {
	f := &Findings{}
	for _, tl := range p.Accounts {
		if tl != nil {
			f.violations = append(f.violations, tl.Violations...)
		}
	}
	f.violations = append(f.violations, p.InquiryViolations...)
	f.violations = append(f.violations, p.PersonalInfoViolations...)
	return f
}

// Findings is a read-only aggregate of a payload's violations.
type Findings struct {
	violations []Violation
}

// Violations returns a copy of the aggregated violations.
func (f *Findings) Violations() []Violation {
	out := make([]Violation, len(f.violations))
	copy(out, f.violations)
	return out
}

// Count returns the total number of violations.
func (f *Findings) Count() int {
	return len(f.violations)
}

// HasRule checks whether a specific rule id fired anywhere in the payload.
func (f *Findings) HasRule(id string) bool {
	for _, v := range f.violations {
		if v.ID == id {
			return true
		}
	}
	return false
}

// CountSeverity counts violations in one severity band.
func (f *Findings) CountSeverity(s rules.Severity) int {
	n := 0
	for _, v := range f.violations {
		if v.Severity == s {
			n++
		}
	}
	return n
}
