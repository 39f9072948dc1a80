package metro2

import (
	"sort"

	"github.com/google/uuid"
)

// Summary is the language-neutral structured report rendered from an audited
// payload. Violations inside each entry are ordered by severity descending;
// ties keep rule registration order. AuditID correlates the run with
// downstream artifacts (dispute letters, API responses).
type Summary struct {
	AuditID                string           `json:"audit_id"`
	PersonalInfoViolations []Violation      `json:"personal_info_violations"`
	Accounts               []AccountSummary `json:"accounts"`
	InquiryViolations      []Violation      `json:"inquiry_violations"`
}

// AccountSummary is one tradeline's slice of the report.
type AccountSummary struct {
	Creditor   string      `json:"creditor"`
	Bureau     string      `json:"bureau"`
	Balance    string      `json:"balance"`
	Status     string      `json:"status"`
	Violations []Violation `json:"violations"`
}

// Summarize renders the structured report for an audited payload.
func Summarize(payload *AuditPayload) *Summary {
	s := &Summary{
		AuditID:                uuid.New().String(),
		PersonalInfoViolations: sortBySeverity(payload.PersonalInfoViolations),
		InquiryViolations:      sortBySeverity(payload.InquiryViolations),
		Accounts:               []AccountSummary{},
	}
	for _, tl := range payload.Accounts {
		if tl == nil {
			continue
		}
		s.Accounts = append(s.Accounts, AccountSummary{
			Creditor:   tl.CreditorName(),
			Bureau:     tl.BureauName(),
			Balance:    tl.Get("balance"),
			Status:     tl.Get("account_status"),
			Violations: sortBySeverity(tl.Violations),
		})
	}
	return s
}

// sortBySeverity orders major → moderate → minor, keeping registration order
// within a band.
func sortBySeverity(violations []Violation) []Violation {
	out := make([]Violation, len(violations))
	copy(out, violations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() > out[j].Severity.Rank()
	})
	return out
}
