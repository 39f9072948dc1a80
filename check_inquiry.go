package metro2

import (
	"strings"

	"github.com/redteamhero/metro2/rules"
)

// Inquiry ↔ tradeline reconciliation. Inquiry labels are often truncated
// versions of the furnisher name, so the match is a deliberate prefix test
// rather than equality.

func (a *audit) checkInquiries(inquiries []Inquiry, accounts []*Tradeline) []Violation {
	violations := []Violation{}

	var creditors []string
	for _, tl := range accounts {
		if name := strings.ToLower(tl.CreditorName()); name != "" {
			creditors = append(creditors, name)
		}
	}

	for _, inquiry := range inquiries {
		name := strings.ToLower(strings.TrimSpace(inquiry.CreditorName))
		if name == "" {
			continue
		}
		matched := false
		for _, creditor := range creditors {
			if strings.HasPrefix(name, creditor) {
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		date := inquiry.DateOfInquiry
		if date == "" {
			date = "unknown date"
		}
		a.emit(&violations, rules.InquiryNoMatch, "Inquiry on "+date+" not linked to any tradeline", map[string]string{
			"creditor_name": inquiry.CreditorName,
			"bureau":        inquiry.CreditBureau,
		})
	}
	return violations
}
