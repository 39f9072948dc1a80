package metro2

import "testing"

func groupTL(creditor, acct, bureau string, extra map[string]string) *Tradeline {
	fields := map[string]string{
		"creditor_name":  creditor,
		"account_number": acct,
		"bureau":         bureau,
	}
	for k, v := range extra {
		fields[k] = v
	}
	tl := NewTradeline(fields)
	NormalizeTradeline(tl)
	return tl
}

func TestGroupingSameAccountNumberAcrossBureaus(t *testing.T) {
	accounts := []*Tradeline{
		groupTL("Alpha Bank", "1234****", "TransUnion", nil),
		groupTL("Alpha Bank", "1234-****", "Experian", nil),
		groupTL("Alpha Bank", "1234 ****", "Equifax", nil),
	}
	groups := GroupAccounts(accounts, DefaultMatchThreshold)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	if got := len(groups[0].Members); got != 3 {
		t.Errorf("group has %d members, want 3", got)
	}
	if groups[0].AccountNumber != "1234" {
		t.Errorf("group key account = %q, want 1234", groups[0].AccountNumber)
	}
}

func TestGroupingNeverMergesConflictingAccountNumbers(t *testing.T) {
	shared := map[string]string{
		"date_opened":   "01/15/2020",
		"last_reported": "07/01/2025",
		"account_type":  "Credit Card",
	}
	accounts := []*Tradeline{
		groupTL("Premier Bank", "1111", "TransUnion", shared),
		groupTL("Premier Bank", "2222", "Experian", shared),
	}
	if score := matchScore(accounts[0], accounts[1]); score >= DefaultMatchThreshold {
		t.Fatalf("conflicting account numbers scored %d; the penalty must dominate", score)
	}
	groups := GroupAccounts(accounts, DefaultMatchThreshold)
	if len(groups) != 2 {
		t.Fatalf("expected two groups, got %d", len(groups))
	}
}

func TestGroupingScoreInvariant(t *testing.T) {
	accounts := []*Tradeline{
		groupTL("Summit Credit", "3333-0000", "TransUnion", nil),
		groupTL("Summit Credit", "33330000 ", "Experian", nil),
		groupTL("Summit Credit", "", "Equifax", nil),
	}
	groups := GroupAccounts(accounts, DefaultMatchThreshold)
	for _, g := range groups {
		for i := range g.Members {
			for j := i + 1; j < len(g.Members); j++ {
				if score := matchScore(g.Members[i], g.Members[j]); score < DefaultMatchThreshold {
					t.Errorf("group %s/%s holds a pair scoring %d", g.Creditor, g.AccountNumber, score)
				}
			}
		}
	}
	// The record with no account number cannot reach the threshold and
	// stays alone.
	if len(groups) != 2 {
		t.Errorf("expected 2 groups, got %d", len(groups))
	}
}

func TestGroupingLowerThresholdUsesSoftSignals(t *testing.T) {
	shared := map[string]string{
		"date_opened":   "01/15/2020",
		"last_reported": "07/01/2025",
		"account_type":  "Credit Card",
	}
	accounts := []*Tradeline{
		groupTL("Masked Bank", "", "TransUnion", shared),
		groupTL("Masked Bank", "", "Experian", shared),
	}
	if groups := GroupAccounts(accounts, DefaultMatchThreshold); len(groups) != 2 {
		t.Errorf("at the default threshold the masked records stay separate, got %d groups", len(groups))
	}
	if groups := GroupAccounts(accounts, 60); len(groups) != 1 {
		t.Errorf("at threshold 60 matching dates and type should group, got %d groups", len(groups))
	}
}

func TestGroupingSeparatesCreditors(t *testing.T) {
	accounts := []*Tradeline{
		groupTL("Alpha Bank", "1111", "TransUnion", nil),
		groupTL("Beta Credit", "1111", "TransUnion", nil),
	}
	groups := GroupAccounts(accounts, DefaultMatchThreshold)
	if len(groups) != 2 {
		t.Fatalf("different creditors must never share a group, got %d", len(groups))
	}
}

func TestAccountTypeBucket(t *testing.T) {
	cases := []struct {
		fields map[string]string
		want   string
	}{
		{map[string]string{"account_type": "Student Loan"}, bucketStudentLoan},
		{map[string]string{"payment_status": "In Collections"}, bucketCollection},
		{map[string]string{"account_type": "Auto Loan"}, bucketAuto},
		{map[string]string{"account_type_detail": "Conventional real estate mortgage"}, bucketMortgage},
		{map[string]string{"account_type": "Installment"}, bucketInstallment},
		{map[string]string{"account_type": "Credit Card", "account_status": "Open"}, bucketRevolving},
		{map[string]string{"account_status": "Open"}, bucketOpen},
		{map[string]string{}, ""},
	}
	for _, tc := range cases {
		tl := NewTradeline(tc.fields)
		if got := accountTypeBucket(tl); got != tc.want {
			t.Errorf("accountTypeBucket(%v) = %q, want %q", tc.fields, got, tc.want)
		}
	}
}
