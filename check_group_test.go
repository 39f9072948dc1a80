package metro2

import "testing"

func TestStatusAndOpenClosedMismatch(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":  "Summit Credit",
		"account_number": "3333-0000",
		"account_status": "Open",
		"bureau":         "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":  "Summit Credit",
		"account_number": "33330000 ",
		"account_status": "Closed",
		"bureau":         "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})

	for _, tl := range []*Tradeline{a, b} {
		wantViolation(t, tl, "STATUS_MISMATCH")
		wantViolation(t, tl, "OPEN_CLOSED_MISMATCH")
		wantViolation(t, tl, "INCOMPLETE_BUREAU_REPORTING")
	}
}

func TestDifferentAccountsSameCreditorNotCompared(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":  "Premier Bank",
		"account_number": "1111",
		"account_status": "Open",
		"balance":        "$150",
		"bureau":         "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":  "Premier Bank",
		"account_number": "2222",
		"account_status": "Closed",
		"balance":        "$0",
		"bureau":         "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})

	for _, tl := range []*Tradeline{a, b} {
		wantNoViolation(t, tl, "STATUS_MISMATCH")
		wantNoViolation(t, tl, "BALANCE_MISMATCH")
		// Two distinct numbers across two bureaus under one creditor is
		// its own finding.
		wantViolation(t, tl, "POSSIBLE_MISMATCHED_ACCOUNTS_ACROSS_BUREAUS")
	}
}

func TestOpenDateMismatchEmitsBothIDs(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"date_opened":    "01/15/2020",
		"bureau":         "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"date_opened":    "02/15/2020",
		"bureau":         "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})

	wantViolation(t, a, "OPEN_DATE_MISMATCH")
	wantViolation(t, a, "open_date_mismatch")
}

func TestDOFDNotFrozenAcrossBureaus(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":             "Collections LLC",
		"account_number":            "777",
		"date_of_first_delinquency": "01/01/2021",
		"bureau":                    "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":             "Collections LLC",
		"account_number":            "777",
		"date_of_first_delinquency": "06/01/2021",
		"bureau":                    "Equifax",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})

	wantViolation(t, a, "FIRST_DELINQUENCY_DATE_NOT_FROZEN")
	wantViolation(t, a, "fcra_dofd_invalid")
	wantViolation(t, b, "FIRST_DELINQUENCY_DATE_NOT_FROZEN")
}

func TestLastPaymentMismatch(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":        "Alpha Bank",
		"account_number":       "1234",
		"date_of_last_payment": "01/01/2024",
		"bureau":               "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":        "Alpha Bank",
		"account_number":       "1234",
		"date_of_last_payment": "03/01/2024",
		"bureau":               "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})
	wantViolation(t, a, "LAST_PAYMENT_MISMATCH_BETWEEN_BU")
}

func TestAccountTypeMismatchAcrossBureaus(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"account_type":   "Revolving",
		"bureau":         "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"account_type":   "Credit Card",
		"bureau":         "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})
	wantViolation(t, a, "ACCOUNT_TYPE_MISMATCH")
}

func TestPaymentHistoryWordsMismatch(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"payment_status": "Late 30 Days",
		"bureau":         "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"payment_status": "OK",
		"bureau":         "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})
	wantViolation(t, a, "PAYMENT_HISTORY_MISMATCH")
	wantViolation(t, b, "PAYMENT_HISTORY_MISMATCH")
}

func TestDuplicateWithinBureau(t *testing.T) {
	first := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "4444",
		"bureau":         "TransUnion",
	})
	repeat := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "4444",
		"bureau":         "TransUnion",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{first, repeat}})

	wantNoViolation(t, first, "DUPLICATE_ACCOUNT")
	wantViolation(t, repeat, "DUPLICATE_ACCOUNT")
}

func TestUtilizationGapAcrossBureaus(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"balance":        "$900",
		"credit_limit":   "$1,000",
		"bureau":         "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"balance":        "$400",
		"credit_limit":   "$1,000",
		"bureau":         "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})

	wantViolation(t, a, "CROSS_BUREAU_UTILIZATION_GAP")
	wantViolation(t, b, "CROSS_BUREAU_UTILIZATION_GAP")
}

func TestGroupViolationsAttachToAllMembersEqually(t *testing.T) {
	a := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"balance":        "$100",
		"bureau":         "TransUnion",
	})
	b := NewTradeline(map[string]string{
		"creditor_name":  "Alpha Bank",
		"account_number": "1234",
		"balance":        "$250",
		"bureau":         "Experian",
	})
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{a, b}})

	var va, vb *Violation
	for i := range a.Violations {
		if a.Violations[i].ID == "BALANCE_MISMATCH" {
			va = &a.Violations[i]
		}
	}
	for i := range b.Violations {
		if b.Violations[i].ID == "BALANCE_MISMATCH" {
			vb = &b.Violations[i]
		}
	}
	if va == nil || vb == nil {
		t.Fatal("BALANCE_MISMATCH missing from a group member")
	}
	if va.Title != vb.Title || va.Severity != vb.Severity || va.Extra["balances"] != vb.Extra["balances"] {
		t.Error("group violation differs between members")
	}
}
