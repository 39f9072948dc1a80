package metro2

import "testing"

func TestClosedStatusStillOpen(t *testing.T) {
	tl := runOne(t, map[string]string{
		"account_status": "Open",
		"date_closed":    "03/01/2024",
	})
	wantViolation(t, tl, "INCONSISTENT_ACCOUNT_STATUS_ON_CLOSED")
}

func TestClosedWithMonthlyPayment(t *testing.T) {
	tl := runOne(t, map[string]string{
		"account_status":  "Closed",
		"monthly_payment": "$120",
	})
	wantViolation(t, tl, "CLOSED_ACCOUNT_STILL_REPORTING_PAYMENT")
	wantViolation(t, tl, "CLOSED_ACCOUNT_MONTHLY_PAYMENT")
}

func TestClosedWithDelinquentRating(t *testing.T) {
	tl := runOne(t, map[string]string{
		"account_status": "Paid",
		"payment_rating": "4",
	})
	wantViolation(t, tl, "INCONSISTENT_PAYMENT_RATING_ON_CLOSE")
}

func TestSettledWithoutSettlementComment(t *testing.T) {
	tl := runOne(t, map[string]string{
		"account_status": "Settled",
		"comments":       "Account closed by credit grantor",
	})
	wantViolation(t, tl, "INCONSISTENT_SPECIAL_COMMENT_ON_SETTLEMENT")
}

func TestSettledWithSettlementComment(t *testing.T) {
	tl := runOne(t, map[string]string{
		"account_status": "Settled",
		"comments":       "Settled for less than full balance",
	})
	wantNoViolation(t, tl, "INCONSISTENT_SPECIAL_COMMENT_ON_SETTLEMENT")
}

func TestHistoryAfterClosure(t *testing.T) {
	tl := NewTradeline(map[string]string{
		"account_status": "Closed",
		"date_closed":    "01/01/2024",
	})
	tl.History = PaymentHistory{
		{Date: "12/01/2023", Status: "OK"},
		{Date: "02/01/2024", Status: "30"},
	}
	testAuditor().Run(&AuditPayload{Accounts: []*Tradeline{tl}})
	wantViolation(t, tl, "INCORRECT_PAYMENT_HISTORY_AFTER_CLOSURE")
}

func TestReopenedWithoutNewOpenDate(t *testing.T) {
	tl := runOne(t, map[string]string{
		"account_status": "Reopened",
		"date_opened":    "01/01/2020",
		"date_closed":    "06/01/2023",
	})
	wantViolation(t, tl, "REOPENED_ACCOUNT_NO_NEW_OPEN_DATE")
}

func TestReopenedWithRefreshedOpenDate(t *testing.T) {
	tl := runOne(t, map[string]string{
		"account_status": "Reopened",
		"date_opened":    "07/01/2023",
		"date_closed":    "06/01/2023",
	})
	wantNoViolation(t, tl, "REOPENED_ACCOUNT_NO_NEW_OPEN_DATE")
}

func TestExtendedDelinquency(t *testing.T) {
	tl := runOne(t, map[string]string{
		"days_past_due": "210",
	})
	wantViolation(t, tl, "EXTENDED_DELINQUENCY_BEYOND_MAX")
}
