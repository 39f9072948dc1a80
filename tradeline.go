package metro2

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Typed accessors over the normalized field map. Rule code goes through
// these instead of raw key lookups; the normalizer has already collapsed
// synonyms onto the canonical keys read here.

// CreditorName returns the furnisher name as reported.
func (t *Tradeline) CreditorName() string {
	return strings.TrimSpace(t.Get("creditor_name"))
}

// CreditorKey is the uppercased creditor name used for grouping.
func (t *Tradeline) CreditorKey() string {
	return strings.ToUpper(t.CreditorName())
}

// BureauName returns the bureau label ("" when absent). The normalizer
// canonicalizes recognized labels; unrecognized ones are returned as stored.
func (t *Tradeline) BureauName() string {
	return t.Get("bureau")
}

// AccountNumber returns the canonical (alphanumeric-only, uppercased)
// account number.
func (t *Tradeline) AccountNumber() string {
	return CanonicalAccountNumber(t.Get("account_number"))
}

// Status is the normalized account_status text.
func (t *Tradeline) Status() string {
	return normalizeText(t.Get("account_status"))
}

// PaymentStatus is the normalized payment_status text.
func (t *Tradeline) PaymentStatus() string {
	return normalizeText(t.Get("payment_status"))
}

// PaymentRating is the normalized payment_rating text.
func (t *Tradeline) PaymentRating() string {
	return normalizeText(t.Get("payment_rating"))
}

// Comments joins the comment-bearing fields for keyword searches.
func (t *Tradeline) Comments() string {
	parts := make([]string, 0, 2)
	if c := t.Get("comments"); c != "" {
		parts = append(parts, c)
	}
	if c := t.Get("special_comment"); c != "" {
		parts = append(parts, c)
	}
	return normalizeText(strings.Join(parts, " "))
}

// Amount parses the named field as currency (zero when absent or noisy).
func (t *Tradeline) Amount(key string) decimal.Decimal {
	return ParseAmount(t.Get(key))
}

// Balance returns the reported balance.
func (t *Tradeline) Balance() decimal.Decimal { return t.Amount("balance") }

// PastDue returns the reported past-due amount.
func (t *Tradeline) PastDue() decimal.Decimal { return t.Amount("past_due") }

// CreditLimit returns the reported credit limit.
func (t *Tradeline) CreditLimit() decimal.Decimal { return t.Amount("credit_limit") }

// HighCredit returns the reported high credit / high balance.
func (t *Tradeline) HighCredit() decimal.Decimal { return t.Amount("high_credit") }

// MonthlyPayment returns the scheduled payment amount.
func (t *Tradeline) MonthlyPayment() decimal.Decimal {
	return t.Amount("scheduled_payment_amount")
}

// Date parses the named field as a calendar date.
func (t *Tradeline) Date(key string) (time.Time, bool) {
	return ParseDate(t.Get(key))
}

// DateOpened returns the parsed Date Opened.
func (t *Tradeline) DateOpened() (time.Time, bool) { return t.Date("date_opened") }

// DateClosed returns the parsed Date Closed.
func (t *Tradeline) DateClosed() (time.Time, bool) { return t.Date("date_closed") }

// LastPayment returns the parsed Date of Last Payment.
func (t *Tradeline) LastPayment() (time.Time, bool) { return t.Date("date_of_last_payment") }

// DOFD returns the parsed Date of First Delinquency.
func (t *Tradeline) DOFD() (time.Time, bool) { return t.Date("date_of_first_delinquency") }

// LastReported returns the parsed Last Reported date.
func (t *Tradeline) LastReported() (time.Time, bool) { return t.Date("last_reported") }

// ChargeOffDate returns the parsed charge-off date.
func (t *Tradeline) ChargeOffDate() (time.Time, bool) { return t.Date("charge_off_date") }

// PayoffDate returns the parsed payoff date.
func (t *Tradeline) PayoffDate() (time.Time, bool) { return t.Date("payoff_date") }

// PastDueDate returns the parsed past-due date.
func (t *Tradeline) PastDueDate() (time.Time, bool) { return t.Date("past_due_date") }

// DisputeDate returns the parsed dispute date.
func (t *Tradeline) DisputeDate() (time.Time, bool) { return t.Date("dispute_date") }

// ECOA returns the normalized ECOA / ownership designator.
func (t *Tradeline) ECOA() string {
	if v := t.Get("ecoa_code"); v != "" {
		return normalizeText(v)
	}
	return normalizeText(t.Get("ownership_code"))
}

// ComplianceCode returns the uppercased compliance condition code.
func (t *Tradeline) ComplianceCode() string {
	return strings.ToUpper(strings.TrimSpace(t.Get("compliance_condition_code")))
}

// DisputeFlag interprets the heterogeneous dispute indicators.
func (t *Tradeline) DisputeFlag() bool {
	return boolish(t.Get("dispute_flag"))
}

// utilization returns balance over the credit limit, or over high credit
// when no positive limit is reported; ok is false when neither is positive.
func (t *Tradeline) utilization() (decimal.Decimal, bool) {
	base := t.CreditLimit()
	if !base.IsPositive() {
		base = t.HighCredit()
	}
	if !base.IsPositive() {
		return decimal.Zero, false
	}
	return t.Balance().Div(base), true
}
