package metro2

import "github.com/redteamhero/metro2/rules"

// Required-field baseline checks. Missing data is always surfaced as a
// violation, never as an error; a tradeline the bureau half-populated still
// gets the rest of the audit.

func (a *audit) checkBaseline(tl *Tradeline) {
	if !tl.Has("date_opened") {
		a.attach(tl, rules.MissingDateOpened, "Missing Date Opened", nil)
	}

	if tl.AccountNumber() == "" && tl.Has("last_reported") {
		a.attach(tl, rules.MissingAccountNumber, "Live tradeline missing account number", nil)
	}

	if a.isDerogatory(tl) && !tl.Has("date_of_first_delinquency") {
		a.attach(tl, rules.MissingDOFD, "Derogatory account missing Date of First Delinquency", nil)
	}

	if reported, ok := tl.LastReported(); !ok {
		a.attach(tl, rules.ReportDateMissingOrInvalid, "Last Reported date missing or unparseable", nil)
	} else if reported.After(a.today) {
		a.attach(tl, rules.ReportDateMissingOrInvalid, "Last Reported date is in the future", map[string]string{
			"last_reported": tl.Get("last_reported"),
		})
	}

	a.checkMissingLastPayment(tl)

	if containsAny(tl.Status(), "collection") && !tl.Has("original_creditor") {
		a.attach(tl, rules.CollectionMissingOriginalCreditor, "Collection account missing Original Creditor", nil)
	}
}

// checkMissingLastPayment routes a missing Date of Last Payment to the rule
// matching the account's state. Paid accounts get the specialized id so
// letter templates can soften the language.
func (a *audit) checkMissingLastPayment(tl *Tradeline) {
	if tl.Has("date_of_last_payment") {
		return
	}
	status := tl.Status()

	switch {
	case containsAny(status, "paid", "settled"):
		a.attach(tl, rules.MissingLastPaymentDateForPaid, "Paid account missing Date of Last Payment", nil)
	case containsAny(status, "charge", "collection") || containsAny(tl.PaymentStatus(), "charge", "collection"):
		a.attach(tl, rules.MissingLastPaymentDate, "Charged-off account missing last payment date", nil)
	}

	if statusCurrent(status) {
		a.attach(tl, rules.CurrentNoLastPaymentDate, "Current account missing Date of Last Payment", nil)
	}

	if tl.PastDue().IsPositive() {
		a.attach(tl, rules.PastDueNoLastPaymentDate, "Past-due account missing Date of Last Payment", nil)
	}
}

// isDerogatory reports charge-off / collection / late context from either
// status field or the account-type bucket.
func (a *audit) isDerogatory(tl *Tradeline) bool {
	if containsAny(tl.Status(), "late", "collection", "charge", "derog") {
		return true
	}
	if containsAny(tl.PaymentStatus(), "late", "collection", "charge", "derog") {
		return true
	}
	return accountTypeBucket(tl) == bucketCollection
}

// statusCurrent matches "current" style statuses. "ok" is matched as a whole
// word so statuses like "broken arrangement" do not qualify.
func statusCurrent(status string) bool {
	if containsAny(status, "current", "pays as agreed", "paid as agreed") {
		return true
	}
	for _, w := range splitWords(status) {
		if w == "ok" {
			return true
		}
	}
	return false
}
