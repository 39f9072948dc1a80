package metro2

import (
	"fmt"

	"github.com/redteamhero/metro2/rules"
	"github.com/shopspring/decimal"
)

// Status ↔ amount contradiction checks. A Metro-2 status is a claim about
// the balance fields; these rules fire when the two tell different stories.

var decimalOne = decimal.NewFromInt(1)

func (a *audit) checkStatusAmounts(tl *Tradeline) {
	status := tl.Status()
	balance := tl.Balance()
	pastDue := tl.PastDue()
	derog := containsAny(status, "late", "collection", "charge", "derog")

	if balance.IsZero() && derog {
		a.attach(tl, rules.BalanceStatusConflict, "Derogatory status with zero balance", nil)
	} else if balance.IsPositive() && containsAny(status, "paid", "closed", "settled") {
		a.attach(tl, rules.BalanceStatusConflict, "Paid or closed status with outstanding balance", map[string]string{
			"balance": balance.StringFixed(2),
		})
	}

	if statusCurrent(status) && pastDue.IsPositive() {
		a.attach(tl, rules.CurrentStatusWithPastDue, "Account marked current while reporting past due balance", map[string]string{
			"past_due": pastDue.StringFixed(2),
		})
		a.attach(tl, rules.CurrentButPastDue, "Account marked current while reporting past due balance", map[string]string{
			"past_due": pastDue.StringFixed(2),
		})
	}

	if balance.LessThanOrEqual(decimalOne) && pastDue.IsPositive() {
		a.attach(tl, rules.ZeroBalanceWithPastDue, "Balance is zero but past due amount reported", nil)
	}

	if pastDue.IsZero() && containsAny(status, "late", "delinquent", "past due", "charge", "collection", "derog", "30", "60", "90") {
		a.attach(tl, rules.LateStatusNoPastDue, "Delinquent status without supporting past due amount", nil)
	}

	if containsAny(status, "open") && !balance.IsPositive() {
		a.attach(tl, rules.OpenZeroBalance, "Open account reporting $0 balance", nil)
	}

	bucket := accountTypeBucket(tl)
	if bucket == bucketCollection && containsAny(status, "open") && balance.IsPositive() {
		a.attach(tl, rules.CollectionStatusInconsistent, "Collection reported open with an accruing balance", nil)
	}

	if containsAny(status, "open") && (bucket == bucketCollection || containsAny(tl.PaymentStatus(), "collection", "charge")) {
		a.attach(tl, rules.OpenAccountReportedInCollection, "Open account simultaneously reported in collection", nil)
	}

	if pastDue.IsPositive() && containsAny(status, "charge", "collection") {
		a.attach(tl, rules.ChargeoffCollectionPastDue, "Charge-off/Collection should report $0 past due", map[string]string{
			"past_due": pastDue.StringFixed(2),
		})
	}

	a.checkChargeoffHistory(tl)
	a.checkDerogRatingButCurrent(tl)

	if limit := tl.CreditLimit(); limit.IsPositive() {
		if balance.Div(limit).GreaterThan(decimal.NewFromFloat(0.9)) {
			a.attach(tl, rules.HighUtilization, "Account balance exceeds 90% of limit", nil)
		}
	}
}

// checkChargeoffHistory flags charged-off accounts whose payment history
// keeps accruing entries after the charge-off date.
func (a *audit) checkChargeoffHistory(tl *Tradeline) {
	if !containsAny(tl.Status(), "charge") {
		return
	}
	coDate, ok := tl.ChargeOffDate()
	if !ok {
		return
	}
	after := 0
	for _, entry := range tl.History {
		if d, ok := ParseDate(entry.Date); ok && d.After(coDate) {
			after++
		}
	}
	if after >= 2 {
		a.attach(tl, rules.ChargeoffContinuesReporting, "Charge-off continues reporting new payment history", map[string]string{
			"entries_after_chargeoff": fmt.Sprintf("%d", after),
		})
	}
}

// checkDerogRatingButCurrent flags derogatory history or rating tokens on an
// account that claims to be current with nothing past due.
func (a *audit) checkDerogRatingButCurrent(tl *Tradeline) {
	if tl.PastDue().IsPositive() || !statusCurrent(tl.Status()) {
		return
	}
	if historyHasDerogTokens(tl) || containsAny(tl.PaymentRating(), "30", "60", "90", "120", "derog", "charge", "collection") {
		a.attach(tl, rules.DerogRatingButCurrent, "Derogatory history present while account marked current", nil)
	}
}

func historyHasDerogTokens(tl *Tradeline) bool {
	for _, entry := range tl.History {
		if containsAny(entry.Status, "30", "60", "90", "120", "late", "derog", "charge", "collection") {
			return true
		}
	}
	return false
}
