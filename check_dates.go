package metro2

import (
	"strings"
	"time"

	"github.com/redteamhero/metro2/rules"
)

// Temporal invariant checks between the Metro-2 date fields. All comparisons
// are whole-day; a field that does not parse simply keeps its rules from
// firing.

func (a *audit) checkDates(tl *Tradeline) {
	opened, hasOpened := tl.DateOpened()
	closed, hasClosed := tl.DateClosed()
	lastPayment, hasLastPayment := tl.LastPayment()
	dofd, hasDOFD := tl.DOFD()
	reported, hasReported := tl.LastReported()
	chargeOff, hasChargeOff := tl.ChargeOffDate()
	status := tl.Status()

	if hasOpened {
		var bad []string
		for _, field := range []string{"date_of_last_payment", "last_reported", "date_last_active", "date_closed"} {
			if d, ok := tl.Date(field); ok && d.Before(opened) {
				bad = append(bad, field)
			}
		}
		if len(bad) > 0 {
			a.attach(tl, rules.DateOrderSanity, "Dates "+strings.Join(bad, ", ")+" occur before Date Opened", map[string]string{
				"fields": strings.Join(bad, ","),
			})
		}
	}

	if hasLastPayment && hasOpened && lastPayment.Before(opened) {
		a.attach(tl, rules.AccountOpenedAfterLastPayment, "Last payment predates Date Opened", nil)
	}

	if hasLastPayment && hasClosed && lastPayment.After(closed) {
		a.attach(tl, rules.PaymentReportedAfterClosure, "Payment reported after account closure", nil)
	}

	if hasLastPayment && lastPayment.After(a.today) {
		a.attach(tl, rules.InaccurateLastPaymentDate, "Date of Last Payment is in the future", map[string]string{
			"date_of_last_payment": tl.Get("date_of_last_payment"),
		})
	}

	chargeContext := containsAny(status, "charge", "collection")

	if hasLastPayment && hasChargeOff && lastPayment.After(chargeOff) && chargeContext {
		a.attach(tl, rules.LastPaymentAfterChargeoffDate, "Payment activity after the charge-off date", nil)
	}

	if hasLastPayment && hasDOFD && lastPayment.After(dofd) {
		if chargeContext {
			a.attach(tl, rules.LastPaymentAfterDOFD, "Payment received after the Date of First Delinquency", nil)
		} else if !has(tl, rules.LastPaymentAfterDOFD.ID) {
			a.attach(tl, rules.PaymentBeforeDelinquencyImpliesCure, "Payment after DOFD suggests the delinquency was cured", nil)
		}
	}

	if hasDOFD && hasOpened && dofd.Before(opened) {
		a.attach(tl, rules.DOFDPrecedesDateOpened, "Date of First Delinquency predates Date Opened", nil)
	}

	if hasDOFD && hasLastPayment && dofd.After(lastPayment) {
		a.attach(tl, rules.DOFDAfterLastPayment, "Date of First Delinquency is after the last payment", nil)
	}

	if tl.Balance().IsZero() && hasLastPayment {
		if payoff, ok := tl.PayoffDate(); ok && lastPayment.After(payoff) {
			a.attach(tl, rules.PaymentAfterPayoffDate, "Payment reported after the payoff date", nil)
		}
	}

	if hasReported {
		var late []string
		if hasLastPayment && lastPayment.After(reported) {
			late = append(late, "date_of_last_payment")
		}
		if hasClosed && closed.After(reported) {
			late = append(late, "date_closed")
		}
		if hasChargeOff && chargeOff.After(reported) {
			late = append(late, "charge_off_date")
		}
		if len(late) > 0 {
			a.attach(tl, rules.MismatchLastReportedBeforeActivity, "Activity dated after Last Reported", map[string]string{
				"fields": strings.Join(late, ","),
			})
		}
	}

	if hasReported && olderThanDays(a.today, reported, 365) {
		a.attach(tl, rules.StaleData, "Account not updated in over 12 months", nil)
	}

	if tl.Balance().IsPositive() && (!hasLastPayment || olderThanYears(a.today, lastPayment, 3)) {
		a.attach(tl, rules.StaleActiveReporting, "Active balance with no recent payment activity", nil)
	}

	if containsAny(status, "open", "current", "active") && hasLastPayment && olderThanYears(a.today, lastPayment, 3) {
		a.attach(tl, rules.NoActivityTooLongActive, "Active account shows no payment in over 3 years", nil)
	}

	if (statusCurrent(status) || containsAny(status, "late")) && hasLastPayment && olderThanYears(a.today, lastPayment, 5) {
		a.attach(tl, rules.StagnantAccountNotUpdated, "Account status implies activity but nothing reported for 5 years", nil)
	}

	if statusCurrent(status) && hasLastPayment && olderThanDays(a.today, lastPayment, 120) {
		a.attach(tl, rules.PaymentStalenessInconsistentWithStatus, "Current status with no payment in over 120 days", nil)
	}

	if hasDOFD && a.isDerogatory(tl) && olderThanYears(a.today, dofd, 7) {
		a.attach(tl, rules.DOFDObsolete7Y, "Negative account older than 7 years from DOFD", map[string]string{
			"date_of_first_delinquency": tl.Get("date_of_first_delinquency"),
		})
	}

	if hasClosed && hasDOFD && closed.Equal(dofd) {
		a.attach(tl, rules.ClosureDateEqualsDOFD, "Date Closed equals the Date of First Delinquency", nil)
	}

	if hasOpened && hasChargeOff && opened.After(chargeOff) {
		a.attach(tl, rules.DateOpenedAfterChargeoff, "Date Opened is after the charge-off date", nil)
	}

	if pastDueDate, ok := tl.PastDueDate(); ok && hasClosed && pastDueDate.After(closed) {
		a.attach(tl, rules.PastDueAfterClosureDate, "Past-due date falls after the closure date", nil)
	}

	if hasDOFD && !olderThanDays(a.today, dofd, 180) && !dofd.After(a.today) {
		a.attach(tl, rules.ReagingWithoutProof, "DOFD is less than 6 months old — possible re-aging", nil)
	}

	if boolish(tl.Get("dofd_changed_after_collection")) && (accountTypeBucket(tl) == bucketCollection || chargeContext) {
		a.attach(tl, rules.CollectionReagingDetected, "DOFD changed after collection placement", nil)
	}

	a.checkPostChargeoffActivity(tl, chargeOff, hasChargeOff)
}

// checkPostChargeoffActivity flags charge-offs that keep a balance without
// any payment-history entries after the charge-off date. The balance on a
// charge-off is frozen at write-off, so a live balance needs activity to
// back it.
func (a *audit) checkPostChargeoffActivity(tl *Tradeline, chargeOff time.Time, hasChargeOff bool) {
	if !containsAny(tl.Status(), "charge") || !tl.Balance().IsPositive() {
		return
	}
	for _, entry := range tl.History {
		d, ok := ParseDate(entry.Date)
		if !ok {
			continue
		}
		if !hasChargeOff || d.After(chargeOff) {
			return
		}
	}
	a.attach(tl, rules.BalanceWithoutPostChargeoffActivity, "Charge-off balance reported without post-charge-off activity", nil)
}
