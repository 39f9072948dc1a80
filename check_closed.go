package metro2

import (
	"strconv"

	"github.com/redteamhero/metro2/rules"
	"github.com/shopspring/decimal"
)

// Closed-account integrity checks. Once an account is closed or paid the
// payment obligation fields must wind down; anything still accruing is a
// furnisher update error.

func (a *audit) checkClosed(tl *Tradeline) {
	status := tl.Status()
	_, hasClosedDate := tl.DateClosed()
	closedContext := containsAny(status, "closed", "paid", "settled")

	if hasClosedDate && containsAny(status, "open", "current", "active") {
		a.attach(tl, rules.InconsistentAccountStatusOnClosed, "Date Closed present but status still reads open", map[string]string{
			"date_closed": tl.Get("date_closed"),
		})
	}

	if closedContext && (tl.Balance().IsPositive() || tl.PastDue().IsPositive()) {
		a.attach(tl, rules.MismatchBalanceOnClosed, "Closed account still carries balance or past due amount", map[string]string{
			"balance":  tl.Balance().StringFixed(2),
			"past_due": tl.PastDue().StringFixed(2),
		})
	}

	if closedContext {
		delinquentPayment := containsAny(tl.PaymentStatus(),
			"late", "delin", "past due", "charge", "repos", "30", "60", "90", "120")
		if delinquentPayment || tl.MonthlyPayment().IsPositive() {
			a.attach(tl, rules.ClosedAccountStillReportingPayment, "Closed account still reporting a payment obligation", nil)
		}
	}

	if containsAny(status, "closed", "paid", "charge", "collection") && tl.MonthlyPayment().IsPositive() {
		a.attach(tl, rules.ClosedAccountMonthlyPayment, "Closed account still reporting a monthly payment", map[string]string{
			"monthly_payment": tl.MonthlyPayment().StringFixed(2),
		})
	}

	if closedContext {
		rating := tl.PaymentRating()
		numeric, err := strconv.Atoi(rating)
		derogRating := containsAny(rating, "late", "charge", "collection", "derog", "repos")
		if (err == nil && numeric > 0) || derogRating {
			a.attach(tl, rules.InconsistentPaymentRatingOnClose, "Closed account carries a delinquent payment rating", map[string]string{
				"payment_rating": tl.Get("payment_rating"),
			})
		}
	}

	if containsAny(status, "settled") && !containsAny(tl.Comments(), "settle", "paid for less", "less than full") {
		a.attach(tl, rules.InconsistentSpecialCommentOnSettlement, "Settled status without settlement language in comments", nil)
	}

	if closed, ok := tl.DateClosed(); ok {
		for _, entry := range tl.History {
			if d, ok := ParseDate(entry.Date); ok && d.After(closed) {
				a.attach(tl, rules.IncorrectPaymentHistoryAfterClosure, "Payment history entry dated after closure", map[string]string{
					"entry_date": entry.Date,
				})
				break
			}
		}
	}

	if containsAny(status, "reopen") {
		opened, hasOpened := tl.DateOpened()
		closed, hasClosed := tl.DateClosed()
		if !hasOpened || (hasClosed && !opened.After(closed)) {
			a.attach(tl, rules.ReopenedAccountNoNewOpenDate, "Reopened account without a refreshed open date", nil)
		}
	}

	if days := tl.Get("days_past_due"); days != "" {
		if ParseAmount(days).GreaterThan(decimal.NewFromInt(180)) {
			a.attach(tl, rules.ExtendedDelinquencyBeyondMax, "Reported days past due exceed the 180-day maximum", map[string]string{
				"days_past_due": days,
			})
		}
	}
}
