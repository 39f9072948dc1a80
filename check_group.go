package metro2

import (
	"sort"
	"strings"

	"github.com/redteamhero/metro2/rules"
	"github.com/shopspring/decimal"
)

// Group-scope checks compare the bureau views inside one account-group.
// Findings attach to every member so each bureau's record carries the full
// dispute context.

func (a *audit) checkGroup(g *AccountGroup) {
	if balances := distinctValues(g, func(tl *Tradeline) (string, bool) {
		if !tl.Has("balance") {
			return "", false
		}
		return tl.Balance().StringFixed(2), true
	}); len(balances) > 1 {
		extra := map[string]string{"balances": strings.Join(balances, ", ")}
		a.attachGroup(g, rules.BalanceMismatch, "Balance mismatch across bureaus", extra)
		a.attachGroup(g, rules.CrossBureauBalanceConflict, "Balance mismatch across bureaus", extra)
	}

	if statuses := distinctValues(g, func(tl *Tradeline) (string, bool) {
		s := strings.TrimSpace(strings.ToLower(tl.Get("account_status")))
		return s, s != ""
	}); len(statuses) > 1 {
		a.attachGroup(g, rules.StatusMismatch, "Status mismatch across bureaus", nil)
	}

	if openDates := distinctValues(g, func(tl *Tradeline) (string, bool) {
		s := strings.TrimSpace(tl.Get("date_opened"))
		return s, s != ""
	}); len(openDates) > 1 {
		a.attachGroup(g, rules.OpenDateMismatch, "Date Opened differs across bureaus", nil)
		a.attachGroup(g, rules.OpenDateMismatchLegacy, "Date Opened differs across bureaus", nil)
	}

	if lastPayments := distinctDates(g, "date_of_last_payment"); len(lastPayments) > 1 {
		a.attachGroup(g, rules.LastPaymentMismatchBetweenBureaus, "Date of Last Payment differs across bureaus", nil)
	}

	if dofds := distinctDates(g, "date_of_first_delinquency"); len(dofds) > 1 {
		a.attachGroup(g, rules.FirstDelinquencyDateNotFrozen, "Date of First Delinquency is not frozen across bureaus", nil)
		a.attachGroup(g, rules.FCRADOFDInvalid, "Date of First Delinquency is not frozen across bureaus", nil)
	}

	// Last Reported treats a missing date as its own value: a bureau that
	// stopped updating is itself a mismatch signal.
	if reported := distinctValues(g, func(tl *Tradeline) (string, bool) {
		if d, ok := tl.LastReported(); ok {
			return d.Format("2006-01-02"), true
		}
		return "missing", true
	}); len(reported) > 1 {
		a.attachGroup(g, rules.LastReportedMismatch, "Last Reported date differs across bureaus", nil)
	}

	if types := distinctValues(g, func(tl *Tradeline) (string, bool) {
		s := normalizeText(tl.Get("account_type"))
		return s, s != ""
	}); len(types) > 1 {
		a.attachGroup(g, rules.AccountTypeMismatch, "Different account type reported across bureaus", nil)
	}

	a.checkOpenClosed(g)
	a.checkHistoryWords(g)
	a.checkBureauCoverage(g)
	a.checkUtilizationGap(g)
}

func (a *audit) checkOpenClosed(g *AccountGroup) {
	var anyOpen, anyClosed bool
	for _, tl := range g.Members {
		status := tl.Status()
		if status == "" {
			continue
		}
		anyOpen = anyOpen || strings.Contains(status, "open")
		anyClosed = anyClosed || strings.Contains(status, "closed")
	}
	if anyOpen && anyClosed {
		a.attachGroup(g, rules.OpenClosedMismatch, "Account marked closed on one bureau but open on another", nil)
	}
}

func (a *audit) checkHistoryWords(g *AccountGroup) {
	words := map[string]bool{}
	for _, tl := range g.Members {
		for _, w := range splitWords(tl.Get("payment_status")) {
			words[w] = true
		}
	}
	if words["late"] && words["ok"] {
		a.attachGroup(g, rules.PaymentHistoryMismatch, "One bureau reports late while others show OK", nil)
	}
}

func (a *audit) checkBureauCoverage(g *AccountGroup) {
	bureaus := map[string]bool{}
	for _, tl := range g.Members {
		if b := tl.BureauName(); b != "" {
			bureaus[b] = true
		}
	}
	if len(bureaus) == 0 || len(bureaus) >= len(Bureaus) {
		return
	}
	names := make([]string, 0, len(bureaus))
	for b := range bureaus {
		names = append(names, b)
	}
	sort.Strings(names)
	a.attachGroup(g, rules.IncompleteBureauReporting, "Reported to "+strings.Join(names, ", ")+" only", map[string]string{
		"bureaus": strings.Join(names, ","),
	})
}

func (a *audit) checkUtilizationGap(g *AccountGroup) {
	var utils []decimal.Decimal
	for _, tl := range g.Members {
		if u, ok := tl.utilization(); ok {
			utils = append(utils, u)
		}
	}
	if len(utils) < 2 {
		return
	}
	lowest, highest := utils[0], utils[0]
	for _, u := range utils[1:] {
		if u.LessThan(lowest) {
			lowest = u
		}
		if u.GreaterThan(highest) {
			highest = u
		}
	}
	spread := highest.Sub(lowest)
	if spread.GreaterThanOrEqual(decimal.NewFromFloat(0.25)) {
		a.attachGroup(g, rules.CrossBureauUtilizationGap, "Utilization differs sharply between bureaus", map[string]string{
			"utilization_spread": spread.Mul(decimal.NewFromInt(100)).Round(1).String(),
		})
	}
}

// checkDuplicateWithinBureau flags repeats of a canonical account number in
// one bureau's feed. The first sighting stays clean; repeats are flagged.
func (a *audit) checkDuplicateWithinBureau(accounts []*Tradeline) {
	seen := map[[2]string]bool{}
	for _, tl := range accounts {
		acct := tl.AccountNumber()
		bureau := tl.BureauName()
		if acct == "" || bureau == "" {
			continue
		}
		key := [2]string{bureau, acct}
		if seen[key] {
			a.attach(tl, rules.DuplicateAccount, "Duplicate account entry for "+acct, map[string]string{
				"bureau":         bureau,
				"account_number": acct,
			})
			continue
		}
		seen[key] = true
	}
}

// checkMismatchedAccountNumbers flags creditors reporting two or more
// distinct account numbers across bureaus — the records may describe
// different debts stitched under one name.
func (a *audit) checkMismatchedAccountNumbers(accounts []*Tradeline) {
	type creditorStats struct {
		numbers map[string]bool
		bureaus map[string]bool
		records []*Tradeline
	}
	byCreditor := map[string]*creditorStats{}
	var order []string

	for _, tl := range accounts {
		creditor := tl.CreditorKey()
		if creditor == "" {
			continue
		}
		stats, ok := byCreditor[creditor]
		if !ok {
			stats = &creditorStats{numbers: map[string]bool{}, bureaus: map[string]bool{}}
			byCreditor[creditor] = stats
			order = append(order, creditor)
		}
		if acct := tl.AccountNumber(); acct != "" {
			stats.numbers[acct] = true
		}
		if b := tl.BureauName(); b != "" {
			stats.bureaus[b] = true
		}
		stats.records = append(stats.records, tl)
	}

	for _, creditor := range order {
		stats := byCreditor[creditor]
		if len(stats.numbers) < 2 || len(stats.bureaus) < 2 {
			continue
		}
		numbers := make([]string, 0, len(stats.numbers))
		for n := range stats.numbers {
			numbers = append(numbers, n)
		}
		sort.Strings(numbers)
		for _, tl := range stats.records {
			a.attach(tl, rules.PossibleMismatchedAccountsAcrossBureaus, "Creditor reports multiple account numbers across bureaus", map[string]string{
				"account_numbers": strings.Join(numbers, ", "),
			})
		}
	}
}

// distinctValues collects the sorted set of per-member values.
func distinctValues(g *AccountGroup, get func(*Tradeline) (string, bool)) []string {
	set := map[string]bool{}
	for _, tl := range g.Members {
		if v, ok := get(tl); ok {
			set[v] = true
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// distinctDates collects the distinct parsed values of a date field.
func distinctDates(g *AccountGroup, field string) []string {
	return distinctValues(g, func(tl *Tradeline) (string, bool) {
		if d, ok := tl.Date(field); ok {
			return d.Format("2006-01-02"), true
		}
		return "", false
	})
}
