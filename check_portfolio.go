package metro2

import (
	"regexp"
	"strings"

	"github.com/redteamhero/metro2/rules"
)

// Portfolio, ownership, and collateral shape checks. Revolving, installment
// and open accounts each have a field shape; values bleeding between shapes
// mean the furnisher mapped its system wrong.

func revolvingLike(tl *Tradeline) bool {
	return containsAny(tl.Get("account_type")+" "+tl.Get("account_type_detail"),
		"revolv", "credit card", "charge card", "line of credit")
}

func installmentLike(tl *Tradeline) bool {
	return containsAny(tl.Get("account_type")+" "+tl.Get("account_type_detail"),
		"install", "auto loan", "mortgage")
}

var auECOACodes = map[string]bool{
	"a":               true,
	"au":              true,
	"u":               true,
	"authorized user": true,
}

var hasDigit = regexp.MustCompile(`\d`)

func (a *audit) checkPortfolio(tl *Tradeline) {
	status := tl.Status()
	ecoa := tl.ECOA()
	relationship := normalizeText(strings.Join([]string{
		tl.Get("ownership_code"),
		tl.Get("account_designator"),
		tl.Comments(),
	}, " "))
	auLanguage := containsAny(relationship, "authorized user", "usuario autorizado") ||
		containsAny(ecoa, "authorized user")

	if auLanguage && containsAny(ecoa, "individual", "primary", "joint") {
		a.attach(tl, rules.IncorrectECOACodeForAuthorizedUser, "Authorized user coded with a liable ECOA designator", map[string]string{
			"ecoa_code": tl.Get("ecoa_code"),
		})
	}

	if containsAny(tl.Comments(), "authorized user", "usuario autorizado") && !auECOACodes[ecoa] {
		a.attach(tl, rules.AUCommentECOAConflict, "Authorized user comment present without matching ECOA designator", nil)
	}

	portfolioShape := shapeBucket(tl.Get("portfolio_type"))
	accountShape := shapeBucket(tl.Get("account_type"))
	if portfolioShape != "" && accountShape != "" && portfolioShape != accountShape &&
		isShapeClass(portfolioShape) && isShapeClass(accountShape) {
		a.attach(tl, rules.MismatchPortfolioTypeVsAccountType, "Portfolio type and account type disagree", map[string]string{
			"portfolio_type": tl.Get("portfolio_type"),
			"account_type":   tl.Get("account_type"),
		})
	}

	secured := tl.Get("secured_indicator")
	hasCollateral := tl.Has("collateral")
	if boolish(secured) && !hasCollateral {
		a.attach(tl, rules.MismatchCollateralIndicator, "Secured indicator set without collateral on file", nil)
	} else if hasCollateral && falseyish(secured) {
		a.attach(tl, rules.MismatchCollateralIndicator, "Collateral reported on an unsecured account", nil)
	}

	limit := tl.CreditLimit()
	high := tl.HighCredit()
	balance := tl.Balance()

	if limit.IsPositive() && high.GreaterThan(limit.Add(centTolerance)) {
		a.attach(tl, rules.HighCreditExceedsLimit, "High Credit exceeds reported Credit Limit", map[string]string{
			"high_credit":  high.StringFixed(2),
			"credit_limit": limit.StringFixed(2),
		})
	}

	bucket := accountTypeBucket(tl)
	if (bucket == bucketRevolving || bucket == bucketOpen) && balance.IsPositive() &&
		!limit.IsPositive() && !high.IsPositive() {
		a.attach(tl, rules.NonZeroBalanceWithZeroHiCredit, "Balance reported without any high credit or limit", nil)
	}

	if revolvingLike(tl) {
		closed := containsAny(status, "closed", "paid")
		if !closed && limit.IsZero() && high.IsPositive() && containsAny(tl.Comments(), "high credit") {
			a.attach(tl, rules.RevolvingZeroLimitComment, "Open revolving account cites high credit as a limit proxy", nil)
		}
		if !closed && !limit.IsPositive() && !high.IsPositive() {
			a.attach(tl, rules.RevolvingMissingLimit, "Open revolving tradeline missing both Credit Limit and High Credit", nil)
		}
		for _, field := range []string{"terms", "term", "loan_term", "months_terms", "scheduled_payment_term"} {
			if v := tl.Get(field); v != "" && hasDigit.MatchString(v) {
				a.attach(tl, rules.RevolvingWithTerms, "Revolving account reports an installment-style term", map[string]string{
					"field": field,
				})
				break
			}
		}
	}

	if installmentLike(tl) && limit.IsPositive() {
		a.attach(tl, rules.InstallmentHasLimit, "Installment account reports a revolving-style credit limit", map[string]string{
			"credit_limit": limit.StringFixed(2),
		})
	}

	a.checkStudentLoanDeferment(tl)
}

func isShapeClass(b string) bool {
	return b == bucketRevolving || b == bucketInstallment || b == bucketOpen
}

// checkStudentLoanDeferment flags late history on student loans whose
// comments place them in deferment or forbearance.
func (a *audit) checkStudentLoanDeferment(tl *Tradeline) {
	if !containsAny(tl.Get("account_type"), "student", "education") {
		return
	}
	if !containsAny(tl.Comments(), "defer", "forbear") {
		return
	}
	if historyHasDerogTokens(tl) || containsAny(tl.PaymentStatus(), "30", "60", "90", "120", "late") {
		a.attach(tl, rules.StudentLoanDefermentHasLates, "Student loan in deferment/forbearance shows late history", nil)
	}
}
