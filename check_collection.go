package metro2

import (
	"sort"
	"strings"

	"github.com/redteamhero/metro2/rules"
)

// Collection-specific checks. The single-record rules run per tradeline; the
// payload-scope rules scan the whole report once because duplicate debt
// placements cross creditor boundaries.

func (a *audit) checkCollection(tl *Tradeline) {
	bucket := accountTypeBucket(tl)
	comments := tl.Comments()
	balance := tl.Balance()

	if bucket == bucketCollection && balance.IsPositive() && amountsEqual(tl.HighCredit(), balance) {
		a.attach(tl, rules.CollectionHighCreditEqualsBalance, "Collection reports high credit identical to the balance", map[string]string{
			"balance": balance.StringFixed(2),
		})
	}

	if strings.Contains(comments, "collection") && bucket != bucketCollection {
		a.attach(tl, rules.CommentFieldConflict, "Comment cites collection but the account is not one", nil)
	} else if containsAny(comments, "paid", "settled") && balance.IsPositive() {
		a.attach(tl, rules.CommentFieldConflict, "Comment says paid or settled while a balance remains", map[string]string{
			"balance": balance.StringFixed(2),
		})
	}
}

// checkDuplicateCollections flags collection tradelines where the same
// (original creditor, balance) debt appears under different furnisher names —
// the signature of a debt sold twice or parked by competing collectors.
func (a *audit) checkDuplicateCollections(accounts []*Tradeline) {
	type debtKey struct {
		originalCreditor string
		balance          string
	}
	byDebt := map[debtKey][]*Tradeline{}
	var order []debtKey

	for _, tl := range accounts {
		if accountTypeBucket(tl) != bucketCollection {
			continue
		}
		oc := normalizeText(tl.Get("original_creditor"))
		if oc == "" {
			continue
		}
		key := debtKey{oc, tl.Balance().StringFixed(2)}
		if _, seen := byDebt[key]; !seen {
			order = append(order, key)
		}
		byDebt[key] = append(byDebt[key], tl)
	}

	for _, key := range order {
		records := byDebt[key]
		furnishers := map[string]bool{}
		for _, tl := range records {
			if name := tl.CreditorKey(); name != "" {
				furnishers[name] = true
			}
		}
		if len(furnishers) < 2 {
			continue
		}
		for _, tl := range records {
			a.attach(tl, rules.DuplicateCollectionAccount, "Same debt reported by multiple collection furnishers", map[string]string{
				"original_creditor": key.originalCreditor,
				"balance":           key.balance,
			})
		}
	}
}

// checkFurnisherIdentity flags account numbers claimed by more than one
// creditor name.
func (a *audit) checkFurnisherIdentity(accounts []*Tradeline) {
	byAccount := map[string][]*Tradeline{}
	var order []string

	for _, tl := range accounts {
		acct := tl.AccountNumber()
		if acct == "" {
			continue
		}
		if _, seen := byAccount[acct]; !seen {
			order = append(order, acct)
		}
		byAccount[acct] = append(byAccount[acct], tl)
	}

	for _, acct := range order {
		records := byAccount[acct]
		names := map[string]bool{}
		for _, tl := range records {
			if name := tl.CreditorKey(); name != "" {
				names[name] = true
			}
		}
		if len(names) < 2 {
			continue
		}
		sorted := make([]string, 0, len(names))
		for n := range names {
			sorted = append(sorted, n)
		}
		sort.Strings(sorted)
		for _, tl := range records {
			a.attach(tl, rules.FurnisherIdentityUnclear, "Multiple creditor names report the same account number", map[string]string{
				"account_number": acct,
				"creditors":      strings.Join(sorted, ", "),
			})
		}
	}
}
