package metro2

import (
	"strings"
	"time"
)

// Bureaus mask account numbers differently or omit them entirely, so no
// single key can decide which per-bureau records describe the same account.
// Records are partitioned per creditor with a weighted similarity score;
// contradicting account numbers are a hard separation regardless of how the
// other signals line up.

// DefaultMatchThreshold is the tuned minimum pairwise score for two records
// to share an account-group.
const DefaultMatchThreshold = 80

// noAccountNumber keys groups whose first member reported no account number.
const noAccountNumber = "__NO_ACCOUNT_NUMBER__"

// AccountGroup is a set of tradelines judged to describe one underlying
// account.
type AccountGroup struct {
	Creditor      string
	AccountNumber string
	Members       []*Tradeline
}

// Account-type buckets, in detection priority order.
const (
	bucketStudentLoan = "student_loan"
	bucketCollection  = "collection"
	bucketAuto        = "auto"
	bucketMortgage    = "mortgage"
	bucketInstallment = "installment"
	bucketRevolving   = "revolving"
	bucketOpen        = "open"
)

var bucketKeywords = []struct {
	bucket   string
	keywords []string
}{
	{bucketStudentLoan, []string{"student", "education"}},
	{bucketCollection, []string{"collection"}},
	{bucketAuto, []string{"auto", "vehicle", "car loan"}},
	{bucketMortgage, []string{"mortgage", "real estate", "home equity"}},
	{bucketInstallment, []string{"install", "personal loan", "term loan"}},
	{bucketRevolving, []string{"revolv", "credit card", "charge card", "line of credit"}},
	{bucketOpen, []string{"open"}},
}

// accountTypeBucket derives a coarse account class by keyword search across
// the classification and status fields. Returns "" when undetermined.
func accountTypeBucket(t *Tradeline) string {
	text := normalizeText(strings.Join([]string{
		t.Get("account_type"),
		t.Get("account_type_detail"),
		t.Get("payment_status"),
		t.Get("account_status"),
		t.Get("comments"),
	}, " "))
	return bucketOf(text)
}

// shapeBucket classifies a single classification field (portfolio_type or
// account_type) for shape-consistency rules.
func shapeBucket(value string) string {
	return bucketOf(normalizeText(value))
}

func bucketOf(text string) string {
	if text == "" {
		return ""
	}
	for _, b := range bucketKeywords {
		for _, k := range b.keywords {
			if strings.Contains(text, k) {
				return b.bucket
			}
		}
	}
	return ""
}

// Pairwise score weights. Matching account numbers nearly decide on their
// own; contradicting ones can never be outweighed.
const (
	scoreAccountMatch    = 80
	scoreAccountConflict = -100
	scoreOpenedClose     = 30
	scoreReportedClose   = 20
	scoreSameBucket      = 15
)

// matchScore computes the weighted similarity between two records of the
// same creditor.
func matchScore(a, b *Tradeline) int {
	score := 0

	an, bn := a.AccountNumber(), b.AccountNumber()
	if an != "" && bn != "" {
		if an == bn {
			score += scoreAccountMatch
		} else {
			score += scoreAccountConflict
		}
	}

	if ad, ok := a.DateOpened(); ok {
		if bd, ok := b.DateOpened(); ok && absDays(ad, bd) <= 30 {
			score += scoreOpenedClose
		}
	}

	if ad, ok := a.LastReported(); ok {
		if bd, ok := b.LastReported(); ok && absDays(ad, bd) <= 60 {
			score += scoreReportedClose
		}
	}

	if ab := accountTypeBucket(a); ab != "" && ab == accountTypeBucket(b) {
		score += scoreSameBucket
	}

	return score
}

func absDays(a, b time.Time) int {
	d := daysBetween(a, b)
	if d < 0 {
		return -d
	}
	return d
}

// GroupAccounts partitions the tradelines of each creditor into
// account-groups. Assignment is greedy in payload order: a record joins the
// best-scoring existing partition of its creditor when the score (max over
// partition members) reaches the threshold, otherwise it starts a new one.
func GroupAccounts(accounts []*Tradeline, threshold int) []*AccountGroup {
	var order []string
	partitions := map[string][]*AccountGroup{}

	for _, tl := range accounts {
		creditor := tl.CreditorKey()
		if creditor == "" {
			creditor = "UNKNOWN"
		}
		if _, seen := partitions[creditor]; !seen {
			order = append(order, creditor)
		}

		var best *AccountGroup
		bestScore := 0
		for _, g := range partitions[creditor] {
			score := groupScore(g, tl)
			if score >= threshold && (best == nil || score > bestScore) {
				best = g
				bestScore = score
			}
		}
		if best != nil {
			best.Members = append(best.Members, tl)
			continue
		}

		acct := tl.AccountNumber()
		if acct == "" {
			acct = noAccountNumber
		}
		partitions[creditor] = append(partitions[creditor], &AccountGroup{
			Creditor:      creditor,
			AccountNumber: acct,
			Members:       []*Tradeline{tl},
		})
	}

	var out []*AccountGroup
	for _, creditor := range order {
		out = append(out, partitions[creditor]...)
	}
	return out
}

// groupScore is the max pairwise score between tl and the group's members.
func groupScore(g *AccountGroup, tl *Tradeline) int {
	best := 0
	for i, member := range g.Members {
		s := matchScore(member, tl)
		if i == 0 || s > best {
			best = s
		}
	}
	return best
}
