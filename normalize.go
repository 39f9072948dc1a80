package metro2

import (
	"regexp"
	"sort"
	"strings"
)

// Upstream parsers emit whatever labels the bureau export used ("Account #",
// "Date Opened:", "DOFD"). Normalization canonicalizes key names in place and
// copies well-known synonyms onto their canonical keys so rule code reads one
// name per concept. A canonical key that is already populated is never
// overwritten, and running the normalizer twice has no additional effect.

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// canonicalKey lowercases a field label and collapses runs of
// non-alphanumerics to a single underscore.
func canonicalKey(label string) string {
	return strings.Trim(nonAlnumRun.ReplaceAllString(strings.ToLower(label), "_"), "_")
}

// fieldSynonyms maps each canonical field name to the alternate spellings
// seen across bureau exports, in lookup order.
var fieldSynonyms = map[string][]string{
	"account_number":            {"account", "acct", "accountnumber", "acct_no", "acct_number", "account_no", "number"},
	"creditor_name":             {"creditor", "subscriber_name", "account_name", "furnisher"},
	"original_creditor":         {"original_creditor_name"},
	"balance":                   {"balance_amount", "current_balance", "balance_owed"},
	"past_due":                  {"past_due_amount", "amount_past_due"},
	"credit_limit":              {"limit", "credit_limit_amount"},
	"high_credit":               {"high_balance", "highest_balance"},
	"scheduled_payment_amount":  {"monthly_payment", "payment_amount", "regular_payment_amount", "scheduled_monthly_payment"},
	"monthly_payment":           {"scheduled_payment_amount", "payment_amount", "regular_payment_amount"},
	"date_opened":               {"open_date", "opened_date"},
	"date_closed":               {"closed_date"},
	"date_of_last_payment":      {"date_last_payment", "last_payment_date", "last_payment"},
	"date_of_first_delinquency": {"date_first_delinquency", "dofd"},
	"last_reported":             {"date_last_reported", "date_reported", "last_updated"},
	"date_last_active":          {"last_active", "date_of_last_activity"},
	"account_status":            {"status"},
	"payment_status":            {"pay_status"},
	"payment_rating":            {"rating"},
	"account_type":              {"type"},
	"account_type_detail":       {"type_detail"},
	"portfolio_type":            {"portfolio"},
	"ecoa_code":                 {"ecoa", "responsibility", "whose_account"},
	"ownership_code":            {"ownership"},
	"secured_indicator":         {"secured"},
	"compliance_condition_code": {"ccc", "compliance_code"},
	"dispute_flag":              {"disputed", "in_dispute"},
	"comments":                  {"remarks", "notes"},
	"special_comment":           {"special_comments"},
	"charge_off_date":           {"chargeoff_date", "date_of_charge_off"},
	"payoff_date":               {"date_paid_off"},
	"bureau":                    {"credit_bureau"},
}

// NormalizeTradeline canonicalizes the record's keys and values in place:
// every key gains a canonical alias, synonyms backfill empty canonical
// fields, the bureau label is mapped onto the closed enumeration, and
// non-printing whitespace is stripped from values.
func NormalizeTradeline(t *Tradeline) {
	if t == nil || t.Fields == nil {
		return
	}

	keys := make([]string, 0, len(t.Fields))
	for k := range t.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t.Fields[key] = cleanValue(t.Fields[key])
		canon := canonicalKey(key)
		if canon == "" || canon == key {
			continue
		}
		if _, exists := t.Fields[canon]; !exists {
			t.Fields[canon] = t.Fields[key]
		}
	}

	canonKeys := make([]string, 0, len(fieldSynonyms))
	for canon := range fieldSynonyms {
		canonKeys = append(canonKeys, canon)
	}
	sort.Strings(canonKeys)

	for _, canon := range canonKeys {
		if strings.TrimSpace(t.Fields[canon]) != "" {
			continue
		}
		for _, syn := range fieldSynonyms[canon] {
			if v := strings.TrimSpace(t.Fields[syn]); v != "" {
				t.Fields[canon] = t.Fields[syn]
				break
			}
		}
	}

	if b, ok := CanonicalBureau(t.Fields["bureau"]); ok {
		t.Fields["bureau"] = string(b)
	}
}

// cleanValue strips non-printing whitespace variants and outer space.
func cleanValue(v string) string {
	v = strings.NewReplacer("\u00a0", " ", "\u200b", "", "\ufeff", "").Replace(v)
	return strings.TrimSpace(v)
}

var alnumOnly = regexp.MustCompile(`[^A-Za-z0-9]+`)

// CanonicalAccountNumber strips everything but letters and digits and
// uppercases the remainder. Masked exports ("1234****") keep their visible
// prefix.
func CanonicalAccountNumber(value string) string {
	return strings.ToUpper(alnumOnly.ReplaceAllString(value, ""))
}
