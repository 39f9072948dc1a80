package metro2

import "github.com/redteamhero/metro2/rules"

// Dispute hygiene checks. Metro-2 requires a compliance condition code while
// a dispute is pending and a timely update once it resolves; both halves are
// audited here.

// Compliance condition codes acceptable while a dispute is open.
var disputeCCCs = map[string]bool{
	"XB": true,
	"XC": true,
	"XD": true,
	"XH": true,
	"XR": true,
	"XS": true,
}

func (a *audit) checkDispute(tl *Tradeline) {
	disputed := tl.DisputeFlag()
	code := tl.ComplianceCode()

	if disputed && !disputeCCCs[code] {
		a.attach(tl, rules.ComplianceConditionCodeMissingOnDispute, "Disputed account missing a dispute compliance condition code", map[string]string{
			"compliance_condition_code": code,
		})
	}

	if disputed {
		if reported, ok := tl.LastReported(); ok && olderThanDays(a.today, reported, 30) {
			a.attach(tl, rules.FailureToCorrectAfterDispute, "No update reported within 30 days of dispute", nil)
		}
	}

	if disputed && containsAny(tl.Status(), "paid", "resolved", "closed", "settled") {
		a.attach(tl, rules.DisputeFlagNotClearedAfterResolution, "Dispute flag still set after resolution", nil)
	}

	if containsAny(tl.Comments(), "dispute", "investigation", "en disputa") && code != "XB" {
		a.attach(tl, rules.DisputeCommentNeedsXB, "Dispute language requires the XB compliance code", map[string]string{
			"compliance_condition_code": code,
		})
	}

	if normalizeText(tl.Get("consumer_assertion")) == "not_mine" && !tl.Has("ownership_proof") {
		a.attach(tl, rules.ConsumerDeniesAccountOwnership, "Consumer denies ownership and no proof is on file", nil)
	}

	a.checkPostDisputeUpdate(tl)
}

// checkPostDisputeUpdate fires when an account was updated after a dispute
// but the furnisher explicitly reported that nothing material changed.
func (a *audit) checkPostDisputeUpdate(tl *Tradeline) {
	if !boolish(tl.Get("prior_dispute")) {
		return
	}
	disputeDate, ok := tl.DisputeDate()
	if !ok {
		return
	}
	reported, ok := tl.LastReported()
	if !ok || !reported.After(disputeDate) {
		return
	}
	if falseyish(tl.Get("material_fields_changed")) {
		a.attach(tl, rules.PostDisputeUpdateNoCorrection, "Post-dispute update made no material correction", nil)
	}
}
