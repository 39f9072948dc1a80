package metro2

import "testing"

func TestDisputeWithoutComplianceCode(t *testing.T) {
	tl := runOne(t, map[string]string{
		"dispute_flag": "Yes",
	})
	wantViolation(t, tl, "COMPLIANCE_CONDITION_CODE_MISSING_ON_DISPUTE")
}

func TestDisputeWithValidComplianceCode(t *testing.T) {
	tl := runOne(t, map[string]string{
		"dispute_flag":              "Yes",
		"compliance_condition_code": "XB",
	})
	wantNoViolation(t, tl, "COMPLIANCE_CONDITION_CODE_MISSING_ON_DISPUTE")
}

func TestDisputeWithoutTimelyUpdate(t *testing.T) {
	tl := runOne(t, map[string]string{
		"dispute_flag":  "Yes",
		"last_reported": fmtDate(testToday().AddDate(0, 0, -60)),
	})
	wantViolation(t, tl, "failure_to_correct_after_dispute")
}

func TestDisputeFlagNotClearedAfterResolution(t *testing.T) {
	tl := runOne(t, map[string]string{
		"dispute_flag":   "Yes",
		"account_status": "Paid",
	})
	wantViolation(t, tl, "DISPUTE_FLAG_NOT_CLEARED_AFTER_RESOLUTION")
}

func TestDisputeCommentNeedsXB(t *testing.T) {
	tl := runOne(t, map[string]string{
		"comments":                  "Account information disputed by consumer",
		"compliance_condition_code": "XC",
	})
	wantViolation(t, tl, "DISPUTE_COMMENT_NEEDS_XB")
}

func TestDisputeCommentWithXBStaysSilent(t *testing.T) {
	tl := runOne(t, map[string]string{
		"comments":                  "Account information disputed by consumer",
		"compliance_condition_code": "XB",
	})
	wantNoViolation(t, tl, "DISPUTE_COMMENT_NEEDS_XB")
}

func TestConsumerDeniesOwnership(t *testing.T) {
	tl := runOne(t, map[string]string{
		"consumer_assertion": "not_mine",
	})
	wantViolation(t, tl, "consumer_denies_account_ownership")

	withProof := runOne(t, map[string]string{
		"consumer_assertion": "not_mine",
		"ownership_proof":    "signed application on file",
	})
	wantNoViolation(t, withProof, "consumer_denies_account_ownership")
}

func TestPostDisputeUpdateWithoutCorrection(t *testing.T) {
	tl := runOne(t, map[string]string{
		"prior_dispute":           "1",
		"dispute_date":            "03/01/2025",
		"last_reported":           "04/01/2025",
		"material_fields_changed": "false",
	})
	wantViolation(t, tl, "post_dispute_update_no_correction")
}

func TestPostDisputeUpdateWithCorrection(t *testing.T) {
	tl := runOne(t, map[string]string{
		"prior_dispute":           "1",
		"dispute_date":            "03/01/2025",
		"last_reported":           "04/01/2025",
		"material_fields_changed": "true",
	})
	wantNoViolation(t, tl, "post_dispute_update_no_correction")
}
