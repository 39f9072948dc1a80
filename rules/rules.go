package rules

// Single-tradeline rule definitions.
//
// Rule naming convention for identifiers:
//   - snake_case ids are legacy identifiers kept for template compatibility
//   - SCREAMING_SNAKE ids are the modern registry
//   - METRO2_CODE_* ids map to numeric Metro-2 field codes
var (
	// Required-field / baseline rules

	MissingDateOpened = Rule{
		ID:          "missing_date_opened",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §611(a)(1)",
		Category:    "baseline",
	}

	MissingAccountNumber = Rule{
		ID:          "missing_account_number",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "baseline",
	}

	MissingDOFD = Rule{
		ID:          "missing_dofd",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "baseline",
	}

	ReportDateMissingOrInvalid = Rule{
		ID:          "REPORT_DATE_MISSING_OR_INVALID",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "baseline",
	}

	MissingLastPaymentDate = Rule{
		ID:          "MISSING_LAST_PAYMENT_DATE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "baseline",
	}

	MissingLastPaymentDateForPaid = Rule{
		ID:          "MISSING_LAST_PAYMENT_DATE_FOR_PAID",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "baseline",
	}

	CurrentNoLastPaymentDate = Rule{
		ID:          "CURRENT_NO_LAST_PAYMENT_DATE",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "baseline",
	}

	PastDueNoLastPaymentDate = Rule{
		ID:          "PASTDUE_NO_LAST_PAYMENT_DATE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "baseline",
	}

	CollectionMissingOriginalCreditor = Rule{
		ID:          "METRO2_CODE_9_MISSING_OC",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "collection",
	}

	// Status ↔ amount contradiction rules

	BalanceStatusConflict = Rule{
		ID:          "balance_status_conflict",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "status",
	}

	CurrentStatusWithPastDue = Rule{
		ID:          "CURRENT_STATUS_WITH_PAST_DUE",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "status",
	}

	// Legacy twin of CurrentStatusWithPastDue; both fire on the same
	// condition so older letter templates keep matching.
	CurrentButPastDue = Rule{
		ID:          "current_but_pastdue",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "status",
	}

	ZeroBalanceWithPastDue = Rule{
		ID:          "ZERO_BALANCE_WITH_PAST_DUE",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "status",
	}

	LateStatusNoPastDue = Rule{
		ID:          "LATE_STATUS_NO_PAST_DUE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "status",
	}

	OpenZeroBalance = Rule{
		ID:          "OPEN_ZERO_BALANCE",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §607(b)",
		Category:    "status",
	}

	CollectionStatusInconsistent = Rule{
		ID:          "collection_status_inconsistent",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "status",
	}

	ChargeoffContinuesReporting = Rule{
		ID:          "chargeoff_continues_reporting",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "status",
	}

	OpenAccountReportedInCollection = Rule{
		ID:          "open_account_reported_in_collection",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "status",
	}

	ChargeoffCollectionPastDue = Rule{
		ID:          "CO_COLLECTION_PAST_DUE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "status",
	}

	DerogRatingButCurrent = Rule{
		ID:          "DEROG_RATING_BUT_CURRENT",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "status",
	}

	HighUtilization = Rule{
		ID:          "HIGH_UTILIZATION",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §607(b)",
		Category:    "status",
	}

	// Temporal invariant rules

	DateOrderSanity = Rule{
		ID:          "date_order_sanity",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "timeline",
		Requires:    []string{"timeline"},
	}

	AccountOpenedAfterLastPayment = Rule{
		ID:          "ACCOUNT_OPENED_AFTER_LAST_PAYMENT_DATE",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "timeline",
	}

	PaymentReportedAfterClosure = Rule{
		ID:          "PAYMENT_REPORTED_AFTER_CLOSURE",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	InaccurateLastPaymentDate = Rule{
		ID:          "INACCURATE_LAST_PAYMENT_DATE",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "timeline",
	}

	LastPaymentAfterChargeoffDate = Rule{
		ID:          "LAST_PAYMENT_AFTER_CHARGEOFF_DATE",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "timeline",
	}

	LastPaymentAfterDOFD = Rule{
		ID:          "LAST_PAYMENT_AFTER_DOFD",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "timeline",
		Requires:    []string{"timeline"},
	}

	PaymentBeforeDelinquencyImpliesCure = Rule{
		ID:          "PAYMENT_BEFORE_DELINQUENCY_IMPLIES_CURE",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "timeline",
	}

	DOFDPrecedesDateOpened = Rule{
		ID:          "dofd_precedes_date_opened",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "timeline",
	}

	DOFDAfterLastPayment = Rule{
		ID:          "DOFD_AFTER_LAST_PAYMENT",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "timeline",
	}

	PaymentAfterPayoffDate = Rule{
		ID:          "PAYMENT_AFTER_PAYOFF_DATE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	MismatchLastReportedBeforeActivity = Rule{
		ID:          "MISMATCH_LAST_REPORTED_BEFORE_ACTIVITY",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	StaleData = Rule{
		ID:          "STALE_DATA",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	StaleActiveReporting = Rule{
		ID:          "STALE_ACTIVE_REPORTING",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	NoActivityTooLongActive = Rule{
		ID:          "NO_ACTIVITY_TOO_LONG_ACTIVE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	StagnantAccountNotUpdated = Rule{
		ID:          "STAGNANT_ACCOUNT_NOT_UPDATED",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	PaymentStalenessInconsistentWithStatus = Rule{
		ID:          "PAYMENT_STALENESS_INCONSISTENT_WITH_STATUS",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	DOFDObsolete7Y = Rule{
		ID:          "DOFD_OBSOLETE_7Y",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §605(c)",
		Category:    "timeline",
		Requires:    []string{"timeline"},
	}

	ClosureDateEqualsDOFD = Rule{
		ID:          "CLOSURE_DATE_EQUALS_DOFD",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §607(b)",
		Category:    "timeline",
	}

	DateOpenedAfterChargeoff = Rule{
		ID:          "DATE_OPENED_AFTER_CHARGEOFF",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "timeline",
	}

	PastDueAfterClosureDate = Rule{
		ID:          "PAST_DUE_AFTER_CLOSURE_DATE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "timeline",
	}

	ReagingWithoutProof = Rule{
		ID:          "REAGING_WITHOUT_PROOF",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "timeline",
	}

	CollectionReagingDetected = Rule{
		ID:          "collection_reaging_detected",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "timeline",
	}

	BalanceWithoutPostChargeoffActivity = Rule{
		ID:          "balance_reporting_without_post_chargeoff_activity",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "timeline",
	}

	// Closed-account integrity rules

	InconsistentAccountStatusOnClosed = Rule{
		ID:          "INCONSISTENT_ACCOUNT_STATUS_ON_CLOSED",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "closed",
	}

	MismatchBalanceOnClosed = Rule{
		ID:          "MISMATCH_BALANCE_ON_CLOSED",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "closed",
	}

	ClosedAccountStillReportingPayment = Rule{
		ID:          "CLOSED_ACCOUNT_STILL_REPORTING_PAYMENT",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "closed",
	}

	ClosedAccountMonthlyPayment = Rule{
		ID:          "CLOSED_ACCOUNT_MONTHLY_PAYMENT",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "closed",
	}

	InconsistentPaymentRatingOnClose = Rule{
		ID:          "INCONSISTENT_PAYMENT_RATING_ON_CLOSE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "closed",
	}

	InconsistentSpecialCommentOnSettlement = Rule{
		ID:          "INCONSISTENT_SPECIAL_COMMENT_ON_SETTLEMENT",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "closed",
	}

	IncorrectPaymentHistoryAfterClosure = Rule{
		ID:          "INCORRECT_PAYMENT_HISTORY_AFTER_CLOSURE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "closed",
	}

	ReopenedAccountNoNewOpenDate = Rule{
		ID:          "REOPENED_ACCOUNT_NO_NEW_OPEN_DATE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "closed",
	}

	ExtendedDelinquencyBeyondMax = Rule{
		ID:          "EXTENDED_DELINQUENCY_BEYOND_MAX",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "closed",
	}

	// Portfolio / ownership / collateral rules

	IncorrectECOACodeForAuthorizedUser = Rule{
		ID:          "INCORRECT_ECOA_CODE_FOR_AUTHORIZED_USER",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "portfolio",
	}

	// Legacy twin of IncorrectECOACodeForAuthorizedUser.
	AUCommentECOAConflict = Rule{
		ID:          "AU_COMMENT_ECOA_CONFLICT",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "portfolio",
	}

	MismatchPortfolioTypeVsAccountType = Rule{
		ID:          "MISMATCH_PORTFOLIO_TYPE_VS_ACCOUNT_TYPE",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "portfolio",
	}

	MismatchCollateralIndicator = Rule{
		ID:          "MISMATCH_COLLATERAL_INDICATOR",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "portfolio",
	}

	HighCreditExceedsLimit = Rule{
		ID:          "HIGH_CREDIT_EXCEEDS_LIMIT",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "portfolio",
	}

	NonZeroBalanceWithZeroHiCredit = Rule{
		ID:          "NON_ZERO_BALANCE_WITH_ZERO_HI_CREDIT",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "portfolio",
	}

	RevolvingZeroLimitComment = Rule{
		ID:          "REVOLVING_ZERO_LIMIT_COMMENT",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §607(b)",
		Category:    "portfolio",
	}

	InstallmentHasLimit = Rule{
		ID:          "INSTALLMENT_HAS_LIMIT",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §607(b)",
		Category:    "portfolio",
	}

	RevolvingMissingLimit = Rule{
		ID:          "REVOLVING_MISSING_LIMIT",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "portfolio",
	}

	RevolvingWithTerms = Rule{
		ID:          "REVOLVING_WITH_TERMS",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §607(b)",
		Category:    "portfolio",
	}

	StudentLoanDefermentHasLates = Rule{
		ID:          "SL_DEFERMENT_HAS_LATES",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "portfolio",
	}

	// Dispute hygiene rules

	ComplianceConditionCodeMissingOnDispute = Rule{
		ID:          "COMPLIANCE_CONDITION_CODE_MISSING_ON_DISPUTE",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(3)",
		Category:    "dispute",
	}

	FailureToCorrectAfterDispute = Rule{
		ID:          "failure_to_correct_after_dispute",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(b)",
		Category:    "dispute",
	}

	DisputeFlagNotClearedAfterResolution = Rule{
		ID:          "DISPUTE_FLAG_NOT_CLEARED_AFTER_RESOLUTION",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(3)",
		Category:    "dispute",
	}

	DisputeCommentNeedsXB = Rule{
		ID:          "DISPUTE_COMMENT_NEEDS_XB",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(3)",
		Category:    "dispute",
	}

	ConsumerDeniesAccountOwnership = Rule{
		ID:          "consumer_denies_account_ownership",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(b)",
		Category:    "dispute",
	}

	PostDisputeUpdateNoCorrection = Rule{
		ID:          "post_dispute_update_no_correction",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(b)",
		Category:    "dispute",
	}

	// Collection specifics and comment integrity

	CollectionHighCreditEqualsBalance = Rule{
		ID:          "collection_high_credit_equals_balance",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "collection",
	}

	DuplicateCollectionAccount = Rule{
		ID:          "duplicate_collection_account",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "collection",
	}

	FurnisherIdentityUnclear = Rule{
		ID:          "furnisher_identity_unclear",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "collection",
	}

	CommentFieldConflict = Rule{
		ID:          "comment_field_conflict",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "comment",
	}
)

func init() {
	register(
		MissingDateOpened,
		MissingAccountNumber,
		MissingDOFD,
		ReportDateMissingOrInvalid,
		MissingLastPaymentDate,
		MissingLastPaymentDateForPaid,
		CurrentNoLastPaymentDate,
		PastDueNoLastPaymentDate,
		CollectionMissingOriginalCreditor,
		BalanceStatusConflict,
		CurrentStatusWithPastDue,
		CurrentButPastDue,
		ZeroBalanceWithPastDue,
		LateStatusNoPastDue,
		OpenZeroBalance,
		CollectionStatusInconsistent,
		ChargeoffContinuesReporting,
		OpenAccountReportedInCollection,
		ChargeoffCollectionPastDue,
		DerogRatingButCurrent,
		HighUtilization,
		DateOrderSanity,
		AccountOpenedAfterLastPayment,
		PaymentReportedAfterClosure,
		InaccurateLastPaymentDate,
		LastPaymentAfterChargeoffDate,
		LastPaymentAfterDOFD,
		PaymentBeforeDelinquencyImpliesCure,
		DOFDPrecedesDateOpened,
		DOFDAfterLastPayment,
		PaymentAfterPayoffDate,
		MismatchLastReportedBeforeActivity,
		StaleData,
		StaleActiveReporting,
		NoActivityTooLongActive,
		StagnantAccountNotUpdated,
		PaymentStalenessInconsistentWithStatus,
		DOFDObsolete7Y,
		ClosureDateEqualsDOFD,
		DateOpenedAfterChargeoff,
		PastDueAfterClosureDate,
		ReagingWithoutProof,
		CollectionReagingDetected,
		BalanceWithoutPostChargeoffActivity,
		InconsistentAccountStatusOnClosed,
		MismatchBalanceOnClosed,
		ClosedAccountStillReportingPayment,
		ClosedAccountMonthlyPayment,
		InconsistentPaymentRatingOnClose,
		InconsistentSpecialCommentOnSettlement,
		IncorrectPaymentHistoryAfterClosure,
		ReopenedAccountNoNewOpenDate,
		ExtendedDelinquencyBeyondMax,
		IncorrectECOACodeForAuthorizedUser,
		AUCommentECOAConflict,
		MismatchPortfolioTypeVsAccountType,
		MismatchCollateralIndicator,
		HighCreditExceedsLimit,
		NonZeroBalanceWithZeroHiCredit,
		RevolvingZeroLimitComment,
		InstallmentHasLimit,
		RevolvingMissingLimit,
		RevolvingWithTerms,
		StudentLoanDefermentHasLates,
		ComplianceConditionCodeMissingOnDispute,
		FailureToCorrectAfterDispute,
		DisputeFlagNotClearedAfterResolution,
		DisputeCommentNeedsXB,
		ConsumerDeniesAccountOwnership,
		PostDisputeUpdateNoCorrection,
		CollectionHighCreditEqualsBalance,
		DuplicateCollectionAccount,
		FurnisherIdentityUnclear,
		CommentFieldConflict,
	)
}
