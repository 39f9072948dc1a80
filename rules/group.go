package rules

// Group-scope, personal-information, and inquiry rule definitions. Group rules
// are evaluated once per account-group and attached to every member record;
// DUPLICATE_ACCOUNT and POSSIBLE_MISMATCHED_ACCOUNTS_ACROSS_BUREAUS are
// evaluated over the whole payload, and DUPLICATE_ACCOUNT is attached only
// to the repeated records.
var (
	BalanceMismatch = Rule{
		ID:          "BALANCE_MISMATCH",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
		Requires:    []string{"comparison"},
	}

	// Modern twin of BalanceMismatch; both fire so newer letter templates
	// can key on the descriptive id.
	CrossBureauBalanceConflict = Rule{
		ID:          "cross_bureau_balance_conflict",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
		Requires:    []string{"comparison"},
	}

	StatusMismatch = Rule{
		ID:          "STATUS_MISMATCH",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
		Requires:    []string{"comparison"},
	}

	OpenDateMismatch = Rule{
		ID:          "OPEN_DATE_MISMATCH",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
		Requires:    []string{"comparison"},
	}

	// Legacy twin of OpenDateMismatch.
	OpenDateMismatchLegacy = Rule{
		ID:          "open_date_mismatch",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
	}

	LastPaymentMismatchBetweenBureaus = Rule{
		ID:          "LAST_PAYMENT_MISMATCH_BETWEEN_BU",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
		Requires:    []string{"comparison", "timeline"},
	}

	FirstDelinquencyDateNotFrozen = Rule{
		ID:          "FIRST_DELINQUENCY_DATE_NOT_FROZEN",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "comparison",
		Requires:    []string{"comparison", "timeline"},
	}

	// Legacy twin of FirstDelinquencyDateNotFrozen.
	FCRADOFDInvalid = Rule{
		ID:          "fcra_dofd_invalid",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(5)",
		Category:    "comparison",
	}

	LastReportedMismatch = Rule{
		ID:          "LAST_REPORTED_MISMATCH",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(2)",
		Category:    "comparison",
		Requires:    []string{"comparison"},
	}

	AccountTypeMismatch = Rule{
		ID:          "ACCOUNT_TYPE_MISMATCH",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
	}

	OpenClosedMismatch = Rule{
		ID:          "OPEN_CLOSED_MISMATCH",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "comparison",
	}

	PaymentHistoryMismatch = Rule{
		ID:          "PAYMENT_HISTORY_MISMATCH",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
	}

	IncompleteBureauReporting = Rule{
		ID:          "INCOMPLETE_BUREAU_REPORTING",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §623(a)(1)",
		Category:    "comparison",
	}

	DuplicateAccount = Rule{
		ID:          "DUPLICATE_ACCOUNT",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
	}

	PossibleMismatchedAccountsAcrossBureaus = Rule{
		ID:          "POSSIBLE_MISMATCHED_ACCOUNTS_ACROSS_BUREAUS",
		Severity:    SeverityMajor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
	}

	CrossBureauUtilizationGap = Rule{
		ID:          "CROSS_BUREAU_UTILIZATION_GAP",
		Severity:    SeverityMinor,
		FCRASection: "FCRA §607(b)",
		Category:    "comparison",
	}

	// Personal information and inquiry rules

	NameMismatch = Rule{
		ID:          "NAME_MISMATCH",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "personal",
	}

	AddressMismatch = Rule{
		ID:          "ADDRESS_MISMATCH",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §607(b)",
		Category:    "personal",
	}

	InquiryNoMatch = Rule{
		ID:          "INQUIRY_NO_MATCH",
		Severity:    SeverityModerate,
		FCRASection: "FCRA §604(a)(3)(F)",
		Category:    "inquiry",
	}
)

func init() {
	register(
		BalanceMismatch,
		CrossBureauBalanceConflict,
		StatusMismatch,
		OpenDateMismatch,
		OpenDateMismatchLegacy,
		LastPaymentMismatchBetweenBureaus,
		FirstDelinquencyDateNotFrozen,
		FCRADOFDInvalid,
		LastReportedMismatch,
		AccountTypeMismatch,
		OpenClosedMismatch,
		PaymentHistoryMismatch,
		IncompleteBureauReporting,
		DuplicateAccount,
		PossibleMismatchedAccountsAcrossBureaus,
		CrossBureauUtilizationGap,
		NameMismatch,
		AddressMismatch,
		InquiryNoMatch,
	)
}
