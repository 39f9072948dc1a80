package metro2

import "time"

// The orchestrator drives normalization → grouping → rule dispatch in a
// fixed registration order. Given the same payload it produces the same
// violations in the same order; the order of checks below is therefore part
// of the public contract.

// singleChecks run once per surviving tradeline, in registration order.
var singleChecks = []func(*audit, *Tradeline){
	(*audit).checkBaseline,
	(*audit).checkStatusAmounts,
	(*audit).checkDates,
	(*audit).checkClosed,
	(*audit).checkPortfolio,
	(*audit).checkDispute,
	(*audit).checkCollection,
}

// payloadChecks scan all surviving tradelines at once (duplicate and
// identity rules cross creditor/group boundaries).
var payloadChecks = []func(*audit, []*Tradeline){
	(*audit).checkDuplicateCollections,
	(*audit).checkFurnisherIdentity,
	(*audit).checkDuplicateWithinBureau,
	(*audit).checkMismatchedAccountNumbers,
}

// Option configures an Auditor.
type Option func(*Auditor)

// WithToday pins the audit clock; staleness and obsolescence windows are
// measured from this date. Defaults to the current day.
func WithToday(t time.Time) Option {
	return func(a *Auditor) { a.today = truncateToDay(t) }
}

// WithMatchThreshold overrides the minimum pairwise score for grouping
// records into one account. The default is DefaultMatchThreshold.
func WithMatchThreshold(score int) Option {
	return func(a *Auditor) { a.threshold = score }
}

// WithDisabledRules suppresses the given rule ids.
func WithDisabledRules(ids ...string) Option {
	set := map[string]bool{}
	for _, id := range ids {
		set[id] = true
	}
	return func(a *Auditor) { a.disabled = func(id string) bool { return set[id] } }
}

// WithDisabled installs an arbitrary rule-disable predicate.
func WithDisabled(pred func(id string) bool) Option {
	return func(a *Auditor) { a.disabled = pred }
}

// WithRulebook applies an external rulebook's severity and statute metadata.
func WithRulebook(rb Rulebook) Option {
	return func(a *Auditor) { a.rulebook = rb }
}

// Auditor runs the full rule set over audit payloads. The zero-configured
// auditor uses the built-in registry, the default grouping threshold, and
// the wall clock. An Auditor is safe to reuse across payloads but a single
// payload must not be shared between concurrent runs.
type Auditor struct {
	today     time.Time
	threshold int
	disabled  func(id string) bool
	rulebook  Rulebook
}

// NewAuditor builds an auditor with the given options.
func NewAuditor(opts ...Option) *Auditor {
	a := &Auditor{threshold: DefaultMatchThreshold}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run normalizes the payload's accounts in place, executes every audit, and
// returns the payload with violations attached. The engine mutates only the
// violation lists and the normalized fields (canonical aliases, cleaned
// values, canonical bureau label).
func (ar *Auditor) Run(payload *AuditPayload) *AuditPayload {
	if payload == nil {
		return nil
	}

	today := ar.today
	if today.IsZero() {
		today = truncateToDay(time.Now().UTC())
	}
	ctx := &audit{
		today:     today,
		threshold: ar.threshold,
		disabled:  ar.disabled,
		rulebook:  ar.rulebook,
	}
	if ctx.threshold == 0 {
		ctx.threshold = DefaultMatchThreshold
	}

	var active []*Tradeline
	for _, tl := range payload.Accounts {
		if tl == nil || !tl.Present {
			continue
		}
		NormalizeTradeline(tl)
		active = append(active, tl)
	}

	for _, tl := range active {
		for _, check := range singleChecks {
			check(ctx, tl)
		}
	}

	for _, check := range payloadChecks {
		check(ctx, active)
	}

	for _, group := range GroupAccounts(active, ctx.threshold) {
		ctx.checkGroup(group)
	}

	payload.PersonalInfoViolations = ctx.checkPersonalInfo(payload.PersonalInformation)
	payload.InquiryViolations = ctx.checkInquiries(payload.Inquiries, active)

	return payload
}

// RunAllAudits audits a payload with the default configuration, loading the
// external rulebook when one is resolvable.
func RunAllAudits(payload *AuditPayload) *AuditPayload {
	opts := []Option{}
	if rb, ok := ResolveRulebook(); ok {
		opts = append(opts, WithRulebook(rb))
	}
	return NewAuditor(opts...).Run(payload)
}
