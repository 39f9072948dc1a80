// Package metro2 implements a Metro-2 / FCRA compliance audit engine for
// U.S. consumer credit reports.
//
// The engine ingests a normalized report payload — personal identity block,
// per-bureau tradelines, and inquiries — and attaches structured violations:
// each carries a stable rule identifier, a human-readable title, a severity
// band, and the FCRA statute section implicated. Downstream consumers
// (dispute-letter generators, CLI summaries, API responses) dispatch on the
// violation ids.
//
// A typical audit:
//
//	var payload metro2.AuditPayload
//	if err := json.Unmarshal(report, &payload); err != nil { ... }
//	audited := metro2.RunAllAudits(&payload)
//	summary := metro2.Summarize(audited)
//
// Auditor.Run is a pure function over the payload: it mutates only the
// violation lists and the normalized fields, performs no I/O, and is
// deterministic — the same payload yields byte-identical violations in
// identical order. Payloads may be audited in parallel, one goroutine per
// payload; a single payload must not be shared mid-run. RunAllAudits
// additionally looks for an external rulebook file before auditing.
package metro2
