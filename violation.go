package metro2

import (
	"time"

	"github.com/redteamhero/metro2/rules"
)

// audit carries the per-run state threaded through every rule: the clock,
// the grouping threshold, the disable predicate, and the optional external
// rulebook. A fresh context is built for each payload so nothing leaks
// between runs.
type audit struct {
	today     time.Time
	threshold int
	disabled  func(id string) bool
	rulebook  Rulebook
}

// rule resolves metadata for r, letting the external rulebook override
// severity and statute section when it carries the id.
func (a *audit) rule(r rules.Rule) rules.Rule {
	if a.rulebook == nil {
		return r
	}
	return a.rulebook.override(r)
}

// attach appends a violation for r to the record. Duplicate firings of the
// same rule are permitted; rules that must not double-report consult has()
// themselves.
func (a *audit) attach(tl *Tradeline, r rules.Rule, title string, extra map[string]string) {
	if a.disabled != nil && a.disabled(r.ID) {
		return
	}
	tl.Violations = append(tl.Violations, a.build(r, title, extra))
}

// emit appends a violation to a top-level list (inquiry / personal info).
func (a *audit) emit(list *[]Violation, r rules.Rule, title string, extra map[string]string) {
	if a.disabled != nil && a.disabled(r.ID) {
		return
	}
	*list = append(*list, a.build(r, title, extra))
}

// attachGroup appends the same violation to every member of the group.
func (a *audit) attachGroup(g *AccountGroup, r rules.Rule, title string, extra map[string]string) {
	for _, member := range g.Members {
		a.attach(member, r, title, extra)
	}
}

func (a *audit) build(r rules.Rule, title string, extra map[string]string) Violation {
	meta := a.rule(r)
	v := Violation{
		ID:          meta.ID,
		Title:       title,
		Severity:    meta.Severity,
		FCRASection: meta.FCRASection,
		Category:    meta.Category,
	}
	if len(meta.Requires) > 0 {
		v.Requires = append([]string(nil), meta.Requires...)
	}
	if len(extra) > 0 {
		v.Extra = extra
	}
	return v
}

// has reports whether the rule already fired on this record. Several
// temporal rules use it to suppress softer findings once a harder one holds.
func has(tl *Tradeline, id string) bool {
	for _, v := range tl.Violations {
		if v.ID == id {
			return true
		}
	}
	return false
}
