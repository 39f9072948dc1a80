// Package rules contains the Metro-2 / FCRA audit rule definitions.
//
// Every rule the engine can emit has a static entry here mapping its stable
// identifier to a severity band, the FCRA statute section implicated, a rough
// category, and optional advisory hints for downstream letter generators.
//
// Identifier casing is historical and intentionally preserved: older rules use
// snake_case (e.g. "missing_dofd"), newer ones SCREAMING_SNAKE (e.g.
// "LAST_PAYMENT_AFTER_DOFD"), and a handful of conditions carry both a legacy
// and a modern id that fire together for downstream compatibility.
//
// # Usage
//
//	import "github.com/redteamhero/metro2/rules"
//
//	func (a *audit) checkBaseline(tl *Tradeline) {
//	    if !tl.Has("date_opened") {
//	        a.attach(tl, rules.MissingDateOpened, "Missing Date Opened", nil)
//	    }
//	}
package rules
