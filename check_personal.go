package metro2

import (
	"sort"
	"strings"

	"github.com/redteamhero/metro2/rules"
)

// Cross-bureau identity checks over the personal information block.

func (a *audit) checkPersonalInfo(info PersonalInfo) []Violation {
	violations := []Violation{}
	if len(info) == 0 {
		return violations
	}

	if names := collectIdentityValues(info, "name"); distinctFolded(names) > 1 {
		a.emit(&violations, rules.NameMismatch, "Name reported differently across bureaus", nil)
	}
	if addresses := collectIdentityValues(info, "address"); distinctFolded(addresses) > 1 {
		a.emit(&violations, rules.AddressMismatch, "Address reported differently across bureaus", nil)
	}
	return violations
}

// collectIdentityValues pulls, per bureau, the first non-empty field whose
// key contains the keyword. Bureau and field iteration are sorted so the
// result is deterministic.
func collectIdentityValues(info PersonalInfo, keyword string) []string {
	bureaus := make([]string, 0, len(info))
	for b := range info {
		bureaus = append(bureaus, b)
	}
	sort.Strings(bureaus)

	var values []string
	for _, b := range bureaus {
		fields := info[b]
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !strings.Contains(strings.ToLower(k), keyword) {
				continue
			}
			if v := strings.TrimSpace(fields[k]); v != "" {
				values = append(values, v)
				break
			}
		}
	}
	return values
}

func distinctFolded(values []string) int {
	set := map[string]bool{}
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return len(set)
}
