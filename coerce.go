package metro2

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Bureau exports are lossy: amounts carry currency glyphs and separator
// noise, dates arrive in a dozen formats, flags are strings. The coercion
// layer recovers locally instead of failing the whole audit — unparseable
// money is 0.00 and unparseable dates are absent, so rules depending on a
// value simply do not fire.

var amountNoise = regexp.MustCompile(`[^0-9.+-]`)

// ParseAmount converts a reported monetary string into a fixed-point value.
// Formatting noise is stripped; empty values, lone signs, and parse failures
// all yield zero.
func ParseAmount(value string) decimal.Decimal {
	cleaned := amountNoise.ReplaceAllString(value, "")
	cleaned = strings.TrimSpace(cleaned)
	switch cleaned {
	case "", "+", "-", ".", "+.", "-.":
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// centTolerance is the fixed comparison tolerance for currency values.
var centTolerance = decimal.New(1, -2)

// amountsEqual compares two currency values with the 1-cent tolerance.
func amountsEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(centTolerance)
}

var dateSentinels = map[string]bool{
	"":             true,
	"-":            true,
	"--":           true,
	"n/a":          true,
	"na":           true,
	"not reported": true,
}

// Layouts tried in order after the ISO8601 attempt. Single-digit layouts
// also accept zero-padded input.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006-1-2",
	"1-2-2006",
	"20060102",
	"Jan 2, 2006",
	"Jan 2006",
	"January 2, 2006",
	"January 2006",
}

var offsetColonRepair = regexp.MustCompile(`([+-]\d{2})(\d{2})$`)

// ParseDate parses a reported date. ISO8601 timestamps (with Z or numeric
// offsets, colon optional) are accepted and truncated to the date portion;
// sentinel strings such as "-" and "n/a" are treated as absent. The second
// return value is false when the date is absent or unparseable.
func ParseDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if dateSentinels[strings.ToLower(s)] {
		return time.Time{}, false
	}

	iso := strings.Replace(s, "Z", "+00:00", 1)
	iso = offsetColonRepair.ReplaceAllString(iso, "$1:$2")
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return truncateToDay(t), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDay(t), true
		}
	}

	// Timestamps in non-ISO shapes: retry the date portion alone.
	if i := strings.IndexAny(s, "T "); i > 0 {
		head := s[:i]
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, head); err == nil {
				return truncateToDay(t), true
			}
		}
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var collapseSpace = regexp.MustCompile(`\s+`)

// normalizeText lowercases, trims, and collapses internal whitespace. Rules
// run substring tests over the result; no stemming is attempted.
func normalizeText(value string) string {
	return collapseSpace.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), " ")
}

var trueishValues = map[string]bool{
	"true":    true,
	"1":       true,
	"yes":     true,
	"y":       true,
	"open":    true,
	"active":  true,
	"dispute": true,
}

var falseishValues = map[string]bool{
	"false": true,
	"0":     true,
	"no":    true,
	"n":     true,
}

// boolish interprets heterogeneous flag values; anything outside the
// true-ish set reads as false.
func boolish(value string) bool {
	return trueishValues[normalizeText(value)]
}

// falseyish reports an explicit negative. Unknown values are neither
// true-ish nor explicitly false.
func falseyish(value string) bool {
	return falseishValues[normalizeText(value)]
}

// daysBetween counts whole days from a to b (positive when b is later).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// olderThanDays reports whether d lies more than days before today.
func olderThanDays(today, d time.Time, days int) bool {
	return daysBetween(d, today) > days
}

// olderThanYears applies the N-year staleness window on calendar years, so
// the boundary lands on the same month and day regardless of leap years.
func olderThanYears(today, d time.Time, years int) bool {
	return d.Before(today.AddDate(-years, 0, 0))
}

// containsAny reports whether the normalized text contains any keyword.
func containsAny(text string, keywords ...string) bool {
	low := normalizeText(text)
	for _, k := range keywords {
		if strings.Contains(low, k) {
			return true
		}
	}
	return false
}

// splitWords tokenizes normalized text for whole-word tests.
func splitWords(text string) []string {
	return strings.Fields(normalizeText(text))
}
