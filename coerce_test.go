package metro2

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"$1,234.56", "1234.56"},
		{"$1,500", "1500"},
		{"", "0"},
		{"-", "0"},
		{"--", "0"},
		{"N/A", "0"},
		{"  $0.00 ", "0"},
		{"USD 42.10", "42.1"},
		{"1.005", "1.01"},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		want := decimal.RequireFromString(tc.want)
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, want)
		}
	}
}

func TestParseDateFormats(t *testing.T) {
	want := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"05/15/2023",
		"5/15/2023",
		"2023-05-15",
		"05-15-2023",
		"20230515",
		"May 15, 2023",
		"2023-05-15T00:00:00Z",
		"2023-05-15T10:30:00+02:00",
		"2023-05-15T00:00:00-0400",
	} {
		got, ok := ParseDate(in)
		if !ok {
			t.Errorf("ParseDate(%q) failed", in)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseDateMonthOnly(t *testing.T) {
	got, ok := ParseDate("Feb 2022")
	if !ok {
		t.Fatal("ParseDate(Feb 2022) failed")
	}
	want := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(Feb 2022) = %s, want %s", got, want)
	}
}

func TestParseDateSentinels(t *testing.T) {
	for _, in := range []string{"", "-", "--", "n/a", "NA", "Not Reported", "  "} {
		if _, ok := ParseDate(in); ok {
			t.Errorf("ParseDate(%q) should be absent", in)
		}
	}
	if _, ok := ParseDate("garbage"); ok {
		t.Error("ParseDate(garbage) should fail")
	}
}

func TestStalenessWindows(t *testing.T) {
	today := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	if olderThanDays(today, today, 0) {
		t.Error("today is not older than today")
	}
	if olderThanYears(today, today.AddDate(-2, 0, 0), 2) {
		t.Error("exactly two years ago is inside the window")
	}
	if !olderThanYears(today, today.AddDate(-2, 0, -1), 2) {
		t.Error("two years and a day ago should be stale")
	}
}

func TestBoolish(t *testing.T) {
	for _, v := range []string{"true", "1", "Yes", "y", "Open", "ACTIVE", "dispute"} {
		if !boolish(v) {
			t.Errorf("boolish(%q) should be true", v)
		}
	}
	for _, v := range []string{"false", "0", "no", "maybe", ""} {
		if boolish(v) {
			t.Errorf("boolish(%q) should be false", v)
		}
	}
	for _, v := range []string{"false", "0", "No", "n"} {
		if !falseyish(v) {
			t.Errorf("falseyish(%q) should be true", v)
		}
	}
	if falseyish("maybe") {
		t.Error("falseyish(maybe) should be false: not an explicit negative")
	}
}

func TestNormalizeText(t *testing.T) {
	if got := normalizeText("  Charge-Off   Account "); got != "charge-off account" {
		t.Errorf("normalizeText = %q", got)
	}
}
