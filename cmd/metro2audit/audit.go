package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/redteamhero/metro2"

	"golang.org/x/term"
)

func runAudit(args []string) int {
	auditFlags := flag.NewFlagSet("audit", flag.ExitOnError)
	var format string
	var output string
	var rulebookPath string
	auditFlags.StringVar(&format, "format", "text", "Output format: text, json")
	auditFlags.StringVar(&output, "o", "", "Write the audited payload JSON to this file")
	auditFlags.StringVar(&rulebookPath, "rulebook", "", "Path to an external metro2Violations.json rulebook")
	auditFlags.Usage = auditUsage
	_ = auditFlags.Parse(args)

	if auditFlags.NArg() != 1 {
		auditUsage()
		return exitError
	}

	payload, err := loadPayload(auditFlags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	opts := []metro2.Option{}
	if rulebookPath != "" {
		rb, err := metro2.LoadRulebook(rulebookPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
		opts = append(opts, metro2.WithRulebook(rb))
	} else if rb, ok := metro2.ResolveRulebook(); ok {
		opts = append(opts, metro2.WithRulebook(rb))
	}

	audited := metro2.NewAuditor(opts...).Run(payload)
	summary := metro2.Summarize(audited)

	if output != "" {
		if err := writePayload(output, audited); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			return exitError
		}
	case "text":
		printSummary(summary)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use 'text' or 'json')\n", format)
		return exitError
	}

	if audited.Findings().Count() > 0 {
		return exitViolations
	}
	return exitOK
}

func loadPayload(path string) (*metro2.AuditPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload metro2.AuditPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &payload, nil
}

func writePayload(path string, payload *metro2.AuditPayload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ANSI styles, used only when stdout is a terminal.
const (
	styleGreen  = "\033[92m"
	styleYellow = "\033[93m"
	styleRed    = "\033[91m"
	styleCyan   = "\033[96m"
	styleBold   = "\033[1m"
	styleReset  = "\033[0m"
)

func colorize(style, s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return style + s + styleReset
}

func severityStyle(severity string) (string, string) {
	switch severity {
	case "major":
		return styleRed, "Major"
	case "moderate":
		return styleYellow, "Moderate"
	default:
		return styleGreen, "Minor"
	}
}

func printSummary(summary *metro2.Summary) {
	fmt.Println(colorize(styleBold+styleCyan, "METRO-2 / FCRA AUDIT SUMMARY"))
	fmt.Println("----------------------------------------------------------------------")

	if len(summary.PersonalInfoViolations) > 0 {
		fmt.Println(colorize(styleBold+styleYellow, "Personal Information Issues"))
		for _, v := range summary.PersonalInfoViolations {
			printViolation(string(v.Severity), v.ID, v.Title, v.FCRASection)
		}
	} else {
		fmt.Println(colorize(styleGreen, "Personal information consistent across bureaus"))
	}

	for _, account := range summary.Accounts {
		fmt.Println()
		fmt.Printf("%s [%s]\n", colorize(styleBold+styleCyan, account.Creditor), account.Bureau)
		fmt.Printf("  Balance: %s | Status: %s\n", account.Balance, account.Status)
		if len(account.Violations) == 0 {
			fmt.Println(colorize(styleGreen, "  Clean tradeline"))
			continue
		}
		for _, v := range account.Violations {
			printViolation(string(v.Severity), v.ID, v.Title, v.FCRASection)
		}
	}

	fmt.Println()
	if len(summary.InquiryViolations) > 0 {
		fmt.Println(colorize(styleBold+styleYellow, "Inquiry Exceptions"))
		for _, v := range summary.InquiryViolations {
			printViolation(string(v.Severity), v.ID, v.Title, v.FCRASection)
		}
	} else {
		fmt.Println(colorize(styleGreen, "All inquiries link to active tradelines"))
	}
}

func printViolation(severity, id, title, fcra string) {
	style, label := severityStyle(severity)
	line := fmt.Sprintf("%s: %s: %s", label, id, title)
	if fcra != "" {
		line += " (" + fcra + ")"
	}
	fmt.Println("  " + colorize(style, line))
}

func auditUsage() {
	fmt.Fprintf(os.Stderr, `Usage: metro2audit audit [options] <payload.json>

Audits a parsed consumer credit report payload (accounts, inquiries, and
personal information) against the Metro-2 / FCRA rule set and prints a
severity-sorted summary.

Options:
  --format string     Output format: text, json (default "text")
  --rulebook string   External metro2Violations.json overriding severities
  -o string           Write the audited payload JSON to this file
  --help              Show this help message

Exit codes:
  0  no violations found
  1  violations found
  2  error (unreadable file, malformed JSON)
`)
}
