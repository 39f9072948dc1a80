package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeTempPayload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPayload(t *testing.T) {
	path := writeTempPayload(t, `{
		"accounts": [{"creditor_name": "Alpha Bank", "bureau": "Experian", "balance": "$10"}],
		"inquiries": []
	}`)
	payload, err := loadPayload(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(payload.Accounts))
	}
	if got := payload.Accounts[0].Get("creditor_name"); got != "Alpha Bank" {
		t.Errorf("creditor_name = %q", got)
	}
}

func TestLoadPayloadBadJSON(t *testing.T) {
	path := writeTempPayload(t, `{not json`)
	if _, err := loadPayload(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestRunAuditExitCodes(t *testing.T) {
	dirty := writeTempPayload(t, `{
		"accounts": [{"creditor_name": "Alpha Bank", "bureau": "Experian"}]
	}`)
	if code := runAudit([]string{"-format", "json", dirty}); code != exitViolations {
		t.Errorf("dirty payload exit = %d, want %d", code, exitViolations)
	}

	missing := filepath.Join(t.TempDir(), "missing.json")
	if code := runAudit([]string{missing}); code != exitError {
		t.Errorf("missing file exit = %d, want %d", code, exitError)
	}
}

func TestRunAuditWritesOutputFile(t *testing.T) {
	payload := writeTempPayload(t, `{
		"accounts": [{"creditor_name": "Alpha Bank", "bureau": "Experian"}]
	}`)
	out := filepath.Join(t.TempDir(), "audited.json")
	code := runAudit([]string{"-format", "json", "-o", out, payload})
	if code != exitViolations {
		t.Fatalf("exit = %d, want %d", code, exitViolations)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["accounts"]; !ok {
		t.Error("audited payload missing accounts")
	}
}

func TestSeverityStyle(t *testing.T) {
	if _, label := severityStyle("major"); label != "Major" {
		t.Errorf("major label = %s", label)
	}
	if _, label := severityStyle("moderate"); label != "Moderate" {
		t.Errorf("moderate label = %s", label)
	}
	if _, label := severityStyle("minor"); label != "Minor" {
		t.Errorf("minor label = %s", label)
	}
}
