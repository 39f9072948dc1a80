package metro2

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redteamhero/metro2/rules"
)

// An optional JSON rulebook can override severity and statute metadata
// without a rebuild. Legacy rulebooks carried integer severities (3, 4, 5);
// both shapes are accepted. A rule firing whose id is absent from the
// rulebook falls back to the built-in registry, and a missing rulebook file
// is not an error: the engine silently keeps its built-ins.

// RulebookEntry mirrors one value of metro2Violations.json.
type RulebookEntry struct {
	Violation      string           `json:"violation"`
	Severity       RulebookSeverity `json:"severity"`
	FCRASection    string           `json:"fcraSection"`
	FieldsImpacted []string         `json:"fieldsImpacted,omitempty"`

	// Rule holds the optional data-driven predicate definition. It is
	// carried for future evaluators and not consumed here.
	Rule json.RawMessage `json:"rule,omitempty"`
}

// RulebookSeverity decodes either the modern string band or the legacy
// integer level (3 = minor, 4 = moderate, 5 = major).
type RulebookSeverity struct {
	Band rules.Severity
}

var legacySeverityLevels = map[int]rules.Severity{
	3: rules.SeverityMinor,
	4: rules.SeverityModerate,
	5: rules.SeverityMajor,
}

func (s *RulebookSeverity) UnmarshalJSON(data []byte) error {
	var level int
	if err := json.Unmarshal(data, &level); err == nil {
		if band, ok := legacySeverityLevels[level]; ok {
			s.Band = band
		}
		return nil
	}
	var band rules.Severity
	if err := json.Unmarshal(data, &band); err != nil {
		return fmt.Errorf("severity: expected string or integer: %w", err)
	}
	if band.Valid() {
		s.Band = band
	}
	return nil
}

func (s RulebookSeverity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Band)
}

// Rulebook maps rule ids to their external metadata.
type Rulebook map[string]RulebookEntry

// override applies the rulebook's severity and section to r when present.
func (rb Rulebook) override(r rules.Rule) rules.Rule {
	entry, ok := rb[r.ID]
	if !ok {
		return r
	}
	if entry.Severity.Band.Valid() {
		r.Severity = entry.Severity.Band
	}
	if entry.FCRASection != "" {
		r.FCRASection = entry.FCRASection
	}
	return r
}

// LoadRulebook reads and decodes a rulebook file.
func LoadRulebook(path string) (Rulebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulebook: %w", err)
	}
	var rb Rulebook
	if err := json.Unmarshal(data, &rb); err != nil {
		return nil, fmt.Errorf("rulebook %s: %w", path, err)
	}
	return rb, nil
}

// rulebookEnvVar points at an explicit rulebook file.
const rulebookEnvVar = "METRO2_RULEBOOK_PATH"

var rulebookCandidates = []string{
	"metro2Violations.json",
	filepath.Join("data", "metro2Violations.json"),
	filepath.Join("public", "metro2Violations.json"),
}

// ResolveRulebook finds and loads the external rulebook, trying the
// environment variable first and then the conventional locations. It returns
// (nil, false) when no readable rulebook exists; the engine then uses its
// built-in registry.
func ResolveRulebook() (Rulebook, bool) {
	paths := rulebookCandidates
	if env := os.Getenv(rulebookEnvVar); env != "" {
		paths = append([]string{env}, paths...)
	}
	for _, p := range paths {
		if rb, err := LoadRulebook(p); err == nil {
			return rb, true
		}
	}
	return nil, false
}
