package metro2

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/redteamhero/metro2/rules"
)

// Bureau is one of the three U.S. consumer credit bureaus. Labels are
// canonicalized from any case/whitespace variant via CanonicalBureau.
type Bureau string

const (
	BureauTransUnion Bureau = "TransUnion"
	BureauExperian   Bureau = "Experian"
	BureauEquifax    Bureau = "Equifax"
)

// Bureaus lists the closed enumeration in reporting order.
var Bureaus = []Bureau{BureauTransUnion, BureauExperian, BureauEquifax}

var bureauLabels = map[string]Bureau{
	"transunion":  BureauTransUnion,
	"trans union": BureauTransUnion,
	"tu":          BureauTransUnion,
	"experian":    BureauExperian,
	"exp":         BureauExperian,
	"equifax":     BureauEquifax,
	"eqf":         BureauEquifax,
	"efx":         BureauEquifax,
}

// CanonicalBureau maps a free-form bureau label to the closed enumeration.
func CanonicalBureau(label string) (Bureau, bool) {
	b, ok := bureauLabels[strings.ToLower(strings.TrimSpace(label))]
	return b, ok
}

// Violation is a single finding emitted by an audit rule. Severity and the
// FCRA section come from the rule registry (or the external rulebook), never
// from rule code. ID is a stable ASCII identifier; downstream consumers select
// dispute-letter templates by exact id match.
type Violation struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Severity    rules.Severity    `json:"severity"`
	FCRASection string            `json:"fcra_section"`
	Category    string            `json:"category,omitempty"`
	Requires    []string          `json:"requires,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// PaymentEntry is one month of reported payment history.
type PaymentEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// PaymentHistory accepts both shapes bureaus export: a sequence of
// {date, status} entries or a mapping from date to status string.
type PaymentHistory []PaymentEntry

// UnmarshalJSON decodes either representation. Mapping form is sorted by date
// key so decoding is deterministic.
func (ph *PaymentHistory) UnmarshalJSON(data []byte) error {
	var entries []PaymentEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		*ph = entries
		return nil
	}
	var byDate map[string]string
	if err := json.Unmarshal(data, &byDate); err != nil {
		return fmt.Errorf("payment_history: unsupported shape: %w", err)
	}
	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries = make([]PaymentEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, PaymentEntry{Date: k, Status: byDate[k]})
	}
	*ph = entries
	return nil
}

// Tradeline is one bureau's view of one account. Upstream parsers emit
// free-form string maps; all keys are kept in Fields (the normalizer adds
// canonical aliases in place). Rule code reads through the typed accessors.
type Tradeline struct {
	Fields     map[string]string
	History    PaymentHistory
	Violations []Violation

	// Present is false when this bureau did not actually report the
	// account; such records are skipped by the orchestrator.
	Present bool
}

// NewTradeline builds a tradeline from a plain field map. Present defaults to
// true, matching upstream parser output.
func NewTradeline(fields map[string]string) *Tradeline {
	if fields == nil {
		fields = map[string]string{}
	}
	return &Tradeline{Fields: fields, Present: true}
}

// Get returns the raw value for key, or "" when absent.
func (t *Tradeline) Get(key string) string {
	return t.Fields[key]
}

// Set stores a raw field value.
func (t *Tradeline) Set(key, value string) {
	if t.Fields == nil {
		t.Fields = map[string]string{}
	}
	t.Fields[key] = value
}

// Has reports whether key is present and non-empty after trimming.
func (t *Tradeline) Has(key string) bool {
	return strings.TrimSpace(t.Fields[key]) != ""
}

// UnmarshalJSON accepts the free-form tradeline object emitted by the
// upstream report parsers. Scalar values of any JSON type are coerced to
// strings; payment_history, present, and violations are structural.
func (t *Tradeline) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Fields = make(map[string]string, len(raw))
	t.Present = true
	for key, val := range raw {
		switch key {
		case "payment_history":
			if err := json.Unmarshal(val, &t.History); err != nil {
				return err
			}
		case "present":
			var b bool
			if err := json.Unmarshal(val, &b); err == nil {
				t.Present = b
			}
		case "violations":
			if err := json.Unmarshal(val, &t.Violations); err != nil {
				return err
			}
		default:
			t.Fields[key] = coerceScalar(val)
		}
	}
	return nil
}

// MarshalJSON emits every raw field plus the attached violations. Keys are
// sorted by the encoder, so output is byte-stable for identical input.
func (t *Tradeline) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t.Fields)+3)
	for k, v := range t.Fields {
		out[k] = v
	}
	if len(t.History) > 0 {
		out["payment_history"] = t.History
	}
	if !t.Present {
		out["present"] = false
	}
	out["violations"] = violationsOrEmpty(t.Violations)
	return json.Marshal(out)
}

func violationsOrEmpty(v []Violation) []Violation {
	if v == nil {
		return []Violation{}
	}
	return v
}

// coerceScalar renders a raw JSON value as the string the rule layer expects.
// Nested structures are kept as compact JSON so no input is lost.
func coerceScalar(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return strings.TrimSpace(string(raw))
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		compact, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(compact)
	}
}

// Inquiry is a recorded third-party access of the consumer's file.
type Inquiry struct {
	CreditorName   string `json:"creditor_name"`
	TypeOfBusiness string `json:"type_of_business,omitempty"`
	DateOfInquiry  string `json:"date_of_inquiry,omitempty"`
	CreditBureau   string `json:"credit_bureau,omitempty"`
}

// PersonalInfo maps a bureau label to that bureau's identity fields
// (name, address, date_of_birth, ...). Labels are kept as received; rules
// canonicalize when comparing.
type PersonalInfo map[string]map[string]string

// AuditPayload is the top-level record exchanged with upstream parsers and
// downstream letter generators. The engine mutates only the violation lists
// and the normalized tradeline fields.
type AuditPayload struct {
	Accounts            []*Tradeline `json:"accounts"`
	Inquiries           []Inquiry    `json:"inquiries,omitempty"`
	PersonalInformation PersonalInfo `json:"personal_information,omitempty"`

	InquiryViolations      []Violation `json:"inquiry_violations"`
	PersonalInfoViolations []Violation `json:"personal_info_violations"`
}
