package lexicon

import (
	"bytes"
	"encoding/csv"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Context rule values recognized in the rule table. Any other value,
// including blank, behaves like ContextAlways.
const (
	ContextAlways         = "always"
	ContextPattern        = "pattern"
	ContextIfGenderFemale = "if_gender_female"
)

// MarkerPhrase identifies the pseudo-rule that enables the
// positive-without-evidence heuristic. It is matched case-insensitively
// against rule phrases and never scanned as a literal.
const MarkerPhrase = "positive without evidence"

// columns is the expected lexicon schema, in order.
var columns = []string{"phrase", "category", "context_rule", "tip"}

// Rule is one normalized row of the bias-rule table.
type Rule struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category"`
	Context  string `json:"context_rule"`
	Tip      string `json:"tip"`

	// Pattern is the compiled case-insensitive regexp for ContextPattern
	// rules, nil for everything else. Compilation happens at load time so a
	// bad row can never fail a scan.
	Pattern *regexp.Regexp `json:"-"`
}

// IsMarker reports whether the rule is the positive-without-evidence
// pseudo-rule.
func (r Rule) IsMarker() bool {
	return strings.EqualFold(strings.TrimSpace(r.Phrase), MarkerPhrase)
}

// RejectedRule describes a row dropped during load, with the line number of
// the row within the data section (1 = first row after the header).
type RejectedRule struct {
	Line   int    `json:"line"`
	Phrase string `json:"phrase"`
	Reason string `json:"reason"`
}

// Lexicon is the loaded rule table. Rules keep file order; Rejected lists
// rows that failed validation at load time.
type Lexicon struct {
	Rules    []Rule         `json:"rules"`
	Rejected []RejectedRule `json:"rejected"`
}

// Empty reports whether the lexicon holds no usable rules.
func (l *Lexicon) Empty() bool {
	return l == nil || len(l.Rules) == 0
}

// Marker returns the positive-without-evidence pseudo-rule, if present.
func (l *Lexicon) Marker() (Rule, bool) {
	for _, r := range l.Rules {
		if r.IsMarker() {
			return r, true
		}
	}
	return Rule{}, false
}

// Load reads the pipe-delimited rule table at path. It never fails hard: a
// missing file, an unparseable file, or a header that does not match the
// expected schema all degrade to an empty lexicon, and individual bad rows
// are reported via Rejected rather than aborting the load.
func Load(path string, logger *zap.Logger) *Lexicon {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Lexicon file missing or unreadable, using empty rule table",
			zap.String("path", path), zap.Error(err))
		return &Lexicon{}
	}
	rows := parseRows(raw)
	if rows == nil {
		logger.Warn("Lexicon file did not match the expected schema, using empty rule table",
			zap.String("path", path), zap.Strings("expected_columns", columns))
		return &Lexicon{}
	}

	lex := &Lexicon{}
	for i, fields := range rows {
		rule := Rule{
			Phrase:   strings.TrimSpace(field(fields, 0)),
			Category: strings.TrimSpace(field(fields, 1)),
			Context:  strings.ToLower(strings.TrimSpace(field(fields, 2))),
			Tip:      strings.TrimSpace(field(fields, 3)),
		}
		if rule.Phrase == "" {
			continue
		}
		if rule.Context == "" {
			rule.Context = ContextAlways
		}
		if rule.Context == ContextPattern && !rule.IsMarker() {
			re, err := regexp.Compile("(?i)" + rule.Phrase)
			if err != nil {
				lex.Rejected = append(lex.Rejected, RejectedRule{
					Line:   i + 1,
					Phrase: rule.Phrase,
					Reason: err.Error(),
				})
				logger.Warn("Skipping lexicon rule with invalid pattern",
					zap.String("phrase", rule.Phrase), zap.Error(err))
				continue
			}
			rule.Pattern = re
		}
		lex.Rules = append(lex.Rules, rule)
	}

	logger.Info("Lexicon loaded",
		zap.String("path", path),
		zap.Int("rules", len(lex.Rules)),
		zap.Int("rejected", len(lex.Rejected)))
	return lex
}

// parseRows extracts the data rows from the raw file. The primary parser is
// a CSV reader with '|' as the separator; if it errors out or collapses the
// header into a single column, each raw line is split on '|' manually. The
// manual path carries a strict column-count check on the header; a mismatch
// yields nil so the caller can degrade to an empty table.
func parseRows(raw []byte) [][]string {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = '|'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err == nil && len(records) > 0 && len(records[0]) == len(columns) {
		return records[1:]
	}

	var lines []string
	for _, ln := range strings.Split(string(raw), "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		lines = append(lines, ln)
	}
	if len(lines) == 0 {
		return nil
	}
	header := strings.Split(lines[0], "|")
	if len(header) != len(columns) {
		return nil
	}
	rows := make([][]string, 0, len(lines)-1)
	for _, ln := range lines[1:] {
		rows = append(rows, strings.Split(ln, "|"))
	}
	return rows
}

// field returns fields[i] or "" when the row is short, so every rule is
// normalized to the full four-column schema.
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
