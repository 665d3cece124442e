package flagger

import (
	"strings"

	"fairlens/internal/lexicon"
)

// PositiveWithoutEvidenceLabel is the canonical phrase label emitted when
// the heuristic fires. The lexicon stores the marker as a plain phrase; the
// flag uses this hyphenated form.
const PositiveWithoutEvidenceLabel = "positive-without-evidence"

// positiveWords and behaviorVerbs drive the positive-without-evidence
// heuristic: a comment carrying praise but no concrete action verb is
// considered vague. Containment is plain substring, matching the rule scan.
var positiveWords = []string{
	"good", "great", "improved", "improving", "excellent", "amazing",
	"nice", "pleasant", "awesome",
}

var behaviorVerbs = []string{
	"completed", "delivered", "reduced", "increased", "launched", "led",
	"designed", "documented", "resolved", "trained", "implemented",
	"created", "shipped", "debugged", "wrote", "analyzed", "interviewed",
}

// Match is one rule hit against a comment.
type Match struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category"`
	Tip      string `json:"tip"`
}

// FlagComment scans one free-text comment against the lexicon and returns
// all matches in a stable order: the positive-without-evidence heuristic
// first (when the lexicon carries the marker rule and the heuristic fires),
// then lexicon rules in file order. Pure function; no deduplication beyond
// skipping the marker rule during the literal scan.
func FlagComment(text string, lex *lexicon.Lexicon) []Match {
	if lex.Empty() {
		return nil
	}
	lower := strings.ToLower(text)
	var out []Match

	if marker, ok := lex.Marker(); ok && PositiveWithoutEvidence(text) {
		out = append(out, Match{
			Phrase:   PositiveWithoutEvidenceLabel,
			Category: marker.Category,
			Tip:      marker.Tip,
		})
	}

	for _, rule := range lex.Rules {
		if rule.IsMarker() {
			continue
		}
		matched := false
		if rule.Context == lexicon.ContextPattern {
			matched = rule.Pattern != nil && rule.Pattern.MatchString(text)
		} else {
			matched = strings.Contains(lower, strings.ToLower(rule.Phrase))
		}
		if matched {
			out = append(out, Match{Phrase: rule.Phrase, Category: rule.Category, Tip: rule.Tip})
		}
	}
	return out
}

// PositiveWithoutEvidence reports whether the comment contains at least one
// positive-sentiment word and none of the behavior-evidence verbs.
func PositiveWithoutEvidence(text string) bool {
	lower := strings.ToLower(text)
	positive := false
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive = true
			break
		}
	}
	if !positive {
		return false
	}
	for _, v := range behaviorVerbs {
		if strings.Contains(lower, v) {
			return false
		}
	}
	return true
}
