package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RulesVersion identifies the shipped lexicon revision.
const RulesVersion = "v1.1-lexicon-60"

// GetGovernance handles GET /api/governance with the static governance
// notice shown alongside the export.
func GetGovernance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"principles": []string{
			"No PII: use anonymized employee IDs only.",
			"Aggregation-first: group metrics only when n >= 5.",
			"Retention: session-based; no server storage. Export locally if needed.",
			"Explainability: rule-based flags are transparent and editable via the lexicon file.",
			"Compliance touchpoints (demo): Title VII principles; AIR (4/5ths) as a rule-of-thumb.",
		},
		"air_rule_of_thumb": 0.80,
		"min_sample_size":   5,
		"rules_version":     RulesVersion,
	})
}
