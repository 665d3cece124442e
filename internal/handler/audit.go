package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fairlens/internal/config"
	"fairlens/internal/fairness"
	"fairlens/internal/flagger"
	"fairlens/internal/lexicon"
	"fairlens/internal/models"
	"fairlens/internal/store"
)

type AuditHandler interface {
	GetFlags(c *gin.Context)
	GetFairness(c *gin.Context)
}

type auditHandler struct {
	store   store.ReviewStore
	lexicon *lexicon.Cache
	cfg     *config.Config
	logger  *zap.Logger
}

func NewAuditHandler(store store.ReviewStore, lexCache *lexicon.Cache, cfg *config.Config, logger *zap.Logger) AuditHandler {
	return &auditHandler{store: store, lexicon: lexCache, cfg: cfg, logger: logger}
}

// GetFlags handles GET /api/audit/flags. Flags are recomputed from the
// current store snapshot and lexicon on every call.
func (h *auditHandler) GetFlags(c *gin.Context) {
	lex := h.lexicon.Get(h.cfg.Lexicon.Path)

	flags := make([]models.Flag, 0)
	for _, r := range h.store.All() {
		for _, m := range flagger.FlagComment(r.Comment, lex) {
			flags = append(flags, models.Flag{
				EmployeeID: r.EmployeeID,
				Role:       r.Role,
				Gender:     r.Gender,
				Phrase:     m.Phrase,
				Category:   m.Category,
				Tip:        m.Tip,
			})
		}
	}

	resp := gin.H{
		"flags":          flags,
		"rule_count":     len(lex.Rules),
		"rejected_rules": lex.Rejected,
	}
	if lex.Empty() {
		resp["warning"] = "Lexicon missing or invalid. Expected pipe-separated columns: phrase|category|context_rule|tip."
	}
	c.JSON(http.StatusOK, resp)
}

// GetFairness handles GET /api/audit/fairness
// Query parameters:
// - by: grouping attribute, "gender" (default) or "role"
// - threshold: meets/exceeds threshold for the pass rate, 1..5
func (h *auditHandler) GetFairness(c *gin.Context) {
	groupBy := c.DefaultQuery("by", fairness.GroupByGender)
	if groupBy != fairness.GroupByGender && groupBy != fairness.GroupByRole {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grouping attribute. Valid values: gender, role"})
		return
	}

	thresholdStr := c.DefaultQuery("threshold", strconv.Itoa(h.cfg.Fairness.DefaultThreshold))
	threshold, err := strconv.Atoi(thresholdStr)
	if err != nil || threshold < 1 || threshold > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold. Expected an integer in [1,5]"})
		return
	}

	reviews := h.store.All()
	if len(reviews) < h.cfg.Fairness.MinSampleSize {
		c.JSON(http.StatusOK, gin.H{
			"status":   "not_enough_data",
			"message":  "Need at least 5 reviews to inspect group fairness meaningfully",
			"count":    len(reviews),
			"required": h.cfg.Fairness.MinSampleSize,
		})
		return
	}

	report, err := fairness.Aggregate(reviews, groupBy, threshold)
	if err != nil {
		h.logger.Error("Failed to aggregate fairness report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute fairness report"})
		return
	}

	resp := gin.H{"status": "ok", "report": report}
	if report.MeanGap == nil {
		resp["status"] = "not_enough_groups"
		resp["message"] = "Need at least 2 distinct groups for mean gap and AIR"
	}
	c.JSON(http.StatusOK, resp)
}
