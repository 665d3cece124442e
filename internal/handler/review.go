package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fairlens/internal/export"
	"fairlens/internal/models"
	"fairlens/internal/store"
)

type ReviewHandler interface {
	SubmitReview(c *gin.Context)
	ListReviews(c *gin.Context)
	ExportReviews(c *gin.Context)
	ImportReviews(c *gin.Context)
}

type reviewHandler struct {
	store  store.ReviewStore
	logger *zap.Logger
}

func NewReviewHandler(store store.ReviewStore, logger *zap.Logger) ReviewHandler {
	return &reviewHandler{store: store, logger: logger}
}

// SubmitReviewRequest mirrors the submission form: role and gender are
// constrained to their enum values and ratings to the 1..5 slider range, the
// same constraints the original input widgets enforce.
type SubmitReviewRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required"`
	Role             string `json:"role" binding:"required,oneof=Manager Analyst Engineer"`
	Gender           string `json:"gender" binding:"required,oneof=F M"`
	KPIRating        int    `json:"kpi_rating" binding:"required,min=1,max=5"`
	CompetencyRating int    `json:"competency_rating" binding:"required,min=1,max=5"`
	InitiativeRating int    `json:"initiative_rating" binding:"required,min=1,max=5"`
	OverallRating    int    `json:"overall_rating" binding:"required,min=1,max=5"`
	Comment          string `json:"comment"`
}

// SubmitReview handles POST /api/reviews
func (h *reviewHandler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid review submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter an anonymized employee ID"})
		return
	}

	saved := h.store.Append(models.Review{
		EmployeeID:       employeeID,
		Role:             req.Role,
		Gender:           req.Gender,
		KPIRating:        req.KPIRating,
		CompetencyRating: req.CompetencyRating,
		InitiativeRating: req.InitiativeRating,
		OverallRating:    req.OverallRating,
		Comment:          strings.TrimSpace(req.Comment),
	})
	c.JSON(http.StatusCreated, gin.H{"review": saved})
}

// ListReviews handles GET /api/reviews
func (h *reviewHandler) ListReviews(c *gin.Context) {
	reviews := h.store.All()
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

// ExportReviews handles GET /api/reviews/export and serves the full session
// table as a CSV download.
func (h *reviewHandler) ExportReviews(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="reviews_export.csv"`)
	if err := export.WriteReviews(c.Writer, h.store.All()); err != nil {
		h.logger.Error("Failed to export reviews", zap.Error(err))
	}
}

// ImportReviews handles POST /api/reviews/import with a CSV body in the
// export format. Bad rows are skipped per row, never failing the whole
// upload.
func (h *reviewHandler) ImportReviews(c *gin.Context) {
	reviews, skipped, err := export.ParseReviews(c.Request.Body)
	if err != nil {
		h.logger.Warn("Failed to parse review CSV", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, r := range reviews {
		h.store.Append(r)
	}
	c.JSON(http.StatusOK, gin.H{"imported": len(reviews), "skipped": skipped})
}
