package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fairlens/internal/config"
	"fairlens/internal/handler"
	"fairlens/internal/lexicon"
	"fairlens/internal/store"
)

type Server struct {
	router  *gin.Engine
	store   store.ReviewStore
	lexicon *lexicon.Cache
	cfg     *config.Config
	logger  *zap.Logger
}

func NewServer(cfg *config.Config, reviewStore store.ReviewStore, lexCache *lexicon.Cache, logger *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router:  router,
		store:   reviewStore,
		lexicon: lexCache,
		cfg:     cfg,
		logger:  logger,
	}

	// Setup routes
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	reviewHandler := handler.NewReviewHandler(s.store, s.logger)
	auditHandler := handler.NewAuditHandler(s.store, s.lexicon, s.cfg, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := s.router.Group("/api")
	{
		api.POST("/reviews", reviewHandler.SubmitReview)
		api.GET("/reviews", reviewHandler.ListReviews)
		api.GET("/reviews/export", reviewHandler.ExportReviews)
		api.POST("/reviews/import", reviewHandler.ImportReviews)

		api.GET("/audit/flags", auditHandler.GetFlags)
		api.GET("/audit/fairness", auditHandler.GetFairness)

		api.GET("/governance", handler.GetGovernance)
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
