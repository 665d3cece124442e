package main

import (
	"os"

	"go.uber.org/zap"

	"fairlens/internal/config"
	"fairlens/internal/lexicon"
	"fairlens/internal/server"
	"fairlens/internal/store"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	if v := os.Getenv("FAIRLENS_CONFIG"); v != "" {
		cfgPath = v
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// The review store lives for the process lifetime; nothing is persisted.
	reviewStore := store.NewReviewStore(logger)
	if cfg.Reviews.Seed {
		reviewStore.Seed()
		logger.Info("Seeded starter reviews", zap.Int("count", reviewStore.Len()))
	}

	// Warm the lexicon cache so a missing rule table is visible at startup
	// instead of on the first audit request.
	lexCache := lexicon.NewCache(logger)
	if lex := lexCache.Get(cfg.Lexicon.Path); lex.Empty() {
		logger.Warn("Lexicon is empty; comment flagging will produce no matches",
			zap.String("path", cfg.Lexicon.Path))
	}

	// Initialize and run the server
	srv := server.NewServer(cfg, reviewStore, lexCache, logger)
	srv.Run(cfg.Server.Port)
}
