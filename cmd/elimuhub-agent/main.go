package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"elimuhub-agent/internal/api"
	"elimuhub-agent/internal/api/handlers"
	"elimuhub-agent/internal/knowledge"
	"elimuhub-agent/internal/nlp"
	"elimuhub-agent/internal/repository"
	"elimuhub-agent/internal/service"
	"elimuhub-agent/pkg/config"
	"elimuhub-agent/pkg/logger"
	"elimuhub-agent/pkg/session"
	"elimuhub-agent/pkg/sqlite"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Elimuhub AI agent")

	ctx := context.Background()

	// The interaction log is support tooling; a broken database must not
	// keep the assistant from answering.
	var interactionRepo *repository.InteractionRepository
	var knowledgeRepo *repository.KnowledgeRepository
	db, err := sqlite.Open(cfg.Database.Path, appLogger)
	if err != nil {
		appLogger.Warn("Database unavailable, interaction logging disabled", zap.Error(err))
	} else {
		defer db.Close()
		interactionRepo = repository.NewInteractionRepository(db, appLogger)
		if err := interactionRepo.InitSchema(ctx); err != nil {
			appLogger.Warn("Interaction logging disabled", zap.Error(err))
			interactionRepo = nil
		}
		knowledgeRepo = repository.NewKnowledgeRepository(db, appLogger)
	}

	store := loadKnowledge(ctx, cfg, knowledgeRepo, appLogger)

	classifier := nlp.NewIntentClassifier(cfg.Model.ArtifactPath, cfg.Model.MaxFeatures, appLogger)
	if err := classifier.EnsureReady(); err != nil {
		// Classify degrades per request; keep serving.
		appLogger.Warn("Intent classifier not ready", zap.Error(err))
	}

	matcher := nlp.NewMatcher()
	sessions := session.NewManager(cfg.Session.SecretKey, cfg.Session.Expiration)

	responseService := service.NewResponseService(classifier, store, matcher, &cfg.Similarity, appLogger)
	escalationService := service.NewEscalationService(&cfg.Escalation, appLogger)

	chatHandler := handlers.NewChatHandler(responseService, escalationService, sessions, interactionRepo, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(responseService, appLogger)

	app := api.SetupRouter(&cfg.Server, chatHandler, knowledgeHandler, sessions, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// loadKnowledge loads the aggregated JSON knowledge base, falling back to the
// seeded SQLite tables and finally to an empty store. Only a malformed
// aggregate is fatal.
func loadKnowledge(ctx context.Context, cfg *config.Config, knowledgeRepo *repository.KnowledgeRepository, appLogger *zap.Logger) *knowledge.Store {
	store, err := knowledge.LoadFile(cfg.Knowledge.AggregatePath)
	if err == nil {
		appLogger.Info("Knowledge base loaded", zap.String("path", cfg.Knowledge.AggregatePath))
		return store
	}
	if !errors.Is(err, os.ErrNotExist) {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}

	appLogger.Warn("Aggregated knowledge base not found; run the seed tool",
		zap.String("path", cfg.Knowledge.AggregatePath))
	if knowledgeRepo != nil {
		if agg, dbErr := knowledgeRepo.LoadAggregate(ctx); dbErr == nil {
			appLogger.Info("Knowledge base loaded from database")
			return knowledge.NewStore(agg)
		} else {
			appLogger.Warn("Failed to load knowledge base from database", zap.Error(dbErr))
		}
	}
	return knowledge.NewStore(nil)
}
