package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"elimuhub-agent/internal/knowledge"
	"elimuhub-agent/internal/repository"
	"elimuhub-agent/pkg/config"
	"elimuhub-agent/pkg/logger"
	"elimuhub-agent/pkg/sqlite"

	"go.uber.org/zap"
)

// Seeds the knowledge base: writes the aggregated JSON blob the serving
// process loads at startup and mirrors the records into SQLite.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	appLogger.Info("Seeding knowledge base")
	agg := knowledge.SampleAggregate()

	if err := writeAggregate(cfg.Knowledge.AggregatePath, agg); err != nil {
		appLogger.Fatal("Failed to write aggregated knowledge base", zap.Error(err))
	}
	appLogger.Info("Aggregated knowledge base written", zap.String("path", cfg.Knowledge.AggregatePath))

	db, err := sqlite.Open(cfg.Database.Path, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	if err := knowledgeRepo.InitSchema(ctx); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}
	if err := knowledgeRepo.ReplaceAll(ctx, agg); err != nil {
		appLogger.Fatal("Failed to seed database", zap.Error(err))
	}

	appLogger.Info("Knowledge base seeding completed")
}

func writeAggregate(path string, agg *knowledge.Aggregate) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
