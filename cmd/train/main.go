package main

import (
	"flag"
	"log"

	"elimuhub-agent/internal/nlp"
	"elimuhub-agent/pkg/config"
	"elimuhub-agent/pkg/logger"

	"go.uber.org/zap"
)

// Trains the intent classifier offline and writes the model artifact the
// serving process loads at startup.
func main() {
	corpusPath := flag.String("corpus", "", "YAML file with labeled training examples (defaults to the built-in seed corpus)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	path := *corpusPath
	if path == "" {
		path = cfg.Model.CorpusPath
	}

	var examples []nlp.TrainingExample
	if path != "" {
		examples, err = nlp.LoadCorpus(path)
		if err != nil {
			appLogger.Fatal("Failed to load training corpus", zap.Error(err))
		}
		appLogger.Info("Training corpus loaded", zap.String("path", path), zap.Int("examples", len(examples)))
	}

	classifier := nlp.NewIntentClassifier(cfg.Model.ArtifactPath, cfg.Model.MaxFeatures, appLogger)
	if err := classifier.Train(examples); err != nil {
		appLogger.Fatal("Training failed", zap.Error(err))
	}

	appLogger.Info("Intent classifier trained", zap.String("artifact", cfg.Model.ArtifactPath))
}
