package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Knowledge  KnowledgeConfig
	Model      ModelConfig
	Similarity SimilarityConfig
	Escalation EscalationConfig
	Session    SessionConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path string
}

type KnowledgeConfig struct {
	AggregatePath string
}

type ModelConfig struct {
	ArtifactPath string
	MaxFeatures  int
	CorpusPath   string
}

type SimilarityConfig struct {
	TopK      int
	Threshold float64
}

type EscalationConfig struct {
	ConfidenceThreshold float64
	TurnThreshold       int
	SupportEmail        string
	SupportPhone        string
}

type SessionConfig struct {
	SecretKey  string
	Expiration time.Duration
}

func Load() (*Config, error) {
	// Try to load .env from the current directory or the project root;
	// plain environment variables also work (Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	maxFeatures, _ := strconv.Atoi(getEnv("MODEL_MAX_FEATURES", "1000"))
	similarityTopK, _ := strconv.Atoi(getEnv("SIMILARITY_TOP_K", "3"))
	similarityThreshold, _ := strconv.ParseFloat(getEnv("SIMILARITY_THRESHOLD", "0.7"), 64)
	confidenceThreshold, _ := strconv.ParseFloat(getEnv("ESCALATION_CONFIDENCE_THRESHOLD", "0.5"), 64)
	turnThreshold, _ := strconv.Atoi(getEnv("ESCALATION_TURN_THRESHOLD", "3"))
	sessionExp, _ := strconv.Atoi(getEnv("SESSION_EXPIRATION_HOURS", "24"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "data/knowledge_base.db"),
		},
		Knowledge: KnowledgeConfig{
			AggregatePath: getEnv("KB_AGGREGATE_PATH", "data/knowledge_base_aggregated.json"),
		},
		Model: ModelConfig{
			ArtifactPath: getEnv("MODEL_ARTIFACT_PATH", "models/intent_classifier.gob"),
			MaxFeatures:  maxFeatures,
			CorpusPath:   getEnv("MODEL_CORPUS_PATH", ""),
		},
		Similarity: SimilarityConfig{
			TopK:      similarityTopK,
			Threshold: similarityThreshold,
		},
		Escalation: EscalationConfig{
			ConfidenceThreshold: confidenceThreshold,
			TurnThreshold:       turnThreshold,
			SupportEmail:        getEnv("SUPPORT_EMAIL", "support@elimuhub.com"),
			SupportPhone:        getEnv("SUPPORT_PHONE", "+254700000000"),
		},
		Session: SessionConfig{
			SecretKey:  getEnv("SESSION_SECRET_KEY", "elimuhub-secret-key-change-in-production"),
			Expiration: time.Duration(sessionExp) * time.Hour,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
