package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL          string
	LLMModel            string
	LLMAPIKey           string
	EmbeddingBaseURL    string
	EmbeddingModel      string
	EmbeddingVectorSize int

	QdrantURL       string
	VectorStoreKind string // "qdrant" or "memory"

	DefaultCollection string
	ChunkSize         int
	ChunkOverlap      int
	TopK              int

	DBPath  string
	APIPort string

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent directory, it is
// loaded automatically; variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Walk up from the working directory looking for a .env at the project root.
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:        getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModel:          getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		LLMAPIKey:         getEnv("LLM_API_KEY", "dummy-key"),
		EmbeddingBaseURL:  getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "all-mpnet-base-v2"),
		QdrantURL:         getEnv("QDRANT_URL", "http://localhost:6333"),
		VectorStoreKind:   getEnv("VECTOR_STORE", "qdrant"),
		DefaultCollection: getEnv("DEFAULT_COLLECTION", "library"),
		DBPath:            getEnv("DB_PATH", "./data/lecturebot.db"),
		APIPort:           getEnv("API_PORT", "9000"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	// Must match the output dimension of the embedding model; if it changes,
	// existing collections have to be recreated.
	vectorSizeStr := getEnv("EMBEDDING_VECTOR_SIZE", "")
	if vectorSizeStr == "" {
		return nil, fmt.Errorf("EMBEDDING_VECTOR_SIZE is required")
	}
	vectorSize, err := strconv.Atoi(vectorSizeStr)
	if err != nil {
		return nil, fmt.Errorf("EMBEDDING_VECTOR_SIZE must be a valid integer: %w", err)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("EMBEDDING_VECTOR_SIZE must be greater than 0")
	}
	cfg.EmbeddingVectorSize = vectorSize

	cfg.ChunkSize, err = getEnvInt("CHUNK_SIZE", 3000)
	if err != nil {
		return nil, err
	}
	cfg.ChunkOverlap, err = getEnvInt("CHUNK_OVERLAP", 300)
	if err != nil {
		return nil, err
	}
	cfg.TopK, err = getEnvInt("TOP_K", 5)
	if err != nil {
		return nil, err
	}

	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("CHUNK_SIZE must be greater than 0")
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("CHUNK_OVERLAP must be in [0, CHUNK_SIZE)")
	}
	if cfg.TopK <= 0 {
		return nil, fmt.Errorf("TOP_K must be greater than 0")
	}

	switch cfg.VectorStoreKind {
	case "qdrant", "memory":
	default:
		return nil, fmt.Errorf("VECTOR_STORE must be \"qdrant\" or \"memory\", got %q", cfg.VectorStoreKind)
	}

	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	// Create the data directory for the sqlite registry if it doesn't exist.
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name to a slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL: %q", level)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}
