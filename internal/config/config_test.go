package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

// setRequired sets the minimal environment a successful Load needs, pointing
// the sqlite registry at a throwaway directory.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("EMBEDDING_VECTOR_SIZE", "768")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "lecturebot.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.EmbeddingVectorSize != 768 {
		t.Errorf("EmbeddingVectorSize = %d, want 768", cfg.EmbeddingVectorSize)
	}
	if cfg.ChunkSize != 3000 {
		t.Errorf("ChunkSize = %d, want 3000", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 300 {
		t.Errorf("ChunkOverlap = %d, want 300", cfg.ChunkOverlap)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.DefaultCollection != "library" {
		t.Errorf("DefaultCollection = %q, want library", cfg.DefaultCollection)
	}
	if cfg.VectorStoreKind != "qdrant" {
		t.Errorf("VectorStoreKind = %q, want qdrant", cfg.VectorStoreKind)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CHUNK_SIZE", "1000")
	t.Setenv("CHUNK_OVERLAP", "100")
	t.Setenv("TOP_K", "3")
	t.Setenv("VECTOR_STORE", "memory")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_COLLECTION", "course")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChunkSize != 1000 || cfg.ChunkOverlap != 100 || cfg.TopK != 3 {
		t.Errorf("chunking = (%d, %d, %d), want (1000, 100, 3)", cfg.ChunkSize, cfg.ChunkOverlap, cfg.TopK)
	}
	if cfg.VectorStoreKind != "memory" {
		t.Errorf("VectorStoreKind = %q, want memory", cfg.VectorStoreKind)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.DefaultCollection != "course" {
		t.Errorf("DefaultCollection = %q, want course", cfg.DefaultCollection)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing vector size",
			env:  map[string]string{"EMBEDDING_VECTOR_SIZE": ""},
		},
		{
			name: "non-numeric vector size",
			env:  map[string]string{"EMBEDDING_VECTOR_SIZE": "many"},
		},
		{
			name: "zero vector size",
			env:  map[string]string{"EMBEDDING_VECTOR_SIZE": "0"},
		},
		{
			name: "overlap equals chunk size",
			env:  map[string]string{"CHUNK_SIZE": "500", "CHUNK_OVERLAP": "500"},
		},
		{
			name: "negative overlap",
			env:  map[string]string{"CHUNK_OVERLAP": "-1"},
		},
		{
			name: "zero chunk size",
			env:  map[string]string{"CHUNK_SIZE": "0"},
		},
		{
			name: "zero top k",
			env:  map[string]string{"TOP_K": "0"},
		},
		{
			name: "unknown vector store",
			env:  map[string]string{"VECTOR_STORE": "postgres"},
		},
		{
			name: "unknown log level",
			env:  map[string]string{"LOG_LEVEL": "verbose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			if _, err := Load(); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "Error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseLogLevel(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLogLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
