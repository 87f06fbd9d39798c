package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"lecturebot/internal/collection"
	"lecturebot/internal/config"
	"lecturebot/internal/extract"
	internalhttp "lecturebot/internal/http"
	"lecturebot/internal/ingest"
	"lecturebot/internal/llm"
	"lecturebot/internal/quiz"
	"lecturebot/internal/rag"
	"lecturebot/internal/service"
	"lecturebot/internal/storage"
	"lecturebot/internal/vectorstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Ingest registry initialized", "path", cfg.DBPath)

	var store vectorstore.VectorStore
	switch cfg.VectorStoreKind {
	case "memory":
		store = vectorstore.NewMemoryStore()
		slog.Info("Using in-memory vector store")
	default:
		qdrantStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		store = qdrantStore
		slog.Info("Using Qdrant vector store", "url", cfg.QdrantURL)
	}

	ctx := context.Background()

	manager, err := collection.NewManager(ctx, store, cfg.DefaultCollection, cfg.EmbeddingVectorSize)
	if err != nil {
		log.Fatalf("Failed to initialize collection manager: %v", err)
	}
	slog.Info("Collection manager initialized", "default", manager.DefaultName())

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModel, cfg.EmbeddingVectorSize)
	generator := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	pipeline := ingest.NewPipeline(embedder, store, cfg.ChunkSize, cfg.ChunkOverlap)
	engine := rag.NewEngine(embedder, store, generator, cfg.TopK)
	quizzer := quiz.NewGenerator(generator, store)
	docRepo := storage.NewDocumentRepo(db)

	bot := service.NewBot(manager, extract.New(), pipeline, engine, quizzer, quiz.NewQueue(), docRepo)

	router := internalhttp.NewRouter(&internalhttp.Deps{Bot: bot})

	addr := ":" + cfg.APIPort
	slog.Info("Starting server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
