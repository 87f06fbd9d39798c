package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lecturebot/internal/handlers"
	"lecturebot/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Bot service.BotService
}

// NewRouter creates the HTTP router with all routes registered.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	uploadHandler := handlers.NewUploadHandler(deps.Bot)
	askHandler := handlers.NewAskHandler(deps.Bot)
	collectionsHandler := handlers.NewCollectionsHandler(deps.Bot)
	quizHandler := handlers.NewQuizHandler(deps.Bot)
	documentsHandler := handlers.NewDocumentsHandler(deps.Bot)
	healthHandler := handlers.NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/upload", uploadHandler)
		r.Method(http.MethodPost, "/ask", askHandler)

		r.Get("/collections", collectionsHandler.List)
		r.Delete("/collections/{name}", collectionsHandler.Delete)
		r.Get("/collection", collectionsHandler.Current)
		r.Post("/collection", collectionsHandler.Select)

		r.Post("/quiz/generate", quizHandler.Generate)
		r.Get("/quiz/next", quizHandler.Next)
		r.Post("/quiz/answer", quizHandler.Answer)
		r.Get("/quiz/score", quizHandler.Score)

		r.Method(http.MethodGet, "/documents", documentsHandler)
	})

	r.Method(http.MethodGet, "/health", healthHandler)

	return r
}
