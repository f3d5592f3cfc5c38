package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/vocabkit/internal/transport/middleware"
)

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Words      *WordHandler
	Preview    *PreviewHandler
	Vocabulary *VocabularyHandler
	// Lookup scopes dictionary lookups to one request. Optional.
	Lookup     middleware.Middleware
}

// NewRouter builds the HTTP routes. maxBody caps request bodies; zero
// disables the cap.
func NewRouter(logger *slog.Logger, h Handlers, maxBody int64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.BodyLimit(maxBody),
	))
	r.Use(chimw.CleanPath)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		if h.Lookup != nil {
			r.Use(h.Lookup)
		}
		r.Post("/words/filter", h.Words.Filter)
		r.Post("/words/include", h.Words.Include)
		r.Post("/preview", h.Preview.Run)
		r.Post("/vocabularies/merge", h.Vocabulary.Merge)
		r.Post("/vocabularies/match", h.Vocabulary.Match)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
