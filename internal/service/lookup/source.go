package lookup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

type ctxKey struct{}

// WithLoader stores l in the context.
func WithLoader(ctx context.Context, l *Loader) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the Loader stored in ctx, or nil.
func FromContext(ctx context.Context) *Loader {
	l, _ := ctx.Value(ctxKey{}).(*Loader)
	return l
}

// Source hands out short-lived Loaders over one dictionary. A Loader caches
// every answer it gives, so it must not outlive a single request.
type Source struct {
	log  *slog.Logger
	repo dictionaryRepo
	cfg  Config
}

// NewSource creates a Source over repo.
func NewSource(logger *slog.Logger, repo dictionaryRepo, cfg Config) *Source {
	return &Source{log: logger, repo: repo, cfg: cfg}
}

// NewLoader creates a Loader with an empty cache.
func (s *Source) NewLoader() *Loader {
	return NewLoader(s.log, s.repo, s.cfg)
}

// QueryList answers through the request's Loader when ctx carries one.
// Otherwise a fresh Loader serves this call only.
func (s *Source) QueryList(ctx context.Context, words []string) ([]domain.Word, error) {
	if l := FromContext(ctx); l != nil {
		return l.QueryList(ctx, words)
	}
	return s.NewLoader().QueryList(ctx, words)
}

// Middleware instantiates a Loader per request and stores it in the
// request context.
func (s *Source) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithLoader(r.Context(), s.NewLoader())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
