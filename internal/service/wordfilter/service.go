// Package wordfilter removes or selects words by frequency rank and shape.
package wordfilter

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/lemma"
)

type lemmaResolver interface {
	Resolve(ctx context.Context, words []domain.Word, opts lemma.Options) ([]domain.Word, error)
}

// Service applies Predicates to word lists.
type Service struct {
	log      *slog.Logger
	resolver lemmaResolver
}

// NewService creates a wordfilter service. resolver may be nil when lemma
// replacement is never requested.
func NewService(logger *slog.Logger, resolver lemmaResolver) *Service {
	return &Service{
		log:      logger.With("service", "wordfilter"),
		resolver: resolver,
	}
}
