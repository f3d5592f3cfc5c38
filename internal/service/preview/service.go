// Package preview runs the full word-list pipeline behind a vocabulary
// preview: predicates, vocabulary set operations, manual removals, sorting
// and reference-list summary.
package preview

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/vocabset"
	"github.com/heartmarshall/vocabkit/internal/service/wordfilter"
)

type wordFilter interface {
	Filter(ctx context.Context, words []domain.Word, p wordfilter.Predicates) ([]domain.Word, error)
	Include(ctx context.Context, words []domain.Word, p wordfilter.Predicates) ([]domain.Word, error)
}

type vocabularySelector interface {
	FilterSelect(ctx context.Context, working []domain.Word, paths []string) (vocabset.Result, error)
	IncludeSelect(ctx context.Context, parsed []domain.Word, paths []string) (vocabset.Result, error)
}

type vocabularyLoader interface {
	LoadMany(ctx context.Context, paths []string) []domain.LoadResult
}

// Service builds previews.
type Service struct {
	log      *slog.Logger
	filter   wordFilter
	selector vocabularySelector
	loader   vocabularyLoader
}

// NewService creates a preview service.
func NewService(
	logger *slog.Logger,
	filter wordFilter,
	selector vocabularySelector,
	loader vocabularyLoader,
) *Service {
	return &Service{
		log:      logger.With("service", "preview"),
		filter:   filter,
		selector: selector,
		loader:   loader,
	}
}
