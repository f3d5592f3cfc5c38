package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

type vocabularyLoader interface {
	Load(ctx context.Context, path string) (domain.Vocabulary, error)
}

// Service matches vocabulary files.
type Service struct {
	log    *slog.Logger
	loader vocabularyLoader
}

// NewService creates a match service.
func NewService(logger *slog.Logger, loader vocabularyLoader) *Service {
	return &Service{
		log:    logger.With("service", "match"),
		loader: loader,
	}
}

// MatchFiles loads both vocabularies and matches them. A file that cannot be
// loaded is returned as a *domain.FileError.
func (s *Service) MatchFiles(ctx context.Context, baselinePath, comparisonPath string, opts Options) (domain.Vocabulary, error) {
	if baselinePath == "" || comparisonPath == "" {
		return domain.Vocabulary{}, domain.NewValidationError("paths", "baseline and comparison are required")
	}

	baseline, err := s.loader.Load(ctx, baselinePath)
	if err != nil {
		s.log.WarnContext(ctx, "baseline load failed", "path", baselinePath, "error", err)
		return domain.Vocabulary{}, fmt.Errorf("match baseline: %w", &domain.FileError{Path: baselinePath, Err: err})
	}
	comparison, err := s.loader.Load(ctx, comparisonPath)
	if err != nil {
		s.log.WarnContext(ctx, "comparison load failed", "path", comparisonPath, "error", err)
		return domain.Vocabulary{}, fmt.Errorf("match comparison: %w", &domain.FileError{Path: comparisonPath, Err: err})
	}

	out := Match(baseline, comparison, opts)

	s.log.InfoContext(ctx, "vocabularies matched",
		"baseline", baseline.Size, "comparison", comparison.Size, "lemma", opts.Lemma, "result", out.Size)
	return out, nil
}
