package merge

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// MinFiles is the smallest number of files MergeFiles accepts.
const MinFiles = 2

type vocabularyLoader interface {
	LoadMany(ctx context.Context, paths []string) []domain.LoadResult
}

// Result is a merged vocabulary plus the files that could not be merged.
type Result struct {
	Vocabulary domain.Vocabulary
	Failures   []domain.FileError
}

// Service merges vocabulary files.
type Service struct {
	log    *slog.Logger
	loader vocabularyLoader
}

// NewService creates a merge service.
func NewService(logger *slog.Logger, loader vocabularyLoader) *Service {
	return &Service{
		log:    logger.With("service", "merge"),
		loader: loader,
	}
}

// MergeFiles loads the vocabularies at paths and merges the readable ones in
// path order. Unreadable files are reported in Result.Failures.
func (s *Service) MergeFiles(ctx context.Context, paths []string, opts Options) (Result, error) {
	if len(paths) < MinFiles {
		return Result{}, domain.NewValidationError("paths", "at least two vocabularies are required")
	}

	vocabs, failures := domain.SplitLoaded(s.loader.LoadMany(ctx, paths))
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	for _, f := range failures {
		s.log.WarnContext(ctx, "vocabulary skipped", "path", f.Path, "error", f.Err)
	}

	merged := Merge(vocabs, opts)

	s.log.InfoContext(ctx, "vocabularies merged",
		"files", len(paths), "failed", len(failures), "size", merged.Size)
	return Result{Vocabulary: merged, Failures: failures}, nil
}
