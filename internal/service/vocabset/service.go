// Package vocabset computes differences and intersections between a working
// word list and the word lists of vocabulary files.
package vocabset

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

type vocabularyLoader interface {
	LoadMany(ctx context.Context, paths []string) []domain.LoadResult
}

// Result is a computed word list plus the files that could not be used.
type Result struct {
	Words    []domain.Word
	Failures []domain.FileError
}

// Service implements file-backed set operations.
type Service struct {
	log    *slog.Logger
	loader vocabularyLoader
}

// NewService creates a vocabset service.
func NewService(logger *slog.Logger, loader vocabularyLoader) *Service {
	return &Service{
		log:    logger.With("service", "vocabset"),
		loader: loader,
	}
}

// FilterSelect returns working minus every word found in the vocabularies at
// paths. Unreadable files are reported in Result.Failures and skipped.
func (s *Service) FilterSelect(ctx context.Context, working []domain.Word, paths []string) (Result, error) {
	lists, failures, err := s.load(ctx, paths)
	if err != nil {
		return Result{}, err
	}
	words := Difference(working, lists...)

	s.log.InfoContext(ctx, "filter select done",
		"input", len(working), "files", len(paths), "failed", len(failures), "result", len(words))
	return Result{Words: words, Failures: failures}, nil
}

// IncludeSelect returns the words of parsed found in at least one of the
// vocabularies at paths. Unreadable files are reported and skipped.
func (s *Service) IncludeSelect(ctx context.Context, parsed []domain.Word, paths []string) (Result, error) {
	lists, failures, err := s.load(ctx, paths)
	if err != nil {
		return Result{}, err
	}
	words := Intersect(parsed, lists...)

	s.log.InfoContext(ctx, "include select done",
		"input", len(parsed), "files", len(paths), "failed", len(failures), "result", len(words))
	return Result{Words: words, Failures: failures}, nil
}

func (s *Service) load(ctx context.Context, paths []string) ([][]domain.Word, []domain.FileError, error) {
	if len(paths) == 0 {
		return nil, nil, nil
	}
	vocabs, failures := domain.SplitLoaded(s.loader.LoadMany(ctx, paths))
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	for _, f := range failures {
		s.log.WarnContext(ctx, "vocabulary skipped", "path", f.Path, "error", f.Err)
	}

	lists := make([][]domain.Word, len(vocabs))
	for i := range vocabs {
		lists[i] = vocabs[i].WordList
	}
	return lists, failures, nil
}
