package preview

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// Run executes the pipeline for req.
//
// Filter mode removes predicate matches (resolving lemmas when asked), then
// removes every word of the vocabulary files. Include mode keeps the words
// found in the vocabulary files followed by the predicate matches, without
// duplicates. With no predicate and no file the parsed list is used as is.
// Removed values are dropped last, then the list is sorted and summarized.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if req.RunID == "" {
		req.RunID = uuid.NewString()
	}
	log := s.log.With("run_id", req.RunID)

	failures := append([]domain.FileError(nil), req.ParseFailures...)

	var (
		words []domain.Word
		err   error
	)
	switch req.Mode {
	case domain.SelectInclude:
		words, failures, err = s.include(ctx, req, failures)
	default:
		words, failures, err = s.filterOut(ctx, req, failures)
	}
	if err != nil {
		log.ErrorContext(ctx, "preview failed", "mode", req.Mode, "error", err)
		return Result{}, fmt.Errorf("preview.Run: %w", err)
	}

	words = withoutRemoved(words, req.Removed)
	SortWords(words, req.Sort)

	summary, refFailures := s.summarize(ctx, words, req.References)
	failures = append(failures, refFailures...)

	log.InfoContext(ctx, "preview built",
		"mode", req.Mode,
		"parsed", len(req.Parsed),
		"result", len(words),
		"failures", len(failures),
	)

	return Result{
		RunID:    req.RunID,
		Words:    words,
		Summary:  summary,
		Failures: failures,
	}, nil
}

func (s *Service) filterOut(ctx context.Context, req Request, failures []domain.FileError) ([]domain.Word, []domain.FileError, error) {
	p := req.Predicates
	words := domain.CloneWords(req.Parsed)

	if p.Enabled() || p.ReplaceToLemma {
		var err error
		words, err = s.filter.Filter(ctx, words, p)
		if err != nil {
			return nil, nil, err
		}
	}

	if len(req.VocabularyFiles) > 0 {
		res, err := s.selector.FilterSelect(ctx, words, req.VocabularyFiles)
		if err != nil {
			return nil, nil, err
		}
		words = res.Words
		failures = append(failures, res.Failures...)
	}

	return words, failures, nil
}

func (s *Service) include(ctx context.Context, req Request, failures []domain.FileError) ([]domain.Word, []domain.FileError, error) {
	p := req.Predicates
	if !p.Enabled() && len(req.VocabularyFiles) == 0 {
		return domain.CloneWords(req.Parsed), failures, nil
	}

	var fromFiles, fromPredicates []domain.Word
	if len(req.VocabularyFiles) > 0 {
		res, err := s.selector.IncludeSelect(ctx, req.Parsed, req.VocabularyFiles)
		if err != nil {
			return nil, nil, err
		}
		fromFiles = res.Words
		failures = append(failures, res.Failures...)
	}
	if p.Enabled() {
		var err error
		fromPredicates, err = s.filter.Include(ctx, req.Parsed, p)
		if err != nil {
			return nil, nil, err
		}
	}

	return unionByKey(fromFiles, fromPredicates), failures, nil
}

func unionByKey(lists ...[]domain.Word) []domain.Word {
	var out []domain.Word
	seen := make(map[string]struct{})
	for _, l := range lists {
		for i := range l {
			key := l[i].Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, l[i])
		}
	}
	if out == nil {
		out = []domain.Word{}
	}
	return out
}

func withoutRemoved(words []domain.Word, removed []string) []domain.Word {
	if len(removed) == 0 {
		return words
	}
	drop := make(map[string]struct{}, len(removed))
	for _, v := range removed {
		drop[domain.WordKey(v)] = struct{}{}
	}
	out := words[:0]
	for _, w := range words {
		if _, ok := drop[w.Key()]; !ok {
			out = append(out, w)
		}
	}
	return out
}
