package wordfilter

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// Include collects, into a new list, every word matched by p in input
// order. Unlike Filter it starts empty, so with no predicate enabled the
// result is empty. With ReplaceToLemma the collected words are resolved in
// place inside that list, and only lemma records p matches are inserted.
func (s *Service) Include(ctx context.Context, words []domain.Word, p Predicates) ([]domain.Word, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.Word, 0)
	for i := range words {
		if p.Matches(words[i]) {
			out = append(out, words[i].Clone())
		}
	}

	if p.ReplaceToLemma && len(out) > 0 {
		var err error
		out, err = s.replace(ctx, out, p, p.Matches)
		if err != nil {
			return nil, fmt.Errorf("wordfilter.Include: %w", err)
		}
	}

	s.log.DebugContext(ctx, "words included", "input", len(words), "result", len(out))
	return out, nil
}
