package wordfilter

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/lemma"
)

// Filter returns words minus every word matched by p, in input order. With
// ReplaceToLemma the remaining words are then resolved to their lemmas; a
// lemma record that p would match is not inserted.
func (s *Service) Filter(ctx context.Context, words []domain.Word, p Predicates) ([]domain.Word, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.Word, 0, len(words))
	for i := range words {
		if p.Matches(words[i]) {
			continue
		}
		out = append(out, words[i].Clone())
	}

	if p.ReplaceToLemma {
		var err error
		out, err = s.replace(ctx, out, p, func(w domain.Word) bool { return !p.Matches(w) })
		if err != nil {
			return nil, fmt.Errorf("wordfilter.Filter: %w", err)
		}
	}

	s.log.DebugContext(ctx, "words filtered", "input", len(words), "result", len(out))
	return out, nil
}

func (s *Service) replace(ctx context.Context, words []domain.Word, p Predicates, admit func(domain.Word) bool) ([]domain.Word, error) {
	if s.resolver == nil {
		return nil, domain.NewValidationError("replace_to_lemma", "no dictionary configured")
	}
	return s.resolver.Resolve(ctx, words, lemma.Options{
		BatchSource: p.BatchSource,
		Admit:       admit,
	})
}
