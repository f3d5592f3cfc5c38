package lemma

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// Resolve returns a new list in which every word carrying a lemma in its
// exchange data is replaced by the dictionary record of that lemma.
//
// The lemma record takes the index of the first surface form that maps to
// it; later forms are dropped. A record is inserted only if no word with the
// same key is already in the list and opts.Admit accepts it. Lemmas the
// dictionary does not know leave their surface forms untouched. Captions and
// example sentences of all forms are carried over, at most caption.Limit each.
//
// words is never modified. On a dictionary error the error is returned and
// no result is produced.
func (r *Resolver) Resolve(ctx context.Context, words []domain.Word, opts Options) ([]domain.Word, error) {
	gs := newGroups()
	for i := range words {
		if lemma, ok := words[i].Lemma(); ok {
			gs.add(lemma, words[i], opts.BatchSource)
		}
	}
	if len(gs.order) == 0 {
		return domain.CloneWords(words), nil
	}

	lemmas := gs.lemmas()
	records, err := r.dict.QueryList(ctx, lemmas)
	if err != nil {
		r.log.ErrorContext(ctx, "lemma lookup failed", "lemmas", len(lemmas), "error", err)
		return nil, fmt.Errorf("lemma.Resolve: %w: %w", domain.ErrDictionary, err)
	}

	idx := indexRecords(records)
	resolved := make(map[string]domain.Word, len(records))
	for _, key := range gs.order {
		g := gs.byKey[key]
		rec, ok := idx.find(g.lemma)
		if !ok {
			continue
		}
		resolved[key] = g.apply(rec, opts.BatchSource)
	}

	replaced := func(w domain.Word) (domain.Word, bool) {
		lemma, ok := w.Lemma()
		if !ok {
			return domain.Word{}, false
		}
		rec, ok := resolved[domain.WordKey(lemma)]
		return rec, ok
	}

	present := make(map[string]struct{}, len(words))
	for i := range words {
		if _, ok := replaced(words[i]); !ok {
			present[words[i].Key()] = struct{}{}
		}
	}

	out := make([]domain.Word, 0, len(words))
	inserted := 0
	for i := range words {
		rec, ok := replaced(words[i])
		if !ok {
			out = append(out, words[i].Clone())
			continue
		}
		key := rec.Key()
		if _, exists := present[key]; exists {
			continue
		}
		if !opts.admit(rec) {
			continue
		}
		present[key] = struct{}{}
		out = append(out, rec.Clone())
		inserted++
	}

	r.log.DebugContext(ctx, "lemmas resolved",
		"words", len(words),
		"lemmas", len(lemmas),
		"found", len(resolved),
		"inserted", inserted,
		"result", len(out),
	)

	return out, nil
}

// recordIndex looks records up by exact value, then by identity key.
type recordIndex struct {
	exact map[string]domain.Word
	byKey map[string]domain.Word
}

func indexRecords(records []domain.Word) recordIndex {
	idx := recordIndex{
		exact: make(map[string]domain.Word, len(records)),
		byKey: make(map[string]domain.Word, len(records)),
	}
	for _, rec := range records {
		if _, ok := idx.exact[rec.Value]; !ok {
			idx.exact[rec.Value] = rec
		}
		if key := rec.Key(); key != "" {
			if _, ok := idx.byKey[key]; !ok {
				idx.byKey[key] = rec
			}
		}
	}
	return idx
}

func (idx recordIndex) find(lemma string) (domain.Word, bool) {
	if rec, ok := idx.exact[lemma]; ok {
		return rec, true
	}
	rec, ok := idx.byKey[domain.WordKey(lemma)]
	return rec, ok
}
