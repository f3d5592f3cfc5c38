package preview

import (
	"context"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

func (s *Service) summarize(ctx context.Context, words []domain.Word, refs []Reference) ([]SummaryItem, []domain.FileError) {
	if len(refs) == 0 {
		return nil, nil
	}

	paths := make([]string, len(refs))
	for i, r := range refs {
		paths[i] = r.Path
	}
	results := s.loader.LoadMany(ctx, paths)

	items := make([]SummaryItem, len(refs))
	var failures []domain.FileError
	for i, r := range results {
		items[i].Name = refs[i].Name
		if r.Err != nil {
			items[i].Missing = true
			failures = append(failures, domain.FileError{Path: r.Path, Err: r.Err})
			continue
		}
		items[i] = Summarize(refs[i].Name, words, r.Vocabulary.WordList)
	}
	return items, failures
}

// Summarize counts how many of words appear in reference.
func Summarize(name string, words, reference []domain.Word) SummaryItem {
	item := SummaryItem{Name: name}
	if len(reference) == 0 {
		item.Missing = true
		return item
	}
	keys := domain.KeySet(reference)
	for i := range words {
		if _, ok := keys[words[i].Key()]; ok {
			item.Count++
		}
	}
	return item
}
