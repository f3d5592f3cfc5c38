// Package merge unions several vocabularies into one.
package merge

import (
	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/caption"
)

// Options controls Merge.
type Options struct {
	// Name of the resulting vocabulary.
	Name string
	// Sanitizer, when set, strips markup from captions as they are merged.
	Sanitizer *caption.Sanitizer
}

// Merge returns the union of the word lists of vocabs.
//
// Words are deduplicated by key; a word keeps the position of its first
// occurrence, iterating vocabularies in order and then each word list in
// order. Internal captions are converted to external captions tagged with
// their source vocabulary. Evidence from every occurrence is merged into the
// kept word up to caption.Limit entries, so later vocabularies may lose
// evidence to earlier ones. The inputs are not modified.
func Merge(vocabs []domain.Vocabulary, opts Options) domain.Vocabulary {
	total := 0
	for i := range vocabs {
		total += len(vocabs[i].WordList)
	}

	out := make([]domain.Word, 0, total)
	index := make(map[string]int, total)

	for i := range vocabs {
		src := caption.SourceOf(vocabs[i])
		for _, w := range vocabs[i].WordList {
			evidence := portable(w, src, opts.Sanitizer)

			key := w.Key()
			if pos, ok := index[key]; ok {
				caption.AppendExternal(&out[pos], evidence...)
				continue
			}

			nw := w.Clone()
			nw.Captions = nil
			nw.ExternalCaptions = nil
			caption.AppendExternal(&nw, evidence...)

			index[key] = len(out)
			out = append(out, nw)
		}
	}

	return domain.NewVocabulary(opts.Name, domain.VocabularyDocument, out)
}

// portable returns the word's external captions followed by its internal
// captions converted to external ones.
func portable(w domain.Word, src caption.Source, s *caption.Sanitizer) []domain.ExternalCaption {
	if w.EvidenceCount() == 0 {
		return nil
	}
	out := make([]domain.ExternalCaption, 0, w.EvidenceCount())
	for _, ec := range w.ExternalCaptions {
		out = append(out, s.CleanExternal(ec))
	}
	for _, c := range w.Captions {
		out = append(out, s.External(c, src))
	}
	return out
}
