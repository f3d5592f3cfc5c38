// Package match intersects a comparison vocabulary with a baseline one.
package match

import (
	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/kljensen/snowball/english"
)

// Options controls Match.
type Options struct {
	// Lemma matches words by lemma instead of by value.
	Lemma bool
	// StemFallback compares English Snowball stems of the lemma keys, which
	// pairs words without exchange data with their lemma. Only used with
	// Lemma.
	StemFallback bool
}

// Match returns the words of comparison that also occur in baseline. The
// result takes its type, language, video path and track from comparison.
//
// By value, comparison order is kept. By lemma, comparison words are grouped
// by lemma in first-seen order and a whole group is taken when its lemma is
// also a baseline lemma, so one baseline lemma can pull in several surface
// forms. Words that match a baseline word by value are always taken, which
// makes the lemma result a superset of the value result.
func Match(baseline, comparison domain.Vocabulary, opts Options) domain.Vocabulary {
	var words []domain.Word
	if opts.Lemma {
		words = byLemma(baseline.WordList, comparison.WordList, opts.StemFallback)
	} else {
		words = byValue(baseline.WordList, comparison.WordList)
	}

	out := domain.Vocabulary{
		Name:             comparison.Name,
		Type:             comparison.Type,
		Language:         comparison.Language,
		RelateVideoPath:  comparison.RelateVideoPath,
		SubtitlesTrackID: comparison.SubtitlesTrackID,
		WordList:         words,
	}
	out.Resize()
	return out
}

func byValue(baseline, comparison []domain.Word) []domain.Word {
	keys := domain.KeySet(baseline)
	out := make([]domain.Word, 0)
	for i := range comparison {
		if _, ok := keys[comparison[i].Key()]; ok {
			out = append(out, comparison[i].Clone())
		}
	}
	return out
}

func byLemma(baseline, comparison []domain.Word, stem bool) []domain.Word {
	baseLemmas := make(map[string]struct{}, len(baseline))
	for i := range baseline {
		baseLemmas[LemmaKey(baseline[i], stem)] = struct{}{}
	}
	baseKeys := domain.KeySet(baseline)

	var order []string
	groups := make(map[string][]int)
	for i := range comparison {
		lk := LemmaKey(comparison[i], stem)
		if _, ok := groups[lk]; !ok {
			order = append(order, lk)
		}
		groups[lk] = append(groups[lk], i)
	}

	out := make([]domain.Word, 0)
	for _, lk := range order {
		_, whole := baseLemmas[lk]
		for _, i := range groups[lk] {
			if _, exact := baseKeys[comparison[i].Key()]; whole || exact {
				out = append(out, comparison[i].Clone())
			}
		}
	}
	return out
}

// LemmaKey is the key words are grouped by in lemma mode: the exchange
// lemma, else the value itself. When stem is set the key is reduced to its
// Snowball stem, lemmas included, so every lemma-mode match survives.
func LemmaKey(w domain.Word, stem bool) string {
	key := w.Key()
	if lemma, ok := w.Lemma(); ok {
		key = domain.WordKey(lemma)
	}
	if stem && key != "" {
		return english.Stem(key, true)
	}
	return key
}
