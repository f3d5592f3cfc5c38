package vocabset

import "github.com/heartmarshall/vocabkit/internal/domain"

// Difference returns copies of the words not present in any of lists,
// in input order.
func Difference(words []domain.Word, lists ...[]domain.Word) []domain.Word {
	return selectWords(words, union(lists), false)
}

// Intersect returns copies of the words present in at least one of lists,
// in input order.
func Intersect(words []domain.Word, lists ...[]domain.Word) []domain.Word {
	return selectWords(words, union(lists), true)
}

func union(lists [][]domain.Word) map[string]struct{} {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	set := make(map[string]struct{}, n)
	for _, l := range lists {
		for i := range l {
			set[l[i].Key()] = struct{}{}
		}
	}
	return set
}

func selectWords(words []domain.Word, set map[string]struct{}, keep bool) []domain.Word {
	out := make([]domain.Word, 0, len(words))
	for i := range words {
		if _, in := set[words[i].Key()]; in == keep {
			out = append(out, words[i].Clone())
		}
	}
	return out
}
