package preview

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// SortWords orders words in place. The sort is stable; unranked words and
// words with rank 0 go last in the rank orders.
func SortWords(words []domain.Word, mode domain.SortMode) {
	switch mode {
	case domain.SortAlphabet:
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(words, func(a, b domain.Word) int {
			return c.CompareString(a.Value, b.Value)
		})
	case domain.SortBNC:
		slices.SortStableFunc(words, func(a, b domain.Word) int {
			return compareRank(a.BNC, b.BNC)
		})
	case domain.SortCOCA:
		slices.SortStableFunc(words, func(a, b domain.Word) int {
			return compareRank(a.FRQ, b.FRQ)
		})
	}
}

func compareRank(a, b *int) int {
	ra, oka := rankOf(a)
	rb, okb := rankOf(b)
	switch {
	case oka && okb:
		return cmp.Compare(ra, rb)
	case oka:
		return -1
	case okb:
		return 1
	}
	return 0
}

func rankOf(p *int) (int, bool) {
	if p == nil || *p <= 0 {
		return 0, false
	}
	return *p, true
}
