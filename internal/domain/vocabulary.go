package domain

// DefaultLanguage is the language of vocabularies built by this module.
const DefaultLanguage = "english"

// Vocabulary is a named, ordered word list with no duplicate words.
type Vocabulary struct {
	Name             string
	Type             VocabularyType
	Language         string
	Size             int
	RelateVideoPath  string
	SubtitlesTrackID int
	WordList         []Word
}

// NewVocabulary builds a vocabulary and sets its size.
func NewVocabulary(name string, typ VocabularyType, words []Word) Vocabulary {
	v := Vocabulary{
		Name:     name,
		Type:     typ,
		Language: DefaultLanguage,
		WordList: words,
	}
	v.Resize()
	return v
}

// Resize syncs Size with the word list. Call it after every mutation.
func (v *Vocabulary) Resize() { v.Size = len(v.WordList) }

// Clone returns a deep copy.
func (v Vocabulary) Clone() Vocabulary {
	out := v
	out.WordList = CloneWords(v.WordList)
	return out
}

// KeySet returns the identity keys of every word in the list.
func KeySet(words []Word) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for i := range words {
		set[words[i].Key()] = struct{}{}
	}
	return set
}

// LoadResult is the outcome of loading one vocabulary file.
type LoadResult struct {
	Path       string
	Vocabulary Vocabulary
	Err        error
}

// SplitLoaded separates successful loads from failures, keeping order.
func SplitLoaded(results []LoadResult) ([]Vocabulary, []FileError) {
	var (
		vocabs   []Vocabulary
		failures []FileError
	)
	for _, r := range results {
		if r.Err != nil {
			failures = append(failures, FileError{Path: r.Path, Err: r.Err})
			continue
		}
		vocabs = append(vocabs, r.Vocabulary)
	}
	return vocabs, failures
}
