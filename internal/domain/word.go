package domain

import "strings"

// Caption is a timestamped snippet from the vocabulary's own subtitle source.
type Caption struct {
	Start   string
	End     string
	Content string
}

// ExternalCaption is a caption that remembers which source it came from, so it
// stays meaningful after the word moves to another vocabulary.
type ExternalCaption struct {
	RelateVideoPath  string
	SubtitlesTrackID int
	SubtitlesName    string
	Start            string
	End              string
	Content          string
}

// Word is a vocabulary entry. Value identifies the word inside a vocabulary;
// see WordKey for how values are compared.
type Word struct {
	Value       string
	USPhone     string
	UKPhone     string
	Definition  string
	Translation string
	// POS carries newline-joined example sentences.
	POS              string
	Collins          int
	Oxford           bool
	Tag              string
	BNC              *int
	FRQ              *int
	Exchange         Exchange
	ExternalCaptions []ExternalCaption
	Captions         []Caption
}

// NewWord returns a word with only its value set.
func NewWord(value string) Word {
	return Word{Value: value}
}

// Key is the identity key of the word.
func (w Word) Key() string { return WordKey(w.Value) }

// Lemma returns the base form from the word's exchange data.
func (w Word) Lemma() (string, bool) { return w.Exchange.Lemma() }

// LemmaOrValue returns the lemma when known, the value otherwise.
func (w Word) LemmaOrValue() string {
	if lemma, ok := w.Lemma(); ok {
		return lemma
	}
	return w.Value
}

// EvidenceCount is the number of captions of both kinds carried by the word.
func (w Word) EvidenceCount() int {
	return len(w.Captions) + len(w.ExternalCaptions)
}

// Sentences splits POS into its non-empty example sentences.
func (w Word) Sentences() []string {
	if w.POS == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(w.POS, "\n") {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a deep copy that shares no mutable state with w.
func (w Word) Clone() Word {
	out := w
	out.BNC = cloneInt(w.BNC)
	out.FRQ = cloneInt(w.FRQ)
	out.Exchange = w.Exchange.Clone()
	if w.Captions != nil {
		out.Captions = append([]Caption(nil), w.Captions...)
	}
	if w.ExternalCaptions != nil {
		out.ExternalCaptions = append([]ExternalCaption(nil), w.ExternalCaptions...)
	}
	return out
}

// CloneWords deep-copies a word list.
func CloneWords(words []Word) []Word {
	if words == nil {
		return nil
	}
	out := make([]Word, len(words))
	for i := range words {
		out[i] = words[i].Clone()
	}
	return out
}

// Rank returns a pointer to n, for building words with frequency ranks.
func Rank(n int) *int { return &n }

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
