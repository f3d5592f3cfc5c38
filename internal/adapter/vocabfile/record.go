package vocabfile

import (
	"github.com/heartmarshall/vocabkit/internal/domain"
)

// VocabularyRecord is the on-disk shape of a vocabulary.
type VocabularyRecord struct {
	Name             string       `json:"name" yaml:"name"`
	Type             string       `json:"type" yaml:"type"`
	Language         string       `json:"language" yaml:"language"`
	Size             int          `json:"size" yaml:"size"`
	RelateVideoPath  string       `json:"relateVideoPath" yaml:"relateVideoPath"`
	SubtitlesTrackID int          `json:"subtitlesTrackId" yaml:"subtitlesTrackId"`
	WordList         []WordRecord `json:"wordList" yaml:"wordList"`
}

// WordRecord is the on-disk shape of a word.
type WordRecord struct {
	Value            string                  `json:"value" yaml:"value"`
	USPhone          string                  `json:"usphone" yaml:"usphone"`
	UKPhone          string                  `json:"ukphone" yaml:"ukphone"`
	Definition       string                  `json:"definition" yaml:"definition"`
	Translation      string                  `json:"translation" yaml:"translation"`
	POS              string                  `json:"pos" yaml:"pos"`
	Collins          int                     `json:"collins" yaml:"collins"`
	Oxford           bool                    `json:"oxford" yaml:"oxford"`
	Tag              string                  `json:"tag" yaml:"tag"`
	BNC              *int                    `json:"bnc" yaml:"bnc"`
	FRQ              *int                    `json:"frq" yaml:"frq"`
	Exchange         string                  `json:"exchange" yaml:"exchange"`
	ExternalCaptions []ExternalCaptionRecord `json:"externalCaptions" yaml:"externalCaptions"`
	Captions         []CaptionRecord         `json:"captions" yaml:"captions"`
	// Links is the pre-externalCaptions name of the same list. Read only.
	Links []ExternalCaptionRecord `json:"links,omitempty" yaml:"links,omitempty"`
}

type CaptionRecord struct {
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Content string `json:"content" yaml:"content"`
}

type ExternalCaptionRecord struct {
	RelateVideoPath  string `json:"relateVideoPath" yaml:"relateVideoPath"`
	SubtitlesTrackID int    `json:"subtitlesTrackId" yaml:"subtitlesTrackId"`
	SubtitlesName    string `json:"subtitlesName" yaml:"subtitlesName"`
	Start            string `json:"start" yaml:"start"`
	End              string `json:"end" yaml:"end"`
	Content          string `json:"content" yaml:"content"`
}

// ---------------------------------------------------------------------------
// domain -> record
// ---------------------------------------------------------------------------

// FromVocabulary converts a vocabulary to its record form.
func FromVocabulary(v domain.Vocabulary) VocabularyRecord {
	return VocabularyRecord{
		Name:             v.Name,
		Type:             string(v.Type),
		Language:         v.Language,
		Size:             len(v.WordList),
		RelateVideoPath:  v.RelateVideoPath,
		SubtitlesTrackID: v.SubtitlesTrackID,
		WordList:         FromWords(v.WordList),
	}
}

// FromWords converts words to records. A nil list becomes an empty one.
func FromWords(words []domain.Word) []WordRecord {
	out := make([]WordRecord, len(words))
	for i, w := range words {
		out[i] = FromWord(w)
	}
	return out
}

func FromWord(w domain.Word) WordRecord {
	rec := WordRecord{
		Value:            w.Value,
		USPhone:          w.USPhone,
		UKPhone:          w.UKPhone,
		Definition:       w.Definition,
		Translation:      w.Translation,
		POS:              w.POS,
		Collins:          w.Collins,
		Oxford:           w.Oxford,
		Tag:              w.Tag,
		BNC:              w.BNC,
		FRQ:              w.FRQ,
		Exchange:         w.Exchange.String(),
		Captions:         make([]CaptionRecord, len(w.Captions)),
		ExternalCaptions: make([]ExternalCaptionRecord, len(w.ExternalCaptions)),
	}
	for i, c := range w.Captions {
		rec.Captions[i] = CaptionRecord(c)
	}
	for i, c := range w.ExternalCaptions {
		rec.ExternalCaptions[i] = ExternalCaptionRecord(c)
	}
	return rec
}

// ---------------------------------------------------------------------------
// record -> domain
// ---------------------------------------------------------------------------

// ToVocabulary converts a record to a vocabulary. A missing type defaults to
// DOCUMENT; an unknown one is rejected.
func ToVocabulary(rec VocabularyRecord) (domain.Vocabulary, error) {
	typ := domain.VocabularyType(rec.Type)
	if rec.Type == "" {
		typ = domain.VocabularyDocument
	}
	if !typ.IsValid() {
		return domain.Vocabulary{}, domain.NewValidationError("type", "unknown vocabulary type "+rec.Type)
	}

	v := domain.Vocabulary{
		Name:             rec.Name,
		Type:             typ,
		Language:         rec.Language,
		RelateVideoPath:  rec.RelateVideoPath,
		SubtitlesTrackID: rec.SubtitlesTrackID,
		WordList:         ToWords(rec.WordList),
	}
	v.Resize()
	return v, nil
}

func ToWords(recs []WordRecord) []domain.Word {
	out := make([]domain.Word, len(recs))
	for i, r := range recs {
		out[i] = ToWord(r)
	}
	return out
}

func ToWord(r WordRecord) domain.Word {
	w := domain.Word{
		Value:       r.Value,
		USPhone:     r.USPhone,
		UKPhone:     r.UKPhone,
		Definition:  r.Definition,
		Translation: r.Translation,
		POS:         r.POS,
		Collins:     r.Collins,
		Oxford:      r.Oxford,
		Tag:         r.Tag,
		BNC:         r.BNC,
		FRQ:         r.FRQ,
		Exchange:    domain.ParseExchange(r.Exchange),
	}
	if len(r.Captions) > 0 {
		w.Captions = make([]domain.Caption, len(r.Captions))
		for i, c := range r.Captions {
			w.Captions[i] = domain.Caption(c)
		}
	}
	external := r.ExternalCaptions
	if len(external) == 0 {
		external = r.Links
	}
	if len(external) > 0 {
		w.ExternalCaptions = make([]domain.ExternalCaption, len(external))
		for i, c := range external {
			w.ExternalCaptions[i] = domain.ExternalCaption(c)
		}
	}
	return w
}
