// Package caption keeps the evidence attached to a word bounded.
//
// A word never carries more than Limit captions, internal and external
// combined. Appends are first-come-first-kept: once the cap is reached,
// later entries are dropped regardless of their content.
package caption

import "github.com/heartmarshall/vocabkit/internal/domain"

// Limit is the maximum number of captions of both kinds per word.
const Limit = 3

// Room reports how many more captions w can take.
func Room(w domain.Word) int {
	if n := Limit - w.EvidenceCount(); n > 0 {
		return n
	}
	return 0
}

// AppendCaptions adds internal captions to w while room remains and returns
// how many were added.
func AppendCaptions(w *domain.Word, captions ...domain.Caption) int {
	n := min(Room(*w), len(captions))
	if n == 0 {
		return 0
	}
	w.Captions = append(w.Captions, captions[:n]...)
	return n
}

// AppendExternal adds external captions to w while room remains and returns
// how many were added.
func AppendExternal(w *domain.Word, captions ...domain.ExternalCaption) int {
	n := min(Room(*w), len(captions))
	if n == 0 {
		return 0
	}
	w.ExternalCaptions = append(w.ExternalCaptions, captions[:n]...)
	return n
}

// Source identifies the vocabulary internal captions were taken from.
type Source struct {
	Name             string
	RelateVideoPath  string
	SubtitlesTrackID int
}

// SourceOf describes v as a caption source.
func SourceOf(v domain.Vocabulary) Source {
	return Source{
		Name:             v.Name,
		RelateVideoPath:  v.RelateVideoPath,
		SubtitlesTrackID: v.SubtitlesTrackID,
	}
}

// ToExternal converts an internal caption into a portable one tagged with
// its source.
func ToExternal(c domain.Caption, src Source) domain.ExternalCaption {
	return domain.ExternalCaption{
		RelateVideoPath:  src.RelateVideoPath,
		SubtitlesTrackID: src.SubtitlesTrackID,
		SubtitlesName:    src.Name,
		Start:            c.Start,
		End:              c.End,
		Content:          c.Content,
	}
}
