package domain

// VocabularyType describes where a vocabulary's words came from.
type VocabularyType string

const (
	VocabularyDocument  VocabularyType = "DOCUMENT"
	VocabularySubtitles VocabularyType = "SUBTITLES"
	VocabularyMKV       VocabularyType = "MKV"
)

func (t VocabularyType) String() string { return string(t) }

func (t VocabularyType) IsValid() bool {
	switch t {
	case VocabularyDocument, VocabularySubtitles, VocabularyMKV:
		return true
	}
	return false
}

// SelectMode chooses between removing matches and keeping only matches.
type SelectMode string

const (
	SelectFilter  SelectMode = "filter"
	SelectInclude SelectMode = "include"
)

func (m SelectMode) String() string { return string(m) }

func (m SelectMode) IsValid() bool {
	switch m {
	case SelectFilter, SelectInclude:
		return true
	}
	return false
}

// SortMode orders a preview list.
type SortMode string

const (
	SortAppearance SortMode = "appearance"
	SortAlphabet   SortMode = "alphabet"
	SortBNC        SortMode = "bnc"
	SortCOCA       SortMode = "coca"
)

func (s SortMode) String() string { return string(s) }

func (s SortMode) IsValid() bool {
	switch s {
	case SortAppearance, SortAlphabet, SortBNC, SortCOCA:
		return true
	}
	return false
}
