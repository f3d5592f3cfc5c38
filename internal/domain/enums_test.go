package domain

import "testing"

func TestVocabularyType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  VocabularyType
		want bool
	}{
		{VocabularyDocument, true},
		{VocabularySubtitles, true},
		{VocabularyMKV, true},
		{VocabularyType("PDF"), false},
		{VocabularyType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("VocabularyType(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestSelectMode_IsValid(t *testing.T) {
	t.Parallel()

	if !SelectFilter.IsValid() || !SelectInclude.IsValid() {
		t.Error("known modes must be valid")
	}
	if SelectMode("exclude").IsValid() {
		t.Error("unknown mode must be invalid")
	}
}

func TestSortMode_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []SortMode{SortAppearance, SortAlphabet, SortBNC, SortCOCA} {
		if !s.IsValid() {
			t.Errorf("SortMode(%q) should be valid", s)
		}
	}
	if SortMode("random").IsValid() {
		t.Error("unknown sort must be invalid")
	}
	if got := SortCOCA.String(); got != "coca" {
		t.Errorf("got %q, want coca", got)
	}
}
