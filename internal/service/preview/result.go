package preview

import "github.com/heartmarshall/vocabkit/internal/domain"

// SummaryItem counts the preview words found in one reference list.
type SummaryItem struct {
	Name  string
	Count int
	// Missing is set when the reference could not be loaded or is empty.
	Missing bool
}

// Result is the outcome of a preview run.
type Result struct {
	RunID    string
	Words    []domain.Word
	Summary  []SummaryItem
	Failures []domain.FileError
}
