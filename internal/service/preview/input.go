package preview

import (
	"errors"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/wordfilter"
)

// Reference is a named vocabulary file the preview is summarized against,
// such as an exam word list.
type Reference struct {
	Name string
	Path string
}

// Request describes one preview run.
type Request struct {
	// RunID correlates log lines; generated when empty.
	RunID           string
	Parsed          []domain.Word
	Mode            domain.SelectMode
	Predicates      wordfilter.Predicates
	VocabularyFiles []string
	// Removed lists values the user dropped by hand.
	Removed    []string
	Sort       domain.SortMode
	References []Reference
	// ParseFailures are passed through to the result unchanged.
	ParseFailures []domain.FileError
}

// Validate checks the request and fills defaults.
func (r *Request) Validate() error {
	var errs []domain.FieldError

	if r.Mode == "" {
		r.Mode = domain.SelectFilter
	}
	if !r.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be filter or include"})
	}
	if r.Sort == "" {
		r.Sort = domain.SortAppearance
	}
	if !r.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be appearance, alphabet, bnc or coca"})
	}
	for _, ref := range r.References {
		if ref.Name == "" || ref.Path == "" {
			errs = append(errs, domain.FieldError{Field: "references", Message: "name and path are required"})
			break
		}
	}
	if err := r.Predicates.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
