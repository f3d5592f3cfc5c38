package wordfilter

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// Predicates is the set of word tests applied by Filter and Include.
type Predicates struct {
	Numeric bool
	// BNCThreshold matches words with 1 <= bnc < threshold.
	BNCThreshold *int
	// FRQThreshold matches words with 1 <= frq < threshold.
	FRQThreshold *int
	BNCZero      bool
	FRQZero      bool

	ReplaceToLemma bool
	// BatchSource tells the lemma resolver which captions hold evidence.
	BatchSource bool
}

// Validate checks threshold bounds.
func (p Predicates) Validate() error {
	var errs []domain.FieldError

	if p.BNCThreshold != nil && *p.BNCThreshold < 1 {
		errs = append(errs, domain.FieldError{Field: "bnc_threshold", Message: "must be at least 1"})
	}
	if p.FRQThreshold != nil && *p.FRQThreshold < 1 {
		errs = append(errs, domain.FieldError{Field: "frq_threshold", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Enabled reports whether at least one matching predicate is on.
func (p Predicates) Enabled() bool {
	return p.Numeric || p.BNCThreshold != nil || p.FRQThreshold != nil || p.BNCZero || p.FRQZero
}

// Matches reports whether any enabled predicate matches w.
func (p Predicates) Matches(w domain.Word) bool {
	return (p.Numeric && IsNumeric(w.Value)) || p.matchesRank(w)
}

func (p Predicates) matchesRank(w domain.Word) bool {
	switch {
	case p.BNCThreshold != nil && belowThreshold(w.BNC, *p.BNCThreshold):
		return true
	case p.FRQThreshold != nil && belowThreshold(w.FRQ, *p.FRQThreshold):
		return true
	case p.BNCZero && isZero(w.BNC):
		return true
	case p.FRQZero && isZero(w.FRQ):
		return true
	}
	return false
}

func belowThreshold(rank *int, threshold int) bool {
	return rank != nil && *rank >= 1 && *rank < threshold
}

func isZero(rank *int) bool {
	return rank != nil && *rank == 0
}

// IsNumeric reports whether value parses completely as a real number.
// Overflowing values still count. Spellings without a digit, such as "NaN"
// or "Infinity", are words. Surrounding whitespace is not trimmed, so " 42"
// is a word too.
func IsNumeric(value string) bool {
	if !strings.ContainsFunc(value, unicode.IsDigit) {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
