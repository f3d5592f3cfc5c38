// Package lemma replaces inflected surface forms with their dictionary lemma.
package lemma

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

type dictionary interface {
	QueryList(ctx context.Context, words []string) ([]domain.Word, error)
}

// Options controls a single Resolve call.
type Options struct {
	// BatchSource selects ExternalCaptions as the evidence to carry over
	// (multi-file runs); Captions are used otherwise.
	BatchSource bool
	// Admit decides whether a resolved lemma record may enter the result.
	// Nil admits every record.
	Admit func(domain.Word) bool
}

func (o Options) admit(w domain.Word) bool {
	return o.Admit == nil || o.Admit(w)
}

// Resolver maps words to their lemma records using a dictionary.
type Resolver struct {
	log  *slog.Logger
	dict dictionary
}

// NewResolver creates a Resolver backed by dict.
func NewResolver(logger *slog.Logger, dict dictionary) *Resolver {
	return &Resolver{
		log:  logger.With("service", "lemma"),
		dict: dict,
	}
}
