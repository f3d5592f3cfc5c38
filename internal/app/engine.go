package app

import (
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/adapter/vocabfile"
	"github.com/heartmarshall/vocabkit/internal/config"
	"github.com/heartmarshall/vocabkit/internal/service/caption"
	"github.com/heartmarshall/vocabkit/internal/service/lemma"
	"github.com/heartmarshall/vocabkit/internal/service/lookup"
	"github.com/heartmarshall/vocabkit/internal/service/match"
	"github.com/heartmarshall/vocabkit/internal/service/merge"
	"github.com/heartmarshall/vocabkit/internal/service/preview"
	"github.com/heartmarshall/vocabkit/internal/service/vocabset"
	"github.com/heartmarshall/vocabkit/internal/service/wordfilter"
)

// Engine wires the word services shared by the server and the CLI.
type Engine struct {
	Store    *vocabfile.Store
	Filter   *wordfilter.Service
	VocabSet *vocabset.Service
	Merge    *merge.Service
	Match    *match.Service
	Preview  *preview.Service
	// Lookup is nil without a dictionary.
	Lookup   *lookup.Source

	sanitizer    *caption.Sanitizer
	stemFallback bool
}

// NewEngine builds the services. dict may be nil, in which case lemma
// replacement is rejected as a validation error.
func NewEngine(logger *slog.Logger, cfg config.EngineConfig, dictCfg config.DictionaryConfig, dict DictionaryRepo) *Engine {
	store := vocabfile.NewStore(logger, cfg.LoadConcurrency)

	var (
		filter *wordfilter.Service
		source *lookup.Source
	)
	if dict != nil {
		source = lookup.NewSource(logger, dict, lookup.Config{
			BatchCapacity: dictCfg.BatchCapacity,
			Wait:          dictCfg.BatchWait,
		})
		filter = wordfilter.NewService(logger, lemma.NewResolver(logger, source))
	} else {
		filter = wordfilter.NewService(logger, nil)
	}

	sets := vocabset.NewService(logger, store)

	e := &Engine{
		Store:        store,
		Filter:       filter,
		VocabSet:     sets,
		Merge:        merge.NewService(logger, store),
		Match:        match.NewService(logger, store),
		Preview:      preview.NewService(logger, filter, sets, store),
		Lookup:       source,
		stemFallback: cfg.StemFallback,
	}
	if cfg.SanitizeCaptions {
		e.sanitizer = caption.NewSanitizer()
	}
	return e
}

// MergeOptions returns the merge defaults for a vocabulary called name.
func (e *Engine) MergeOptions(name string) merge.Options {
	return merge.Options{Name: name, Sanitizer: e.sanitizer}
}

// MatchOptions returns the match defaults.
func (e *Engine) MatchOptions(lemmaMode bool) match.Options {
	return match.Options{Lemma: lemmaMode, StemFallback: e.stemFallback}
}
