// Package lookup batches and caches dictionary queries.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

const (
	defaultBatchCapacity = 500
	defaultWait          = 2 * time.Millisecond
)

type dictionaryRepo interface {
	QueryList(ctx context.Context, words []string) ([]domain.Word, error)
}

// Config tunes batching.
type Config struct {
	BatchCapacity int
	Wait          time.Duration
}

// Loader answers QueryList calls through a dataloader: concurrent lookups are
// merged into batches of at most BatchCapacity words and every answer,
// including "not found", is cached for the lifetime of the Loader. Long-lived
// callers go through a Source instead.
type Loader struct {
	log    *slog.Logger
	loader *dataloader.Loader[string, *domain.Word]
}

// NewLoader creates a Loader over repo.
func NewLoader(logger *slog.Logger, repo dictionaryRepo, cfg Config) *Loader {
	if cfg.BatchCapacity < 1 {
		cfg.BatchCapacity = defaultBatchCapacity
	}
	if cfg.Wait <= 0 {
		cfg.Wait = defaultWait
	}

	l := &Loader{log: logger.With("service", "lookup")}
	l.loader = dataloader.NewBatchedLoader(
		l.batchFn(repo),
		dataloader.WithWait[string, *domain.Word](cfg.Wait),
		dataloader.WithBatchCapacity[string, *domain.Word](cfg.BatchCapacity),
	)
	return l
}

// QueryList returns at most one record per distinct word. Words without an
// entry are absent from the result; the order follows words.
func (l *Loader) QueryList(ctx context.Context, words []string) ([]domain.Word, error) {
	keys := distinct(words)
	if len(keys) == 0 {
		return nil, nil
	}

	records, errs := l.loader.LoadMany(ctx, keys)()
	var firstErr error
	for i, err := range errs {
		if err == nil {
			continue
		}
		// Failed keys must be retried on the next call.
		l.loader.Clear(ctx, keys[i])
		if firstErr == nil {
			firstErr = fmt.Errorf("lookup %q: %w", keys[i], err)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	out := make([]domain.Word, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if _, dup := seen[rec.Value]; dup {
			continue
		}
		seen[rec.Value] = struct{}{}
		out = append(out, rec.Clone())
	}
	return out, nil
}

// Reset drops every cached answer.
func (l *Loader) Reset() {
	l.loader.ClearAll()
}

func (l *Loader) batchFn(repo dictionaryRepo) dataloader.BatchFunc[string, *domain.Word] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Word] {
		records, err := repo.QueryList(ctx, keys)
		if err != nil {
			l.log.ErrorContext(ctx, "dictionary batch failed", "keys", len(keys), "error", err)
			return errorResults[*domain.Word](len(keys), errors.Join(domain.ErrDictionary, err))
		}

		exact := make(map[string]*domain.Word, len(records))
		folded := make(map[string]*domain.Word, len(records))
		for i := range records {
			rec := &records[i]
			if _, ok := exact[rec.Value]; !ok {
				exact[rec.Value] = rec
			}
			if k := rec.Key(); k != "" {
				if _, ok := folded[k]; !ok {
					folded[k] = rec
				}
			}
		}

		l.log.DebugContext(ctx, "dictionary batch", "keys", len(keys), "found", len(records))

		results := make([]*dataloader.Result[*domain.Word], len(keys))
		for i, key := range keys {
			rec, ok := exact[key]
			if !ok {
				rec = folded[domain.WordKey(key)]
			}
			results[i] = &dataloader.Result[*domain.Word]{Data: rec}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

func distinct(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
