// Package importer loads the ECDICT CSV dump into a dictionary repository.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/vocabkit/internal/app/importer/ecdict"
	"github.com/heartmarshall/vocabkit/internal/domain"
)

const defaultBatchSize = 2000

// WordBulkRepo is the write contract of a dictionary repository.
// Implemented by the sqlite and postgres ecdict repos.
type WordBulkRepo interface {
	InsertWords(ctx context.Context, words []domain.Word) (int, error)
}

// Config holds import settings.
type Config struct {
	CSVPath   string
	BatchSize int
	DryRun    bool
}

// Result holds the outcome of an import run.
type Result struct {
	Parsed   int
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline parses the dump and writes it batch by batch.
type Pipeline struct {
	log  *slog.Logger
	repo WordBulkRepo
	cfg  Config
}

// NewPipeline creates a new Pipeline. repo may be nil in dry-run mode.
func NewPipeline(log *slog.Logger, repo WordBulkRepo, cfg Config) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Pipeline{log: log.With("service", "importer"), repo: repo, cfg: cfg}
}

// Run parses the configured file and inserts its words. A failed batch is
// logged and counted; the run continues with the next batch. Skipped counts
// unparseable rows plus words that were already present.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	if p.cfg.CSVPath == "" {
		return Result{}, fmt.Errorf("csv path not configured")
	}

	words, stats, err := ecdict.ParseFile(p.cfg.CSVPath)
	if err != nil {
		return Result{}, fmt.Errorf("parse ecdict: %w", err)
	}
	p.log.Info("ecdict parsed",
		slog.Int("words", len(words)),
		slog.Int("total_rows", stats.TotalRows),
		slog.Int("skipped_rows", stats.Skipped),
	)

	result := Result{Parsed: len(words), Skipped: stats.Skipped}
	if p.cfg.DryRun {
		result.Skipped += len(words)
		result.Duration = time.Since(start)
		return result, nil
	}
	if p.repo == nil {
		return Result{}, fmt.Errorf("no dictionary repository configured")
	}

	for i := 0; i < len(words); i += p.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		batch := words[i:min(i+p.cfg.BatchSize, len(words))]
		n, err := p.repo.InsertWords(ctx, batch)
		if err != nil {
			result.Errors++
			p.log.Warn("batch failed",
				slog.Int("offset", i),
				slog.Int("size", len(batch)),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Inserted += n
		result.Skipped += len(batch) - n
	}

	result.Duration = time.Since(start)
	p.log.Info("import completed",
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// HasErrors reports whether any batch failed.
func (r Result) HasErrors() bool { return r.Errors > 0 }
