package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocabkit/internal/adapter/postgres"
	pgecdict "github.com/heartmarshall/vocabkit/internal/adapter/postgres/ecdict"
	"github.com/heartmarshall/vocabkit/internal/adapter/sqlite"
	sqliteecdict "github.com/heartmarshall/vocabkit/internal/adapter/sqlite/ecdict"
	"github.com/heartmarshall/vocabkit/internal/config"
	"github.com/heartmarshall/vocabkit/internal/domain"
)

// DictionaryRepo is the ECDICT store behind both dictionary drivers.
type DictionaryRepo interface {
	QueryList(ctx context.Context, words []string) ([]domain.Word, error)
	InsertWords(ctx context.Context, words []domain.Word) (int, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// Dictionary is an open dictionary store and its release function.
type Dictionary struct {
	Repo  DictionaryRepo
	close func()
}

// Close releases the underlying connections. Safe on a nil Dictionary.
func (d *Dictionary) Close() {
	if d != nil && d.close != nil {
		d.close()
	}
}

// OpenDictionary connects to the configured dictionary and applies its
// migrations when enabled. It returns nil, nil for DriverNone.
func OpenDictionary(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Dictionary, error) {
	switch cfg.Dictionary.Driver {
	case config.DriverNone:
		logger.Warn("dictionary disabled, lemma replacement unavailable")
		return nil, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Dictionary.Path, sqlite.WithMkdirAll())
		if err != nil {
			return nil, fmt.Errorf("open sqlite dictionary: %w", err)
		}
		if cfg.Dictionary.Migrate {
			n, err := sqlite.Migrate(ctx, db)
			if err != nil {
				db.Close()
				return nil, fmt.Errorf("migrate sqlite dictionary: %w", err)
			}
			logger.Info("sqlite migrations applied", slog.Int("count", n))
		}
		logger.Info("dictionary opened", slog.String("driver", config.DriverSQLite), slog.String("path", cfg.Dictionary.Path))
		return &Dictionary{
			Repo:  sqliteecdict.NewRepo(db),
			close: func() { db.Close() },
		}, nil

	case config.DriverPostgres:
		if cfg.Dictionary.Migrate {
			n, err := postgres.Migrate(ctx, cfg.Database.DSN)
			if err != nil {
				return nil, fmt.Errorf("migrate postgres dictionary: %w", err)
			}
			logger.Info("postgres migrations applied", slog.Int("count", n))
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres dictionary: %w", err)
		}
		logger.Info("dictionary opened", slog.String("driver", config.DriverPostgres))
		return &Dictionary{
			Repo:  pgecdict.NewRepo(pool, postgres.NewTxManager(pool)),
			close: pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown dictionary driver %q", cfg.Dictionary.Driver)
}
