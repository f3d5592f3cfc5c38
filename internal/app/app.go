package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/heartmarshall/vocabkit/internal/config"
	"github.com/heartmarshall/vocabkit/internal/transport/rest"
)

type dictionaryPinger interface {
	Ping(ctx context.Context) error
}

// Run is the server entry point. It loads configuration, opens the
// dictionary, serves the REST API and shuts down gracefully when ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("dictionary", cfg.Dictionary.Driver),
	)

	dict, err := OpenDictionary(ctx, *cfg, logger)
	if err != nil {
		return err
	}
	defer dict.Close()

	var (
		repo   DictionaryRepo
		pinger dictionaryPinger
	)
	if dict != nil {
		repo = dict.Repo
		pinger = dict.Repo
		if n, err := dict.Repo.Count(ctx); err == nil {
			logger.Info("dictionary ready", slog.Int("words", n))
		}
	}

	if err := os.MkdirAll(cfg.Server.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	engine := NewEngine(logger, cfg.Engine, cfg.Dictionary, repo)
	handler := NewHandler(logger, cfg.Server, engine, pinger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr), slog.String("data_dir", cfg.Server.DataDir))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler builds the HTTP handler over engine. pinger may be nil when no
// dictionary is configured.
func NewHandler(logger *slog.Logger, cfg config.ServerConfig, engine *Engine, pinger dictionaryPinger) http.Handler {
	h := rest.Handlers{
		Health:  rest.NewHealthHandler(pinger, Version),
		Words:   rest.NewWordHandler(engine.Filter, logger),
		Preview: rest.NewPreviewHandler(engine.Preview, cfg.DataDir, logger),
		Vocabulary: rest.NewVocabularyHandler(
			engine.Merge, engine.Match, engine.Store,
			engine.MergeOptions("merged"), engine.MatchOptions(false),
			cfg.DataDir, logger,
		),
	}
	if engine.Lookup != nil {
		h.Lookup = engine.Lookup.Middleware
	}
	return rest.NewRouter(logger, h, cfg.MaxBodyBytes)
}
