// Command dictimport loads the ECDICT CSV into the configured dictionary
// store. It is intended to be run offline, before the server.
//
// Flags:
//
//	--config    path to the YAML config file (default: $CONFIG_PATH)
//	--csv       path to the ECDICT CSV (default: importer.csv_path)
//	--dry-run   parse the CSV without writing to the store
//	--batch     rows per insert batch (default: importer.batch_size)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/vocabkit/internal/app"
	"github.com/heartmarshall/vocabkit/internal/app/importer"
	"github.com/heartmarshall/vocabkit/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the YAML config file")
	csvFlag := flag.String("csv", "", "path to the ECDICT CSV file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the CSV without writing to the store")
	batchFlag := flag.Int("batch", 0, "rows per insert batch")
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = os.Getenv(config.PathEnv)
	}
	appCfg, err := config.LoadFile(path)
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	cfg := importer.Config{
		CSVPath:   appCfg.Importer.CSVPath,
		BatchSize: appCfg.Importer.BatchSize,
		DryRun:    *dryRunFlag,
	}
	if *csvFlag != "" {
		cfg.CSVPath = *csvFlag
	}
	if *batchFlag > 0 {
		cfg.BatchSize = *batchFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	dict, err := app.OpenDictionary(ctx, *appCfg, logger)
	if err != nil {
		logger.Error("open dictionary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if dict == nil {
		logger.Error("dictionary driver is none, nothing to import into")
		os.Exit(1)
	}
	defer dict.Close()

	pipeline := importer.NewPipeline(logger, dict.Repo, cfg)
	res, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.HasErrors() {
		logger.Warn("import completed with errors", slog.Int("errors", res.Errors))
		os.Exit(1)
	}

	logger.Info("import completed successfully")
}
