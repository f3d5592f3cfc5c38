// Command vocab filters, merges and matches vocabulary files from the shell.
//
// Usage: vocab [-config path] <command> [flags]
//
// Run "vocab help" for the command list and "vocab <command> -h" for its
// flags. Dictionary and engine settings come from the same configuration as
// the server; with dictionary.driver "none" lemma replacement is rejected.
//
// Exit codes: 0 = success, 1 = error or per-file failures, 2 = usage.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/vocabkit/internal/app"
	"github.com/heartmarshall/vocabkit/internal/app/cli"
	"github.com/heartmarshall/vocabkit/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configFlag := flag.String("config", "", "path to the YAML config file (default: $CONFIG_PATH)")
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = os.Getenv(config.PathEnv)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Printf("load app config: %v", err)
		return cli.ExitFailure
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dict, err := app.OpenDictionary(ctx, *cfg, logger)
	if err != nil {
		logger.Error("open dictionary", slog.String("error", err.Error()))
		return cli.ExitFailure
	}
	defer dict.Close()

	var repo app.DictionaryRepo
	if dict != nil {
		repo = dict.Repo
	}

	engine := app.NewEngine(logger, cfg.Engine, cfg.Dictionary, repo)
	return cli.New(engine, cfg.Engine, os.Stdout, os.Stderr).Run(ctx, flag.Args())
}
