// Package cli implements the vocab command line: predicate filtering,
// vocabulary merge and match, and previews over vocabulary files.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/vocabkit/internal/adapter/vocabfile"
	"github.com/heartmarshall/vocabkit/internal/app"
	"github.com/heartmarshall/vocabkit/internal/config"
	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/wordfilter"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const usage = `usage: vocab <command> [flags]

commands:
  filter    remove matching words from a vocabulary
  include   keep only matching words of a vocabulary
  merge     union several vocabularies
  match     keep the words of one vocabulary found in another
  preview   run the full preview pipeline over a vocabulary
`

// CLI runs subcommands against an engine.
type CLI struct {
	engine   *app.Engine
	defaults config.EngineConfig
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a CLI. defaults supply the rank thresholds used when a
// threshold flag is enabled without a value.
func New(engine *app.Engine, defaults config.EngineConfig, stdout, stderr io.Writer) *CLI {
	return &CLI{engine: engine, defaults: defaults, stdout: stdout, stderr: stderr}
}

// Run executes args and returns the process exit code. A run that completes
// with per-file failures exits with ExitFailure after writing its result.
func (c *CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return ExitUsage
	}

	var cmd func(context.Context, []string) error
	switch args[0] {
	case "filter":
		cmd = c.filter
	case "include":
		cmd = c.include
	case "merge":
		cmd = c.merge
	case "match":
		cmd = c.match
	case "preview":
		cmd = c.preview
	case "help", "-h", "--help":
		fmt.Fprint(c.stdout, usage)
		return ExitOK
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n\n%s", args[0], usage)
		return ExitUsage
	}

	err := cmd(ctx, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage):
		return ExitUsage
	case errors.Is(err, errPartial):
		return ExitFailure
	}

	fmt.Fprintf(c.stderr, "error: %s\n", describe(err))
	return ExitFailure
}

var (
	errUsage   = errors.New("usage")
	errPartial = errors.New("completed with failures")
)

func (c *CLI) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *CLI) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}

// writeVocabulary saves v to out, or prints it as JSON when out is empty.
func (c *CLI) writeVocabulary(ctx context.Context, v domain.Vocabulary, out string) error {
	if out != "" {
		if err := c.engine.Store.Save(ctx, v, out); err != nil {
			return err
		}
		fmt.Fprintf(c.stderr, "saved %d words to %s\n", v.Size, out)
		return nil
	}
	return c.printJSON(vocabfile.FromVocabulary(v))
}

func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportFailures prints per-file failures and returns errPartial when there
// are any.
func (c *CLI) reportFailures(failures []domain.FileError) error {
	for _, f := range failures {
		fmt.Fprintf(c.stderr, "skipped %s: %s\n", f.Path, f.Message())
	}
	if len(failures) > 0 {
		return errPartial
	}
	return nil
}

func describe(err error) string {
	var fe *domain.FileError
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s: %s", fe.Path, fe.Message())
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		parts := make([]string, 0, len(ve.Errors))
		for _, f := range ve.Errors {
			parts = append(parts, f.Field+" "+f.Message)
		}
		return "invalid input: " + strings.Join(parts, "; ")
	}
	return err.Error()
}

// predicateFlags binds the word predicate flags shared by several commands.
type predicateFlags struct {
	numeric  bool
	bnc      bool
	bncLimit int
	frq      bool
	frqLimit int
	bncZero  bool
	frqZero  bool
	lemma    bool
	batch    bool
}

func (c *CLI) bindPredicates(fs *flag.FlagSet) *predicateFlags {
	p := &predicateFlags{}
	fs.BoolVar(&p.numeric, "numeric", false, "match words containing digits only")
	fs.BoolVar(&p.bnc, "bnc", false, "match words with a BNC rank below -bnc-threshold")
	fs.IntVar(&p.bncLimit, "bnc-threshold", c.defaults.BNCThreshold, "BNC rank threshold")
	fs.BoolVar(&p.frq, "frq", false, "match words with a COCA rank below -frq-threshold")
	fs.IntVar(&p.frqLimit, "frq-threshold", c.defaults.FRQThreshold, "COCA rank threshold")
	fs.BoolVar(&p.bncZero, "bnc-zero", false, "match words without a BNC rank")
	fs.BoolVar(&p.frqZero, "frq-zero", false, "match words without a COCA rank")
	fs.BoolVar(&p.lemma, "lemma", false, "replace words with their dictionary lemma")
	fs.BoolVar(&p.batch, "batch", false, "carry external captions as lemma evidence")
	return p
}

func (p *predicateFlags) predicates() wordfilter.Predicates {
	out := wordfilter.Predicates{
		Numeric:        p.numeric,
		BNCZero:        p.bncZero,
		FRQZero:        p.frqZero,
		ReplaceToLemma: p.lemma,
		BatchSource:    p.batch,
	}
	if p.bnc {
		out.BNCThreshold = &p.bncLimit
	}
	if p.frq {
		out.FRQThreshold = &p.frqLimit
	}
	return out
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
