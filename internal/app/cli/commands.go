package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/preview"
	"github.com/heartmarshall/vocabkit/internal/service/wordfilter"
)

func (c *CLI) filter(ctx context.Context, args []string) error {
	return c.selectWords(ctx, "filter", args, c.engine.Filter.Filter)
}

func (c *CLI) include(ctx context.Context, args []string) error {
	return c.selectWords(ctx, "include", args, c.engine.Filter.Include)
}

type selectFunc func(ctx context.Context, words []domain.Word, p wordfilter.Predicates) ([]domain.Word, error)

func (c *CLI) selectWords(ctx context.Context, name string, args []string, fn selectFunc) error {
	fs := c.newFlagSet(name)
	in := fs.String("in", "", "input vocabulary file (required)")
	out := fs.String("out", "", "output file; prints JSON when empty")
	pf := c.bindPredicates(fs)
	if err := c.parse(fs, args); err != nil {
		return err
	}
	if *in == "" {
		fmt.Fprintln(c.stderr, "-in is required")
		fs.Usage()
		return errUsage
	}

	v, err := c.engine.Store.Load(ctx, *in)
	if err != nil {
		return &domain.FileError{Path: *in, Err: err}
	}

	words, err := fn(ctx, v.WordList, pf.predicates())
	if err != nil {
		return err
	}

	v.WordList = words
	v.Resize()
	return c.writeVocabulary(ctx, v, *out)
}

func (c *CLI) merge(ctx context.Context, args []string) error {
	fs := c.newFlagSet("merge")
	name := fs.String("name", "merged", "name of the merged vocabulary")
	out := fs.String("out", "", "output file; prints JSON when empty")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	res, err := c.engine.Merge.MergeFiles(ctx, fs.Args(), c.engine.MergeOptions(*name))
	if err != nil {
		return err
	}
	if err := c.writeVocabulary(ctx, res.Vocabulary, *out); err != nil {
		return err
	}
	return c.reportFailures(res.Failures)
}

func (c *CLI) match(ctx context.Context, args []string) error {
	fs := c.newFlagSet("match")
	baseline := fs.String("baseline", "", "baseline vocabulary file (required)")
	comparison := fs.String("comparison", "", "comparison vocabulary file (required)")
	lemma := fs.Bool("lemma", false, "match by lemma instead of by value")
	out := fs.String("out", "", "output file; prints JSON when empty")
	opts := c.engine.MatchOptions(false)
	fs.BoolVar(&opts.StemFallback, "stem", opts.StemFallback, "compare Snowball stems of the lemma keys")
	if err := c.parse(fs, args); err != nil {
		return err
	}
	opts.Lemma = *lemma

	v, err := c.engine.Match.MatchFiles(ctx, *baseline, *comparison, opts)
	if err != nil {
		return err
	}
	return c.writeVocabulary(ctx, v, *out)
}

func (c *CLI) preview(ctx context.Context, args []string) error {
	fs := c.newFlagSet("preview")
	in := fs.String("in", "", "parsed vocabulary file (required)")
	mode := fs.String("mode", string(domain.SelectFilter), "filter or include")
	sortMode := fs.String("sort", string(domain.SortAppearance), "appearance, alphabet, bnc or coca")
	var vocabs, removed, refs stringList
	fs.Var(&vocabs, "vocab", "vocabulary file to filter against or include from (repeatable)")
	fs.Var(&removed, "remove", "word removed by hand (repeatable)")
	fs.Var(&refs, "ref", "reference list as name=path (repeatable)")
	pf := c.bindPredicates(fs)
	if err := c.parse(fs, args); err != nil {
		return err
	}
	if *in == "" {
		fmt.Fprintln(c.stderr, "-in is required")
		fs.Usage()
		return errUsage
	}

	references, err := parseReferences(refs)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return errUsage
	}

	parsed, err := c.engine.Store.Load(ctx, *in)
	if err != nil {
		return &domain.FileError{Path: *in, Err: err}
	}

	res, err := c.engine.Preview.Run(ctx, preview.Request{
		Parsed:          parsed.WordList,
		Mode:            domain.SelectMode(*mode),
		Predicates:      pf.predicates(),
		VocabularyFiles: vocabs,
		Removed:         removed,
		Sort:            domain.SortMode(*sortMode),
		References:      references,
	})
	if err != nil {
		return err
	}

	for _, w := range res.Words {
		fmt.Fprintln(c.stdout, w.Value)
	}
	fmt.Fprintf(c.stderr, "%d words\n", len(res.Words))
	for _, s := range res.Summary {
		if s.Missing {
			fmt.Fprintf(c.stderr, "%s: unavailable\n", s.Name)
			continue
		}
		fmt.Fprintf(c.stderr, "%s: %d\n", s.Name, s.Count)
	}
	return c.reportFailures(res.Failures)
}

func parseReferences(refs []string) ([]preview.Reference, error) {
	out := make([]preview.Reference, 0, len(refs))
	for _, r := range refs {
		name, path, ok := strings.Cut(r, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid -ref %q, want name=path", r)
		}
		out = append(out, preview.Reference{Name: name, Path: path})
	}
	return out, nil
}
