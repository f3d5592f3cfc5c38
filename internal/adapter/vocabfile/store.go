// Package vocabfile reads and writes vocabulary files.
//
// Files ending in .yaml or .yml are YAML; everything else is JSON in the
// format used by existing vocabulary files (camelCase keys, wordList).
package vocabfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const defaultConcurrency = 4

// Store loads and saves vocabularies on the local filesystem.
type Store struct {
	log         *slog.Logger
	concurrency int
}

// NewStore creates a Store. concurrency bounds LoadMany; values below 1 use
// the default.
func NewStore(logger *slog.Logger, concurrency int) *Store {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Store{
		log:         logger.With("adapter", "vocabfile"),
		concurrency: concurrency,
	}
}

// Load reads the vocabulary at path. The returned vocabulary is named after
// the file and its Size matches its word list.
//
// Returns domain.ErrNotFound for a missing file and
// domain.ErrInvalidVocabulary for content that cannot be decoded.
func (s *Store) Load(ctx context.Context, path string) (domain.Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vocabulary{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Vocabulary{}, fmt.Errorf("load %s: %w", path, domain.ErrNotFound)
		}
		return domain.Vocabulary{}, fmt.Errorf("load %s: %w", path, err)
	}

	var rec VocabularyRecord
	if err := decode(path, data, &rec); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("load %s: %w: %w", path, domain.ErrInvalidVocabulary, err)
	}

	v, err := ToVocabulary(rec)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("load %s: %w: %w", path, domain.ErrInvalidVocabulary, err)
	}
	v.Name = baseName(path)

	s.log.DebugContext(ctx, "vocabulary loaded", "path", path, "size", v.Size)
	return v, nil
}

// LoadMany loads every path concurrently. Results are in the order of
// paths; a failed file is reported in its result and does not stop the
// others.
func (s *Store) LoadMany(ctx context.Context, paths []string) []domain.LoadResult {
	results := make([]domain.LoadResult, len(paths))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			v, err := s.Load(ctx, path)
			results[i] = domain.LoadResult{Path: path, Vocabulary: v, Err: err}
			if err != nil {
				s.log.WarnContext(ctx, "vocabulary load failed", "path", path, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Save writes v to path atomically: the data goes to a temporary file in the
// same directory which is then renamed over path.
func (s *Store) Save(ctx context.Context, v domain.Vocabulary, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec := FromVocabulary(v)
	data, err := encode(path, rec)
	if err != nil {
		return fmt.Errorf("save %s: encode: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: write: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: sync: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save %s: close: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("save %s: rename: %w", path, err)
	}

	s.log.InfoContext(ctx, "vocabulary saved", "path", path, "size", rec.Size)
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decode(path string, data []byte, rec *VocabularyRecord) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, rec)
	}
	return json.Unmarshal(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), rec)
}

func encode(path string, rec VocabularyRecord) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(rec)
	}
	return json.MarshalIndent(rec, "", "    ")
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
