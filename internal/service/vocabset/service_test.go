package vocabset

import (
	"context"
	"log/slog"
	"testing"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockLoader struct {
	LoadManyFunc func(ctx context.Context, paths []string) []domain.LoadResult
}

func (m *mockLoader) LoadMany(ctx context.Context, paths []string) []domain.LoadResult {
	return m.LoadManyFunc(ctx, paths)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func words(vs ...string) []domain.Word {
	out := make([]domain.Word, len(vs))
	for i, v := range vs {
		out[i] = domain.NewWord(v)
	}
	return out
}

func values(ws []domain.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Value
	}
	return out
}

// fileLoader serves vocabularies by path; unknown paths fail with ErrNotFound.
func fileLoader(files map[string][]domain.Word) *mockLoader {
	return &mockLoader{
		LoadManyFunc: func(_ context.Context, paths []string) []domain.LoadResult {
			out := make([]domain.LoadResult, len(paths))
			for i, p := range paths {
				ws, ok := files[p]
				if !ok {
					out[i] = domain.LoadResult{Path: p, Err: domain.ErrNotFound}
					continue
				}
				out[i] = domain.LoadResult{Path: p, Vocabulary: domain.NewVocabulary(p, domain.VocabularyDocument, ws)}
			}
			return out
		},
	}
}

// ---------------------------------------------------------------------------
// Pure set operation tests
// ---------------------------------------------------------------------------

func TestDifference(t *testing.T) {
	t.Parallel()

	got := Difference(words("a", "b", "c"), words("b"))
	assert.Equal(t, []string{"a", "c"}, values(got))
}

func TestDifference_UnionOfLists(t *testing.T) {
	t.Parallel()

	got := Difference(words("a", "b", "c", "d"), words("b"), words("D", "x"))
	assert.Equal(t, []string{"a", "c"}, values(got))
}

func TestDifference_NoLists(t *testing.T) {
	t.Parallel()

	got := Difference(words("a", "b"))
	assert.Equal(t, []string{"a", "b"}, values(got))
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	got := Intersect(words("the", "Cat", "sat", "mat"), words("cat", "dog"), words("mat"))
	assert.Equal(t, []string{"Cat", "mat"}, values(got))
	assert.Empty(t, Intersect(words("a")))
}

// ---------------------------------------------------------------------------
// Service tests
// ---------------------------------------------------------------------------

func TestService_FilterSelect(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), fileLoader(map[string][]domain.Word{
		"known.json": words("b"),
	}))

	res, err := svc.FilterSelect(context.Background(), words("a", "b", "c"), []string{"known.json"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, values(res.Words))
	assert.Empty(t, res.Failures)
}

func TestService_FilterSelect_MissingFileContinues(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), fileLoader(map[string][]domain.Word{
		"one.json":   words("a"),
		"three.json": words("c"),
	}))

	res, err := svc.FilterSelect(context.Background(), words("a", "b", "c"), []string{"one.json", "two.json", "three.json"})

	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, values(res.Words))
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "two.json", res.Failures[0].Path)
	assert.ErrorIs(t, res.Failures[0].Err, domain.ErrNotFound)
}

func TestService_IncludeSelect(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), fileLoader(map[string][]domain.Word{
		"cet4.json": words("abandon", "ability"),
		"gre.json":  words("aberration"),
	}))

	parsed := words("the", "ability", "aberration", "cat")
	res, err := svc.IncludeSelect(context.Background(), parsed, []string{"cet4.json", "gre.json"})

	require.NoError(t, err)
	assert.Equal(t, []string{"ability", "aberration"}, values(res.Words))
}

func TestService_NoFilesSkipsLoader(t *testing.T) {
	t.Parallel()

	called := false
	svc := NewService(slog.Default(), &mockLoader{
		LoadManyFunc: func(context.Context, []string) []domain.LoadResult {
			called = true
			return nil
		},
	})

	res, err := svc.FilterSelect(context.Background(), words("a"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, values(res.Words))

	res, err = svc.IncludeSelect(context.Background(), words("a"), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Words)
	assert.False(t, called)
}

func TestService_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(slog.Default(), fileLoader(nil))
	_, err := svc.FilterSelect(ctx, words("a"), []string{"x.json"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_InputNotMutated(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), fileLoader(map[string][]domain.Word{"v.json": words("b")}))
	working := words("a", "b")

	res, err := svc.FilterSelect(context.Background(), working, []string{"v.json"})
	require.NoError(t, err)

	res.Words[0].Value = "changed"
	assert.Equal(t, []string{"a", "b"}, values(working))
}
