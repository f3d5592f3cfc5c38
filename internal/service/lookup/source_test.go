package lookup

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(repo dictionaryRepo) *Source {
	return NewSource(slog.Default(), repo, Config{BatchCapacity: 100, Wait: time.Millisecond})
}

func TestSource_QueryList_SeesImportedWords(t *testing.T) {
	t.Parallel()

	repo := newRepo()
	src := newTestSource(repo)

	got, err := src.QueryList(context.Background(), []string{"do"})
	require.NoError(t, err)
	assert.Empty(t, got)

	repo.mu.Lock()
	repo.records[domain.WordKey("do")] = domain.Word{Value: "do"}
	repo.mu.Unlock()

	got, err = src.QueryList(context.Background(), []string{"do"})
	require.NoError(t, err)
	assert.Equal(t, []string{"do"}, values(got))
	assert.Equal(t, 2, repo.callCount())
}

func TestSource_QueryList_UsesContextLoader(t *testing.T) {
	t.Parallel()

	repo := newRepo("do")
	src := newTestSource(repo)
	ctx := WithLoader(context.Background(), src.NewLoader())

	_, err := src.QueryList(ctx, []string{"do", "missing"})
	require.NoError(t, err)
	got, err := src.QueryList(ctx, []string{"do", "missing"})
	require.NoError(t, err)

	assert.Equal(t, []string{"do"}, values(got))
	assert.Equal(t, 1, repo.callCount(), "one loader per context")
}

func TestSource_Middleware_LoaderPerRequest(t *testing.T) {
	t.Parallel()

	repo := newRepo("do")
	src := newTestSource(repo)

	var seen []*Loader
	h := src.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := FromContext(r.Context())
		require.NotNil(t, l)
		seen = append(seen, l)

		_, err := src.QueryList(r.Context(), []string{"do"})
		require.NoError(t, err)
		_, err = src.QueryList(r.Context(), []string{"do"})
		require.NoError(t, err)
	}))

	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	}

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	assert.Equal(t, 2, repo.callCount(), "cached within a request, not across")
}

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromContext(context.Background()))
}
