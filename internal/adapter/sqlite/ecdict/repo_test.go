package ecdict

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabkit/internal/adapter/sqlite"
	"github.com/heartmarshall/vocabkit/internal/domain"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func setupRepo(t *testing.T) *Repo {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = sqlite.Migrate(ctx, db)
	require.NoError(t, err)

	return NewRepo(db)
}

func entry(value string, bnc, frq *int, exchange string) domain.Word {
	return domain.Word{
		Value:       value,
		UKPhone:     "uk-" + value,
		USPhone:     "us-" + value,
		Definition:  "v. definition of " + value,
		Translation: "v. translation\\nsecond line",
		Tag:         "cet4",
		Collins:     3,
		Oxford:      true,
		BNC:         bnc,
		FRQ:         frq,
		Exchange:    domain.ParseExchange(exchange),
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRepo_InsertAndQueryList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	n, err := repo.InsertWords(ctx, []domain.Word{
		entry("do", domain.Rank(40), domain.Rank(35), "p:did/d:done/3:does"),
		entry("go", domain.Rank(60), nil, "p:went/d:gone"),
		entry("cat", nil, nil, ""),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := repo.QueryList(ctx, []string{"do", "GO", "missing"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	byValue := map[string]domain.Word{}
	for _, w := range got {
		byValue[w.Value] = w
	}

	do := byValue["do"]
	assert.Equal(t, 40, *do.BNC)
	assert.Equal(t, 35, *do.FRQ)
	assert.Equal(t, "us-do", do.USPhone)
	assert.Equal(t, "uk-do", do.UKPhone)
	assert.True(t, do.Oxford)
	assert.Equal(t, 3, do.Collins)
	assert.Equal(t, "v. translation\nsecond line", do.Translation)
	v, ok := do.Exchange.Get(domain.ExchangePreterite)
	assert.True(t, ok)
	assert.Equal(t, "did", v)

	goWord := byValue["go"]
	assert.Nil(t, goWord.FRQ)
}

func TestRepo_InsertWords_SkipsExisting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	_, err := repo.InsertWords(ctx, []domain.Word{entry("do", nil, nil, "")})
	require.NoError(t, err)

	n, err := repo.InsertWords(ctx, []domain.Word{entry("Do", nil, nil, ""), entry("be", nil, nil, "")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepo_QueryList_Chunked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	var words []domain.Word
	var keys []string
	for i := range 1200 {
		v := fmt.Sprintf("word%04d", i)
		words = append(words, entry(v, domain.Rank(i+1), nil, ""))
		keys = append(keys, v)
	}

	n, err := repo.InsertWords(ctx, words)
	require.NoError(t, err)
	assert.Equal(t, 1200, n)

	got, err := repo.QueryList(ctx, keys)
	require.NoError(t, err)
	assert.Len(t, got, 1200)
}

func TestRepo_EmptyInputs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	got, err := repo.QueryList(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := repo.InsertWords(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, repo.Ping(ctx))
}
