package ecdict

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabkit/internal/adapter/postgres"
	"github.com/heartmarshall/vocabkit/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/vocabkit/internal/domain"
)

// ---------------------------------------------------------------------------
// Unit tests (pgxmock)
// ---------------------------------------------------------------------------

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepo(mock, postgres.NewTxManager(mock)), mock
}

func TestRepo_QueryList_Mock(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	rows := pgxmock.NewRows(columns).
		AddRow("did", "dɪd", "dɪd", "", `v. 做\n助动词`, "", 0, false, "", (*int)(nil), (*int)(nil), "0:do/1:p").
		AddRow("go", "gəʊ", "ɡoʊ", "v. move", "v. 去", "v:90/n:10", 5, true, "zk gk", domain.Rank(60), domain.Rank(70), "p:went/d:gone")
	mock.ExpectQuery(`SELECT (.+) FROM ecdict WHERE \(word = ANY\(\$1::text\[\]\) OR lower\(word\) = ANY\(\$2::text\[\]\)\)`).
		WithArgs([]string{"did", "Go"}, []string{"did", "go"}).
		WillReturnRows(rows)

	got, err := repo.QueryList(context.Background(), []string{"did", "Go"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "did", got[0].Value)
	assert.Equal(t, "v. 做\n助动词", got[0].Translation)
	assert.Nil(t, got[0].BNC)
	lemma, ok := got[0].Lemma()
	assert.True(t, ok)
	assert.Equal(t, "do", lemma)

	assert.Equal(t, "go", got[1].Value)
	assert.Equal(t, "ɡoʊ", got[1].USPhone)
	assert.Equal(t, "gəʊ", got[1].UKPhone)
	require.NotNil(t, got[1].BNC)
	assert.Equal(t, 60, *got[1].BNC)
	assert.True(t, got[1].Oxford)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_QueryList_Mock_Error(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM ecdict`).WillReturnError(errors.New("connection reset"))

	_, err := repo.QueryList(context.Background(), []string{"do"})
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_QueryList_LargeBatchBindsTwoParams(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	words := make([]string, 40000)
	for i := range words {
		words[i] = "w" + strconv.Itoa(i)
	}
	mock.ExpectQuery(`SELECT (.+) FROM ecdict`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(columns))

	got, err := repo.QueryList(context.Background(), words)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_QueryList_Empty(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	got, err := repo.QueryList(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_InsertWords_Mock(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ecdict (.+) ON CONFLICT \(word\) DO NOTHING`).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	n, err := repo.InsertWords(context.Background(), []domain.Word{
		{Value: "do", BNC: domain.Rank(40)},
		{Value: "go", Exchange: domain.ParseExchange("p:went")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_InsertWords_Mock_RollsBack(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ecdict`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	n, err := repo.InsertWords(context.Background(), []domain.Word{{Value: "do"}})
	assert.ErrorContains(t, err, "disk full")
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Count_Mock(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ecdict`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Integration tests (testcontainers)
// ---------------------------------------------------------------------------

func TestRepo_Integration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := NewRepo(pool, postgres.NewTxManager(pool))
	ctx := context.Background()

	lower := testhelper.UniqueWord("word")
	capital := testhelper.UniqueWord("Name")

	n, err := repo.InsertWords(ctx, []domain.Word{
		{Value: lower, Translation: `n. one\ntwo`, BNC: domain.Rank(3)},
		{Value: capital, Exchange: domain.ParseExchange("s:names")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.InsertWords(ctx, []domain.Word{{Value: lower}})
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := repo.QueryList(ctx, []string{lower, capital[:1] + "AME" + capital[4:]})
	require.NoError(t, err)
	require.Len(t, got, 2)

	byValue := map[string]domain.Word{}
	for _, w := range got {
		byValue[w.Value] = w
	}
	assert.Equal(t, "n. one\ntwo", byValue[lower].Translation)
	require.NotNil(t, byValue[lower].BNC)
	assert.Equal(t, 3, *byValue[lower].BNC)
	assert.Contains(t, byValue, capital)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 2)
	assert.NoError(t, repo.Ping(ctx))
}
