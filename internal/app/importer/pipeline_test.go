package importer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// mockRepo records calls to verify pipeline behavior.
type mockRepo struct {
	mu sync.Mutex

	batches  [][]domain.Word
	failOn   int // 1-based batch number that fails; 0 never
	existing map[string]bool
}

func (m *mockRepo) InsertWords(_ context.Context, words []domain.Word) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.batches = append(m.batches, words)
	if m.failOn == len(m.batches) {
		return 0, errors.New("insert failed")
	}
	n := 0
	for _, w := range words {
		if !m.existing[w.Value] {
			n++
		}
	}
	return n, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

const sampleCSV = `word,phonetic,translation,bnc,frq,exchange
do,du:,v. 做,40,35,p:did/d:done
did,dɪd,v. 做过,,,0:do/1:p
go,gəʊ,v. 去,60,70,p:went
went,went,v. 去过,,,0:go/1:p
,,,,,
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecdict.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{existing: map[string]bool{"go": true}}
	p := NewPipeline(testLogger(), repo, Config{CSVPath: writeCSV(t), BatchSize: 3})

	res, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Parsed)
	assert.Equal(t, 3, res.Inserted)
	assert.Equal(t, 2, res.Skipped) // blank row + existing "go"
	assert.False(t, res.HasErrors())
	require.Len(t, repo.batches, 2)
	assert.Len(t, repo.batches[0], 3)
	assert.Len(t, repo.batches[1], 1)
}

func TestPipeline_Run_BatchFailureContinues(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{failOn: 1}
	p := NewPipeline(testLogger(), repo, Config{CSVPath: writeCSV(t), BatchSize: 2})

	res, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Errors)
	assert.Equal(t, 2, res.Inserted)
	assert.True(t, res.HasErrors())
	assert.Len(t, repo.batches, 2)
}

func TestPipeline_Run_DryRun(t *testing.T) {
	t.Parallel()

	p := NewPipeline(testLogger(), nil, Config{CSVPath: writeCSV(t), DryRun: true})

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Parsed)
	assert.Zero(t, res.Inserted)
	assert.Equal(t, 5, res.Skipped)
}

func TestPipeline_Run_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewPipeline(testLogger(), &mockRepo{}, Config{}).Run(context.Background())
	assert.ErrorContains(t, err, "csv path not configured")

	_, err = NewPipeline(testLogger(), &mockRepo{}, Config{CSVPath: "/nonexistent/ecdict.csv"}).Run(context.Background())
	assert.ErrorContains(t, err, "parse ecdict")

	_, err = NewPipeline(testLogger(), nil, Config{CSVPath: writeCSV(t)}).Run(context.Background())
	assert.ErrorContains(t, err, "no dictionary repository")
}

func TestPipeline_Run_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &mockRepo{}
	_, err := NewPipeline(testLogger(), repo, Config{CSVPath: writeCSV(t)}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.batches)
}
