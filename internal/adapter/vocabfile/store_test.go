package vocabfile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const sampleJSON = `{
    "name": "stale name",
    "type": "SUBTITLES",
    "language": "english",
    "size": 99,
    "relateVideoPath": "/movies/up.mkv",
    "subtitlesTrackId": 1,
    "wordList": [
        {
            "value": "balloon",
            "usphone": "bəˈlun",
            "ukphone": "bəˈluːn",
            "definition": "n. large bag filled with gas",
            "translation": "n. 气球",
            "pos": "",
            "collins": 2,
            "oxford": true,
            "tag": "zk gk cet4",
            "bnc": 5211,
            "frq": 4932,
            "exchange": "s:balloons/0:balloon",
            "externalCaptions": [],
            "captions": [
                {"start": "00:01:02,000", "end": "00:01:04,000", "content": "A balloon!"}
            ]
        },
        {
            "value": "went",
            "bnc": null,
            "frq": 0,
            "exchange": "0:go/1:p",
            "links": [
                {"relateVideoPath": "/m/a.mkv", "subtitlesTrackId": 2, "subtitlesName": "a", "start": "1", "end": "2", "content": "They went."}
            ]
        }
    ]
}`

func newTestStore() *Store {
	return NewStore(slog.Default(), 2)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ---------------------------------------------------------------------------
// Load tests
// ---------------------------------------------------------------------------

func TestStore_Load_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "Up.json", sampleJSON)

	v, err := newTestStore().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Up", v.Name)
	assert.Equal(t, domain.VocabularySubtitles, v.Type)
	assert.Equal(t, 2, v.Size)
	assert.Equal(t, "/movies/up.mkv", v.RelateVideoPath)
	require.Len(t, v.WordList, 2)

	balloon := v.WordList[0]
	assert.Equal(t, 5211, *balloon.BNC)
	assert.True(t, balloon.Oxford)
	require.Len(t, balloon.Captions, 1)
	assert.Equal(t, "A balloon!", balloon.Captions[0].Content)

	went := v.WordList[1]
	assert.Nil(t, went.BNC)
	assert.Equal(t, 0, *went.FRQ)
	lemma, ok := went.Lemma()
	assert.True(t, ok)
	assert.Equal(t, "go", lemma)
	require.Len(t, went.ExternalCaptions, 1, "legacy links are read as external captions")
	assert.Equal(t, "They went.", went.ExternalCaptions[0].Content)
}

func TestStore_Load_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestStore().Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Load_Invalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "broken json", file: "a.json", content: `{"wordList": [`},
		{name: "unknown type", file: "b.json", content: `{"type": "PDF", "wordList": []}`},
		{name: "broken yaml", file: "c.yaml", content: "wordList: [\n  - value: a\n  oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, dir, tt.file, tt.content)
			_, err := newTestStore().Load(context.Background(), path)
			assert.ErrorIs(t, err, domain.ErrInvalidVocabulary)
		})
	}
}

func TestStore_Load_DefaultsTypeToDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "plain.json", `{"language": "english", "wordList": [{"value": "a"}]}`)

	v, err := newTestStore().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, domain.VocabularyDocument, v.Type)
	assert.Equal(t, 1, v.Size)
}

func TestStore_Load_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestStore().Load(ctx, "whatever.json")
	assert.ErrorIs(t, err, context.Canceled)
}

// ---------------------------------------------------------------------------
// LoadMany tests
// ---------------------------------------------------------------------------

func TestStore_LoadMany_KeepsOrderAndFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"wordList": [{"value": "x"}]}`)
	b := filepath.Join(dir, "b.json")
	c := writeFile(t, dir, "c.yml", "wordList:\n  - value: y\n  - value: z\n")

	results := newTestStore().LoadMany(context.Background(), []string{a, b, c})

	require.Len(t, results, 3)
	assert.Equal(t, a, results[0].Path)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, domain.ErrNotFound)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 2, results[2].Vocabulary.Size)
	assert.Equal(t, "c", results[2].Vocabulary.Name)
}

// ---------------------------------------------------------------------------
// Save tests
// ---------------------------------------------------------------------------

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	words := []domain.Word{
		{
			Value:    "did",
			BNC:      domain.Rank(10),
			Exchange: domain.ParseExchange("0:do/1:p"),
			ExternalCaptions: []domain.ExternalCaption{
				{RelateVideoPath: "/v.mkv", SubtitlesTrackID: 3, SubtitlesName: "v", Start: "1", End: "2", Content: "I did."},
			},
		},
		{Value: "cat", Captions: []domain.Caption{{Start: "a", End: "b", Content: "A cat."}}},
	}
	v := domain.NewVocabulary("ignored", domain.VocabularyMKV, words)
	v.RelateVideoPath = "/v.mkv"

	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "saved"+ext)
			store := newTestStore()
			require.NoError(t, store.Save(context.Background(), v, path))

			got, err := store.Load(context.Background(), path)
			require.NoError(t, err)

			assert.Equal(t, "saved", got.Name)
			assert.Equal(t, domain.VocabularyMKV, got.Type)
			assert.Equal(t, v.WordList, got.WordList)
			assert.Equal(t, 2, got.Size)

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary file must not be left behind")
		})
	}
}

func TestStore_Save_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "out.json")
	err := newTestStore().Save(context.Background(), domain.Vocabulary{}, path)
	assert.Error(t, err)
}

func TestFromWord_EmptyListsEncodeAsArrays(t *testing.T) {
	t.Parallel()

	rec := FromWord(domain.NewWord("x"))
	assert.NotNil(t, rec.Captions)
	assert.NotNil(t, rec.ExternalCaptions)
	assert.Equal(t, "", rec.Exchange)
}
