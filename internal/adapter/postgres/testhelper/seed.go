package testhelper

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// UniqueWord returns a word that no other test uses, so tests sharing the
// container do not collide on the ecdict primary key.
func UniqueWord(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// SeedWords inserts ecdict rows for words and returns them as stored.
// Only the columns a test usually asserts on are filled.
func SeedWords(t *testing.T, pool *pgxpool.Pool, words ...domain.Word) []domain.Word {
	t.Helper()

	ctx := context.Background()
	for _, w := range words {
		_, err := pool.Exec(ctx,
			`INSERT INTO ecdict (word, translation, pos, tag, bnc, frq, exchange)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			w.Value, w.Translation, w.POS, w.Tag, w.BNC, w.FRQ, w.Exchange.String(),
		)
		if err != nil {
			t.Fatalf("SeedWords: insert %q: %v", w.Value, err)
		}
	}
	return words
}
