// Package ecdict implements the dictionary repository on a PostgreSQL copy of
// the ECDICT table.
package ecdict

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/vocabkit/internal/adapter/postgres"
	"github.com/heartmarshall/vocabkit/internal/domain"
)

const (
	table = "ecdict"
	// insertChunk rows of len(columns) parameters each.
	insertChunk = 1000
)

var columns = []string{
	"word", "british_phonetic", "american_phonetic", "definition", "translation",
	"pos", "collins", "oxford", "tag", "bnc", "frq", "exchange",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides dictionary queries on PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// NewRepo creates a new ECDICT repository.
func NewRepo(db postgres.DB, tx *postgres.TxManager) *Repo {
	return &Repo{db: db, tx: tx}
}

// QueryList returns the entries whose word matches one of words exactly or
// ignoring case. The words travel as two text[] parameters, so the batch
// size is not bound by the protocol's parameter limit.
func (r *Repo) QueryList(ctx context.Context, words []string) ([]domain.Word, error) {
	if len(words) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}

	query, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("(word = ANY(?::text[]) OR lower(word) = ANY(?::text[]))", words, lowered)).
		OrderBy("word").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "ecdict", "query list")
	}
	defer rows.Close()

	out := make([]domain.Word, 0, len(words))
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, postgres.MapError(err, "ecdict", "scan")
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "ecdict", "rows")
	}
	return out, nil
}

// InsertWords stores words in one transaction, skipping words already present.
// Returns the number of inserted rows.
func (r *Repo) InsertWords(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)
		for start := 0; start < len(words); start += insertChunk {
			end := min(start+insertChunk, len(words))

			ins := builder.Insert(table).Columns(columns...)
			for _, w := range words[start:end] {
				ins = ins.Values(values(w)...)
			}
			query, args, err := ins.Suffix("ON CONFLICT (word) DO NOTHING").ToSql()
			if err != nil {
				return fmt.Errorf("build insert: %w", err)
			}

			tag, err := q.Exec(ctx, query, args...)
			if err != nil {
				return postgres.MapError(err, "ecdict", "rows "+strconv.Itoa(start)+"-"+strconv.Itoa(end))
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Count returns the number of entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "ecdict", "count")
	}
	return n, nil
}

// Ping checks that the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (domain.Word, error) {
	var (
		w        domain.Word
		exchange string
	)
	err := row.Scan(
		&w.Value, &w.UKPhone, &w.USPhone, &w.Definition, &w.Translation,
		&w.POS, &w.Collins, &w.Oxford, &w.Tag, &w.BNC, &w.FRQ, &exchange,
	)
	if err != nil {
		return domain.Word{}, err
	}
	w.Definition = unescape(w.Definition)
	w.Translation = unescape(w.Translation)
	w.Exchange = domain.ParseExchange(exchange)
	return w, nil
}

func values(w domain.Word) []any {
	return []any{
		w.Value, w.UKPhone, w.USPhone, w.Definition, w.Translation,
		w.POS, w.Collins, w.Oxford, w.Tag, w.BNC, w.FRQ, w.Exchange.String(),
	}
}

// unescape turns the literal "\n" sequences stored by ECDICT into newlines.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
