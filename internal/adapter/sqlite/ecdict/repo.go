// Package ecdict implements the dictionary repository on an SQLite copy of
// the ECDICT table.
package ecdict

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

const (
	table = "ecdict"
	// queryChunk keeps IN lists under SQLite's bound-parameter limit.
	queryChunk = 500
	// insertChunk rows of len(columns) parameters each.
	insertChunk = 80
)

var columns = []string{
	"word", "british_phonetic", "american_phonetic", "definition", "translation",
	"pos", "collins", "oxford", "tag", "bnc", "frq", "exchange",
}

// builder uses "?" placeholders, the SQLite default.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Repo provides dictionary queries on SQLite.
type Repo struct {
	db *sql.DB
}

// NewRepo creates a new ECDICT repository.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	Word             string `db:"word"`
	BritishPhonetic  string `db:"british_phonetic"`
	AmericanPhonetic string `db:"american_phonetic"`
	Definition       string `db:"definition"`
	Translation      string `db:"translation"`
	POS              string `db:"pos"`
	Collins          int    `db:"collins"`
	Oxford           bool   `db:"oxford"`
	Tag              string `db:"tag"`
	BNC              *int   `db:"bnc"`
	FRQ              *int   `db:"frq"`
	Exchange         string `db:"exchange"`
}

// QueryList returns the entries whose word matches one of words, ignoring
// case. Unknown words are simply absent from the result.
func (r *Repo) QueryList(ctx context.Context, words []string) ([]domain.Word, error) {
	if len(words) == 0 {
		return nil, nil
	}

	out := make([]domain.Word, 0, len(words))
	for start := 0; start < len(words); start += queryChunk {
		end := min(start+queryChunk, len(words))

		query, args, err := builder.
			Select(columns...).
			From(table).
			Where(sq.Eq{"word": words[start:end]}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build query: %w", err)
		}

		var rows []row
		if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("ecdict query list: %w", err)
		}
		for _, rw := range rows {
			out = append(out, toDomain(rw))
		}
	}
	return out, nil
}

// InsertWords stores words in one transaction. Words already present are
// skipped. Returns the number of inserted rows.
func (r *Repo) InsertWords(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for start := 0; start < len(words); start += insertChunk {
		end := min(start+insertChunk, len(words))

		ins := builder.Insert(table).Columns(columns...)
		for _, w := range words[start:end] {
			ins = ins.Values(values(w)...)
		}
		query, args, err := ins.Suffix("ON CONFLICT(word) DO NOTHING").ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert: %w", err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("ecdict insert: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// Count returns the number of entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("ecdict count: %w", err)
	}
	return n, nil
}

// Ping checks that the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toDomain(rw row) domain.Word {
	return domain.Word{
		Value:       rw.Word,
		USPhone:     rw.AmericanPhonetic,
		UKPhone:     rw.BritishPhonetic,
		Definition:  unescape(rw.Definition),
		Translation: unescape(rw.Translation),
		POS:         rw.POS,
		Collins:     rw.Collins,
		Oxford:      rw.Oxford,
		Tag:         rw.Tag,
		BNC:         rw.BNC,
		FRQ:         rw.FRQ,
		Exchange:    domain.ParseExchange(rw.Exchange),
	}
}

func values(w domain.Word) []any {
	return []any{
		w.Value, w.UKPhone, w.USPhone, w.Definition, w.Translation,
		w.POS, w.Collins, w.Oxford, w.Tag, nullInt(w.BNC), nullInt(w.FRQ), w.Exchange.String(),
	}
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}

// unescape turns the literal "\n" sequences stored by ECDICT into newlines.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
