// Package sqlite opens SQLite databases with production pragmas and applies
// the embedded schema migrations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

type options struct {
	busyTimeout int
	synchronous string
	mkdirAll    bool
	readOnly    bool
}

func defaults() options {
	return options{
		busyTimeout: 10_000,
		synchronous: "NORMAL",
	}
}

// Option customises Open.
type Option func(*options)

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds. Default: 10000.
func WithBusyTimeout(ms int) Option { return func(o *options) { o.busyTimeout = ms } }

// WithSynchronous sets PRAGMA synchronous. Default: NORMAL.
func WithSynchronous(mode string) Option { return func(o *options) { o.synchronous = mode } }

// WithMkdirAll creates the parent directory of the database file.
func WithMkdirAll() Option { return func(o *options) { o.mkdirAll = true } }

// WithReadOnly opens the database in read-only mode.
func WithReadOnly() Option { return func(o *options) { o.readOnly = true } }

// Open opens the database at path. Pragmas are passed in the DSN so that every
// pooled connection gets them. An in-memory database is limited to a single
// connection, since each connection would otherwise see its own database.
func Open(ctx context.Context, path string, opts ...Option) (*sql.DB, error) {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}

	memory := path == MemoryPath
	if o.mkdirAll && !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path, o, memory))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if memory {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", path, err)
	}

	return db, nil
}

func dsn(path string, o options, memory bool) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", o.busyTimeout))
	q.Add("_pragma", fmt.Sprintf("synchronous(%s)", strings.ToUpper(o.synchronous)))
	if !memory {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	if o.readOnly {
		q.Set("mode", "ro")
	}
	return "file:" + path + "?" + q.Encode()
}
