// Package migrations embeds the goose migrations of the dictionary schema.
package migrations

import "embed"

// Postgres holds migrations for the postgres dialect.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds migrations for the sqlite3 dialect.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
