package kvstore

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const defaultSQLitePath = "eduquiz.db"

type SQLiteDialect struct{}

func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(config DialectConfig) string {
	if strings.TrimSpace(config.Path) == "" {
		return defaultSQLitePath
	}
	return config.Path
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	return query
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// One writer at a time; the busy timeout covers a second process holding the file.
	db.SetMaxOpenConns(1)

	_, err := db.Exec(`PRAGMA busy_timeout = 5000;`)
	return err
}

func (d *SQLiteDialect) CreateTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS kv_entries (
		entry_key TEXT PRIMARY KEY,
		entry_value TEXT NOT NULL,
		updated_at_unix INTEGER NOT NULL
	);`
}

func (d *SQLiteDialect) UpsertQuery() string {
	return `INSERT INTO kv_entries (entry_key, entry_value, updated_at_unix)
		VALUES (?, ?, ?)
		ON CONFLICT(entry_key) DO UPDATE SET
			entry_value = excluded.entry_value,
			updated_at_unix = excluded.updated_at_unix`
}
