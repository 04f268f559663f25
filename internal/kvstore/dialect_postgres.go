package kvstore

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

type PostgresDialect struct{}

func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *PostgresDialect) RewriteQuery(query string) string {
	return rewritePlaceholdersToNumbered(query)
}

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	return nil
}

func (d *PostgresDialect) CreateTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS kv_entries (
		entry_key TEXT PRIMARY KEY,
		entry_value TEXT NOT NULL,
		updated_at_unix BIGINT NOT NULL
	);`
}

func (d *PostgresDialect) UpsertQuery() string {
	return `INSERT INTO kv_entries (entry_key, entry_value, updated_at_unix)
		VALUES (?, ?, ?)
		ON CONFLICT (entry_key) DO UPDATE SET
			entry_value = EXCLUDED.entry_value,
			updated_at_unix = EXCLUDED.updated_at_unix`
}
