package kvstore

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type MySQLDialect struct{}

func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	return nil
}

func (d *MySQLDialect) CreateTableQuery() string {
	// TEXT cannot be a primary key in MySQL.
	return `CREATE TABLE IF NOT EXISTS kv_entries (
		entry_key VARCHAR(191) NOT NULL PRIMARY KEY,
		entry_value LONGTEXT NOT NULL,
		updated_at_unix BIGINT NOT NULL
	);`
}

func (d *MySQLDialect) UpsertQuery() string {
	return `INSERT INTO kv_entries (entry_key, entry_value, updated_at_unix)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			entry_value = VALUES(entry_value),
			updated_at_unix = VALUES(updated_at_unix)`
}
