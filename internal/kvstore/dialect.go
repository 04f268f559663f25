package kvstore

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect isolates the SQL differences between the supported databases.
type Dialect interface {
	// DriverName returns the driver name for sql.Open.
	DriverName() string

	// DSN returns the data source name for the connection.
	DSN(config DialectConfig) string

	// RewriteQuery converts ? placeholders when the driver needs another syntax.
	RewriteQuery(query string) string

	// ConfigureConnection applies pool limits and per-connection settings.
	ConfigureConnection(db *sql.DB) error

	// CreateTableQuery returns the DDL for the entries table.
	CreateTableQuery() string

	// UpsertQuery inserts or replaces one entry: (key, value, updated_at_unix).
	UpsertQuery() string
}

type DialectConfig struct {
	// For SQLite
	Path string

	// For PostgreSQL/MySQL
	URL string
}

// DialectFor maps a store type name to its dialect.
func DialectFor(storeType string) (Dialect, bool) {
	switch storeType {
	case "sqlite", "sqlite3":
		return NewSQLiteDialect(), true
	case "postgres", "postgresql":
		return NewPostgresDialect(), true
	case "mysql":
		return NewMySQLDialect(), true
	default:
		return nil, false
	}
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, etc.
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}
