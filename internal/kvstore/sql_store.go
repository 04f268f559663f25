package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLStore keeps entries in a single kv_entries table on any supported dialect.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLStore(ctx context.Context, dialect Dialect, config DialectConfig) (*SQLStore, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := dialect.ConfigureConnection(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	store := &SQLStore{db: db, dialect: dialect}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// NewSQLiteStore opens (or creates) a sqlite file. An empty path uses eduquiz.db.
func NewSQLiteStore(ctx context.Context, path string) (*SQLStore, error) {
	return NewSQLStore(ctx, NewSQLiteDialect(), DialectConfig{Path: path})
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.CreateTableQuery()); err != nil {
		return fmt.Errorf("failed to create kv_entries table: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(
		ctx,
		s.dialect.RewriteQuery(`SELECT entry_value FROM kv_entries WHERE entry_key = ?`),
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(
		ctx,
		s.dialect.RewriteQuery(s.dialect.UpsertQuery()),
		key,
		value,
		time.Now().UTC().UnixNano(),
	)
	return err
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(
		ctx,
		s.dialect.RewriteQuery(`DELETE FROM kv_entries WHERE entry_key = ?`),
		key,
	)
	return err
}

func (s *SQLStore) String() string {
	return fmt.Sprintf("sql_store(%s)", s.dialect.DriverName())
}
