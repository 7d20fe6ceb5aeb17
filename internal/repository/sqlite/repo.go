// Package sqlite is the durable local storage of familyctl: a key/value
// table that survives restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS local_storage (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type Repository struct {
	connection *sqlx.DB
}

func Open(path string) (*Repository, error) {
	conn, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage %s: %v", path, err)
	}
	// sqlite serializes writers; one connection keeps :memory: databases shared
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to prepare local storage: %v", err)
	}

	return &Repository{connection: conn}, nil
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) GetItem(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sq.Select("value").
		From("local_storage").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var value string
	err = r.connection.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %v", key, err)
	}

	return value, true, nil
}

func (r *Repository) SetItem(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert("local_storage").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to write %s: %v", key, err)
	}

	return nil
}

func (r *Repository) RemoveItem(ctx context.Context, key string) error {
	query, args, err := sq.Delete("local_storage").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %v", key, err)
	}

	return nil
}
