package cache

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/dekarrin/rezi"
	"modernc.org/sqlite"
)

// SQLite is a Cache backed by a single-table SQLite database. Rows are
// stored as a REZI-encoded, base64-wrapped blob, the same
// encode-then-base64 shape server/dao/sqlite uses for its own binary
// columns.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if necessary) a counting-table cache database
// at file.
func NewSQLite(file string) (*SQLite, error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, wrapDBError(err)
	}

	c := &SQLite{db: db}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SQLite) init() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS counting_table_rows (
		alphabet_size INTEGER NOT NULL,
		t INTEGER NOT NULL,
		p INTEGER NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (alphabet_size, t, p)
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (c *SQLite) Get(ctx context.Context, key Key) (Row, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT value FROM counting_table_rows WHERE alphabet_size = ? AND t = ? AND p = ?;`,
		key.AlphabetSize, key.T, key.P)

	var encoded string
	if err := row.Scan(&encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Row{}, ErrNotFound
		}
		return Row{}, wrapDBError(err)
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Row{}, fmt.Errorf("cache: stored value for %s is not valid base64: %w", key, err)
	}

	var value []byte
	n, err := rezi.DecBinary(blob, &value)
	if err != nil {
		return Row{}, fmt.Errorf("cache: REZI decode for %s: %w", key, err)
	}
	if n != len(blob) {
		return Row{}, fmt.Errorf("cache: REZI decode for %s consumed %d/%d bytes", key, n, len(blob))
	}

	return Row{Key: key, Value: value}, nil
}

func (c *SQLite) Put(ctx context.Context, row Row) error {
	blob := rezi.EncBinary(row.Value)
	encoded := base64.StdEncoding.EncodeToString(blob)

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO counting_table_rows (alphabet_size, t, p, value) VALUES (?, ?, ?, ?)
		 ON CONFLICT(alphabet_size, t, p) DO UPDATE SET value = excluded.value;`,
		row.Key.AlphabetSize, row.Key.T, row.Key.P, encoded)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (c *SQLite) Close() error {
	return c.db.Close()
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("%s: %w", sqlite.ErrorCodeString[sqliteErr.Code()], err)
	}
	return err
}
