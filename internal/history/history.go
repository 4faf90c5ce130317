// Package history keeps a per-home SQLite log of jump operations.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver with database/sql
)

// Entry is one recorded jump.
type Entry struct {
	Context  string
	Key      string
	Path     string
	JumpedAt string // RFC 3339
}

// DB wraps the jump history database.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path and initialises the schema.
func Open(path string) (*DB, error) {
	sqldb, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("history.Open: %w", err)
	}
	d := &DB{db: sqldb}
	if err := d.createSchema(); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("history.Open createSchema: %w", err)
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) createSchema() error {
	_, err := d.db.Exec(`CREATE TABLE IF NOT EXISTS jumps (
		rowid     INTEGER PRIMARY KEY AUTOINCREMENT,
		context   TEXT NOT NULL,
		key       TEXT NOT NULL,
		path      TEXT NOT NULL,
		jumped_at TEXT NOT NULL
	)`)
	return err
}

// Record appends one jump to the log.
func (d *DB) Record(contextID, key, path string) error {
	_, err := d.db.Exec(
		`INSERT INTO jumps (context, key, path, jumped_at) VALUES (?, ?, ?, ?)`,
		contextID, key, path, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("history.Record: %w", err)
	}
	return nil
}

// Recent returns the newest entries first, optionally filtered by context.
func (d *DB) Recent(limit int, contextID string) ([]Entry, error) {
	q := `SELECT context, key, path, jumped_at FROM jumps`
	var params []any
	if contextID != "" {
		q += ` WHERE context = ?`
		params = append(params, contextID)
	}
	q += ` ORDER BY rowid DESC LIMIT ?`
	params = append(params, limit)

	rows, err := d.db.Query(q, params...)
	if err != nil {
		return nil, fmt.Errorf("history.Recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Context, &e.Key, &e.Path, &e.JumpedAt); err != nil {
			return nil, fmt.Errorf("history.Recent: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes all but the newest keep entries.
func (d *DB) Prune(keep int) error {
	_, err := d.db.Exec(
		`DELETE FROM jumps WHERE rowid NOT IN (
			SELECT rowid FROM jumps ORDER BY rowid DESC LIMIT ?
		)`, keep,
	)
	if err != nil {
		return fmt.Errorf("history.Prune: %w", err)
	}
	return nil
}
