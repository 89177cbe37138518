package store

import (
	"fmt"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// SQLiteLog keeps responses in a local sqlite file. Record order is insertion order (rowid),
// same positional semantics as CSVLog.
type SQLiteLog struct {
	db   *sqlx.DB
	path string
}

type responseRow struct {
	ID        int64  `db:"id"`
	Board     string `db:"board"`
	Timestamp string `db:"ts"`
}

// NewSQLiteLog opens (or creates) the database and makes the schema
func NewSQLiteLog(path string) (*SQLiteLog, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer

	query := `CREATE TABLE IF NOT EXISTS responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		board TEXT NOT NULL,
		ts TEXT NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to create schema: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	log.Printf("[DEBUG] sqlite log %s", path)
	return &SQLiteLog{db: db, path: path}, nil
}

// Load returns all records in insertion order
func (s *SQLiteLog) Load() ([]Response, error) {
	rows, err := s.rows()
	if err != nil {
		return nil, err
	}
	res := make([]Response, 0, len(rows))
	for _, row := range rows {
		res = append(res, Response{Board: row.Board, Timestamp: row.Timestamp})
	}
	return res, nil
}

// Append adds a record to the end
func (s *SQLiteLog) Append(r Response) error {
	if _, err := s.db.Exec(`INSERT INTO responses (board, ts) VALUES (?, ?)`, r.Board, r.Timestamp); err != nil {
		return fmt.Errorf("failed to insert %q: %w", r, err)
	}
	return nil
}

// DeleteMatching removes every record equal to r, duplicates included
func (s *SQLiteLog) DeleteMatching(r Response) (int, error) {
	res, err := s.db.Exec(`DELETE FROM responses WHERE board = ? AND ts = ?`, r.Board, r.Timestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %q: %w", r, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted count: %w", err)
	}
	return int(n), nil
}

// DeleteAt removes the record at position idx if it still equals exp
func (s *SQLiteLog) DeleteAt(idx int, exp Response) error {
	rows, err := s.rows()
	if err != nil {
		return err
	}
	rr := make([]Response, 0, len(rows))
	for _, row := range rows {
		rr = append(rr, Response{Board: row.Board, Timestamp: row.Timestamp})
	}
	if _, err := removeAt(rr, idx, exp); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM responses WHERE id = ?`, rows[idx].ID); err != nil {
		return fmt.Errorf("failed to delete %q at %d: %w", exp, idx, err)
	}
	return nil
}

// Clear removes records with timestamp starting with datePrefix, literal prefix match
func (s *SQLiteLog) Clear(datePrefix string) (int, error) {
	res, err := s.db.Exec(`DELETE FROM responses WHERE substr(ts, 1, length(?)) = ?`, datePrefix, datePrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to clear %q: %w", datePrefix, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get cleared count: %w", err)
	}
	return int(n), nil
}

// Replace overwrites all records in a single transaction
func (s *SQLiteLog) Replace(rr []Response) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM responses`); err != nil {
		return fmt.Errorf("failed to clean responses: %w", err)
	}
	for _, r := range rr {
		if _, err := tx.Exec(`INSERT INTO responses (board, ts) VALUES (?, ?)`, r.Board, r.Timestamp); err != nil {
			return fmt.Errorf("failed to insert %q: %w", r, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteLog) Close() error {
	return s.db.Close()
}

func (s *SQLiteLog) String() string {
	return "sqlite:" + s.path
}

func (s *SQLiteLog) rows() ([]responseRow, error) {
	rows := []responseRow{}
	if err := s.db.Select(&rows, `SELECT id, board, ts FROM responses ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	return rows, nil
}
