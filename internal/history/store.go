// Package history records matrix operations in a SQLite journal.
//
// The journal stores provenance only (which files were combined, when, and
// what came out) — never matrix contents. Matrices live exclusively in the
// text format handled by pkg/sparse.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// dbFileName is the journal database file inside the data directory.
const dbFileName = "history.db"

// schemaSQL creates the operations table on first open.
const schemaSQL = `CREATE TABLE IF NOT EXISTS operations (
    operation_id TEXT PRIMARY KEY,
    op TEXT NOT NULL,
    left_path TEXT NOT NULL,
    right_path TEXT NOT NULL,
    result_path TEXT NOT NULL,
    result_rows INTEGER NOT NULL,
    result_cols INTEGER NOT NULL,
    result_nnz INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

// Record is one journaled matrix operation.
type Record struct {
	OperationID string    // UUID v7, generated on insert.
	Op          string    // "add", "sub", or "mul".
	LeftPath    string    // first operand file.
	RightPath   string    // second operand file.
	ResultPath  string    // written result file.
	ResultRows  int       // result row count.
	ResultCols  int       // result column count.
	ResultNNZ   int       // non-zero entry count of the result.
	CreatedAt   time.Time
}

// Store is an open journal database.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the journal
// database inside it, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one operation. The OperationID and CreatedAt fields of r
// are ignored; a fresh UUID v7 and the current UTC time are used.
func (s *Store) Record(r Record) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO operations
		 (operation_id, op, left_path, right_path, result_path, result_rows, result_cols, result_nnz, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), r.Op, r.LeftPath, r.RightPath, r.ResultPath,
		r.ResultRows, r.ResultCols, r.ResultNNZ,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("recording operation: %w", err)
	}
	return id.String(), nil
}

// List returns the most recent operations, newest first, at most limit.
// A non-positive limit returns everything.
func (s *Store) List(limit int) ([]Record, error) {
	q := `SELECT operation_id, op, left_path, right_path, result_path,
	             result_rows, result_cols, result_nnz, created_at
	      FROM operations ORDER BY created_at DESC, operation_id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var createdAt string
		if err := rows.Scan(
			&r.OperationID, &r.Op, &r.LeftPath, &r.RightPath, &r.ResultPath,
			&r.ResultRows, &r.ResultCols, &r.ResultNNZ, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning operation row: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database handle. Safe to call on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
