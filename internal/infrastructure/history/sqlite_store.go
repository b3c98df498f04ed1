package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/alexisbeaulieu97/searchviz/internal/ports"
)

// DefaultLimit is the number of runs returned when Recent is called with limit <= 0.
const DefaultLimit = 20

const schema = `
CREATE TABLE IF NOT EXISTS search_runs (
	id          TEXT PRIMARY KEY,
	algorithm   TEXT NOT NULL,
	input       TEXT NOT NULL,
	target      INTEGER NOT NULL,
	found       INTEGER NOT NULL,
	found_index INTEGER NOT NULL,
	comparisons INTEGER NOT NULL,
	resorted    INTEGER NOT NULL,
	completed   INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_search_runs_created ON search_runs(created_at DESC);
`

// SQLiteStore implements ports.HistoryStore on a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates (if needed) and opens the history database at path.
func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("history path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Record inserts a finished run.
func (s *SQLiteStore) Record(ctx context.Context, record ports.RunRecord) error {
	if record.ID == "" {
		return errors.New("run id is required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_runs (id, algorithm, input, target, found, found_index, comparisons, resorted, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.Algorithm,
		record.Input,
		record.Target,
		boolToInt(record.Found),
		record.Index,
		record.Comparisons,
		boolToInt(record.Resorted),
		boolToInt(record.Completed),
		createdAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", record.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, algorithm, input, target, found, found_index, comparisons, resorted, completed, created_at
		FROM search_runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []ports.RunRecord
	for rows.Next() {
		var (
			rec                         ports.RunRecord
			found, resorted, completed int
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Algorithm,
			&rec.Input,
			&rec.Target,
			&found,
			&rec.Index,
			&rec.Comparisons,
			&resorted,
			&completed,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Found = found != 0
		rec.Resorted = resorted != 0
		rec.Completed = completed != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
