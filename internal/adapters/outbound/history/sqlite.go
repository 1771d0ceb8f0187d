package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sqlskim/baseline/internal/domain"
)

// DefaultSQLiteFile is where SQLiteHistory keeps runs unless told otherwise.
const DefaultSQLiteFile = ".baseline/history/runs.db"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	id          TEXT NOT NULL UNIQUE,
	project     TEXT NOT NULL,
	timestamp   TEXT NOT NULL,
	commit_hash TEXT NOT NULL DEFAULT '',
	root        TEXT NOT NULL,
	fixtures    INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	verdict     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_project ON runs(project, seq);
`

// SQLiteHistory implements domain.RunHistory on a SQLite database. The
// database is opened lazily per call so the adapter can be constructed
// before the project path is known.
type SQLiteHistory struct {
	file string
}

// NewSQLite creates a SQLiteHistory. file is resolved against the project
// path when relative; empty selects DefaultSQLiteFile.
func NewSQLite(file string) *SQLiteHistory {
	if file == "" {
		file = DefaultSQLiteFile
	}
	return &SQLiteHistory{file: file}
}

func (h *SQLiteHistory) open(projectPath string) (*sql.DB, error) {
	fp := h.file
	if !filepath.IsAbs(fp) {
		fp = filepath.Join(projectPath, fp)
	}
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fp)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

// Save inserts entry. Entries are keyed by project so one database can hold
// several corpora.
func (h *SQLiteHistory) Save(projectPath string, entry domain.RunEntry) error {
	db, err := h.open(projectPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO runs (id, project, timestamp, commit_hash, root, fixtures, failed, verdict)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, projectKey(projectPath), entry.Timestamp, entry.CommitHash,
		entry.Root, entry.Fixtures, entry.Failed, string(entry.Verdict),
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", entry.ID, err)
	}
	return nil
}

// Load returns the project's runs, oldest first.
func (h *SQLiteHistory) Load(projectPath string) ([]domain.RunEntry, error) {
	db, err := h.open(projectPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT id, timestamp, commit_hash, root, fixtures, failed, verdict
		 FROM runs WHERE project = ? ORDER BY seq`,
		projectKey(projectPath),
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []domain.RunEntry
	for rows.Next() {
		var (
			e       domain.RunEntry
			verdict string
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.CommitHash, &e.Root, &e.Fixtures, &e.Failed, &verdict); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Verdict = domain.Verdict(verdict)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func projectKey(projectPath string) string {
	if abs, err := filepath.Abs(projectPath); err == nil {
		return abs
	}
	return projectPath
}
