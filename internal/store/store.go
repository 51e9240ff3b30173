// Package store provides optional SQLite persistence for commit history,
// per-period summaries, and generated chart metadata.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/git"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Repository is one tracked repository row.
type Repository struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	RemoteURL    string `json:"remote_url,omitempty"`
	Branch       string `json:"branch,omitempty"`
	TotalCommits int    `json:"total_commits"`
	UpdatedAt    string `json:"updated_at"`
}

// ChartRecord is the stored metadata for one generated chart image.
type ChartRecord struct {
	ID         int64      `json:"id"`
	Kind       chart.Kind `json:"chart_kind"`
	Title      string     `json:"title"`
	OutputName string     `json:"output_name"`
	FilePath   string     `json:"file_path"`
	Resolution int        `json:"resolution"`
	CreatedAt  string     `json:"created_at"`
}

// Store is the SQLite persistence layer.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path with WAL mode and runs
// migrations. Parent directories are created as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("store: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS repositories (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			name          TEXT    NOT NULL UNIQUE,
			remote_url    TEXT,
			branch        TEXT,
			total_commits INTEGER NOT NULL DEFAULT 0,
			created_at    TEXT    NOT NULL DEFAULT (datetime('now')),
			updated_at    TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE TABLE IF NOT EXISTS commits (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			repository_id INTEGER NOT NULL,
			commit_hash   TEXT    NOT NULL,
			timestamp     TEXT    NOT NULL,
			hour          INTEGER NOT NULL,
			day_of_week   INTEGER NOT NULL,
			month         INTEGER NOT NULL,
			year          INTEGER NOT NULL,
			author_name   TEXT    NOT NULL,
			author_email  TEXT,
			message       TEXT    NOT NULL,
			created_at    TEXT    NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY (repository_id) REFERENCES repositories(id) ON DELETE CASCADE,
			UNIQUE (repository_id, commit_hash)
		);

		CREATE INDEX IF NOT EXISTS idx_commit_hour  ON commits(hour);
		CREATE INDEX IF NOT EXISTS idx_commit_day   ON commits(day_of_week);
		CREATE INDEX IF NOT EXISTS idx_commit_month ON commits(month);

		CREATE TABLE IF NOT EXISTS commit_summaries (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			repository_id INTEGER NOT NULL,
			period_type   TEXT    NOT NULL,
			period_value  INTEGER NOT NULL,
			commit_count  INTEGER NOT NULL DEFAULT 0,
			updated_at    TEXT    NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY (repository_id) REFERENCES repositories(id) ON DELETE CASCADE,
			UNIQUE (repository_id, period_type, period_value)
		);

		CREATE TABLE IF NOT EXISTS charts (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			repository_id INTEGER NOT NULL,
			chart_type    TEXT    NOT NULL,
			title         TEXT    NOT NULL,
			output_name   TEXT    NOT NULL,
			file_path     TEXT    NOT NULL,
			resolution    INTEGER NOT NULL,
			created_at    TEXT    NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY (repository_id) REFERENCES repositories(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_charts_repo ON charts(repository_id, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// UpsertRepository inserts or refreshes a repository row and returns its ID.
func (s *Store) UpsertRepository(name, remoteURL, branch string, totalCommits int) (int64, error) {
	_, err := s.db.Exec(
		`INSERT INTO repositories (name, remote_url, branch, total_commits)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		     remote_url    = excluded.remote_url,
		     branch        = excluded.branch,
		     total_commits = excluded.total_commits,
		     updated_at    = datetime('now')`,
		name, remoteURL, branch, totalCommits,
	)
	if err != nil {
		return 0, fmt.Errorf("store: upsert repository: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(`SELECT id FROM repositories WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("store: repository id: %w", err)
	}
	return id, nil
}

// GetRepository returns the repository row by name, or sql.ErrNoRows.
func (s *Store) GetRepository(name string) (*Repository, error) {
	row := s.db.QueryRow(
		`SELECT id, name, ifnull(remote_url, ''), ifnull(branch, ''), total_commits, updated_at
		 FROM repositories WHERE name = ?`, name,
	)
	var r Repository
	if err := row.Scan(&r.ID, &r.Name, &r.RemoteURL, &r.Branch, &r.TotalCommits, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertCommits stores commits for a repository, skipping hashes already
// present. Returns the number of newly inserted rows.
func (s *Store) InsertCommits(repositoryID int64, commits []git.Commit) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare(
		`INSERT OR IGNORE INTO commits
		 (repository_id, commit_hash, timestamp, hour, day_of_week, month, year, author_name, author_email, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, c := range commits {
		res, err := stmt.Exec(
			repositoryID, c.SHA, c.Date.Format(time.RFC3339),
			c.Date.Hour(), int(c.Date.Weekday()), int(c.Date.Month()), c.Date.Year(),
			c.Author, c.Email, c.Subject,
		)
		if err != nil {
			return 0, fmt.Errorf("store: insert commit %s: %w", c.SHA, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	return inserted, nil
}

// UpsertSummaries replaces the per-period commit counts for one period type.
func (s *Store) UpsertSummaries(repositoryID int64, kind commitdata.PeriodKind, records []commitdata.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(
		`DELETE FROM commit_summaries WHERE repository_id = ? AND period_type = ?`,
		repositoryID, kind.String(),
	); err != nil {
		return fmt.Errorf("store: clear summaries: %w", err)
	}

	for _, r := range records {
		if _, err := tx.Exec(
			`INSERT INTO commit_summaries (repository_id, period_type, period_value, commit_count)
			 VALUES (?, ?, ?, ?)`,
			repositoryID, kind.String(), r.Period, r.Count,
		); err != nil {
			return fmt.Errorf("store: insert summary: %w", err)
		}
	}

	return tx.Commit()
}

// Summaries returns the stored per-period counts for one period type,
// ordered by period.
func (s *Store) Summaries(repositoryID int64, kind commitdata.PeriodKind) ([]commitdata.Record, error) {
	rows, err := s.db.Query(
		`SELECT period_value, commit_count FROM commit_summaries
		 WHERE repository_id = ? AND period_type = ?
		 ORDER BY period_value`,
		repositoryID, kind.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("store: query summaries: %w", err)
	}
	defer rows.Close()

	var records []commitdata.Record
	for rows.Next() {
		var period, count int
		if err := rows.Scan(&period, &count); err != nil {
			return nil, err
		}
		record, err := commitdata.NewRecord(kind, period, count)
		if err != nil {
			return nil, fmt.Errorf("store: stored summary invalid: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// RecordChart stores metadata for a generated chart image.
func (s *Store) RecordChart(repositoryID int64, cfg chart.Configuration, filePath string) error {
	_, err := s.db.Exec(
		`INSERT INTO charts (repository_id, chart_type, title, output_name, file_path, resolution)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		repositoryID, cfg.Kind.String(), cfg.Title, cfg.OutputName, filePath, cfg.Style.Resolution,
	)
	if err != nil {
		return fmt.Errorf("store: record chart: %w", err)
	}
	return nil
}

// Charts returns the chart history for a repository, newest first.
func (s *Store) Charts(repositoryID int64, limit int) ([]ChartRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, chart_type, title, output_name, file_path, resolution, created_at
		 FROM charts WHERE repository_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		repositoryID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("store: query charts: %w", err)
	}
	defer rows.Close()

	var records []ChartRecord
	for rows.Next() {
		var rec ChartRecord
		var kindName string
		if err := rows.Scan(&rec.ID, &kindName, &rec.Title, &rec.OutputName, &rec.FilePath, &rec.Resolution, &rec.CreatedAt); err != nil {
			return nil, err
		}
		kind, err := chart.ParseKindName(kindName)
		if err != nil {
			return nil, fmt.Errorf("store: stored chart invalid: %w", err)
		}
		rec.Kind = kind
		records = append(records, rec)
	}
	return records, rows.Err()
}
