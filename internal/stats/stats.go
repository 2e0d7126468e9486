// Package stats keeps per-run observability counts in SQLite. Informational
// only; nothing downstream consumes it.
package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// retainRuns bounds the runs table to roughly the last 90 daily runs.
const retainRuns = 90

type Store struct {
	db *sql.DB
}

type Run struct {
	Date      string `json:"date"`
	JobsFound int    `json:"jobsFound"`
	Source    string `json:"source"`
}

type Totals struct {
	TotalJobsFound int            `json:"totalJobsFound"`
	BySource       map[string]int `json:"bySource"`
	Runs           []Run          `json:"runs"`
}

func Open(path string) (*Store, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  jobs_found INTEGER NOT NULL DEFAULT 0,
  source TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(date);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// RecordRun appends one run row and trims the table to the retention
// window.
func (s *Store) RecordRun(ctx context.Context, jobsFound int, source string) error {
	date := time.Now().UTC().Format("2006-01-02")
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (date, jobs_found, source) VALUES (?, ?, ?);`,
		date, jobsFound, source,
	); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
DELETE FROM runs
WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?);
`, retainRuns)
	return err
}

// Totals aggregates what the retained runs found, overall and per source.
func (s *Store) Totals(ctx context.Context) (Totals, error) {
	out := Totals{BySource: map[string]int{}}

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, jobs_found, source FROM runs ORDER BY id DESC;`)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Date, &r.JobsFound, &r.Source); err != nil {
			return out, err
		}
		out.Runs = append(out.Runs, r)
		out.TotalJobsFound += r.JobsFound
		out.BySource[r.Source] += r.JobsFound
	}
	return out, rows.Err()
}
