// Package sqlite persists final account reports.
//
// Intermediate stream state is never written — a run either completes and
// exports its report in one transaction, or leaves no trace. Each export
// is keyed by a generated run id so successive runs over the same input
// stay distinguishable.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/payline-systems/payline/internal/domain"
)

// DB wraps the report database.
type DB struct {
	db *sql.DB
}

// Migrations returns the schema migration statements.
// Each string is a single SQL statement (SQLite executes one at a time).
// Balances are stored in minor units (1/10000), matching the engine's
// fixed-point representation exactly.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS report_runs (
			run_id      TEXT PRIMARY KEY,
			source      TEXT NOT NULL,
			account_cnt INTEGER NOT NULL,
			created_at  TEXT NOT NULL DEFAULT (datetime('now'))
		)`,

		`CREATE TABLE IF NOT EXISTS account_reports (
			run_id    TEXT NOT NULL REFERENCES report_runs(run_id),
			client    INTEGER NOT NULL,
			available INTEGER NOT NULL,
			held      INTEGER NOT NULL,
			total     INTEGER NOT NULL,
			locked    INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, client)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_account_reports_client ON account_reports(client)`,
	}
}

// Open opens (or creates) the report database at path and applies the
// schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open report db: %w", err)
	}
	for _, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate report db: %w", err)
		}
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error { return d.db.Close() }

// ExportReport writes one run's full account report atomically and
// returns the generated run id.
func (d *DB) ExportReport(source string, summaries []domain.AccountSummary) (string, error) {
	runID := uuid.NewString()

	tx, err := d.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO report_runs (run_id, source, account_cnt) VALUES (?, ?, ?)`,
		runID, source, len(summaries),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, s := range summaries {
		locked := 0
		if s.Locked {
			locked = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO account_reports (run_id, client, available, held, total, locked)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, int64(s.Client), int64(s.Available), int64(s.Held), int64(s.Total), locked,
		); err != nil {
			return "", fmt.Errorf("insert account report: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// Report loads the account rows of one run, ordered by client id.
func (d *DB) Report(runID string) ([]domain.AccountSummary, error) {
	rows, err := d.db.Query(`
		SELECT client, available, held, total, locked
		FROM account_reports WHERE run_id = ? ORDER BY client
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AccountSummary
	for rows.Next() {
		var (
			client, available, held, total int64
			locked                         int
		)
		if err := rows.Scan(&client, &available, &held, &total, &locked); err != nil {
			return nil, err
		}
		out = append(out, domain.AccountSummary{
			Client:    domain.ClientID(client),
			Available: domain.Amount(available),
			Held:      domain.Amount(held),
			Total:     domain.Amount(total),
			Locked:    locked == 1,
		})
	}
	return out, rows.Err()
}

// RunInfo describes one exported run.
type RunInfo struct {
	RunID     string `json:"run_id"`
	Source    string `json:"source"`
	Accounts  int    `json:"accounts"`
	CreatedAt string `json:"created_at"`
}

// Runs lists exported runs, newest first.
func (d *DB) Runs() ([]RunInfo, error) {
	rows, err := d.db.Query(`
		SELECT run_id, source, account_cnt, created_at
		FROM report_runs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.RunID, &r.Source, &r.Accounts, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
