package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// DBTX is the common interface satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// OpenSQLite opens a SQLite database at the given path, sets WAL mode, enables
// foreign keys and runs migrations.
//
// ":memory:" databases are limited to a single connection so every query sees
// the same schema.
func OpenSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, eris.Wrap(err, "database: creating db directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "database: opening sqlite")
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "database: setting WAL mode")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "database: enabling foreign keys")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "database: setting busy timeout")
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "database: running migrations")
	}
	return db, nil
}

// WithinTx runs fn inside a transaction, rolling back when fn fails.
func WithinTx(ctx context.Context, db *sql.DB, fn func(tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "database: beginning transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return eris.Wrapf(err, "database: rollback failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "database: committing transaction")
	}
	return nil
}

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return eris.Wrapf(err, "database: migration %d", i)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS surveys (
		id                 TEXT PRIMARY KEY,
		work_id            TEXT NOT NULL UNIQUE,
		number             TEXT NOT NULL DEFAULT '',
		survey_date        TEXT NOT NULL DEFAULT '',
		request_date       TEXT NOT NULL DEFAULT '',
		description        TEXT NOT NULL DEFAULT '',
		previous_month_ipp TEXT,
		reopen_reason      TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS survey_blocks (
		survey_id TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
		block     TEXT NOT NULL
		          CHECK(block IN ('budget','investment','materials','travel_expenses')),
		status    TEXT NOT NULL DEFAULT 'pending'
		          CHECK(status IN ('pending','approved','rejected')),
		comments  TEXT,
		PRIMARY KEY (survey_id, block)
	)`,
	`CREATE TABLE IF NOT EXISTS budget_items (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		survey_id        TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
		position         INTEGER NOT NULL,
		ucap_code        TEXT NOT NULL DEFAULT '',
		ucap_description TEXT NOT NULL DEFAULT '',
		initial_ipp      TEXT,
		unit_value       TEXT NOT NULL,
		quantity         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS investment_items (
		id                           INTEGER PRIMARY KEY AUTOINCREMENT,
		survey_id                    TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
		position                     INTEGER NOT NULL,
		order_number                 INTEGER NOT NULL DEFAULT 0,
		point                        TEXT NOT NULL DEFAULT '',
		description                  TEXT NOT NULL DEFAULT '',
		luminaire_quantity           INTEGER NOT NULL DEFAULT 0,
		relocated_luminaire_quantity INTEGER NOT NULL DEFAULT 0,
		pole_quantity                INTEGER NOT NULL DEFAULT 0,
		braided_network              TEXT NOT NULL DEFAULT '',
		latitude                     TEXT NOT NULL DEFAULT '',
		longitude                    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS material_items (
		id                   INTEGER PRIMARY KEY AUTOINCREMENT,
		survey_id            TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
		position             INTEGER NOT NULL,
		material_code        TEXT NOT NULL DEFAULT '',
		material_description TEXT NOT NULL DEFAULT '',
		unit_of_measure      TEXT NOT NULL DEFAULT '',
		quantity             TEXT NOT NULL,
		observations         TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS travel_expense_items (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		survey_id    TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		expense_type TEXT NOT NULL,
		quantity     TEXT NOT NULL,
		observations TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS review_events (
		id         TEXT PRIMARY KEY,
		survey_id  TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
		action     TEXT NOT NULL,
		block      TEXT NOT NULL DEFAULT '',
		comments   TEXT,
		actor_id   TEXT NOT NULL DEFAULT '',
		actor_role TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_review_events_survey ON review_events(survey_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_budget_items_survey ON budget_items(survey_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_investment_items_survey ON investment_items(survey_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_material_items_survey ON material_items(survey_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_travel_expense_items_survey ON travel_expense_items(survey_id, position)`,
}
