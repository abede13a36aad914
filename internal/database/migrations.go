package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Schema migrations, applied in version order. New changes append a new
// entry; existing entries are never edited.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_employees",
		SQL: `
			CREATE TABLE IF NOT EXISTS employees (
				id TEXT PRIMARY KEY,
				telegram_id INTEGER NOT NULL UNIQUE,
				username TEXT NOT NULL DEFAULT '',
				full_name TEXT NOT NULL DEFAULT '',
				is_approved INTEGER NOT NULL DEFAULT 0,
				is_active INTEGER NOT NULL DEFAULT 1,
				is_admin INTEGER NOT NULL DEFAULT 0,
				work_start_hour INTEGER NOT NULL DEFAULT 9,
				work_end_hour INTEGER NOT NULL DEFAULT 18,
				created_at INTEGER NOT NULL,
				updated_at INTEGER NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_location_samples",
		SQL: `
			CREATE TABLE IF NOT EXISTS location_samples (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				employee_id TEXT NOT NULL,
				telegram_id INTEGER NOT NULL DEFAULT 0,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				distance REAL NOT NULL DEFAULT 0,
				in_zone INTEGER NOT NULL DEFAULT 0,
				timestamp INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_location_samples_employee_time
				ON location_samples(employee_id, timestamp)
		`,
	},
	{
		Version: 3,
		Name:    "create_daily_records",
		SQL: `
			CREATE TABLE IF NOT EXISTS daily_records (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				employee_id TEXT NOT NULL,
				date TEXT NOT NULL,
				work_start_time INTEGER NOT NULL,
				work_end_time INTEGER NOT NULL,
				total_work_hours REAL NOT NULL DEFAULT 0,
				present_hours REAL NOT NULL DEFAULT 0,
				absent_hours REAL NOT NULL DEFAULT 0,
				total_locations INTEGER NOT NULL DEFAULT 0,
				valid_locations INTEGER NOT NULL DEFAULT 0,
				late_minutes INTEGER NOT NULL DEFAULT 0,
				created_at INTEGER NOT NULL,
				updated_at INTEGER NOT NULL,
				UNIQUE(employee_id, date)
			)
		`,
	},
	{
		Version: 4,
		Name:    "create_settings",
		SQL: `
			CREATE TABLE IF NOT EXISTS settings (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at INTEGER NOT NULL
			)
		`,
	},
}

// RunMigrations applies all pending migrations on db
func RunMigrations(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}
		if err := applyMigration(db, migration); err != nil {
			return err
		}
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func applyMigration(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", migration.Version, migration.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
	}

	log.Info().Int("version", migration.Version).Str("name", migration.Name).Msg("applied migration")
	return nil
}
