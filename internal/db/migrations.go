package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_manager_and_code_sequences",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "import_legacy_gestor_row",
		Up:      migrationV2,
	},
}

// RunMigrations applies every migration newer than the recorded schema version.
// Each migration runs in its own transaction.
func RunMigrations(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration version.
func SchemaVersion(conn *sql.DB) (int, error) {
	var v int
	err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return v, nil
}

// migrationV1 creates the current schema.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(SchemaSQL)
	return err
}

// migrationV2 copies the manager from a database created by the earlier
// catalog tool, which kept it in gestor(id, departamento, division, persona, updated_at).
// Incomplete legacy rows are skipped.
func migrationV2(tx *sql.Tx) error {
	var count int
	err := tx.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='gestor'").Scan(&count)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	_, err = tx.Exec(`
		INSERT OR IGNORE INTO manager (id, department, division, person, updated_at)
		SELECT 1, departamento, division, persona, COALESCE(updated_at, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		FROM gestor
		WHERE id = 1
		  AND COALESCE(departamento, '') <> ''
		  AND COALESCE(division, '') <> ''
		  AND COALESCE(persona, '') <> ''
	`)
	return err
}
