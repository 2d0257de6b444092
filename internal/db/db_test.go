package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestOpen_FreshDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	v, err := SchemaVersion(conn)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("expected schema version %d, got %d", len(migrations), v)
	}

	for _, table := range []string{"manager", "code_sequences"} {
		var n int
		if err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&n); err != nil {
			t.Fatalf("query sqlite_master: %v", err)
		}
		if n != 1 {
			t.Errorf("expected table %s to exist", table)
		}
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer second.Close()

	var rows int
	if err := second.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&rows); err != nil {
		t.Fatalf("count schema_version: %v", err)
	}
	if rows != len(migrations) {
		t.Errorf("expected %d schema_version rows after reopen, got %d", len(migrations), rows)
	}
}

func TestManagerSingletonConstraint(t *testing.T) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	_, err = conn.Exec("INSERT INTO manager (id, department, division, person, updated_at) VALUES (2, 'a', 'b', 'c', 'now')")
	if err == nil {
		t.Error("expected CHECK constraint to reject a second manager row")
	}
}

func TestMigrationV2_ImportsLegacyGestor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open legacy db: %v", err)
	}
	_, err = legacy.Exec(`
		CREATE TABLE gestor(
			id INTEGER PRIMARY KEY CHECK (id=1),
			departamento TEXT, division TEXT, persona TEXT, updated_at TEXT
		);
		INSERT INTO gestor VALUES (1, 'Estudios', 'Riesgos', 'Ana Pérez', '2024-03-01T10:00:00');
	`)
	if err != nil {
		t.Fatalf("seed legacy db: %v", err)
	}
	legacy.Close()

	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	var dep, div, per, updated string
	err = conn.QueryRow("SELECT department, division, person, updated_at FROM manager WHERE id = 1").Scan(&dep, &div, &per, &updated)
	if err != nil {
		t.Fatalf("expected imported manager: %v", err)
	}
	if dep != "Estudios" || div != "Riesgos" || per != "Ana Pérez" {
		t.Errorf("unexpected manager %q/%q/%q", dep, div, per)
	}
	if updated != "2024-03-01T10:00:00" {
		t.Errorf("expected legacy timestamp kept, got %q", updated)
	}
}
