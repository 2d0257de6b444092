package db

// SchemaSQL is the complete schema for fresh catalog databases.
//
// This is the single source of truth for the database schema. Repository
// tests load it through GetSchemaSQL() instead of declaring their own tables,
// so a column referenced by code but missing here fails with "no such column".
const SchemaSQL = `
-- Manager (singleton: exactly one row, id = 1)
CREATE TABLE IF NOT EXISTS manager (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	department TEXT NOT NULL,
	division TEXT NOT NULL,
	person TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

-- Code sequences (last sequence handed out per "<TYPE>.<CATEGORY>" prefix)
CREATE TABLE IF NOT EXISTS code_sequences (
	prefix TEXT PRIMARY KEY,
	last_seq INTEGER NOT NULL CHECK (last_seq > 0),
	updated_at TEXT NOT NULL
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
