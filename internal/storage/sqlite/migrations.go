package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. Session aggregates are
// stored as JSON documents; the indexed columns exist for lookups and the
// optimistic version check, never for partial updates.
const schema = `
CREATE TABLE IF NOT EXISTS collab_sessions (
    id TEXT PRIMARY KEY,
    couple_id TEXT NOT NULL,
    status TEXT NOT NULL,
    data BLOB NOT NULL,
    version INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS session_records (
    id TEXT PRIMARY KEY,
    data BLOB NOT NULL,
    created_at INTEGER NOT NULL,
    last_updated INTEGER NOT NULL,
    version INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_collab_sessions_couple_id ON collab_sessions(couple_id);
CREATE INDEX IF NOT EXISTS idx_collab_sessions_status ON collab_sessions(status);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
