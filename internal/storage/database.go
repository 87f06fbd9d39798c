package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the ingest registry schema. Idempotent.
func Migrate(db *sql.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		source TEXT NOT NULL,
		chunk_count INTEGER NOT NULL,
		indexed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := db.Exec(schema)
	return err
}
