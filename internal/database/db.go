package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the SQLite database at path, creating the file and any
// parent directory if needed, and verifies the connection. WAL journal
// mode keeps concurrent readers working while a writer commits; the busy
// timeout makes writers wait for the lock instead of failing immediately.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite allows a single writer; one open connection avoids lock
	// contention between the pool's handles.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// migrate creates the schema idempotently. All four domain tables are
// create-only: nothing in the application updates or deletes their rows.
func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT UNIQUE,
		password_hash TEXT,
		role          TEXT
	);

	CREATE TABLE IF NOT EXISTS students (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT,
		class      TEXT,
		division   TEXT,
		image_path TEXT
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER,
		class      TEXT,
		division   TEXT,
		date       TEXT,
		status     TEXT
	);

	CREATE TABLE IF NOT EXISTS leave_records (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		student_name TEXT,
		class        TEXT,
		division     TEXT,
		leave_from   TEXT,
		leave_to     TEXT
	);

	CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    INTEGER NOT NULL,
		token_hash TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_attendance_date    ON attendance(date);
	CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance(student_id);
	CREATE INDEX IF NOT EXISTS idx_refresh_hash       ON refresh_tokens(token_hash);
	`
	_, err := db.Exec(schema)
	return err
}
