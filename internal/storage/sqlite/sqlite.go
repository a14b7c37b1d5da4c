// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/insama/insama/internal/models"
	"github.com/insama/insama/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite. Session aggregates
// are stored as whole JSON documents with a version column for the
// optimistic-concurrency check.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveSession persists the whole collaborative session aggregate as one
// JSON document. New sessions (Version 0) are inserted; existing sessions
// are updated only if the stored version still matches, otherwise
// storage.ErrVersionConflict is returned. On success the session's Version
// is incremented in place.
func (s *SQLiteStore) SaveSession(ctx context.Context, session *models.CollaborativeSession) error {
	next := session.Version + 1
	doc := *session
	doc.Version = next

	data, err := json.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: failed to encode session: %v", storage.ErrWriteFailed, err)
	}
	now := time.Now().Unix()

	if session.Version == 0 {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO collab_sessions (id, couple_id, status, data, version, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			session.ID, session.CoupleID, string(session.Status), data, next, now,
		)
		if err != nil {
			return fmt.Errorf("%w: failed to insert session: %v", storage.ErrWriteFailed, err)
		}
		session.Version = next
		return nil
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE collab_sessions SET status = ?, data = ?, version = ?, updated_at = ?
		 WHERE id = ? AND version = ?`,
		string(session.Status), data, next, now, session.ID, session.Version,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update session: %v", storage.ErrWriteFailed, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to check update: %v", storage.ErrWriteFailed, err)
	}
	if affected == 0 {
		return storage.ErrVersionConflict
	}
	session.Version = next
	return nil
}

// GetSession retrieves a collaborative session by id.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*models.CollaborativeSession, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM collab_sessions WHERE id = ?", sessionID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: session %s", storage.ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := &models.CollaborativeSession{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("%w: session %s: %v", storage.ErrParse, sessionID, err)
	}
	return session, nil
}

// PutRecord upserts an opaque session record.
func (s *SQLiteStore) PutRecord(ctx context.Context, recordID string, data json.RawMessage) (*storage.Record, error) {
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", storage.ErrWriteFailed, err)
	}
	defer tx.Rollback()

	rec := &storage.Record{ID: recordID, Data: data, LastUpdated: now}

	var createdAt, version int64
	err = tx.QueryRowContext(ctx,
		"SELECT created_at, version FROM session_records WHERE id = ?", recordID,
	).Scan(&createdAt, &version)
	switch {
	case err == sql.ErrNoRows:
		rec.CreatedAt = now
		rec.Version = 1
		_, err = tx.ExecContext(ctx,
			`INSERT INTO session_records (id, data, created_at, last_updated, version)
			 VALUES (?, ?, ?, ?, ?)`,
			recordID, []byte(data), now.Unix(), now.Unix(), rec.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to insert record: %v", storage.ErrWriteFailed, err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to check record: %w", err)
	default:
		rec.CreatedAt = time.Unix(createdAt, 0)
		rec.Version = version + 1
		_, err = tx.ExecContext(ctx,
			"UPDATE session_records SET data = ?, last_updated = ?, version = ? WHERE id = ?",
			[]byte(data), now.Unix(), rec.Version, recordID,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to update record: %v", storage.ErrWriteFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit: %v", storage.ErrWriteFailed, err)
	}
	return rec, nil
}

// GetRecord retrieves an opaque record by id.
func (s *SQLiteStore) GetRecord(ctx context.Context, recordID string) (*storage.Record, error) {
	rec := &storage.Record{ID: recordID}
	var data []byte
	var createdAt, lastUpdated int64

	err := s.db.QueryRowContext(ctx,
		"SELECT data, created_at, last_updated, version FROM session_records WHERE id = ?",
		recordID,
	).Scan(&data, &createdAt, &lastUpdated, &rec.Version)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: record %s", storage.ErrNotFound, recordID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: record %s", storage.ErrParse, recordID)
	}
	rec.Data = json.RawMessage(data)
	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.LastUpdated = time.Unix(lastUpdated, 0)
	return rec, nil
}

// DeleteRecord removes a record. Absent records are a no-op.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, recordID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session_records WHERE id = ?", recordID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete record: %v", storage.ErrWriteFailed, err)
	}
	return nil
}

// CountRecords reports how many opaque records are stored.
func (s *SQLiteStore) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM session_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
