// Package storage provides abstractions for persistent session storage.
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/insama/insama/internal/models"
)

// Record is an opaque session document in the generic key/value store,
// used by the non-collaborative single-couple flow.
type Record struct {
	ID          string          `json:"id"`
	Data        json.RawMessage `json:"data"`
	CreatedAt   time.Time       `json:"createdAt"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Version     int64           `json:"version"`
}

// Store defines the interface for session storage operations. This
// abstraction allows swapping backends (SQLite, in-memory, PostgreSQL)
// without changing the service layer.
type Store interface {
	// SaveSession persists the whole collaborative session aggregate.
	// The session's Version must match the stored version (or be zero for
	// a new session); on success the store increments session.Version.
	// A stale version returns ErrVersionConflict.
	SaveSession(ctx context.Context, session *models.CollaborativeSession) error

	// GetSession retrieves a collaborative session by id.
	// Returns ErrNotFound if no session exists under that id and ErrParse
	// if the stored document cannot be decoded.
	GetSession(ctx context.Context, sessionID string) (*models.CollaborativeSession, error)

	// PutRecord upserts an opaque session record. New records get
	// version 1; existing records keep their created timestamp and bump
	// their version.
	PutRecord(ctx context.Context, recordID string, data json.RawMessage) (*Record, error)

	// GetRecord retrieves an opaque record, or ErrNotFound.
	GetRecord(ctx context.Context, recordID string) (*Record, error)

	// DeleteRecord removes a record. Deleting an absent record is a no-op.
	DeleteRecord(ctx context.Context, recordID string) error

	// CountRecords reports how many opaque records are stored.
	CountRecords(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
