// Package memory provides an in-memory storage.Store, mirroring the
// behavior of the SQLite store without durability. Useful for tests and
// single-process demos.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/insama/insama/internal/models"
	"github.com/insama/insama/internal/storage"
)

var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with maps behind a mutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
	versions map[string]int64
	records  map[string]storage.Record
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]byte),
		versions: make(map[string]int64),
		records:  make(map[string]storage.Record),
	}
}

// SaveSession stores the session document, applying the same optimistic
// version check as the SQLite store.
func (s *MemoryStore) SaveSession(_ context.Context, session *models.CollaborativeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.versions[session.ID]; current != session.Version {
		return storage.ErrVersionConflict
	}

	next := session.Version + 1
	doc := *session
	doc.Version = next
	data, err := json.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: failed to encode session: %v", storage.ErrWriteFailed, err)
	}

	s.sessions[session.ID] = data
	s.versions[session.ID] = next
	session.Version = next
	return nil
}

// GetSession retrieves a session by id.
func (s *MemoryStore) GetSession(_ context.Context, sessionID string) (*models.CollaborativeSession, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session %s", storage.ErrNotFound, sessionID)
	}

	session := &models.CollaborativeSession{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("%w: session %s: %v", storage.ErrParse, sessionID, err)
	}
	return session, nil
}

// PutRecord upserts an opaque record.
func (s *MemoryStore) PutRecord(_ context.Context, recordID string, data json.RawMessage) (*storage.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := storage.Record{
		ID:          recordID,
		Data:        append(json.RawMessage(nil), data...),
		CreatedAt:   now,
		LastUpdated: now,
		Version:     1,
	}
	if existing, ok := s.records[recordID]; ok {
		rec.CreatedAt = existing.CreatedAt
		rec.Version = existing.Version + 1
	}
	s.records[recordID] = rec

	out := rec
	return &out, nil
}

// GetRecord retrieves an opaque record by id.
func (s *MemoryStore) GetRecord(_ context.Context, recordID string) (*storage.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[recordID]
	if !ok {
		return nil, fmt.Errorf("%w: record %s", storage.ErrNotFound, recordID)
	}
	out := rec
	out.Data = append(json.RawMessage(nil), rec.Data...)
	return &out, nil
}

// DeleteRecord removes a record. Absent records are a no-op.
func (s *MemoryStore) DeleteRecord(_ context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, recordID)
	return nil
}

// CountRecords reports the number of stored records.
func (s *MemoryStore) CountRecords(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
