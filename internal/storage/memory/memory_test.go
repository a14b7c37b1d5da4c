package memory

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/insama/insama/internal/models"
	"github.com/insama/insama/internal/storage"
)

func TestMemoryStoreSessions(t *testing.T) {
	store := New()
	ctx := context.Background()

	session := &models.CollaborativeSession{
		ID:        "collab-mem-1",
		CoupleID:  "couple-mem-1",
		Partner1:  models.Partner{ID: models.PartnerTag1, Name: "Aoife"},
		Partner2:  models.Partner{ID: models.PartnerTag2, Name: "Brendan"},
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Status:    models.SessionActive,
	}

	t.Run("save and load round-trip", func(t *testing.T) {
		if err := store.SaveSession(ctx, session); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
		if session.Version != 1 {
			t.Errorf("Expected version 1, got %d", session.Version)
		}

		loaded, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if !reflect.DeepEqual(session, loaded) {
			t.Errorf("Loaded session differs:\nsaved:  %+v\nloaded: %+v", session, loaded)
		}
	})

	t.Run("loaded session is a copy", func(t *testing.T) {
		loaded, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		loaded.Status = models.SessionMerged

		again, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if again.Status != models.SessionActive {
			t.Errorf("Mutating a loaded session leaked into the store: %s", again.Status)
		}
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		stale := &models.CollaborativeSession{ID: session.ID, Version: 0}
		if err := store.SaveSession(ctx, stale); !errors.Is(err, storage.ErrVersionConflict) {
			t.Errorf("Expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		if _, err := store.GetSession(ctx, "collab-nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestMemoryStoreRecords(t *testing.T) {
	store := New()
	ctx := context.Background()

	t.Run("put, get, count, delete", func(t *testing.T) {
		rec, err := store.PutRecord(ctx, "sess-1", json.RawMessage(`{"a":1}`))
		if err != nil {
			t.Fatalf("PutRecord failed: %v", err)
		}
		if rec.Version != 1 {
			t.Errorf("Expected version 1, got %d", rec.Version)
		}

		rec, err = store.PutRecord(ctx, "sess-1", json.RawMessage(`{"a":2}`))
		if err != nil {
			t.Fatalf("PutRecord failed: %v", err)
		}
		if rec.Version != 2 {
			t.Errorf("Expected version 2 after upsert, got %d", rec.Version)
		}

		got, err := store.GetRecord(ctx, "sess-1")
		if err != nil {
			t.Fatalf("GetRecord failed: %v", err)
		}
		if string(got.Data) != `{"a":2}` {
			t.Errorf("Expected latest data, got %s", got.Data)
		}

		n, err := store.CountRecords(ctx)
		if err != nil {
			t.Fatalf("CountRecords failed: %v", err)
		}
		if n != 1 {
			t.Errorf("Expected 1 record, got %d", n)
		}

		if err := store.DeleteRecord(ctx, "sess-1"); err != nil {
			t.Fatalf("DeleteRecord failed: %v", err)
		}
		if _, err := store.GetRecord(ctx, "sess-1"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteRecord(ctx, "sess-1"); err != nil {
			t.Errorf("Expected repeat delete to be a no-op, got %v", err)
		}
	})
}
