package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/insama/insama/internal/models"
	"github.com/insama/insama/internal/storage"
)

// Service orchestrates collaborative sessions over a storage.Store: it
// loads the aggregate, applies a state transition, and saves it back.
// Persistence happens after every mutation so a partner in another tab
// observes the latest state on reload.
type Service struct {
	store storage.Store
	now   func() time.Time
}

// NewService creates a session service backed by the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create starts a new active session for the given partners and persists it.
func (s *Service) Create(ctx context.Context, partner1, partner2 models.Partner) (*models.CollaborativeSession, error) {
	sess := New(partner1, partner2, s.now())
	if err := s.store.SaveSession(ctx, sess); err != nil {
		slog.Error("Create session failed", "session_id", sess.ID, "error", err)
		return nil, fmt.Errorf("failed to save new session: %w", err)
	}
	slog.Info("Collaborative session created", "session_id", sess.ID, "couple_id", sess.CoupleID)
	return sess, nil
}

// Get loads a session by id.
func (s *Service) Get(ctx context.Context, sessionID string) (*models.CollaborativeSession, error) {
	return s.store.GetSession(ctx, sessionID)
}

// Submit records one partner's response and persists the session. When the
// submission completes the pair, the returned session carries the
// completed status and the freshly computed conflicts.
func (s *Service) Submit(ctx context.Context, sessionID string, resp models.PartnerResponse) (*models.CollaborativeSession, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if resp.CompletedAt.IsZero() {
		resp.CompletedAt = s.now()
	}
	resp.Complete = true

	if err := SubmitResponse(sess, resp); err != nil {
		return nil, err
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		slog.Error("Submit save failed", "session_id", sessionID, "partner", resp.PartnerID, "error", err)
		return nil, err
	}

	slog.Info("Partner response recorded",
		"session_id", sessionID,
		"partner", resp.PartnerID,
		"status", sess.Status,
		"conflicts", len(sess.Conflicts),
	)
	return sess, nil
}

// ResolveConflict attaches a resolution to the named conflict on behalf of
// resolvedBy and persists the session. An unknown conflict id leaves the
// session unchanged and is not an error.
func (s *Service) ResolveConflict(ctx context.Context, sessionID, conflictID string, kind models.ResolutionKind, custom *models.CustomValue, resolvedBy string) (*models.CollaborativeSession, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == models.SessionMerged {
		return nil, ErrSessionMerged
	}

	res := models.Resolution{
		Kind:       kind,
		Custom:     custom,
		ResolvedBy: resolvedBy,
		ResolvedAt: s.now(),
	}
	if !Resolve(sess, conflictID, res) {
		slog.Warn("ResolveConflict: unknown conflict id", "session_id", sessionID, "conflict_id", conflictID)
		return sess, nil
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		slog.Error("ResolveConflict save failed", "session_id", sessionID, "conflict_id", conflictID, "error", err)
		return nil, err
	}

	slog.Info("Conflict resolved",
		"session_id", sessionID,
		"conflict_id", conflictID,
		"kind", kind,
		"resolved_by", resolvedBy,
		"unresolved", sess.UnresolvedConflicts(),
	)
	return sess, nil
}

// Finalize merges the session and persists the terminal state.
func (s *Service) Finalize(ctx context.Context, sessionID string) (*models.CollaborativeSession, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	unresolved := sess.UnresolvedConflicts()
	if err := Finalize(sess); err != nil {
		return nil, err
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		slog.Error("Finalize save failed", "session_id", sessionID, "error", err)
		return nil, err
	}

	slog.Info("Session merged",
		"session_id", sessionID,
		"cards", len(sess.MergedData.Cards),
		"bills", len(sess.MergedData.Bills),
		"unresolved_skipped", unresolved,
	)
	return sess, nil
}
