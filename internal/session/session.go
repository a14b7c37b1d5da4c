// Package session implements the collaborative setup flow: each partner
// submits their card and bill working set independently, disagreements are
// detected as conflicts, the couple resolves them, and the session is
// finalized into a single merged data set.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/insama/insama/internal/models"
)

var (
	// ErrSessionMerged is returned for any mutation of a merged session;
	// merged is terminal.
	ErrSessionMerged = errors.New("session already merged")

	// ErrResponsesMissing is returned when finalize is invoked before
	// both partners have submitted.
	ErrResponsesMissing = errors.New("both partner responses required")

	// ErrUnknownPartner is returned when a response names neither
	// partner1 nor partner2.
	ErrUnknownPartner = errors.New("unknown partner tag")
)

// New creates an active collaborative session for the given partners.
func New(partner1, partner2 models.Partner, now time.Time) *models.CollaborativeSession {
	partner1.ID = models.PartnerTag1
	partner2.ID = models.PartnerTag2
	return &models.CollaborativeSession{
		ID:        CollabIDPrefix + uuid.New().String(),
		CoupleID:  "couple-" + uuid.New().String(),
		Partner1:  partner1,
		Partner2:  partner2,
		CreatedAt: now,
		Status:    models.SessionActive,
	}
}

// SubmitResponse records one partner's snapshot on the session. Either
// partner may resubmit while the session is not merged; a resubmission
// replaces the previous response wholesale. The instant both responses
// exist the session transitions to completed and conflicts are
// recomputed, keeping resolutions of conflicts that survive by id.
func SubmitResponse(s *models.CollaborativeSession, resp models.PartnerResponse) error {
	if s.Status == models.SessionMerged {
		return ErrSessionMerged
	}

	switch resp.PartnerID {
	case models.PartnerTag1:
		s.Partner1Response = &resp
	case models.PartnerTag2:
		s.Partner2Response = &resp
	default:
		return ErrUnknownPartner
	}

	if s.BothResponded() {
		s.Status = models.SessionCompleted
		s.Conflicts = RecomputeConflicts(s)
	}
	return nil
}

// Resolve attaches a resolution to the conflict with the given id and
// reports whether a conflict was found. An unknown id is a no-op: the
// session is unchanged and false is returned. Repeating the same
// resolution is idempotent aside from the timestamp.
func Resolve(s *models.CollaborativeSession, conflictID string, res models.Resolution) bool {
	c := s.ConflictByID(conflictID)
	if c == nil {
		return false
	}
	r := res
	c.Resolution = &r
	return true
}

// Finalize merges the two responses into a single data set and moves the
// session to its terminal merged status. Both responses must exist. The
// merge applies each resolved conflict; unresolved conflicts and
// undisputed items fall back to partner 1's value.
func Finalize(s *models.CollaborativeSession) error {
	if s.Status == models.SessionMerged {
		return ErrSessionMerged
	}
	if !s.BothResponded() {
		return ErrResponsesMissing
	}

	s.MergedData = &models.MergedData{
		Cards: mergeCards(s),
		Bills: mergeBills(s),
	}
	s.Status = models.SessionMerged
	return nil
}
