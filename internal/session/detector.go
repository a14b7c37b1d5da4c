package session

import (
	"math"

	"github.com/insama/insama/internal/models"
)

// amountTolerance is the currency rounding slack: two bill amounts within
// a cent of each other are not a mismatch.
const amountTolerance = 0.01

// DetectConflicts compares the two partners' responses and returns the
// disagreements across three axes: card think/plan/do ownership, bill
// responsibility, and bill amount. If either response is absent it returns
// nil (no conflicts yet, not an error).
//
// Conflicts are emitted in the iteration order of partner 1's card list
// followed by partner 1's bill list. An item only one partner has is never
// a conflict. Output does not depend on prior conflict state; callers that
// need to keep resolutions across a recomputation use RecomputeConflicts.
func DetectConflicts(s *models.CollaborativeSession) []models.Conflict {
	if !s.BothResponded() {
		return nil
	}

	var conflicts []models.Conflict

	cards2 := make(map[string]models.Card, len(s.Partner2Response.Cards))
	for _, c := range s.Partner2Response.Cards {
		cards2[c.ID] = c
	}

	for _, c1 := range s.Partner1Response.Cards {
		c2, ok := cards2[c1.ID]
		if !ok {
			continue
		}

		// A slot mismatches only when both partners assigned it;
		// a slot left unset by either side is never a conflict.
		var slots []string
		for _, slot := range models.OwnershipSlots {
			v1, v2 := c1.Ownership.Slot(slot), c2.Ownership.Slot(slot)
			if v1 != "" && v2 != "" && v1 != v2 {
				slots = append(slots, slot)
			}
		}
		if len(slots) == 0 {
			continue
		}

		o1, o2 := c1.Ownership, c2.Ownership
		conflicts = append(conflicts, models.Conflict{
			ID:                "conflict-" + c1.ID + "-ownership",
			Type:              models.ConflictCardOwnership,
			ItemID:            c1.ID,
			ItemName:          c1.Title,
			Partner1Ownership: &o1,
			Partner2Ownership: &o2,
			Slots:             slots,
		})
	}

	bills2 := make(map[string]models.Bill, len(s.Partner2Response.Bills))
	for _, b := range s.Partner2Response.Bills {
		bills2[b.ID] = b
	}

	for _, b1 := range s.Partner1Response.Bills {
		b2, ok := bills2[b1.ID]
		if !ok {
			continue
		}

		if l1, l2 := b1.Responsibility(), b2.Responsibility(); l1 != l2 {
			conflicts = append(conflicts, models.Conflict{
				ID:            "conflict-" + b1.ID + "-responsibility",
				Type:          models.ConflictBillResponsibility,
				ItemID:        b1.ID,
				ItemName:      b1.Name,
				Partner1Label: l1,
				Partner2Label: l2,
			})
		}

		if b1.Amount > 0 && b2.Amount > 0 && math.Abs(b1.Amount-b2.Amount) > amountTolerance {
			conflicts = append(conflicts, models.Conflict{
				ID:             "conflict-" + b1.ID + "-amount",
				Type:           models.ConflictAmountMismatch,
				ItemID:         b1.ID,
				ItemName:       b1.Name,
				Partner1Amount: b1.Amount,
				Partner2Amount: b2.Amount,
			})
		}
	}

	return conflicts
}

// RecomputeConflicts runs detection from scratch and carries over the
// resolution of any conflict whose id survives. Resolutions of conflicts
// that no longer exist are dropped with the conflict.
func RecomputeConflicts(s *models.CollaborativeSession) []models.Conflict {
	prior := make(map[string]*models.Resolution, len(s.Conflicts))
	for i := range s.Conflicts {
		if s.Conflicts[i].Resolution != nil {
			prior[s.Conflicts[i].ID] = s.Conflicts[i].Resolution
		}
	}

	fresh := DetectConflicts(s)
	for i := range fresh {
		if res, ok := prior[fresh[i].ID]; ok {
			fresh[i].Resolution = res
		}
	}
	return fresh
}
