package session

import "github.com/insama/insama/internal/models"

// The merge starts from partner 1's response and applies each resolved
// conflict on top of it. Items without a resolved conflict, and conflicts
// left unresolved, keep partner 1's value.

func conflictsByItem(s *models.CollaborativeSession, typ models.ConflictType) map[string]*models.Conflict {
	out := make(map[string]*models.Conflict)
	for i := range s.Conflicts {
		if s.Conflicts[i].Type == typ {
			out[s.Conflicts[i].ItemID] = &s.Conflicts[i]
		}
	}
	return out
}

func mergeCards(s *models.CollaborativeSession) []models.Card {
	ownership := conflictsByItem(s, models.ConflictCardOwnership)

	cards2 := make(map[string]models.Card, len(s.Partner2Response.Cards))
	for _, c := range s.Partner2Response.Cards {
		cards2[c.ID] = c
	}

	merged := make([]models.Card, len(s.Partner1Response.Cards))
	for i, card := range s.Partner1Response.Cards {
		conflict := ownership[card.ID]
		if conflict == nil || !conflict.Resolved() {
			merged[i] = card
			continue
		}

		switch conflict.Resolution.Kind {
		case models.ResolvePartner2:
			if c2, ok := cards2[card.ID]; ok {
				card.Ownership = c2.Ownership
			}
		case models.ResolveShared:
			for _, slot := range conflict.Slots {
				card.Ownership.SetSlot(slot, models.SharedTag)
			}
		case models.ResolveCustom:
			if c := conflict.Resolution.Custom; c != nil && c.Ownership != nil {
				card.Ownership = *c.Ownership
			}
		}
		merged[i] = card
	}
	return merged
}

func mergeBills(s *models.CollaborativeSession) []models.Bill {
	responsibility := conflictsByItem(s, models.ConflictBillResponsibility)
	amounts := conflictsByItem(s, models.ConflictAmountMismatch)

	bills2 := make(map[string]models.Bill, len(s.Partner2Response.Bills))
	for _, b := range s.Partner2Response.Bills {
		bills2[b.ID] = b
	}

	merged := make([]models.Bill, len(s.Partner1Response.Bills))
	for i, bill := range s.Partner1Response.Bills {
		b2, has2 := bills2[bill.ID]

		if conflict := responsibility[bill.ID]; conflict != nil && conflict.Resolved() {
			switch conflict.Resolution.Kind {
			case models.ResolvePartner2:
				if has2 {
					bill.ResponsiblePartner = b2.ResponsiblePartner
					bill.Shared = b2.Shared
					bill.Split = b2.Split
				}
			case models.ResolveShared:
				applyResponsibility(&bill, models.SharedTag)
			case models.ResolveCustom:
				if c := conflict.Resolution.Custom; c != nil && c.Responsibility != "" {
					applyResponsibility(&bill, c.Responsibility)
				}
			}
		}

		if conflict := amounts[bill.ID]; conflict != nil && conflict.Resolved() {
			switch conflict.Resolution.Kind {
			case models.ResolvePartner2:
				bill.Amount = conflict.Partner2Amount
			case models.ResolveShared:
				// Meet in the middle when the partners reported
				// different amounts.
				bill.Amount = (conflict.Partner1Amount + conflict.Partner2Amount) / 2
			case models.ResolveCustom:
				if c := conflict.Resolution.Custom; c != nil && c.Amount != nil {
					bill.Amount = *c.Amount
				}
			}
		}

		merged[i] = bill
	}
	return merged
}

// applyResponsibility sets a bill's responsibility fields from an
// effective label ("partner1", "partner2", "shared", "unassigned").
func applyResponsibility(b *models.Bill, label string) {
	switch label {
	case models.SharedTag:
		b.ResponsiblePartner = ""
		b.Shared = true
		b.Split = nil
	case models.UnassignedTag:
		b.ResponsiblePartner = ""
		b.Shared = false
	default:
		b.ResponsiblePartner = label
		b.Shared = false
	}
}
