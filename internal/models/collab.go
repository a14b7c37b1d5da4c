package models

import "time"

// SessionStatus is the lifecycle state of a collaborative session.
// Transitions are monotonic: active -> completed -> merged.
type SessionStatus string

const (
	// SessionActive accepts responses from either partner.
	SessionActive SessionStatus = "active"
	// SessionCompleted means both partner responses exist and conflicts
	// have been computed.
	SessionCompleted SessionStatus = "completed"
	// SessionMerged is terminal: merged data has been produced.
	SessionMerged SessionStatus = "merged"
)

// PartnerResponse is one partner's submitted snapshot: their full card and
// bill working sets with ownership and responsibility fields filled in.
// A response is immutable once created; a resubmission replaces it
// wholesale.
type PartnerResponse struct {
	PartnerID   string    `json:"partnerId"`
	CompletedAt time.Time `json:"completedAt"`
	Cards       []Card    `json:"cards"`
	Bills       []Bill    `json:"bills"`
	Complete    bool      `json:"isComplete"`
}

// ConflictType identifies the axis a conflict was detected on.
type ConflictType string

const (
	ConflictCardOwnership      ConflictType = "card_ownership"
	ConflictBillResponsibility ConflictType = "bill_responsibility"
	ConflictAmountMismatch     ConflictType = "amount_mismatch"
)

// ResolutionKind is the chosen way to settle a conflict.
type ResolutionKind string

const (
	ResolvePartner1 ResolutionKind = "partner1"
	ResolvePartner2 ResolutionKind = "partner2"
	ResolveShared   ResolutionKind = "shared"
	ResolveCustom   ResolutionKind = "custom"
)

// CustomValue is the typed payload of a custom resolution. Exactly one
// field is set, matching the conflict type: Ownership for card_ownership,
// Responsibility for bill_responsibility, Amount for amount_mismatch.
type CustomValue struct {
	Ownership      *Ownership `json:"ownership,omitempty"`
	Responsibility string     `json:"responsibility,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
}

// Resolution records how a conflict was settled, by whom, and when.
type Resolution struct {
	Kind       ResolutionKind `json:"kind"`
	Custom     *CustomValue   `json:"custom,omitempty"`
	ResolvedBy string         `json:"resolvedBy"`
	ResolvedAt time.Time      `json:"resolvedAt"`
}

// Conflict identifies one point of disagreement between the two partners'
// responses. The Partner1/Partner2 value fields form a union keyed by
// Type: ownership records for card conflicts, responsibility labels for
// bill conflicts, raw amounts for amount mismatches.
type Conflict struct {
	// ID is derived from the item id and the conflict axis
	// ("conflict-<itemID>-ownership" etc.) and is stable across
	// recomputations.
	ID string `json:"id"`

	Type ConflictType `json:"type"`

	// ItemID and ItemName identify the disputed card or bill.
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`

	// card_ownership payload.
	Partner1Ownership *Ownership `json:"partner1Ownership,omitempty"`
	Partner2Ownership *Ownership `json:"partner2Ownership,omitempty"`
	// Slots lists the ownership slot names that actually mismatch.
	Slots []string `json:"conflictDetails,omitempty"`

	// bill_responsibility payload.
	Partner1Label string `json:"partner1Label,omitempty"`
	Partner2Label string `json:"partner2Label,omitempty"`

	// amount_mismatch payload.
	Partner1Amount float64 `json:"partner1Amount,omitempty"`
	Partner2Amount float64 `json:"partner2Amount,omitempty"`

	// Resolution is nil until the conflict is settled.
	Resolution *Resolution `json:"resolution,omitempty"`
}

// Resolved reports whether the conflict carries a resolution.
func (c Conflict) Resolved() bool {
	return c.Resolution != nil
}

// MergedData is the outcome of finalizing a session.
type MergedData struct {
	Cards []Card `json:"cards"`
	Bills []Bill `json:"bills"`
}

// CollaborativeSession is the aggregate root for the collaborative setup
// flow. Conflicts and MergedData are only meaningful once both partner
// responses exist; Status never regresses.
type CollaborativeSession struct {
	// ID carries the "collab-" prefix the entry dispatcher keys on.
	ID       string `json:"id"`
	CoupleID string `json:"coupleId"`

	Partner1 Partner `json:"partner1"`
	Partner2 Partner `json:"partner2"`

	CreatedAt time.Time     `json:"createdAt"`
	Status    SessionStatus `json:"status"`

	Partner1Response *PartnerResponse `json:"partner1Response,omitempty"`
	Partner2Response *PartnerResponse `json:"partner2Response,omitempty"`

	Conflicts []Conflict `json:"conflicts,omitempty"`

	MergedData *MergedData `json:"mergedData,omitempty"`

	// Version is the optimistic-concurrency token: incremented by the
	// store on every save, checked against the stored row on write.
	Version int64 `json:"version"`
}

// BothResponded reports whether both partner responses are present.
func (s *CollaborativeSession) BothResponded() bool {
	return s.Partner1Response != nil && s.Partner2Response != nil
}

// ConflictByID returns a pointer to the conflict with the given id, or nil.
func (s *CollaborativeSession) ConflictByID(id string) *Conflict {
	for i := range s.Conflicts {
		if s.Conflicts[i].ID == id {
			return &s.Conflicts[i]
		}
	}
	return nil
}

// UnresolvedConflicts counts conflicts without a resolution.
func (s *CollaborativeSession) UnresolvedConflicts() int {
	n := 0
	for i := range s.Conflicts {
		if !s.Conflicts[i].Resolved() {
			n++
		}
	}
	return n
}
