package models

import "time"

// Usage modes, shared by the couple and its check-in rituals: together
// means both partners act as one; individual means each partner acts on
// their own and completion is tracked per partner.
const (
	ModeTogether   = "together"
	ModeIndividual = "individual"
)

// Couple is the aggregate for the single-couple (non-collaborative) flow:
// two partners, their card deck, their bills, and their check-in history.
type Couple struct {
	// ID is the unique identifier for the couple (UUID format).
	ID string `json:"id"`

	Partner1 Partner `json:"partner1"`
	Partner2 Partner `json:"partner2"`

	// Mode is "together" or "individual".
	Mode string `json:"mode"`

	CreatedAt time.Time `json:"createdAt"`

	Cards    []Card           `json:"cards"`
	Bills    []Bill           `json:"bills"`
	CheckIns []CheckInSession `json:"checkIns"`

	LastCheckIn *time.Time `json:"lastCheckIn,omitempty"`

	// CurrentPartnerID tracks which partner is acting in individual mode.
	CurrentPartnerID string `json:"currentPartnerId,omitempty"`
}
