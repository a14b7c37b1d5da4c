package models

import "time"

// CardCategory groups task cards by the area of household life they cover.
type CardCategory string

const (
	CategoryHomeCleaning       CardCategory = "home-cleaning"
	CategoryChildren           CardCategory = "children"
	CategoryAdultRelationships CardCategory = "adult-relationships"
	CategoryMagic              CardCategory = "magic"
	CategoryWildCards          CardCategory = "wild-cards"
)

// Frequency values shared by cards and bills.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyMonthly  = "monthly"
	FrequencySeasonal = "seasonal"
	FrequencyAsNeeded = "as-needed"
)

// Priority levels for task cards.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Ownership assigns the three phases of a task card to partners.
// Each slot holds a partner tag, "shared", or "" for unassigned.
// The phases are independent: one partner may notice a need (think),
// the other may organize it (plan), and either may execute it (do).
type Ownership struct {
	Think string `json:"think,omitempty"`
	Plan  string `json:"plan,omitempty"`
	Do    string `json:"do,omitempty"`
}

// Slot returns the value of the named ownership slot.
func (o Ownership) Slot(name string) string {
	switch name {
	case "think":
		return o.Think
	case "plan":
		return o.Plan
	case "do":
		return o.Do
	}
	return ""
}

// SetSlot sets the named ownership slot.
func (o *Ownership) SetSlot(name, value string) {
	switch name {
	case "think":
		o.Think = value
	case "plan":
		o.Plan = value
	case "do":
		o.Do = value
	}
}

// OwnershipSlots lists the three phase names in canonical order.
var OwnershipSlots = []string{"think", "plan", "do"}

// Card represents a household task card.
type Card struct {
	// ID is the unique identifier for the card (UUID format).
	ID string `json:"id"`

	// Title is the short display name (e.g., "Dishes", "Meal Planning").
	Title string `json:"title"`

	Category    CardCategory `json:"category"`
	Description string       `json:"description"`

	// MentalLoad spells out what carrying the full card entails, from
	// noticing the need through execution.
	MentalLoad string `json:"mentalLoad,omitempty"`

	// Frequency is one of the Frequency* constants.
	Frequency string `json:"frequency"`

	// TimeEstimate is the effort per occurrence, in minutes.
	TimeEstimate int `json:"timeEstimate"`

	// Priority is one of the Priority* constants.
	Priority string `json:"priority"`

	// Holder is the partner tag of whoever currently holds the whole card,
	// or "" while unheld.
	Holder string `json:"holder,omitempty"`

	// Ownership assigns the think/plan/do phases individually.
	Ownership Ownership `json:"ownership"`

	// NotApplicable marks cards that don't apply to this household.
	NotApplicable bool `json:"isNotApplicable,omitempty"`

	CreatedAt    time.Time  `json:"createdAt"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
}
