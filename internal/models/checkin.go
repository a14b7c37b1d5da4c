package models

import "time"

// CardToPass records a card one partner wants to hand over, with a reason.
type CardToPass struct {
	CardID string `json:"cardId"`
	Reason string `json:"reason"`
}

// CheckInResponse holds one set of answers to the weekly check-in ritual.
type CheckInResponse struct {
	UnfairThisWeek []string     `json:"unfairThisWeek"`
	CardsToPass    []CardToPass `json:"cardsToPass"`
	Appreciations  []string     `json:"appreciations"`
	NextWeekFocus  []string     `json:"nextWeekFocus"`
}

// CheckInSession records one check-in ritual. In together mode both
// partners answer as one; in individual mode each partner answers
// separately and CompletedBy tracks who has finished.
type CheckInSession struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Mode string    `json:"mode"`

	// Response holds the shared answers in together mode.
	Response *CheckInResponse `json:"response,omitempty"`

	// Partner1Response and Partner2Response hold the split answers in
	// individual mode.
	Partner1Response *CheckInResponse `json:"partner1Response,omitempty"`
	Partner2Response *CheckInResponse `json:"partner2Response,omitempty"`

	Notes       string   `json:"notes,omitempty"`
	Complete    bool     `json:"isComplete"`
	CompletedBy []string `json:"completedBy,omitempty"`
}
