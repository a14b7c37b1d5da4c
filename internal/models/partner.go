package models

// Partner tags used throughout a couple or collaborative session.
const (
	PartnerTag1 = "partner1"
	PartnerTag2 = "partner2"

	// SharedTag marks a responsibility carried by both partners.
	SharedTag = "shared"
	// UnassignedTag marks a responsibility nobody has claimed yet.
	UnassignedTag = "unassigned"
)

// Partner represents one member of a couple.
type Partner struct {
	// ID is the partner tag within the couple ("partner1" or "partner2").
	ID string `json:"id"`

	// Name is the display name of the partner.
	Name string `json:"name"`

	// Email is optional contact info; never used for verification.
	Email string `json:"email,omitempty"`

	// Avatar is an optional profile picture URL.
	Avatar string `json:"avatar,omitempty"`
}

// ValidPartnerTag reports whether tag is one of the two partner tags.
func ValidPartnerTag(tag string) bool {
	return tag == PartnerTag1 || tag == PartnerTag2
}
