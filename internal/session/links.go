package session

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/insama/insama/internal/models"
)

// CollabIDPrefix marks collaborative session ids; the entry dispatcher
// keys on it to tell collaborative sessions apart from couple ids.
const CollabIDPrefix = "collab-"

// IsCollabID reports whether id names a collaborative session.
func IsCollabID(id string) bool {
	return strings.HasPrefix(id, CollabIDPrefix)
}

// PartnerLink builds the access link for one partner by appending the
// session id and partner tag to the base page URL. Visiting the link is
// how a partner joins; there is no verification that the visitor is the
// named partner.
func PartnerLink(baseURL, sessionID, partnerTag string) (string, error) {
	if !models.ValidPartnerTag(partnerTag) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPartner, partnerTag)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("session", sessionID)
	q.Set("partner", partnerTag)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// View names the screen the application entry should render.
type View string

const (
	ViewWelcome       View = "welcome"
	ViewPartnerSelect View = "partner-select"
	ViewDashboard     View = "dashboard"
	ViewCollaborative View = "collaborative"
)

// Entry is the result of resolving an application entry point.
type Entry struct {
	View View
	// PartnerID is the acting partner tag when the entry named one.
	PartnerID string
	// SessionID is set for collaborative entries.
	SessionID string
}

// ResolveEntry decides which view to render from explicit entry inputs:
// the session and partner query values (either may be empty) and the
// stored couple, if any. It is a pure function; transports extract the
// parameters and pass them in.
func ResolveEntry(sessionID, partnerID string, couple *models.Couple) Entry {
	if sessionID != "" && partnerID != "" {
		if IsCollabID(sessionID) {
			return Entry{View: ViewCollaborative, PartnerID: partnerID, SessionID: sessionID}
		}
		if couple != nil && couple.ID == sessionID && models.ValidPartnerTag(partnerID) {
			return Entry{View: ViewDashboard, PartnerID: partnerID}
		}
	}

	if couple != nil {
		if couple.Mode == models.ModeIndividual && couple.CurrentPartnerID == "" {
			return Entry{View: ViewPartnerSelect}
		}
		return Entry{View: ViewDashboard, PartnerID: couple.CurrentPartnerID}
	}
	return Entry{View: ViewWelcome}
}
