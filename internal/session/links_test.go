package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insama/insama/internal/models"
)

func TestPartnerLink(t *testing.T) {
	t.Run("appends session and partner to the base URL", func(t *testing.T) {
		link, err := PartnerLink("http://localhost:8080/", "collab-abc", models.PartnerTag2)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "collab-abc", u.Query().Get("session"))
		assert.Equal(t, models.PartnerTag2, u.Query().Get("partner"))
	})

	t.Run("preserves existing query parameters", func(t *testing.T) {
		link, err := PartnerLink("https://insama.app/?lang=en", "collab-abc", models.PartnerTag1)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "en", u.Query().Get("lang"))
		assert.Equal(t, "collab-abc", u.Query().Get("session"))
	})

	t.Run("rejects an unknown partner tag", func(t *testing.T) {
		_, err := PartnerLink("http://localhost:8080/", "collab-abc", "partner3")
		assert.ErrorIs(t, err, ErrUnknownPartner)
	})
}

func TestIsCollabID(t *testing.T) {
	assert.True(t, IsCollabID("collab-123"))
	assert.False(t, IsCollabID("couple-123"))
	assert.False(t, IsCollabID(""))
}

func TestResolveEntry(t *testing.T) {
	couple := &models.Couple{
		ID:               "couple-1",
		Mode:             models.ModeTogether,
		CurrentPartnerID: models.PartnerTag1,
	}

	tests := []struct {
		name      string
		sessionID string
		partnerID string
		couple    *models.Couple
		want      Entry
	}{
		{
			name:      "collab link enters collaborative view",
			sessionID: "collab-xyz",
			partnerID: models.PartnerTag2,
			couple:    nil,
			want:      Entry{View: ViewCollaborative, PartnerID: models.PartnerTag2, SessionID: "collab-xyz"},
		},
		{
			name:      "collab link wins even with a stored couple",
			sessionID: "collab-xyz",
			partnerID: models.PartnerTag1,
			couple:    couple,
			want:      Entry{View: ViewCollaborative, PartnerID: models.PartnerTag1, SessionID: "collab-xyz"},
		},
		{
			name:      "couple link with matching id goes to dashboard",
			sessionID: "couple-1",
			partnerID: models.PartnerTag2,
			couple:    couple,
			want:      Entry{View: ViewDashboard, PartnerID: models.PartnerTag2},
		},
		{
			name:      "couple link with wrong id falls through to stored couple",
			sessionID: "couple-other",
			partnerID: models.PartnerTag2,
			couple:    couple,
			want:      Entry{View: ViewDashboard, PartnerID: models.PartnerTag1},
		},
		{
			name:   "no link and no couple shows welcome",
			couple: nil,
			want:   Entry{View: ViewWelcome},
		},
		{
			name:   "stored couple goes straight to dashboard",
			couple: couple,
			want:   Entry{View: ViewDashboard, PartnerID: models.PartnerTag1},
		},
		{
			name: "individual mode without an acting partner asks who is here",
			couple: &models.Couple{
				ID:   "couple-2",
				Mode: models.ModeIndividual,
			},
			want: Entry{View: ViewPartnerSelect},
		},
		{
			name:      "partner without session is ignored",
			partnerID: models.PartnerTag2,
			couple:    nil,
			want:      Entry{View: ViewWelcome},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveEntry(tt.sessionID, tt.partnerID, tt.couple)
			assert.Equal(t, tt.want, got)
		})
	}
}
