package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insama/insama/internal/models"
	"github.com/insama/insama/internal/session"
	"github.com/insama/insama/internal/storage"
	"github.com/insama/insama/internal/storage/memory"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(memory.New())

	sess, err := svc.Create(ctx, models.Partner{Name: "Aoife"}, models.Partner{Name: "Brendan"})
	require.NoError(t, err)
	require.True(t, session.IsCollabID(sess.ID))

	t.Run("Create persists the session", func(t *testing.T) {
		loaded, err := svc.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, loaded.ID)
		assert.Equal(t, models.SessionActive, loaded.Status)
		assert.Equal(t, int64(1), loaded.Version)
	})

	t.Run("Get unknown id is ErrNotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, "collab-missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Submit stamps and completes responses", func(t *testing.T) {
		got, err := svc.Submit(ctx, sess.ID, models.PartnerResponse{
			PartnerID: models.PartnerTag1,
			Bills:     []models.Bill{{ID: "bill-1", Name: "Rent", Amount: 1500, ResponsiblePartner: models.PartnerTag1, Active: true}},
		})
		require.NoError(t, err)
		assert.Equal(t, models.SessionActive, got.Status)
		require.NotNil(t, got.Partner1Response)
		assert.True(t, got.Partner1Response.Complete)
		assert.False(t, got.Partner1Response.CompletedAt.IsZero())

		got, err = svc.Submit(ctx, sess.ID, models.PartnerResponse{
			PartnerID: models.PartnerTag2,
			Bills:     []models.Bill{{ID: "bill-1", Name: "Rent", Amount: 1500, ResponsiblePartner: models.PartnerTag2, Active: true}},
		})
		require.NoError(t, err)
		assert.Equal(t, models.SessionCompleted, got.Status)
		require.Len(t, got.Conflicts, 1)

		// The transition survives a reload.
		loaded, err := svc.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SessionCompleted, loaded.Status)
		assert.Len(t, loaded.Conflicts, 1)
	})

	t.Run("ResolveConflict with unknown id leaves the session alone", func(t *testing.T) {
		got, err := svc.ResolveConflict(ctx, sess.ID, "conflict-ghost-amount", models.ResolvePartner1, nil, models.PartnerTag1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.UnresolvedConflicts())
	})

	t.Run("ResolveConflict persists the resolution", func(t *testing.T) {
		got, err := svc.ResolveConflict(ctx, sess.ID, "conflict-bill-1-responsibility", models.ResolveShared, nil, models.PartnerTag2)
		require.NoError(t, err)
		assert.Equal(t, 0, got.UnresolvedConflicts())

		loaded, err := svc.Get(ctx, sess.ID)
		require.NoError(t, err)
		c := loaded.ConflictByID("conflict-bill-1-responsibility")
		require.NotNil(t, c)
		require.NotNil(t, c.Resolution)
		assert.Equal(t, models.ResolveShared, c.Resolution.Kind)
		assert.Equal(t, models.PartnerTag2, c.Resolution.ResolvedBy)
		assert.False(t, c.Resolution.ResolvedAt.IsZero())
	})

	t.Run("Finalize merges and blocks further mutation", func(t *testing.T) {
		got, err := svc.Finalize(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SessionMerged, got.Status)
		require.NotNil(t, got.MergedData)
		assert.Equal(t, models.SharedTag, got.MergedData.Bills[0].Responsibility())

		_, err = svc.Finalize(ctx, sess.ID)
		assert.ErrorIs(t, err, session.ErrSessionMerged)

		_, err = svc.ResolveConflict(ctx, sess.ID, "conflict-bill-1-responsibility", models.ResolvePartner1, nil, models.PartnerTag1)
		assert.ErrorIs(t, err, session.ErrSessionMerged)

		_, err = svc.Submit(ctx, sess.ID, models.PartnerResponse{PartnerID: models.PartnerTag1})
		assert.ErrorIs(t, err, session.ErrSessionMerged)
	})

	t.Run("Finalize before both responses fails", func(t *testing.T) {
		early, err := svc.Create(ctx, models.Partner{Name: "Aoife"}, models.Partner{Name: "Brendan"})
		require.NoError(t, err)

		_, err = svc.Finalize(ctx, early.ID)
		assert.ErrorIs(t, err, session.ErrResponsesMissing)
	})
}
