package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfell/campaign-engine/pkg/campaign"
)

func newTestStorage(t *testing.T) *RedisStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStorage(mr.Addr(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStorage_CreateAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := campaign.NewRecord("Wren")
	require.NoError(t, s.CreateCampaign(ctx, rec))
	assert.Equal(t, int64(1), rec.Version)

	loaded, err := s.GetCampaign(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, rec.ID, loaded.ID)
	assert.Equal(t, "Wren", loaded.Name)
	assert.Equal(t, int64(1), loaded.Version)
	assert.Equal(t, rec.Inventory.CountItems(), loaded.Inventory.CountItems())
}

func TestRedisStorage_CreateDuplicateFails(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := campaign.NewRecord("Wren")
	require.NoError(t, s.CreateCampaign(ctx, rec))
	assert.Error(t, s.CreateCampaign(ctx, rec))
}

func TestRedisStorage_GetMissingReturnsNil(t *testing.T) {
	s := newTestStorage(t)

	loaded, err := s.GetCampaign(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStorage_ReplaceBumpsVersion(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := campaign.NewRecord("Wren")
	require.NoError(t, s.CreateCampaign(ctx, rec))

	rec.XP = 50
	require.NoError(t, s.ReplaceCampaign(ctx, rec))

	loaded, err := s.GetCampaign(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Version)
	assert.Equal(t, 50, loaded.XP)
}

func TestRedisStorage_ReplaceStaleVersionConflicts(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := campaign.NewRecord("Wren")
	require.NoError(t, s.CreateCampaign(ctx, rec))

	// First writer wins.
	first := rec.Clone()
	first.XP = 10
	require.NoError(t, s.ReplaceCampaign(ctx, first))

	// Second writer still holds version 1.
	stale := rec.Clone()
	stale.XP = 99
	err := s.ReplaceCampaign(ctx, stale)
	assert.ErrorIs(t, err, ErrVersionConflict)

	loaded, err := s.GetCampaign(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.XP)
}

func TestRedisStorage_ReplaceMissingFails(t *testing.T) {
	s := newTestStorage(t)
	rec := campaign.NewRecord("Wren")
	assert.Error(t, s.ReplaceCampaign(context.Background(), rec))
}

func TestRedisStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := campaign.NewRecord("Wren")
	require.NoError(t, s.CreateCampaign(ctx, rec))
	require.NoError(t, s.DeleteCampaign(ctx, rec.ID))

	loaded, err := s.GetCampaign(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is fine.
	assert.NoError(t, s.DeleteCampaign(ctx, rec.ID))
}

func TestRedisStorage_List(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	a := campaign.NewRecord("A")
	b := campaign.NewRecord("B")
	require.NoError(t, s.CreateCampaign(ctx, a))
	require.NoError(t, s.CreateCampaign(ctx, b))

	ids, err := s.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, ids)
}
