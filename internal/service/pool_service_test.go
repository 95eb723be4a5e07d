package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/repository"
	"github.com/benson/poolbuilder/internal/repository/memory"
	"github.com/benson/poolbuilder/internal/service"
	"github.com/benson/poolbuilder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolService_GenerateFor_LegacyPath(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	svc := service.NewPoolService(fake, memory.NewKVStore(), 6)

	snap, err := svc.GenerateFor(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-15", snap.Date)
	assert.Equal(t, "daily-2024-06-15", snap.Seed)
	assert.Equal(t, "tst", snap.Set.Code)
	assert.Len(t, snap.Pool, 6*14, "legacy path: 14 cards per booster")
	assert.Contains(t, snap.BasicLands, "W")
	assert.Contains(t, snap.BasicLands, "G")
}

func TestPoolService_GenerateFor_StructuredPath(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	fake.Definition["tst"] = &domain.BoosterDefinition{
		SetCode: "tst",
		Slots: []domain.Slot{
			{Rarities: []domain.Rarity{domain.RarityRare, domain.RarityMythic}, Count: 1},
			{Rarities: []domain.Rarity{domain.RarityUncommon}, Count: 2},
			{Rarities: []domain.Rarity{domain.RarityCommon}, Count: 5},
		},
	}
	svc := service.NewPoolService(fake, memory.NewKVStore(), 6)

	snap, err := svc.GenerateFor(context.Background(), testNow)
	require.NoError(t, err)
	assert.Len(t, snap.Pool, 6*8)
}

func TestPoolService_GenerateFor_Deterministic(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	svc := service.NewPoolService(fake, memory.NewKVStore(), 6)

	a, err := svc.GenerateFor(context.Background(), testNow)
	require.NoError(t, err)
	b, err := svc.GenerateFor(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPoolService_Pregenerate_PersistsSnapshot(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	store := memory.NewKVStore()
	svc := service.NewPoolService(fake, store, 6)
	ctx := context.Background()

	snap, err := svc.Pregenerate(ctx, testNow)
	require.NoError(t, err)

	blob, found, err := store.Get(ctx, repository.SnapshotKey("2024-06-15"))
	require.NoError(t, err)
	require.True(t, found)

	var stored domain.DailySnapshot
	require.NoError(t, json.Unmarshal(blob, &stored))
	assert.Equal(t, snap.Seed, stored.Seed)
	assert.Len(t, stored.Pool, len(snap.Pool))
}

func TestPoolService_Daily_PrefersPregenerated(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	store := memory.NewKVStore()
	svc := service.NewPoolService(fake, store, 6).
		WithClock(func() time.Time { return testNow })
	ctx := context.Background()

	_, err := svc.Pregenerate(ctx, testNow)
	require.NoError(t, err)

	// Break the catalog: Daily must still serve the stored blob.
	fake.Err = assert.AnError

	snap, err := svc.Daily(ctx)
	require.NoError(t, err)
	assert.Equal(t, "daily-2024-06-15", snap.Seed)
}

func TestPoolService_Daily_FallsBackToGeneration(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	svc := service.NewPoolService(fake, memory.NewKVStore(), 6).
		WithClock(func() time.Time { return testNow })

	snap, err := svc.Daily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", snap.Date)
}

func TestPoolService_NoEligibleSets(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	fake.SetList = nil
	svc := service.NewPoolService(fake, memory.NewKVStore(), 6)

	_, err := svc.GenerateFor(context.Background(), testNow)
	assert.ErrorIs(t, err, domain.ErrNoEligibleSets)
}
