package booster_test

import (
	"testing"

	"github.com/benson/poolbuilder/internal/booster"
	"github.com/benson/poolbuilder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntheticCatalog() []domain.Card {
	return []domain.Card{
		{ID: "c1", Name: "Common One", Rarity: domain.RarityCommon, CollectorNumber: "1", InBoosters: true},
		{ID: "c2", Name: "Common Two", Rarity: domain.RarityCommon, CollectorNumber: "2", InBoosters: true},
		{ID: "c3", Name: "Common Three", Rarity: domain.RarityCommon, CollectorNumber: "3", InBoosters: true},
		{ID: "c4", Name: "Common Four", Rarity: domain.RarityCommon, CollectorNumber: "4", InBoosters: true},
		{ID: "u1", Name: "Uncommon One", Rarity: domain.RarityUncommon, CollectorNumber: "5", InBoosters: true},
		{ID: "u2", Name: "Uncommon Two", Rarity: domain.RarityUncommon, CollectorNumber: "6", InBoosters: true},
		{ID: "r1", Name: "Rare One", Rarity: domain.RarityRare, CollectorNumber: "7", InBoosters: true},
		{ID: "m1", Name: "Mythic One", Rarity: domain.RarityMythic, CollectorNumber: "8", InBoosters: true},
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestGenerate_StructuredScenario(t *testing.T) {
	def := &domain.BoosterDefinition{
		SetCode: "tst",
		Slots: []domain.Slot{
			{Rarities: []domain.Rarity{domain.RarityRare, domain.RarityMythic}, Count: 1, MythicRate: floatPtr(0)},
			{Rarities: []domain.Rarity{domain.RarityUncommon}, Count: 2},
			{Rarities: []domain.Rarity{domain.RarityCommon}, Count: 3},
		},
	}

	pool := booster.Generate(syntheticCatalog(), def, "daily-2024-01-01", 1)
	require.Len(t, pool, 6)

	// Slot order is the output order.
	assert.Equal(t, domain.RarityRare, pool[0].Rarity, "mythic rate 0 forces the rare")
	assert.Equal(t, domain.RarityUncommon, pool[1].Rarity)
	assert.Equal(t, domain.RarityUncommon, pool[2].Rarity)
	assert.Equal(t, domain.RarityCommon, pool[3].Rarity)
	assert.Equal(t, domain.RarityCommon, pool[4].Rarity)
	assert.Equal(t, domain.RarityCommon, pool[5].Rarity)

	// Exact picks for this seed, pinned so the draw sequence cannot drift.
	ids := make([]string, len(pool))
	for i, c := range pool {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"r1", "u2", "u2", "c3", "c3", "c3"}, ids)
}

func TestGenerate_Deterministic(t *testing.T) {
	def := &domain.BoosterDefinition{
		Slots: []domain.Slot{
			{Rarities: []domain.Rarity{domain.RarityRare, domain.RarityMythic}, Count: 1},
			{Rarities: []domain.Rarity{domain.RarityCommon}, Count: 10},
		},
	}

	a := booster.Generate(syntheticCatalog(), def, "daily-2024-05-05", 6)
	b := booster.Generate(syntheticCatalog(), def, "daily-2024-05-05", 6)
	assert.Equal(t, a, b)

	c := booster.Generate(syntheticCatalog(), def, "daily-2024-05-06", 6)
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestGenerate_StructuredSizeInvariant(t *testing.T) {
	def := &domain.BoosterDefinition{
		Slots: []domain.Slot{
			{Rarities: []domain.Rarity{domain.RarityRare, domain.RarityMythic}, Count: 1},
			{Rarities: []domain.Rarity{domain.RarityUncommon}, Count: 3},
			{Rarities: []domain.Rarity{domain.RarityCommon}, Count: 10},
		},
	}

	pool := booster.Generate(syntheticCatalog(), def, "daily-2024-02-02", 6)
	assert.Len(t, pool, 6*def.CardsPerBooster())
}

func TestGenerate_EmptySlotSkipsNotFails(t *testing.T) {
	// No mythics or rares at all: the rare/mythic slot is unfillable.
	catalog := []domain.Card{
		{ID: "c1", Rarity: domain.RarityCommon, CollectorNumber: "1", InBoosters: true},
	}
	def := &domain.BoosterDefinition{
		Slots: []domain.Slot{
			{Rarities: []domain.Rarity{domain.RarityRare, domain.RarityMythic}, Count: 1},
			{Rarities: []domain.Rarity{domain.RarityCommon}, Count: 2},
		},
	}

	pool := booster.Generate(catalog, def, "daily-2024-02-02", 3)
	assert.Len(t, pool, 3*2, "pool shrinks by exactly the skipped slot count")
	for _, c := range pool {
		assert.Equal(t, domain.RarityCommon, c.Rarity)
	}
}

func TestGenerate_MultiRaritySlot(t *testing.T) {
	def := &domain.BoosterDefinition{
		Slots: []domain.Slot{
			{Rarities: []domain.Rarity{domain.RarityCommon, domain.RarityUncommon}, Count: 4},
		},
	}

	pool := booster.Generate(syntheticCatalog(), def, "daily-2024-07-07", 6)
	require.Len(t, pool, 24)
	for _, c := range pool {
		assert.Contains(t, []domain.Rarity{domain.RarityCommon, domain.RarityUncommon}, c.Rarity)
	}
}

func TestGenerate_LegacySizeInvariant(t *testing.T) {
	pool := booster.Generate(syntheticCatalog(), nil, "daily-2024-03-03", 6)
	require.Len(t, pool, 6*14)

	// Pack-major layout: 1 rare/mythic, 3 uncommons, 10 commons per pack.
	for b := 0; b < 6; b++ {
		pack := pool[b*14 : (b+1)*14]
		assert.Contains(t, []domain.Rarity{domain.RarityRare, domain.RarityMythic}, pack[0].Rarity)
		for _, c := range pack[1:4] {
			assert.Equal(t, domain.RarityUncommon, c.Rarity)
		}
		for _, c := range pack[4:14] {
			assert.Equal(t, domain.RarityCommon, c.Rarity)
		}
	}
}

func TestGenerate_LegacyDefaultBoosterCount(t *testing.T) {
	pool := booster.Generate(syntheticCatalog(), nil, "daily-2024-03-03", 0)
	assert.Len(t, pool, booster.DefaultBoosterCount*14)
}

func TestGenerate_LegacyIgnoresNonBoosterCards(t *testing.T) {
	catalog := append(syntheticCatalog(), domain.Card{
		ID: "promo", Rarity: domain.RarityCommon, CollectorNumber: "400", InBoosters: false,
	})

	pool := booster.Generate(catalog, nil, "daily-2024-03-03", 6)
	for _, c := range pool {
		assert.NotEqual(t, "promo", c.ID)
	}
}

func TestBasicLands(t *testing.T) {
	catalog := []domain.Card{
		{ID: "w1", Name: "Plains", TypeLine: "Basic Land — Plains", CollectorNumber: "270"},
		{ID: "w2", Name: "Plains", TypeLine: "Basic Land — Plains", CollectorNumber: "271"},
		{ID: "u1", Name: "Island", TypeLine: "Basic Land — Island", CollectorNumber: "272"},
		{ID: "sw", Name: "Snow-Covered Swamp", TypeLine: "Basic Snow Land — Swamp", CollectorNumber: "280"},
		{ID: "fp", Name: "Fabled Passage", TypeLine: "Land", CollectorNumber: "244"},
	}

	basics := booster.BasicLands(catalog)
	require.Len(t, basics, 3)
	assert.Equal(t, "w1", basics["W"].ID, "first catalog match wins")
	assert.Equal(t, "u1", basics["U"].ID)
	assert.Equal(t, "sw", basics["B"].ID)
}
