package booster

import (
	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/rng"
)

// DefaultBoosterCount is the number of packs in a sealed pool.
const DefaultBoosterCount = 6

// Legacy per-pack slot counts, used when a set has no structured booster
// definition.
const (
	legacyRares     = 1
	legacyUncommons = 3
	legacyCommons   = 10
)

// Generate samples a sealed pool from the catalog. With a definition it
// walks the declared slots; without one it falls back to the legacy
// 1 rare / 3 uncommon / 10 common scheme. Output order is pack-major, then
// slot-declaration order, then draw order, and every PRNG draw happens in
// that exact sequence: the pool for a (seed, catalog) pair is a
// reproducibility contract.
func Generate(catalog []domain.Card, def *domain.BoosterDefinition, seed string, boosters int) []domain.Card {
	if boosters <= 0 {
		boosters = DefaultBoosterCount
	}
	gen := rng.NewString(seed)
	if def != nil && len(def.Slots) > 0 {
		return generateStructured(catalog, def, gen, boosters)
	}
	return generateLegacy(catalog, gen, boosters)
}

func generateStructured(catalog []domain.Card, def *domain.BoosterDefinition, gen *rng.Mulberry, boosters int) []domain.Card {
	// Resolve each slot's eligible cards once; slots repeat across packs.
	slotPools := make([][]domain.Card, len(def.Slots))
	slotRarities := make([]map[domain.Rarity][]domain.Card, len(def.Slots))
	for i, slot := range def.Slots {
		slotPools[i] = CardsForSlot(catalog, slot)
		slotRarities[i] = ByRarity(slotPools[i])
	}

	var pool []domain.Card
	for b := 0; b < boosters; b++ {
		for i, slot := range def.Slots {
			for n := 0; n < slot.Count; n++ {
				var candidates []domain.Card
				switch {
				case slot.IsRareMythic():
					mythics := slotRarities[i][domain.RarityMythic]
					candidates = slotRarities[i][domain.RarityRare]
					if gen.Next() < slot.EffectiveMythicRate() && len(mythics) > 0 {
						candidates = mythics
					}
				case len(slot.Rarities) > 1:
					r := slot.Rarities[gen.Pick(len(slot.Rarities))]
					candidates = slotRarities[i][r]
				case len(slot.Rarities) == 1:
					candidates = slotRarities[i][slot.Rarities[0]]
				default:
					candidates = slotPools[i]
				}
				if c, ok := sample(gen, candidates); ok {
					pool = append(pool, c)
				}
			}
		}
	}
	return pool
}

func generateLegacy(catalog []domain.Card, gen *rng.Mulberry, boosters int) []domain.Card {
	buckets := ByRarity(BoosterEligible(catalog))
	commons := buckets[domain.RarityCommon]
	uncommons := buckets[domain.RarityUncommon]
	rares := buckets[domain.RarityRare]
	mythics := buckets[domain.RarityMythic]

	var pool []domain.Card
	for b := 0; b < boosters; b++ {
		for n := 0; n < legacyRares; n++ {
			candidates := rares
			if gen.Next() < domain.DefaultMythicRate && len(mythics) > 0 {
				candidates = mythics
			}
			if c, ok := sample(gen, candidates); ok {
				pool = append(pool, c)
			}
		}
		for n := 0; n < legacyUncommons; n++ {
			if c, ok := sample(gen, uncommons); ok {
				pool = append(pool, c)
			}
		}
		for n := 0; n < legacyCommons; n++ {
			if c, ok := sample(gen, commons); ok {
				pool = append(pool, c)
			}
		}
	}
	return pool
}

// sample draws one card uniformly with replacement. The draw is consumed
// even when the pool is empty, keeping later draws aligned for incomplete
// catalogs; an unfillable slot contributes nothing rather than failing.
func sample(gen *rng.Mulberry, pool []domain.Card) (domain.Card, bool) {
	idx := gen.Pick(len(pool))
	if len(pool) == 0 {
		return domain.Card{}, false
	}
	return pool[idx], true
}

// BasicLands picks one representative basic land per color from the
// catalog, in catalog order. No PRNG draws are spent here.
func BasicLands(catalog []domain.Card) map[string]domain.Card {
	basics := make(map[string]domain.Card)
	for _, c := range catalog {
		color := c.BasicLandColor()
		if color == "" || IsCollectorExclusive(c) {
			continue
		}
		if _, ok := basics[color]; !ok {
			basics[color] = c
		}
	}
	return basics
}
