// Package booster resolves booster slot definitions against a set catalog
// and samples sealed pools from them.
package booster

import (
	"strconv"
	"strings"

	"github.com/benson/poolbuilder/internal/domain"
)

// Print variants that exist in set data but are never opened in standard
// boosters.
var (
	excludedPromoTypes = map[string]bool{
		"fracturefoil": true,
		"texturedfoil": true,
		"ripplefoil":   true,
		"halofoil":     true,
		"confettifoil": true,
		"galaxyfoil":   true,
		"surgefoil":    true,
		"raisedfoil":   true,
		"headliner":    true,
	}
	excludedFrameEffects = map[string]bool{
		"inverted":    true,
		"extendedart": true,
	}
)

// IsCollectorExclusive reports whether the printing is a collector-only
// variant excluded from all booster sampling.
func IsCollectorExclusive(c domain.Card) bool {
	for _, p := range c.PromoTypes {
		if excludedPromoTypes[p] {
			return true
		}
	}
	for _, f := range c.FrameEffects {
		if excludedFrameEffects[f] {
			return true
		}
	}
	return false
}

// InRange reports whether a collector number falls inside a range spec,
// either a single number ("7") or an inclusive pair ("1-20"). Non-numeric
// collector numbers never match.
func InRange(collectorNumber, rangeSpec string) bool {
	n, err := strconv.Atoi(collectorNumber)
	if err != nil {
		return false
	}

	if start, end, ok := strings.Cut(rangeSpec, "-"); ok {
		lo, err := strconv.Atoi(start)
		if err != nil {
			return false
		}
		hi, err := strconv.Atoi(end)
		if err != nil {
			return false
		}
		return n >= lo && n <= hi
	}

	single, err := strconv.Atoi(rangeSpec)
	if err != nil {
		return false
	}
	return n == single
}

func inSlotRanges(c domain.Card, slot domain.Slot) bool {
	// A slot without declared pools places no range constraint.
	if len(slot.Pools) == 0 {
		return true
	}
	for _, ranges := range slot.Pools {
		for _, r := range ranges {
			if InRange(c.CollectorNumber, r) {
				return true
			}
		}
	}
	return false
}

func inSlotRarities(c domain.Card, slot domain.Slot) bool {
	if len(slot.Rarities) == 0 {
		return true
	}
	for _, r := range slot.Rarities {
		if c.Rarity == r {
			return true
		}
	}
	return false
}

// CardsForSlot resolves the physical cards eligible for one slot:
// rarity-set membership (when declared) intersected with range membership
// across all finishes, deduplicated by card id, collector-exclusives out.
func CardsForSlot(catalog []domain.Card, slot domain.Slot) []domain.Card {
	var out []domain.Card
	seen := make(map[string]bool, len(catalog))
	for _, c := range catalog {
		if seen[c.ID] || IsCollectorExclusive(c) {
			continue
		}
		if !inSlotRarities(c, slot) || !inSlotRanges(c, slot) {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

// BoosterEligible is the fallback eligible set when a set has no structured
// booster definition: anything the catalog flags as booster-obtainable,
// minus collector-exclusives.
func BoosterEligible(catalog []domain.Card) []domain.Card {
	var out []domain.Card
	for _, c := range catalog {
		if c.InBoosters && !IsCollectorExclusive(c) {
			out = append(out, c)
		}
	}
	return out
}

// ByRarity buckets cards by exact rarity.
func ByRarity(cards []domain.Card) map[domain.Rarity][]domain.Card {
	buckets := make(map[domain.Rarity][]domain.Card)
	for _, c := range cards {
		buckets[c.Rarity] = append(buckets[c.Rarity], c)
	}
	return buckets
}
