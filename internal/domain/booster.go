package domain

// DefaultMythicRate is the chance a rare/mythic slot upgrades to a mythic
// when the slot does not declare its own rate.
const DefaultMythicRate = 0.125

// Slot is one rule inside a booster definition: how many cards of which
// rarities to draw, restricted to per-finish collector-number ranges.
type Slot struct {
	// Rarities is the set of rarities eligible for this slot. Empty means
	// any card inside the slot's ranges qualifies.
	Rarities []Rarity `json:"rarities,omitempty"`

	// Count is the number of cards drawn from this slot per booster.
	Count int `json:"count"`

	// MythicRate overrides DefaultMythicRate. Only meaningful when Rarities
	// is exactly {rare, mythic}.
	MythicRate *float64 `json:"mythicRate,omitempty"`

	// Pools maps a finish name ("nonfoil", "foil", ...) to collector-number
	// ranges, each either "7" or an inclusive "1-20".
	Pools map[string][]string `json:"pools,omitempty"`
}

// EffectiveMythicRate resolves the slot's mythic-substitution rate.
func (s Slot) EffectiveMythicRate() float64 {
	if s.MythicRate != nil {
		return *s.MythicRate
	}
	return DefaultMythicRate
}

// IsRareMythic reports whether the slot's rarity set is exactly
// {rare, mythic}, which activates the mythic-substitution gate.
func (s Slot) IsRareMythic() bool {
	if len(s.Rarities) != 2 {
		return false
	}
	seen := map[Rarity]bool{}
	for _, r := range s.Rarities {
		seen[r] = true
	}
	return seen[RarityRare] && seen[RarityMythic]
}

// BoosterDefinition describes the slot structure of one product's booster
// for a set. Slot order is significant: it is the draw order.
type BoosterDefinition struct {
	SetCode string `json:"setCode"`
	Product string `json:"product,omitempty"`
	Slots   []Slot `json:"slots"`
}

// CardsPerBooster is the number of cards one booster contributes.
func (d BoosterDefinition) CardsPerBooster() int {
	total := 0
	for _, s := range d.Slots {
		total += s.Count
	}
	return total
}
