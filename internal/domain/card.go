package domain

import (
	"strings"
	"time"
)

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityMythic   Rarity = "mythic"
)

// Color symbols follow the WUBRG convention.
var Colors = []string{"W", "U", "B", "R", "G"}

type ImageURIs struct {
	Small  string `json:"small,omitempty"`
	Normal string `json:"normal,omitempty"`
}

type CardFace struct {
	Name      string     `json:"name"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
}

// Card is a single printing as served by the catalog provider. Identifiers
// are opaque and stable across requests.
type Card struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Rarity          Rarity     `json:"rarity"`
	ManaValue       float64    `json:"cmc"`
	Colors          []string   `json:"colors"`
	TypeLine        string     `json:"type_line"`
	CollectorNumber string     `json:"collector_number"`
	PromoTypes      []string   `json:"promo_types,omitempty"`
	FrameEffects    []string   `json:"frame_effects,omitempty"`
	InBoosters      bool       `json:"booster"`
	ImageURIs       *ImageURIs `json:"image_uris,omitempty"`
	CardFaces       []CardFace `json:"card_faces,omitempty"`
}

// IsBasicLand reports whether the printing is a basic land. Both substrings
// are significant: "Snow-Covered Island" counts, "Fabled Passage" does not.
func (c Card) IsBasicLand() bool {
	return strings.Contains(c.TypeLine, "Basic") && strings.Contains(c.TypeLine, "Land")
}

// BasicLandColor maps a basic land to its color symbol, or "" for non-basics.
func (c Card) BasicLandColor() string {
	if !c.IsBasicLand() {
		return ""
	}
	switch {
	case strings.Contains(c.Name, "Plains"):
		return "W"
	case strings.Contains(c.Name, "Island"):
		return "U"
	case strings.Contains(c.Name, "Swamp"):
		return "B"
	case strings.Contains(c.Name, "Mountain"):
		return "R"
	case strings.Contains(c.Name, "Forest"):
		return "G"
	}
	return ""
}

// TrimmedCard is the reduced card shape written into daily snapshots.
type TrimmedCard struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Rarity          Rarity     `json:"rarity"`
	ManaValue       float64    `json:"cmc"`
	Colors          []string   `json:"colors"`
	TypeLine        string     `json:"type_line"`
	CollectorNumber string     `json:"collector_number"`
	ImageURIs       *ImageURIs `json:"image_uris,omitempty"`
	CardFaces       []CardFace `json:"card_faces,omitempty"`
}

// Trim drops everything the deckbuilding client does not need.
func (c Card) Trim() TrimmedCard {
	return TrimmedCard{
		ID:              c.ID,
		Name:            c.Name,
		Rarity:          c.Rarity,
		ManaValue:       c.ManaValue,
		Colors:          c.Colors,
		TypeLine:        c.TypeLine,
		CollectorNumber: c.CollectorNumber,
		ImageURIs:       c.ImageURIs,
		CardFaces:       c.CardFaces,
	}
}

type Set struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	ReleasedAt time.Time `json:"released_at"`
}
