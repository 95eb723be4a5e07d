package testutil

import (
	"fmt"
	"time"

	"github.com/benson/poolbuilder/internal/daily"
)

// DeckPayload is the wire shape of a submission request.
type DeckPayload struct {
	Date        string         `json:"date"`
	Name        string         `json:"name,omitempty"`
	Fingerprint string         `json:"fingerprint"`
	CardIDs     []string       `json:"cardIds"`
	Basics      map[string]int `json:"basics"`
	Colors      []string       `json:"colors"`
}

// ValidDeck builds a 40-card submission for today under the given
// fingerprint: 23 spells plus 17 basics.
func ValidDeck(fingerprint string) DeckPayload {
	cards := make([]string, 23)
	for i := range cards {
		cards[i] = fmt.Sprintf("card-%d", i)
	}
	return DeckPayload{
		Date:        daily.Date(time.Now()),
		Name:        "tester",
		Fingerprint: fingerprint,
		CardIDs:     cards,
		Basics:      map[string]int{"W": 9, "U": 8},
		Colors:      []string{"W", "U"},
	}
}
