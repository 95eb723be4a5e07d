package domain

import (
	"regexp"
	"time"
)

// MinDeckSize is the minimum constructed-deck size: non-basic cards plus
// basic lands.
const MinDeckSize = 40

// MaxNameLength bounds the stored display name.
const MaxNameLength = 20

// AnonymousName replaces blank display names.
const AnonymousName = "anonymous"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s is a well-formed YYYY-MM-DD day key.
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// Submission is one player's deck for a daily challenge. Created once,
// never mutated, never deleted.
type Submission struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Fingerprint string         `json:"fingerprint"`
	SubmittedAt time.Time      `json:"submittedAt"`
	CardIDs     []string       `json:"cardIds"`
	Basics      map[string]int `json:"basics"`
	Colors      []string       `json:"colors"`
}

// DayMeta is the mutable per-day metadata record. Featured is ordered and
// duplicate-free; it is the only field moderation may touch.
type DayMeta struct {
	Count    int      `json:"count"`
	Featured []string `json:"featured"`
}

// Feature adds or removes a submission id from the featured list,
// idempotently in both directions.
func (m *DayMeta) Feature(id string, featured bool) {
	idx := -1
	for i, f := range m.Featured {
		if f == id {
			idx = i
			break
		}
	}
	if featured && idx < 0 {
		m.Featured = append(m.Featured, id)
	}
	if !featured && idx >= 0 {
		m.Featured = append(m.Featured[:idx], m.Featured[idx+1:]...)
	}
}

// DaySnapshot is the full per-day view returned to players who have
// submitted.
type DaySnapshot struct {
	Submissions []Submission `json:"submissions"`
	Meta        DayMeta      `json:"meta"`
}
