// Package daily derives the daily challenge parameters. Seed and set choice
// are pure functions of the UTC calendar date, so any caller reproduces them
// without shared state.
package daily

import (
	"time"

	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/rng"
)

// SeedPrefix distinguishes daily seeds from ad-hoc ones.
const SeedPrefix = "daily-"

// Sets released before this date are never picked for the daily challenge.
var setCutoff = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// Date formats t's UTC calendar date as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns the daily seed string for t's UTC date.
func Seed(t time.Time) string {
	return SeedPrefix + Date(t)
}

// PickSet deterministically selects the day's set: recent sets only, indexed
// by the date string's fold magnitude.
func PickSet(sets []domain.Set, date string) (domain.Set, error) {
	var recent []domain.Set
	for _, s := range sets {
		if !s.ReleasedAt.Before(setCutoff) {
			recent = append(recent, s)
		}
	}
	if len(recent) == 0 {
		return domain.Set{}, domain.ErrNoEligibleSets
	}

	h := int64(rng.Fold(date))
	if h < 0 {
		h = -h
	}
	return recent[h%int64(len(recent))], nil
}
