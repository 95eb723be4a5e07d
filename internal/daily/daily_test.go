package daily_test

import (
	"testing"
	"time"

	"github.com/benson/poolbuilder/internal/daily"
	"github.com/benson/poolbuilder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	at := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "daily-2024-01-01", daily.Seed(at))

	// Local time folds to the UTC date.
	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2024, 1, 1, 22, 0, 0, 0, est)
	assert.Equal(t, "daily-2024-01-02", daily.Seed(late))
}

func TestPickSet_FiltersOldSets(t *testing.T) {
	sets := []domain.Set{
		{Code: "lea", Name: "Limited Edition Alpha", ReleasedAt: time.Date(1993, 8, 5, 0, 0, 0, 0, time.UTC)},
		{Code: "znr", Name: "Zendikar Rising", ReleasedAt: time.Date(2020, 9, 25, 0, 0, 0, 0, time.UTC)},
	}

	got, err := daily.PickSet(sets, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "znr", got.Code, "pre-2020 sets must never be selected")
}

func TestPickSet_Deterministic(t *testing.T) {
	sets := []domain.Set{
		{Code: "znr", ReleasedAt: time.Date(2020, 9, 25, 0, 0, 0, 0, time.UTC)},
		{Code: "khm", ReleasedAt: time.Date(2021, 2, 5, 0, 0, 0, 0, time.UTC)},
		{Code: "stx", ReleasedAt: time.Date(2021, 4, 23, 0, 0, 0, 0, time.UTC)},
		{Code: "mid", ReleasedAt: time.Date(2021, 9, 24, 0, 0, 0, 0, time.UTC)},
	}

	first, err := daily.PickSet(sets, "2024-03-15")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := daily.PickSet(sets, "2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, first.Code, again.Code)
	}

	// Different dates spread across the catalog.
	seen := map[string]bool{}
	for _, date := range []string{"2024-03-15", "2024-03-16", "2024-03-17", "2024-03-18", "2024-03-19", "2024-03-20"} {
		s, err := daily.PickSet(sets, date)
		require.NoError(t, err)
		seen[s.Code] = true
	}
	assert.Greater(t, len(seen), 1, "consecutive days should not all land on one set")
}

func TestPickSet_NoEligibleSets(t *testing.T) {
	sets := []domain.Set{
		{Code: "lea", ReleasedAt: time.Date(1993, 8, 5, 0, 0, 0, 0, time.UTC)},
	}

	_, err := daily.PickSet(sets, "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrNoEligibleSets)

	_, err = daily.PickSet(nil, "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrNoEligibleSets)
}
