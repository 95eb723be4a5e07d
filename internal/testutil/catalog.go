package testutil

import (
	"context"
	"time"

	"github.com/benson/poolbuilder/internal/domain"
)

// FakeCatalog implements catalog.Provider from fixed data, keeping handler
// and service tests off the network.
type FakeCatalog struct {
	SetList    []domain.Set
	Cards      map[string][]domain.Card
	Definition map[string]*domain.BoosterDefinition
	Err        error
}

// NewFakeCatalog returns a catalog with one recent set ("tst") holding the
// synthetic eight-card spread plus basics.
func NewFakeCatalog() *FakeCatalog {
	return &FakeCatalog{
		SetList: []domain.Set{
			{Code: "tst", Name: "Test Set", ReleasedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
		Cards: map[string][]domain.Card{
			"tst": SyntheticCards(),
		},
		Definition: map[string]*domain.BoosterDefinition{},
	}
}

func (f *FakeCatalog) Sets(_ context.Context) ([]domain.Set, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.SetList, nil
}

func (f *FakeCatalog) SetCards(_ context.Context, code string) ([]domain.Card, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Cards[code], nil
}

func (f *FakeCatalog) BoosterDefinition(_ context.Context, code string) (*domain.BoosterDefinition, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Definition[code], nil
}

// SyntheticCards is a minimal catalog with every rarity tier and basics.
func SyntheticCards() []domain.Card {
	return []domain.Card{
		{ID: "c1", Name: "Common One", Rarity: domain.RarityCommon, CollectorNumber: "1", InBoosters: true},
		{ID: "c2", Name: "Common Two", Rarity: domain.RarityCommon, CollectorNumber: "2", InBoosters: true},
		{ID: "c3", Name: "Common Three", Rarity: domain.RarityCommon, CollectorNumber: "3", InBoosters: true},
		{ID: "c4", Name: "Common Four", Rarity: domain.RarityCommon, CollectorNumber: "4", InBoosters: true},
		{ID: "u1", Name: "Uncommon One", Rarity: domain.RarityUncommon, CollectorNumber: "5", InBoosters: true},
		{ID: "u2", Name: "Uncommon Two", Rarity: domain.RarityUncommon, CollectorNumber: "6", InBoosters: true},
		{ID: "r1", Name: "Rare One", Rarity: domain.RarityRare, CollectorNumber: "7", InBoosters: true},
		{ID: "m1", Name: "Mythic One", Rarity: domain.RarityMythic, CollectorNumber: "8", InBoosters: true},
		{ID: "w1", Name: "Plains", TypeLine: "Basic Land — Plains", Rarity: domain.RarityCommon, CollectorNumber: "9"},
		{ID: "g1", Name: "Forest", TypeLine: "Basic Land — Forest", Rarity: domain.RarityCommon, CollectorNumber: "10"},
	}
}
