package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/benson/poolbuilder/internal/booster"
	"github.com/benson/poolbuilder/internal/catalog"
	"github.com/benson/poolbuilder/internal/daily"
	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/repository"
	"golang.org/x/sync/errgroup"
)

type PoolService struct {
	catalog  catalog.Provider
	store    repository.KVStore
	boosters int
	now      func() time.Time
}

func NewPoolService(provider catalog.Provider, store repository.KVStore, boosters int) *PoolService {
	if boosters <= 0 {
		boosters = booster.DefaultBoosterCount
	}
	return &PoolService{
		catalog:  provider,
		store:    store,
		boosters: boosters,
		now:      time.Now,
	}
}

func (s *PoolService) WithClock(now func() time.Time) *PoolService {
	s.now = now
	return s
}

// Daily returns today's snapshot: the pre-generated blob when the batch job
// has already run, otherwise generated on demand through the catalog.
func (s *PoolService) Daily(ctx context.Context) (*domain.DailySnapshot, error) {
	date := daily.Date(s.now())

	blob, found, err := s.store.Get(ctx, repository.SnapshotKey(date))
	if err != nil {
		return nil, fmt.Errorf("failed to load daily snapshot: %w", err)
	}
	if found {
		var snap domain.DailySnapshot
		if err := json.Unmarshal(blob, &snap); err != nil {
			return nil, fmt.Errorf("corrupt daily snapshot for %s: %w", date, err)
		}
		return &snap, nil
	}

	return s.GenerateFor(ctx, s.now())
}

// GenerateFor derives the day's set and seed from t and generates the full
// snapshot. Pure given the catalog's contents: the same date always yields
// the same pool.
func (s *PoolService) GenerateFor(ctx context.Context, t time.Time) (*domain.DailySnapshot, error) {
	date := daily.Date(t)
	seed := daily.Seed(t)

	sets, err := s.catalog.Sets(ctx)
	if err != nil {
		return nil, err
	}
	set, err := daily.PickSet(sets, date)
	if err != nil {
		return nil, err
	}

	var (
		cards []domain.Card
		def   *domain.BoosterDefinition
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cards, err = s.catalog.SetCards(gctx, set.Code)
		return err
	})
	g.Go(func() error {
		var err error
		def, err = s.catalog.BoosterDefinition(gctx, set.Code)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pool := booster.Generate(cards, def, seed, s.boosters)
	basics := booster.BasicLands(cards)

	snap := &domain.DailySnapshot{
		Date: date,
		Seed: seed,
		Set:  domain.SnapshotSet{Code: set.Code, Name: set.Name},
		Pool: make([]domain.TrimmedCard, len(pool)),
	}
	for i, c := range pool {
		snap.Pool[i] = c.Trim()
	}
	snap.BasicLands = make(map[string]domain.TrimmedCard, len(basics))
	for color, c := range basics {
		snap.BasicLands[color] = c.Trim()
	}
	return snap, nil
}

// Pregenerate builds the snapshot for t's date and persists it so that
// Daily and clients can serve it without re-deriving.
func (s *PoolService) Pregenerate(ctx context.Context, t time.Time) (*domain.DailySnapshot, error) {
	snap, err := s.GenerateFor(ctx, t)
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, repository.SnapshotKey(snap.Date), blob); err != nil {
		return nil, fmt.Errorf("failed to persist daily snapshot: %w", err)
	}
	return snap, nil
}
