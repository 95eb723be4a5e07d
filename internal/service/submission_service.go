package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/benson/poolbuilder/internal/daily"
	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/repository"
	"github.com/google/uuid"
)

// Notifier receives submission-count changes for live listeners. The
// websocket hub implements it; a nil notifier is fine.
type Notifier interface {
	NotifySubmission(date string, count int)
}

type SubmissionService struct {
	store    repository.KVStore
	notifier Notifier
	now      func() time.Time
}

func NewSubmissionService(store repository.KVStore, notifier Notifier) *SubmissionService {
	return &SubmissionService{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin "today".
func (s *SubmissionService) WithClock(now func() time.Time) *SubmissionService {
	s.now = now
	return s
}

type SubmitInput struct {
	Date        string
	Name        string
	Fingerprint string
	CardIDs     []string
	Basics      map[string]int
	Colors      []string
}

type SubmitResult struct {
	ID       string
	Snapshot domain.DaySnapshot
	// Conflict marks a repeat fingerprint: ID is the original submission's
	// and nothing was written.
	Conflict bool
}

// Submit records a deck for today's challenge. The dedup check runs before
// size validation so a returning caller always gets the current state back,
// even with an otherwise invalid payload.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if input.Date == "" || input.Fingerprint == "" || input.CardIDs == nil || input.Basics == nil || input.Colors == nil {
		return nil, domain.Invalid("missing required field")
	}

	today := daily.Date(s.now())
	if input.Date != today {
		return nil, domain.Invalid("date must be today (%s)", today)
	}

	subs, meta, err := s.loadDay(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	for _, existing := range subs {
		if existing.Fingerprint == input.Fingerprint {
			return &SubmitResult{
				ID:       existing.ID,
				Snapshot: domain.DaySnapshot{Submissions: subs, Meta: meta},
				Conflict: true,
			}, nil
		}
	}

	basicCount := 0
	for _, n := range input.Basics {
		if n < 0 {
			return nil, domain.Invalid("basic land counts must be non-negative")
		}
		basicCount += n
	}
	if len(input.CardIDs)+basicCount < domain.MinDeckSize {
		return nil, domain.Invalid("deck must contain at least %d cards", domain.MinDeckSize)
	}

	sub := domain.Submission{
		ID:          newSubmissionID(),
		Name:        normalizeName(input.Name),
		Fingerprint: input.Fingerprint,
		SubmittedAt: s.now().UTC(),
		CardIDs:     input.CardIDs,
		Basics:      input.Basics,
		Colors:      input.Colors,
	}

	subs = append(subs, sub)
	meta.Count = len(subs)

	if err := s.saveDay(ctx, input.Date, subs, meta); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifySubmission(input.Date, meta.Count)
	}

	return &SubmitResult{
		ID:       sub.ID,
		Snapshot: domain.DaySnapshot{Submissions: subs, Meta: meta},
	}, nil
}

// DayView is the result of a submissions query. Locked views carry only the
// aggregate count.
type DayView struct {
	Unlocked bool
	Count    int
	Snapshot domain.DaySnapshot
}

// Day returns a day's submissions. The full list unlocks only for a
// fingerprint that has already submitted that day.
func (s *SubmissionService) Day(ctx context.Context, date, fingerprint string) (*DayView, error) {
	if !domain.ValidDate(date) {
		return nil, domain.Invalid("malformed date, want YYYY-MM-DD")
	}

	subs, meta, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	if fingerprint != "" {
		for _, existing := range subs {
			if existing.Fingerprint == fingerprint {
				return &DayView{
					Unlocked: true,
					Count:    meta.Count,
					Snapshot: domain.DaySnapshot{Submissions: subs, Meta: meta},
				}, nil
			}
		}
	}

	return &DayView{Count: meta.Count}, nil
}

// SetFeatured toggles a submission id on the day's featured list.
// Idempotent in both directions.
func (s *SubmissionService) SetFeatured(ctx context.Context, date, submissionID string, featured bool) (*domain.DayMeta, error) {
	if !domain.ValidDate(date) {
		return nil, domain.Invalid("malformed date, want YYYY-MM-DD")
	}
	if submissionID == "" {
		return nil, domain.Invalid("missing submission id")
	}

	_, meta, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	meta.Feature(submissionID, featured)

	blob, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, repository.MetaKey(date), blob); err != nil {
		return nil, fmt.Errorf("failed to persist day metadata: %w", err)
	}

	return &meta, nil
}

func (s *SubmissionService) loadDay(ctx context.Context, date string) ([]domain.Submission, domain.DayMeta, error) {
	// A missing key is a valid empty day, not an error.
	subs := []domain.Submission{}
	meta := domain.DayMeta{Featured: []string{}}

	blob, found, err := s.store.Get(ctx, repository.SubsKey(date))
	if err != nil {
		return nil, meta, fmt.Errorf("failed to load submissions: %w", err)
	}
	if found {
		if err := json.Unmarshal(blob, &subs); err != nil {
			return nil, meta, fmt.Errorf("corrupt submissions record for %s: %w", date, err)
		}
	}

	blob, found, err = s.store.Get(ctx, repository.MetaKey(date))
	if err != nil {
		return nil, meta, fmt.Errorf("failed to load day metadata: %w", err)
	}
	if found {
		if err := json.Unmarshal(blob, &meta); err != nil {
			return nil, meta, fmt.Errorf("corrupt metadata record for %s: %w", date, err)
		}
	}

	return subs, meta, nil
}

// saveDay is a read-modify-write over two keys with no cross-key
// transaction; concurrent submissions for the same day can race. Accepted:
// the store is single-writer in practice (one request at a time per day).
func (s *SubmissionService) saveDay(ctx context.Context, date string, subs []domain.Submission, meta domain.DayMeta) error {
	blob, err := json.Marshal(subs)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, repository.SubsKey(date), blob); err != nil {
		return fmt.Errorf("failed to persist submissions: %w", err)
	}

	blob, err = json.Marshal(meta)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, repository.MetaKey(date), blob); err != nil {
		return fmt.Errorf("failed to persist day metadata: %w", err)
	}
	return nil
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.AnonymousName
	}
	runes := []rune(name)
	if len(runes) > domain.MaxNameLength {
		runes = runes[:domain.MaxNameLength]
	}
	return string(runes)
}

// newSubmissionID returns a short opaque token.
func newSubmissionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
