// Package memory is an in-process backend with the same guarantees as the
// postgres one, for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/rewards-server/internal/model"
)

var (
	_ model.Transactor = (*Store)(nil)
	_ model.Pinger     = (*Store)(nil)
)

type state struct {
	consents   map[model.UserID]model.ConsentRecord
	anonymized []model.AnonymizedRecord
}

func (s *state) clone() state {
	c := state{
		consents:   make(map[model.UserID]model.ConsentRecord, len(s.consents)),
		anonymized: make([]model.AnonymizedRecord, len(s.anonymized)),
	}
	for k, v := range s.consents {
		c.consents[k] = v
	}
	copy(c.anonymized, s.anonymized)
	return c
}

// Store keeps all data behind one mutex. WithUserLock holds it for the whole
// callback, so it serializes every user, not only the one named.
type Store struct {
	mu    sync.Mutex
	data  state
	clock func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data: state{
			consents: make(map[model.UserID]model.ConsentRecord),
		},
		clock: time.Now,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Consents returns a store view that locks per call.
func (s *Store) Consents() model.ConsentStore {
	return &consentView{store: s}
}

// Anonymized returns a store view that locks per call.
func (s *Store) Anonymized() model.AnonymizedStore {
	return &anonymizedView{store: s}
}

// WithUserLock runs fn with exclusive access and restores the previous state if fn fails.
func (s *Store) WithUserLock(ctx context.Context, _ model.UserID, fn func(ctx context.Context, uow model.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	uow := &unitOfWork{
		consents:   &consentView{store: s, held: true},
		anonymized: &anonymizedView{store: s, held: true},
	}
	if err := fn(ctx, uow); err != nil {
		s.data = snapshot
		return err
	}

	return nil
}

func (s *Store) acquire(held bool) func() {
	if held {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type unitOfWork struct {
	consents   *consentView
	anonymized *anonymizedView
}

func (u *unitOfWork) Consents() model.ConsentStore {
	return u.consents
}

func (u *unitOfWork) Anonymized() model.AnonymizedStore {
	return u.anonymized
}

type consentView struct {
	store *Store
	held  bool
}

func (v *consentView) Get(ctx context.Context, userID model.UserID) (model.ConsentRecord, error) {
	defer v.store.acquire(v.held)()

	record, ok := v.store.data.consents[userID]
	if !ok {
		return model.ConsentRecord{}, model.ErrNotFound
	}
	return record, nil
}

func (v *consentView) Save(ctx context.Context, record model.ConsentRecord) error {
	defer v.store.acquire(v.held)()

	now := v.store.clock()
	existing, ok := v.store.data.consents[record.UserID]
	if ok {
		existing.ConsentGiven = record.ConsentGiven
		existing.ConsentDate = record.ConsentDate
		existing.WithdrawalDate = record.WithdrawalDate
		existing.UpdatedAt = orNow(record.UpdatedAt, now)
		v.store.data.consents[record.UserID] = existing
		return nil
	}

	if record.RewardPoints < 0 {
		return model.ErrMalformedInput
	}
	record.CreatedAt = orNow(record.CreatedAt, now)
	record.UpdatedAt = orNow(record.UpdatedAt, now)
	v.store.data.consents[record.UserID] = record
	return nil
}

func (v *consentView) AddPoints(ctx context.Context, userID model.UserID, delta int64) (int64, error) {
	defer v.store.acquire(v.held)()

	now := v.store.clock()
	record, ok := v.store.data.consents[userID]
	if !ok {
		record = model.ConsentRecord{UserID: userID, CreatedAt: now}
	}
	if record.RewardPoints+delta < 0 {
		return 0, model.ErrMalformedInput
	}
	record.RewardPoints += delta
	record.UpdatedAt = now
	v.store.data.consents[userID] = record

	return record.RewardPoints, nil
}

type anonymizedView struct {
	store *Store
	held  bool
}

func (v *anonymizedView) Create(ctx context.Context, record model.AnonymizedRecord) (model.AnonymizedRecord, error) {
	defer v.store.acquire(v.held)()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = orNow(record.CreatedAt, v.store.clock())
	record.Inventory = append([]model.LineItem(nil), record.Inventory...)
	v.store.data.anonymized = append(v.store.data.anonymized, record)

	return record, nil
}

func (v *anonymizedView) DeleteByHashedUserID(ctx context.Context, hashedUserID string) (int64, error) {
	defer v.store.acquire(v.held)()

	kept := make([]model.AnonymizedRecord, 0, len(v.store.data.anonymized))
	var deleted int64
	for _, r := range v.store.data.anonymized {
		if r.HashedUserID == hashedUserID {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	v.store.data.anonymized = kept

	return deleted, nil
}

func (v *anonymizedView) CountByHashedUserID(ctx context.Context, hashedUserID string) (int64, error) {
	defer v.store.acquire(v.held)()

	var count int64
	for _, r := range v.store.data.anonymized {
		if r.HashedUserID == hashedUserID {
			count++
		}
	}
	return count, nil
}

func (v *anonymizedView) ListByMonth(ctx context.Context, month string) ([]model.AnonymizedRecord, error) {
	defer v.store.acquire(v.held)()

	var out []model.AnonymizedRecord
	for _, r := range v.store.data.anonymized {
		if r.TransactionMonth == month {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
