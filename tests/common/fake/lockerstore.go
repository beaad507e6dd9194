//go:build unit || e2e

// Package fake provides an in-memory record store with the same conditional
// update semantics as the SQL layer, for tests that exercise contention
// without a database.
package fake

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"smartlocker/internal/domain/locker"
	"smartlocker/internal/infra"
	"smartlocker/internal/usecase/shared"

	"github.com/google/uuid"
)

type record struct {
	status         locker.Status
	leaseToken     *string
	leaseIssuedAt  *time.Time
	leaseExpiresAt *time.Time
	occupantRef    *uuid.UUID
	lastOpenedAt   *time.Time
	updatedAt      time.Time
}

type LockerStore struct {
	mu      sync.Mutex
	records map[string]*record
}

func NewLockerStore(lockerIDs ...string) *LockerStore {
	records := make(map[string]*record, len(lockerIDs))
	for _, id := range lockerIDs {
		records[id] = &record{status: locker.StatusAvailable}
	}
	return &LockerStore{records: records}
}

func (s *LockerStore) AcquireNext(_ context.Context, token string, issuedAt, expiresAt time.Time) (*shared.LockerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rec := s.records[id]
		if rec.status != locker.StatusAvailable {
			continue
		}
		tok := token
		rec.status = locker.StatusLeased
		rec.leaseToken = &tok
		rec.leaseIssuedAt = &issuedAt
		rec.leaseExpiresAt = &expiresAt
		rec.updatedAt = issuedAt
		return s.snapshotLocked(id), nil
	}
	return nil, infra.WrapRepoErr("no available locker", errors.New("no rows"), infra.KindNotFound)
}

func (s *LockerStore) ConsumeLease(_ context.Context, lockerID, token string, now time.Time) (*shared.LockerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[lockerID]
	if !ok || rec.status != locker.StatusLeased || rec.leaseToken == nil ||
		*rec.leaseToken != token || !now.Before(*rec.leaseExpiresAt) {
		return nil, infra.WrapRepoErr("lease consume lost", errors.New("no rows"), infra.KindConflict)
	}

	rec.status = locker.StatusOccupied
	rec.leaseToken = nil
	rec.leaseIssuedAt = nil
	rec.leaseExpiresAt = nil
	rec.lastOpenedAt = &now
	rec.updatedAt = now
	return s.snapshotLocked(lockerID), nil
}

func (s *LockerStore) ExpireLease(_ context.Context, lockerID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[lockerID]
	if !ok || rec.status != locker.StatusLeased || rec.leaseExpiresAt == nil || now.Before(*rec.leaseExpiresAt) {
		return false, nil
	}
	s.resetLocked(rec, now)
	return true, nil
}

func (s *LockerStore) ExpireAllStale(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, rec := range s.records {
		if rec.status == locker.StatusLeased && rec.leaseExpiresAt != nil && !now.Before(*rec.leaseExpiresAt) {
			s.resetLocked(rec, now)
			n++
		}
	}
	return n, nil
}

func (s *LockerStore) Release(_ context.Context, lockerID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[lockerID]
	if !ok {
		return infra.WrapRepoErr("locker not found", errors.New("no rows"), infra.KindNotFound)
	}
	if rec.status == locker.StatusMaintenance {
		return nil
	}
	s.resetLocked(rec, now)
	return nil
}

func (s *LockerStore) ReleaseByOccupant(_ context.Context, occupantRef uuid.UUID, now time.Time) (*shared.LockerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, rec := range s.records {
		if rec.occupantRef != nil && *rec.occupantRef == occupantRef {
			s.resetLocked(rec, now)
			return s.snapshotLocked(id), nil
		}
	}
	return nil, infra.WrapRepoErr("occupant not found", errors.New("no rows"), infra.KindNotFound)
}

func (s *LockerStore) AssignOccupant(_ context.Context, lockerID string, occupantRef uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[lockerID]
	if !ok {
		return infra.WrapRepoErr("locker not found", errors.New("no rows"), infra.KindNotFound)
	}
	if rec.status != locker.StatusOccupied {
		return infra.WrapRepoErr("locker is not occupied", errors.New("no rows"), infra.KindConflict)
	}
	ref := occupantRef
	rec.occupantRef = &ref
	rec.updatedAt = now
	return nil
}

func (s *LockerStore) SetMaintenance(_ context.Context, lockerID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[lockerID]
	if !ok {
		return infra.WrapRepoErr("locker not found", errors.New("no rows"), infra.KindNotFound)
	}
	s.resetLocked(rec, now)
	rec.status = locker.StatusMaintenance
	return nil
}

func (s *LockerStore) ClearMaintenance(_ context.Context, lockerID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[lockerID]
	if !ok {
		return infra.WrapRepoErr("locker not found", errors.New("no rows"), infra.KindNotFound)
	}
	// Only a maintenance locker is cleared; anything else is a no-op, matching
	// the conditional update's predicate.
	if rec.status != locker.StatusMaintenance {
		return nil
	}
	s.resetLocked(rec, now)
	return nil
}

func (s *LockerStore) FindByID(_ context.Context, lockerID string) (*shared.LockerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[lockerID]; !ok {
		return nil, infra.WrapRepoErr("locker not found", errors.New("no rows"), infra.KindNotFound)
	}
	return s.snapshotLocked(lockerID), nil
}

func (s *LockerStore) resetLocked(rec *record, now time.Time) {
	rec.status = locker.StatusAvailable
	rec.leaseToken = nil
	rec.leaseIssuedAt = nil
	rec.leaseExpiresAt = nil
	rec.occupantRef = nil
	rec.updatedAt = now
}

func (s *LockerStore) snapshotLocked(id string) *shared.LockerSnapshot {
	rec := s.records[id]
	return &shared.LockerSnapshot{
		ID:             id,
		Status:         rec.status,
		LeaseToken:     rec.leaseToken,
		LeaseIssuedAt:  rec.leaseIssuedAt,
		LeaseExpiresAt: rec.leaseExpiresAt,
		OccupantRef:    rec.occupantRef,
		LastOpenedAt:   rec.lastOpenedAt,
		UpdatedAt:      rec.updatedAt,
	}
}

// NoopDispatcher reports every publish as accepted.
type NoopDispatcher struct{}

func (NoopDispatcher) SendUnlock(context.Context, string, map[string]string) bool { return true }
func (NoopDispatcher) SendLock(context.Context, string) bool                      { return true }

// NoopBroadcaster swallows events.
type NoopBroadcaster struct{}

func (NoopBroadcaster) Broadcast(string, any) {}
