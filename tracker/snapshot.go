package tracker

import (
	"context"
	"fmt"
	"sync"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

// Snapshot maps invite code to the usage count observed at capture time
type Snapshot map[string]int

// SnapshotStore holds the per-space invite snapshot the resolver diffs
// against. Each space has its own lock so that refresh-compare-replace is
// serialized per space without arrivals in one space blocking another.
type SnapshotStore struct {
	provider LiveStateProvider

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	cache map[string]Snapshot
}

// NewSnapshotStore returns an empty store backed by the given provider
func NewSnapshotStore(provider LiveStateProvider) *SnapshotStore {
	return &SnapshotStore{
		provider: provider,
		locks:    map[string]*sync.Mutex{},
		cache:    map[string]Snapshot{},
	}
}

func (s *SnapshotStore) spaceLock(spaceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[spaceID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[spaceID] = lock
	}
	return lock
}

// Refresh fetches the live invite list and replaces the cached snapshot
// wholesale, returning the fetched invites. On fetch failure the cached
// snapshot is left untouched.
func (s *SnapshotStore) Refresh(ctx context.Context, spaceID string) ([]models.Invite, error) {
	lock := s.spaceLock(spaceID)
	lock.Lock()
	defer lock.Unlock()

	invites, err := s.provider.FetchInvites(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invites: %w", err)
	}

	s.replace(spaceID, invites)
	return invites, nil
}

// Swap atomically fetches the live invite list, replaces the cached
// snapshot, and returns the prior snapshot alongside the fresh invites.
// This is the resolver's critical section: holding the space lock across
// fetch and replace guarantees each usage increment is consumed by exactly
// one resolution.
func (s *SnapshotStore) Swap(ctx context.Context, spaceID string) (Snapshot, []models.Invite, error) {
	lock := s.spaceLock(spaceID)
	lock.Lock()
	defer lock.Unlock()

	invites, err := s.provider.FetchInvites(ctx, spaceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch invites: %w", err)
	}

	prior := s.get(spaceID)
	s.replace(spaceID, invites)
	return prior, invites, nil
}

// Get returns a copy of the cached snapshot for a space. An unknown space
// yields an empty snapshot.
func (s *SnapshotStore) Get(spaceID string) Snapshot {
	lock := s.spaceLock(spaceID)
	lock.Lock()
	defer lock.Unlock()
	return s.get(spaceID)
}

// RecordCreated registers a newly created invite in the cached snapshot so
// the next diff starts from its advertised count. A cached count is never
// lowered here: a create notification delivered after a resync already
// observed the code with real uses would otherwise fabricate a phantom
// usage delta on the next resolve. Only a full refresh can lower a count.
func (s *SnapshotStore) RecordCreated(spaceID, code string, uses int) {
	lock := s.spaceLock(spaceID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.cache[spaceID]
	if !ok {
		snap = Snapshot{}
		s.cache[spaceID] = snap
	}
	if cur, ok := snap[code]; !ok || uses > cur {
		snap[code] = uses
	}
}

// RecordDeleted drops an invite from the cached snapshot
func (s *SnapshotStore) RecordDeleted(spaceID, code string) {
	lock := s.spaceLock(spaceID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap, ok := s.cache[spaceID]; ok {
		delete(snap, code)
	}
}

func (s *SnapshotStore) get(spaceID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Snapshot{}
	for code, uses := range s.cache[spaceID] {
		out[code] = uses
	}
	return out
}

func (s *SnapshotStore) replace(spaceID string, invites []models.Invite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(Snapshot, len(invites))
	for _, invite := range invites {
		snap[invite.Code] = invite.Uses
	}
	s.cache[spaceID] = snap
}
