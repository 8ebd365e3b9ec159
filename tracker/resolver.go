package tracker

import (
	"context"
	"sort"
)

// Attribution is the outcome of resolving a single arrival. Attributed is
// false when no invite count moved, when the winning code belongs to a
// vanity invite with no recorded creator, or when two arrivals raced over
// one increment and this one lost.
type Attribution struct {
	Attributed bool
	Code       string
	ReferrerID string
}

// Resolver attributes arrivals by diffing the live invite counts against
// the last captured snapshot
type Resolver struct {
	snapshots *SnapshotStore
}

// NewResolver returns a Resolver backed by the given snapshot store
func NewResolver(snapshots *SnapshotStore) *Resolver {
	return &Resolver{snapshots: snapshots}
}

// Resolve swaps in a fresh snapshot and picks the first invite, in code
// order, whose usage count strictly increased since the prior snapshot.
// Codes present before but absent now are treated as deleted, never as a
// decrement. Ties across multiple increased codes resolve deterministically
// to the lexicographically smallest code.
func (r *Resolver) Resolve(ctx context.Context, spaceID string) (Attribution, error) {
	prior, fresh, err := r.snapshots.Swap(ctx, spaceID)
	if err != nil {
		return Attribution{}, err
	}

	sort.Slice(fresh, func(i, j int) bool { return fresh[i].Code < fresh[j].Code })

	for _, invite := range fresh {
		if invite.Uses <= prior[invite.Code] {
			continue
		}
		if invite.CreatorID == "" {
			return Attribution{Code: invite.Code}, nil
		}
		return Attribution{
			Attributed: true,
			Code:       invite.Code,
			ReferrerID: invite.CreatorID,
		}, nil
	}

	return Attribution{}, nil
}
