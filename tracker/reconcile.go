package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session states. A session walks Scanning -> AwaitingResolution repeatedly
// until the queue drains into Complete, or the operator cancels / the idle
// timeout fires into Abandoned.
const (
	SessionScanning           = "scanning"
	SessionAwaitingResolution = "awaiting_resolution"
	SessionComplete           = "complete"
	SessionAbandoned          = "abandoned"
)

var (
	// ErrSessionNotFound means no live session has the given id
	ErrSessionNotFound = errors.New("reconciliation session not found")
	// ErrSessionExpired means the session sat idle past its timeout
	ErrSessionExpired = errors.New("reconciliation session expired")
	// ErrSessionClosed means the session already reached a terminal state
	ErrSessionClosed = errors.New("reconciliation session is closed")
	// ErrMemberMismatch means the submitted member is not the one awaiting resolution
	ErrMemberMismatch = errors.New("member is not awaiting resolution in this session")
)

// Session is one operator-driven reconciliation walk over a space's
// unresolved members. Pending holds the member currently presented for
// resolution; Remaining is the rest of the queue.
type Session struct {
	ID            string    `json:"sessionId"`
	SpaceID       string    `json:"spaceId"`
	ActorID       string    `json:"actorId"`
	State         string    `json:"state"`
	Pending       string    `json:"pending,omitempty"`
	Remaining     int       `json:"remaining"`
	ResolvedCount int       `json:"resolvedCount"`
	StartedAt     time.Time `json:"startedAt"`
	LastActivity  time.Time `json:"lastActivity"`

	queue    []string
	resolved map[string]bool
}

// Reconciler runs the manual attribution workflow. Sessions live in
// memory only; a restart abandons them, which is acceptable because every
// resolution is persisted the moment it is submitted.
type Reconciler struct {
	provider LiveStateProvider
	stats    *Aggregator
	rewards  *Evaluator
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewReconciler returns a Reconciler whose sessions expire after ttl of inactivity
func NewReconciler(provider LiveStateProvider, stats *Aggregator, rewards *Evaluator, ttl time.Duration) *Reconciler {
	return &Reconciler{
		provider: provider,
		stats:    stats,
		rewards:  rewards,
		ttl:      ttl,
		sessions: map[string]*Session{},
	}
}

// Start scans the space for non-automated members lacking a join record
// and opens a session over them. An empty scan completes immediately.
func (r *Reconciler) Start(ctx context.Context, spaceID, actorID string) (Session, error) {
	members, err := r.provider.FetchMembers(ctx, spaceID)
	if err != nil {
		return Session{}, fmt.Errorf("failed to fetch members for space %s: %w", spaceID, err)
	}

	unresolved, err := r.stats.UnresolvedMembers(ctx, spaceID, members)
	if err != nil {
		return Session{}, err
	}
	sort.Strings(unresolved)

	now := time.Now()
	session := &Session{
		ID:           uuid.New().String(),
		SpaceID:      spaceID,
		ActorID:      actorID,
		State:        SessionScanning,
		StartedAt:    now,
		LastActivity: now,
		queue:        unresolved,
		resolved:     map[string]bool{},
	}
	session.advance()

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	zap.S().Infow("reconciliation session started",
		"sessionId", session.ID,
		"spaceId", spaceID,
		"actorId", actorID,
		"unresolved", len(unresolved),
	)
	return *session, nil
}

// Get returns the session's current view
func (r *Reconciler) Get(sessionID string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, err := r.live(sessionID)
	if err != nil {
		return Session{}, err
	}
	return *session, nil
}

// Resolve submits the operator's answer for the pending member. An empty
// referrer marks the member as resolved-unknown; a concrete referrer
// credits a manual invite and re-evaluates rewards. Members already holding
// a join record, recorded since the scan, are skipped without a write.
func (r *Reconciler) Resolve(ctx context.Context, sessionID, memberID, referrerID string) (Session, error) {
	r.mu.Lock()
	session, err := r.live(sessionID)
	if err != nil {
		r.mu.Unlock()
		return Session{}, err
	}
	if session.State != SessionAwaitingResolution {
		r.mu.Unlock()
		return Session{}, ErrSessionClosed
	}
	if memberID != session.Pending {
		r.mu.Unlock()
		return Session{}, ErrMemberMismatch
	}
	spaceID := session.SpaceID
	r.mu.Unlock()

	// The member may have gained a record since the scan (for example a
	// rejoin resolved live). Re-check before writing.
	exists, err := r.stats.HasJoinRecord(ctx, spaceID, memberID)
	if err != nil {
		return Session{}, err
	}
	if !exists {
		if err := r.stats.RecordManualResolution(ctx, spaceID, memberID, referrerID); err != nil {
			return Session{}, err
		}
		if referrerID != "" {
			if err := r.rewards.Evaluate(ctx, spaceID, referrerID); err != nil {
				zap.S().Errorw("reward evaluation failed during reconciliation",
					"sessionId", sessionID,
					"referrerId", referrerID,
					"error", err,
				)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	session, err = r.live(sessionID)
	if err != nil {
		return Session{}, err
	}
	session.resolved[memberID] = true
	session.ResolvedCount++
	session.LastActivity = time.Now()
	session.advance()
	return *session, nil
}

// Cancel abandons a session. Resolutions already submitted stay applied.
func (r *Reconciler) Cancel(sessionID string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	session.State = SessionAbandoned
	session.Pending = ""
	session.Remaining = 0
	delete(r.sessions, sessionID)
	return *session, nil
}

// SweepExpired abandons sessions idle past the ttl and returns how many it
// removed. The scheduler calls this periodically; expiry is also enforced
// lazily on access.
func (r *Reconciler) SweepExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	swept := 0
	for id, session := range r.sessions {
		if time.Since(session.LastActivity) > r.ttl {
			delete(r.sessions, id)
			swept++
		}
	}
	return swept
}

// live fetches a session and enforces expiry. Caller holds r.mu.
func (r *Reconciler) live(sessionID string) (*Session, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Since(session.LastActivity) > r.ttl {
		delete(r.sessions, sessionID)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// advance moves the session to the next unresolved member, or Complete
// when the queue is drained
func (s *Session) advance() {
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		if s.resolved[next] {
			continue
		}
		s.State = SessionAwaitingResolution
		s.Pending = next
		s.Remaining = len(s.queue)
		return
	}
	s.State = SessionComplete
	s.Pending = ""
	s.Remaining = 0
}
