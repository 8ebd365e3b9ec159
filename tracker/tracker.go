// Package tracker implements invite attribution for community spaces: it
// figures out which invite link brought each new arrival in, keeps the
// per-referrer counters consistent across arrivals and departures, and
// evaluates reward thresholds against them.
package tracker

// go generate: mockery --name LiveStateProvider
// go generate: mockery --name GrantActuator
// go generate: mockery --name Messenger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/invitetrackhq/invite-tracker-api/databases"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

// LiveStateProvider fetches authoritative live state from the chat
// platform. Calls are expected to carry their own timeout/retry policy;
// the tracker propagates failures instead of retrying.
type LiveStateProvider interface {
	FetchInvites(ctx context.Context, spaceID string) ([]models.Invite, error)
	FetchMembers(ctx context.Context, spaceID string) ([]models.Member, error)
}

// GrantActuator performs reward grants on the chat platform. GrantRole is
// assumed idempotent: assigning an already-held role is a no-op, which is
// what makes at-least-once actuation safe.
type GrantActuator interface {
	GrantRole(ctx context.Context, spaceID, userID, grantID string) error
}

// Messenger delivers formatted messages to a space channel
type Messenger interface {
	SendWelcome(ctx context.Context, spaceID, channelID, text string) error
}

// Tracker is the entry point the event gateway and HTTP surface call into
type Tracker struct {
	provider  LiveStateProvider
	messenger Messenger

	snapshots *SnapshotStore
	resolver  *Resolver
	stats     *Aggregator
	rewards   *Evaluator

	configDB databases.SpaceConfigDatabase
	inviteDB databases.InviteRecordDatabase
}

// New wires a Tracker from its collaborators
func New(
	provider LiveStateProvider,
	actuator GrantActuator,
	messenger Messenger,
	joinDB databases.JoinRecordDatabase,
	statsDB databases.ReferrerStatsDatabase,
	ruleDB databases.RewardRuleDatabase,
	grantDB databases.RewardGrantDatabase,
	configDB databases.SpaceConfigDatabase,
	inviteDB databases.InviteRecordDatabase,
	departureDB databases.DepartureLogDatabase,
	classifier Classifier,
) *Tracker {
	snapshots := NewSnapshotStore(provider)
	stats := NewAggregator(joinDB, statsDB, departureDB, configDB, classifier)
	return &Tracker{
		provider:  provider,
		messenger: messenger,
		snapshots: snapshots,
		resolver:  NewResolver(snapshots),
		stats:     stats,
		rewards:   NewEvaluator(ruleDB, grantDB, statsDB, actuator),
		configDB:  configDB,
		inviteDB:  inviteDB,
	}
}

// Snapshots exposes the snapshot store for the resync scheduler
func (t *Tracker) Snapshots() *SnapshotStore {
	return t.snapshots
}

// Stats exposes the aggregator for the reconciliation workflow
func (t *Tracker) Stats() *Aggregator {
	return t.stats
}

// Rewards exposes the evaluator for the reconciliation workflow
func (t *Tracker) Rewards() *Evaluator {
	return t.rewards
}

// ResolveArrival attributes a new arrival to an invite and applies the
// counter increments. Unattributed arrivals are a normal outcome, not an
// error: the join is recorded without a referrer and no counters move.
func (t *Tracker) ResolveArrival(ctx context.Context, spaceID, userID string) (Attribution, error) {
	attribution, err := t.resolver.Resolve(ctx, spaceID)
	if err != nil {
		return Attribution{}, fmt.Errorf("failed to resolve arrival in space %s: %w", spaceID, err)
	}

	joinedAt := time.Now()
	if !attribution.Attributed {
		if err := t.stats.OnUnattributedArrival(ctx, spaceID, userID, joinedAt); err != nil {
			return attribution, err
		}
		return attribution, nil
	}

	if err := t.stats.OnAttributedArrival(ctx, spaceID, attribution.ReferrerID, attribution.Code, userID, joinedAt); err != nil {
		return attribution, err
	}

	if err := t.rewards.Evaluate(ctx, spaceID, attribution.ReferrerID); err != nil {
		zap.S().Errorw("reward evaluation failed",
			"spaceId", spaceID,
			"referrerId", attribution.ReferrerID,
			"error", err,
		)
	}

	t.sendWelcome(ctx, spaceID, userID, attribution)

	return attribution, nil
}

// RecordDeparture processes a member leaving the space
func (t *Tracker) RecordDeparture(ctx context.Context, spaceID, userID string) error {
	return t.stats.OnDeparture(ctx, spaceID, userID, time.Now())
}

// RecordInviteCreated applies an out-of-band invite creation notification
// to the cache and the persisted roster
func (t *Tracker) RecordInviteCreated(ctx context.Context, spaceID string, invite models.Invite) error {
	t.snapshots.RecordCreated(spaceID, invite.Code, invite.Uses)
	return t.inviteDB.Upsert(ctx, spaceID, invite)
}

// RecordInviteDeleted applies an out-of-band invite deletion notification
func (t *Tracker) RecordInviteDeleted(ctx context.Context, spaceID, code string) error {
	t.snapshots.RecordDeleted(spaceID, code)
	return t.inviteDB.DeleteOne(ctx, bson.M{"spaceId": spaceID, "code": code})
}

// QueryStats returns the counters for one referrer. A referrer with no
// stats row yet reports all zeroes.
func (t *Tracker) QueryStats(ctx context.Context, spaceID, referrerID string) (models.ReferrerStats, error) {
	return t.stats.QueryStats(ctx, spaceID, referrerID)
}

// QueryLeaderboard returns the top referrers of a space ordered by real invites
func (t *Tracker) QueryLeaderboard(ctx context.Context, spaceID string, limit int) ([]models.ReferrerStats, error) {
	return t.stats.QueryLeaderboard(ctx, spaceID, limit)
}

// Bootstrap warms the snapshot cache for the given spaces and persists the
// invite roster. Run once at startup before the event gateway accepts
// traffic, and again from the resync scheduler.
func (t *Tracker) Bootstrap(ctx context.Context, spaceIDs []string) error {
	for _, spaceID := range spaceIDs {
		invites, err := t.snapshots.Refresh(ctx, spaceID)
		if err != nil {
			return fmt.Errorf("failed to warm snapshot for space %s: %w", spaceID, err)
		}
		for _, invite := range invites {
			if err := t.inviteDB.Upsert(ctx, spaceID, invite); err != nil {
				return fmt.Errorf("failed to persist invite roster for space %s: %w", spaceID, err)
			}
		}
		zap.S().Infow("invite snapshot warmed",
			"spaceId", spaceID,
			"invites", len(invites),
		)
	}
	return nil
}

// sendWelcome posts the configured welcome message. Missing configuration
// silently skips the message; delivery failures are logged and dropped.
func (t *Tracker) sendWelcome(ctx context.Context, spaceID, userID string, attribution Attribution) {
	cfg, err := t.configDB.FindOne(ctx, bson.M{"spaceId": spaceID})
	if err != nil || cfg.WelcomeChannel == "" {
		return
	}

	template := cfg.WelcomeTemplate
	if template == "" {
		template = "Welcome {user}! Invited by {inviter}."
	}
	text := strings.NewReplacer(
		"{user}", userID,
		"{inviter}", attribution.ReferrerID,
		"{code}", attribution.Code,
	).Replace(template)

	if err := t.messenger.SendWelcome(ctx, spaceID, cfg.WelcomeChannel, text); err != nil {
		zap.S().Warnw("failed to send welcome message",
			"spaceId", spaceID,
			"userId", userID,
			"error", err,
		)
	}
}
