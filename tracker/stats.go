package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/databases"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

// Aggregator owns the join records, per-referrer counters, and departure
// logs. It is the only writer of counter deltas; every path funnels
// through ApplyDelta's atomic increments.
type Aggregator struct {
	joins      databases.JoinRecordDatabase
	stats      databases.ReferrerStatsDatabase
	departures databases.DepartureLogDatabase
	configs    databases.SpaceConfigDatabase
	classifier Classifier
}

// NewAggregator returns an Aggregator over the given collections
func NewAggregator(
	joins databases.JoinRecordDatabase,
	stats databases.ReferrerStatsDatabase,
	departures databases.DepartureLogDatabase,
	configs databases.SpaceConfigDatabase,
	classifier Classifier,
) *Aggregator {
	return &Aggregator{
		joins:      joins,
		stats:      stats,
		departures: departures,
		configs:    configs,
		classifier: classifier,
	}
}

// OnAttributedArrival records the join and credits the referrer with one
// total and one real invite
func (a *Aggregator) OnAttributedArrival(ctx context.Context, spaceID, referrerID, code, userID string, joinedAt time.Time) error {
	record := models.JoinRecord{
		ID:         primitive.NewObjectID(),
		SpaceID:    spaceID,
		UserID:     userID,
		ReferrerID: referrerID,
		InviteCode: code,
		JoinedAt:   joinedAt,
	}
	if _, err := a.joins.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert join record: %w", err)
	}
	return a.stats.ApplyDelta(ctx, spaceID, referrerID, models.StatsDelta{
		TotalInvites: 1,
		RealInvites:  1,
	})
}

// OnUnattributedArrival records the join with no referrer. No counters
// move; the member stays eligible for manual reconciliation.
func (a *Aggregator) OnUnattributedArrival(ctx context.Context, spaceID, userID string, joinedAt time.Time) error {
	record := models.JoinRecord{
		ID:         primitive.NewObjectID(),
		SpaceID:    spaceID,
		UserID:     userID,
		InviteCode: models.InviteCodeUnknown,
		JoinedAt:   joinedAt,
	}
	if _, err := a.joins.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert join record: %w", err)
	}
	return nil
}

// RecordManualResolution records an operator-supplied attribution from the
// reconciliation workflow. An empty referrer marks the member resolved as
// unknown; a concrete referrer is credited as a manual invite.
func (a *Aggregator) RecordManualResolution(ctx context.Context, spaceID, userID, referrerID string) error {
	code := models.InviteCodeManual
	if referrerID == "" {
		code = models.InviteCodeUnknown
	}
	record := models.JoinRecord{
		ID:         primitive.NewObjectID(),
		SpaceID:    spaceID,
		UserID:     userID,
		ReferrerID: referrerID,
		InviteCode: code,
		JoinedAt:   time.Now(),
	}
	if _, err := a.joins.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert join record: %w", err)
	}
	if referrerID == "" {
		return nil
	}
	return a.stats.ApplyDelta(ctx, spaceID, referrerID, models.StatsDelta{
		TotalInvites: 1,
		RealInvites:  1,
	})
}

// OnDeparture reclassifies a leaving member's invite. A short-lived stay
// moves one invite from real to fake; a genuine stay only bumps the
// referrer's leave count. Total invites never decrement. Members with no
// join record, or an unattributed one, only bump the space-wide tally.
func (a *Aggregator) OnDeparture(ctx context.Context, spaceID, userID string, leftAt time.Time) error {
	record, err := a.joins.FindOne(ctx, bson.M{"spaceId": spaceID, "userId": userID})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return a.configs.IncrementLeaves(ctx, spaceID)
	}
	if err != nil {
		return fmt.Errorf("failed to look up join record: %w", err)
	}

	if !record.Attributed() {
		return a.configs.IncrementLeaves(ctx, spaceID)
	}

	shortLived := a.classifier.ShortLived(record.JoinedAt, leftAt)
	delta := models.StatsDelta{Leaves: 1}
	if shortLived {
		delta.RealInvites = -1
		delta.FakeInvites = 1
	}
	if err := a.stats.ApplyDelta(ctx, spaceID, record.ReferrerID, delta); err != nil {
		return err
	}

	log := models.DepartureLog{
		ID:              primitive.NewObjectID(),
		SpaceID:         spaceID,
		UserID:          userID,
		ReferrerID:      record.ReferrerID,
		JoinedAt:        record.JoinedAt,
		LeftAt:          leftAt,
		DurationMinutes: int(leftAt.Sub(record.JoinedAt) / time.Minute),
		ShortLived:      shortLived,
	}
	if _, err := a.departures.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("failed to insert departure log: %w", err)
	}
	return nil
}

// QueryStats returns the counters for one referrer, zero-valued when the
// referrer has no row yet
func (a *Aggregator) QueryStats(ctx context.Context, spaceID, referrerID string) (models.ReferrerStats, error) {
	stats, err := a.stats.FindOne(ctx, bson.M{"spaceId": spaceID, "referrerId": referrerID})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ReferrerStats{SpaceID: spaceID, ReferrerID: referrerID}, nil
	}
	if err != nil {
		return models.ReferrerStats{}, err
	}
	return *stats, nil
}

// QueryLeaderboard returns up to limit referrers ordered by real invites
// descending, referrer id ascending as the tiebreak
func (a *Aggregator) QueryLeaderboard(ctx context.Context, spaceID string, limit int) ([]models.ReferrerStats, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "realInvites", Value: -1}, {Key: "referrerId", Value: 1}}).
		SetLimit(int64(limit))
	return a.stats.Find(ctx, bson.M{"spaceId": spaceID}, opts)
}

// UnresolvedMembers returns the ids of non-automated members with no join
// record, the population the reconciliation workflow walks
func (a *Aggregator) UnresolvedMembers(ctx context.Context, spaceID string, members []models.Member) ([]string, error) {
	records, err := a.joins.Find(ctx, bson.M{"spaceId": spaceID})
	if err != nil {
		return nil, fmt.Errorf("failed to list join records: %w", err)
	}
	known := make(map[string]bool, len(records))
	for _, record := range records {
		known[record.UserID] = true
	}

	var unresolved []string
	for _, member := range members {
		if member.IsAutomated || known[member.ID] {
			continue
		}
		unresolved = append(unresolved, member.ID)
	}
	return unresolved, nil
}

// HasJoinRecord reports whether a member already has a join record in the space
func (a *Aggregator) HasJoinRecord(ctx context.Context, spaceID, userID string) (bool, error) {
	_, err := a.joins.FindOne(ctx, bson.M{"spaceId": spaceID, "userId": userID})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
