package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invitetrackhq/invite-tracker-api/databases/mocks"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

func newTestAggregator(t *testing.T) (*Aggregator, *mocks.JoinRecordDatabase, *mocks.ReferrerStatsDatabase, *mocks.DepartureLogDatabase, *mocks.SpaceConfigDatabase) {
	joins := mocks.NewJoinRecordDatabase(t)
	stats := mocks.NewReferrerStatsDatabase(t)
	departures := mocks.NewDepartureLogDatabase(t)
	configs := mocks.NewSpaceConfigDatabase(t)
	aggregator := NewAggregator(joins, stats, departures, configs, Classifier{Threshold: 24 * time.Hour})
	return aggregator, joins, stats, departures, configs
}

func TestOnAttributedArrivalCreditsReferrer(t *testing.T) {
	aggregator, joins, stats, _, _ := newTestAggregator(t)
	joinedAt := time.Now()

	joins.On("InsertOne", mock.Anything, mock.MatchedBy(func(record models.JoinRecord) bool {
		return record.SpaceID == "space-1" &&
			record.UserID == "newbie" &&
			record.ReferrerID == "alice" &&
			record.InviteCode == "abc" &&
			record.JoinedAt.Equal(joinedAt)
	})).Return(nil, nil)
	stats.On("ApplyDelta", mock.Anything, "space-1", "alice", models.StatsDelta{
		TotalInvites: 1,
		RealInvites:  1,
	}).Return(nil)

	err := aggregator.OnAttributedArrival(context.Background(), "space-1", "alice", "abc", "newbie", joinedAt)
	require.NoError(t, err)
}

func TestOnUnattributedArrivalMovesNoCounters(t *testing.T) {
	aggregator, joins, _, _, _ := newTestAggregator(t)

	joins.On("InsertOne", mock.Anything, mock.MatchedBy(func(record models.JoinRecord) bool {
		return record.ReferrerID == "" && record.InviteCode == models.InviteCodeUnknown
	})).Return(nil, nil)

	err := aggregator.OnUnattributedArrival(context.Background(), "space-1", "newbie", time.Now())
	require.NoError(t, err)
}

func TestOnDepartureShortLivedReclassifies(t *testing.T) {
	aggregator, joins, stats, departures, _ := newTestAggregator(t)
	joinedAt := time.Now().Add(-2 * time.Hour)
	leftAt := time.Now()

	joins.On("FindOne", mock.Anything, mock.Anything).Return(&models.JoinRecord{
		SpaceID:    "space-1",
		UserID:     "newbie",
		ReferrerID: "alice",
		InviteCode: "abc",
		JoinedAt:   joinedAt,
	}, nil)
	// One real invite becomes fake; total is untouched.
	stats.On("ApplyDelta", mock.Anything, "space-1", "alice", models.StatsDelta{
		RealInvites: -1,
		FakeInvites: 1,
		Leaves:      1,
	}).Return(nil)
	departures.On("InsertOne", mock.Anything, mock.MatchedBy(func(log models.DepartureLog) bool {
		return log.ShortLived && log.ReferrerID == "alice" && log.DurationMinutes == 120
	})).Return(nil, nil)

	err := aggregator.OnDeparture(context.Background(), "space-1", "newbie", leftAt)
	require.NoError(t, err)
}

func TestOnDepartureGenuineStayOnlyCountsLeave(t *testing.T) {
	aggregator, joins, stats, departures, _ := newTestAggregator(t)
	joinedAt := time.Now().Add(-48 * time.Hour)

	joins.On("FindOne", mock.Anything, mock.Anything).Return(&models.JoinRecord{
		SpaceID:    "space-1",
		UserID:     "regular",
		ReferrerID: "alice",
		InviteCode: "abc",
		JoinedAt:   joinedAt,
	}, nil)
	stats.On("ApplyDelta", mock.Anything, "space-1", "alice", models.StatsDelta{
		Leaves: 1,
	}).Return(nil)
	departures.On("InsertOne", mock.Anything, mock.MatchedBy(func(log models.DepartureLog) bool {
		return !log.ShortLived
	})).Return(nil, nil)

	err := aggregator.OnDeparture(context.Background(), "space-1", "regular", time.Now())
	require.NoError(t, err)
}

func TestOnDepartureWithoutJoinRecordBumpsSpaceTally(t *testing.T) {
	aggregator, joins, _, _, configs := newTestAggregator(t)

	joins.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)
	configs.On("IncrementLeaves", mock.Anything, "space-1").Return(nil)

	err := aggregator.OnDeparture(context.Background(), "space-1", "ghost", time.Now())
	require.NoError(t, err)
}

func TestOnDepartureUnattributedJoinBumpsSpaceTally(t *testing.T) {
	aggregator, joins, _, _, configs := newTestAggregator(t)

	joins.On("FindOne", mock.Anything, mock.Anything).Return(&models.JoinRecord{
		SpaceID:    "space-1",
		UserID:     "mystery",
		InviteCode: models.InviteCodeUnknown,
	}, nil)
	configs.On("IncrementLeaves", mock.Anything, "space-1").Return(nil)

	err := aggregator.OnDeparture(context.Background(), "space-1", "mystery", time.Now())
	require.NoError(t, err)
}

func TestRecordManualResolutionWithReferrer(t *testing.T) {
	aggregator, joins, stats, _, _ := newTestAggregator(t)

	joins.On("InsertOne", mock.Anything, mock.MatchedBy(func(record models.JoinRecord) bool {
		return record.ReferrerID == "alice" && record.InviteCode == models.InviteCodeManual
	})).Return(nil, nil)
	stats.On("ApplyDelta", mock.Anything, "space-1", "alice", models.StatsDelta{
		TotalInvites: 1,
		RealInvites:  1,
	}).Return(nil)

	err := aggregator.RecordManualResolution(context.Background(), "space-1", "oldtimer", "alice")
	require.NoError(t, err)
}

func TestRecordManualResolutionUnknownSkipsCounters(t *testing.T) {
	aggregator, joins, _, _, _ := newTestAggregator(t)

	joins.On("InsertOne", mock.Anything, mock.MatchedBy(func(record models.JoinRecord) bool {
		return record.ReferrerID == "" && record.InviteCode == models.InviteCodeUnknown
	})).Return(nil, nil)

	err := aggregator.RecordManualResolution(context.Background(), "space-1", "oldtimer", "")
	require.NoError(t, err)
}

func TestQueryStatsZeroValuedWhenMissing(t *testing.T) {
	aggregator, _, stats, _, _ := newTestAggregator(t)

	stats.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	result, err := aggregator.QueryStats(context.Background(), "space-1", "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", result.ReferrerID)
	assert.Zero(t, result.TotalInvites)
	assert.Zero(t, result.RealInvites)
}

func TestUnresolvedMembersSkipsKnownAndAutomated(t *testing.T) {
	aggregator, joins, _, _, _ := newTestAggregator(t)

	joins.On("Find", mock.Anything, mock.Anything).Return([]models.JoinRecord{
		{SpaceID: "space-1", UserID: "known"},
	}, nil)

	members := []models.Member{
		{ID: "known"},
		{ID: "bot", IsAutomated: true},
		{ID: "mystery-1"},
		{ID: "mystery-2"},
	}
	unresolved, err := aggregator.UnresolvedMembers(context.Background(), "space-1", members)
	require.NoError(t, err)
	assert.Equal(t, []string{"mystery-1", "mystery-2"}, unresolved)
}
