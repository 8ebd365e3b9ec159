package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	dbmocks "github.com/invitetrackhq/invite-tracker-api/databases/mocks"
	"github.com/invitetrackhq/invite-tracker-api/models"
	"github.com/invitetrackhq/invite-tracker-api/tracker/mocks"
)

type reconcilerFixture struct {
	reconciler *Reconciler
	provider   *mocks.LiveStateProvider
	joins      *dbmocks.JoinRecordDatabase
	stats      *dbmocks.ReferrerStatsDatabase
}

func newTestReconciler(t *testing.T, ttl time.Duration) reconcilerFixture {
	provider := mocks.NewLiveStateProvider(t)
	joins := dbmocks.NewJoinRecordDatabase(t)
	stats := dbmocks.NewReferrerStatsDatabase(t)
	departures := dbmocks.NewDepartureLogDatabase(t)
	configs := dbmocks.NewSpaceConfigDatabase(t)
	rules := dbmocks.NewRewardRuleDatabase(t)
	grants := dbmocks.NewRewardGrantDatabase(t)
	actuator := mocks.NewGrantActuator(t)

	aggregator := NewAggregator(joins, stats, departures, configs, Classifier{Threshold: 24 * time.Hour})
	evaluator := NewEvaluator(rules, grants, stats, actuator)
	return reconcilerFixture{
		reconciler: NewReconciler(provider, aggregator, evaluator, ttl),
		provider:   provider,
		joins:      joins,
		stats:      stats,
	}
}

func TestReconciliationWalksEachMemberOnce(t *testing.T) {
	f := newTestReconciler(t, time.Minute)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "m1"}, {ID: "m2"}, {ID: "m3"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return(nil, nil).Once()

	session, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)
	assert.Equal(t, SessionAwaitingResolution, session.State)
	assert.Equal(t, "m1", session.Pending)
	assert.Equal(t, 2, session.Remaining)

	// Each resolution re-checks for a record gained since the scan.
	f.joins.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)
	f.joins.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)

	session, err = f.reconciler.Resolve(context.Background(), session.ID, "m1", "")
	require.NoError(t, err)
	assert.Equal(t, "m2", session.Pending)
	assert.Equal(t, 1, session.ResolvedCount)

	session, err = f.reconciler.Resolve(context.Background(), session.ID, "m2", "")
	require.NoError(t, err)
	assert.Equal(t, "m3", session.Pending)

	session, err = f.reconciler.Resolve(context.Background(), session.ID, "m3", "")
	require.NoError(t, err)
	assert.Equal(t, SessionComplete, session.State)
	assert.Empty(t, session.Pending)
	assert.Equal(t, 3, session.ResolvedCount)
}

func TestReconciliationResolutionWithReferrerCreditsManualInvite(t *testing.T) {
	f := newTestReconciler(t, time.Minute)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "oldtimer"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return(nil, nil).Once()

	session, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)

	f.joins.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)
	f.joins.On("InsertOne", mock.Anything, mock.MatchedBy(func(record models.JoinRecord) bool {
		return record.InviteCode == models.InviteCodeManual && record.ReferrerID == "alice"
	})).Return(nil, nil)
	f.stats.On("ApplyDelta", mock.Anything, "space-1", "alice", models.StatsDelta{
		TotalInvites: 1,
		RealInvites:  1,
	}).Return(nil)
	// Reward evaluation runs for the credited referrer.
	f.stats.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	session, err = f.reconciler.Resolve(context.Background(), session.ID, "oldtimer", "alice")
	require.NoError(t, err)
	assert.Equal(t, SessionComplete, session.State)
}

func TestReconciliationSkipsMemberResolvedSinceScan(t *testing.T) {
	f := newTestReconciler(t, time.Minute)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "racer"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return(nil, nil).Once()

	session, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)

	// The member gained a record between scan and resolution; no write.
	f.joins.On("FindOne", mock.Anything, mock.Anything).Return(&models.JoinRecord{
		SpaceID: "space-1",
		UserID:  "racer",
	}, nil)

	session, err = f.reconciler.Resolve(context.Background(), session.ID, "racer", "alice")
	require.NoError(t, err)
	assert.Equal(t, SessionComplete, session.State)
	f.joins.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestReconciliationEmptyScanCompletesImmediately(t *testing.T) {
	f := newTestReconciler(t, time.Minute)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "known"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return([]models.JoinRecord{
		{SpaceID: "space-1", UserID: "known"},
	}, nil)

	session, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)
	assert.Equal(t, SessionComplete, session.State)
}

func TestReconciliationRejectsWrongMember(t *testing.T) {
	f := newTestReconciler(t, time.Minute)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "m1"}, {ID: "m2"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return(nil, nil)

	session, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)

	_, err = f.reconciler.Resolve(context.Background(), session.ID, "m2", "alice")
	assert.ErrorIs(t, err, ErrMemberMismatch)
}

func TestReconciliationSessionExpires(t *testing.T) {
	f := newTestReconciler(t, time.Millisecond)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "m1"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return(nil, nil)

	session, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = f.reconciler.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = f.reconciler.Resolve(context.Background(), session.ID, "m1", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestReconciliationCancelKeepsSubmittedResolutions(t *testing.T) {
	f := newTestReconciler(t, time.Minute)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "m1"}, {ID: "m2"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return(nil, nil)

	session, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)

	f.joins.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)
	f.joins.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)
	_, err = f.reconciler.Resolve(context.Background(), session.ID, "m1", "")
	require.NoError(t, err)

	cancelled, err := f.reconciler.Cancel(session.ID)
	require.NoError(t, err)
	assert.Equal(t, SessionAbandoned, cancelled.State)
	assert.Equal(t, 1, cancelled.ResolvedCount)

	_, err = f.reconciler.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSweepExpiredRemovesIdleSessions(t *testing.T) {
	f := newTestReconciler(t, time.Millisecond)

	f.provider.On("FetchMembers", mock.Anything, "space-1").Return([]models.Member{
		{ID: "m1"},
	}, nil)
	f.joins.On("Find", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := f.reconciler.Start(context.Background(), "space-1", "admin")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, f.reconciler.SweepExpired())
	assert.Equal(t, 0, f.reconciler.SweepExpired())
}
