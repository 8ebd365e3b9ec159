package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invitetrackhq/invite-tracker-api/api/handlers"
	dbmocks "github.com/invitetrackhq/invite-tracker-api/databases/mocks"
	"github.com/invitetrackhq/invite-tracker-api/models"
	"github.com/invitetrackhq/invite-tracker-api/tracker"
	trackermocks "github.com/invitetrackhq/invite-tracker-api/tracker/mocks"
)

func newStatsFixture(t *testing.T) (handlers.Stats, *dbmocks.ReferrerStatsDatabase) {
	statsDB := dbmocks.NewReferrerStatsDatabase(t)
	tr := tracker.New(
		trackermocks.NewLiveStateProvider(t),
		trackermocks.NewGrantActuator(t),
		trackermocks.NewMessenger(t),
		dbmocks.NewJoinRecordDatabase(t),
		statsDB,
		dbmocks.NewRewardRuleDatabase(t),
		dbmocks.NewRewardGrantDatabase(t),
		dbmocks.NewSpaceConfigDatabase(t),
		dbmocks.NewInviteRecordDatabase(t),
		dbmocks.NewDepartureLogDatabase(t),
		tracker.Classifier{Threshold: 24 * time.Hour},
	)
	return handlers.Stats{Tracker: tr}, statsDB
}

func TestStats_ReferrerStatsHandler(t *testing.T) {
	h, statsDB := newStatsFixture(t)

	statsDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.ReferrerStats{
		SpaceID:      "space-1",
		ReferrerID:   "alice",
		TotalInvites: 12,
		RealInvites:  9,
		FakeInvites:  3,
		Leaves:       4,
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/space/space-1/stats/alice", nil)
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1", "referrer_id": "alice"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.ReferrerStatsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.ReferrerStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.RealInvites)
	assert.Equal(t, 12, resp.TotalInvites)
}

func TestStats_ReferrerStatsHandlerUnknownReferrerIsZero(t *testing.T) {
	h, statsDB := newStatsFixture(t)

	statsDB.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	req := httptest.NewRequest("GET", "/api/v1/space/space-1/stats/nobody", nil)
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1", "referrer_id": "nobody"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.ReferrerStatsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.ReferrerStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "nobody", resp.ReferrerID)
	assert.Zero(t, resp.TotalInvites)
}

func TestStats_LeaderboardHandler(t *testing.T) {
	h, statsDB := newStatsFixture(t)

	statsDB.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.ReferrerStats{
		{SpaceID: "space-1", ReferrerID: "alice", RealInvites: 9},
		{SpaceID: "space-1", ReferrerID: "bob", RealInvites: 4},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/space/space-1/leaderboard?limit=2", nil)
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.LeaderboardHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []models.ReferrerStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "alice", resp[0].ReferrerID)
}

func TestStats_LeaderboardHandlerEmptyIsEmptyArray(t *testing.T) {
	h, statsDB := newStatsFixture(t)

	statsDB.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/space/space-1/leaderboard", nil)
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.LeaderboardHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
