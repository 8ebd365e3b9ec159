package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invitetrackhq/invite-tracker-api/api/handlers"
	dbmocks "github.com/invitetrackhq/invite-tracker-api/databases/mocks"
	"github.com/invitetrackhq/invite-tracker-api/models"
	"github.com/invitetrackhq/invite-tracker-api/tracker"
	trackermocks "github.com/invitetrackhq/invite-tracker-api/tracker/mocks"
)

func TestEvents_InviteLifecycleOverWebSocket(t *testing.T) {
	invites := dbmocks.NewInviteRecordDatabase(t)
	invites.On("Upsert", mock.Anything, "space-1", models.Invite{
		Code: "fresh", CreatorID: "alice",
	}).Return(nil)
	invites.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)

	tr := tracker.New(
		trackermocks.NewLiveStateProvider(t),
		trackermocks.NewGrantActuator(t),
		trackermocks.NewMessenger(t),
		dbmocks.NewJoinRecordDatabase(t),
		dbmocks.NewReferrerStatsDatabase(t),
		dbmocks.NewRewardRuleDatabase(t),
		dbmocks.NewRewardGrantDatabase(t),
		dbmocks.NewSpaceConfigDatabase(t),
		invites,
		dbmocks.NewDepartureLogDatabase(t),
		tracker.Classifier{Threshold: 24 * time.Hour},
	)
	e := handlers.Events{Tracker: tr}

	server := httptest.NewServer(http.HandlerFunc(e.HandleEventsWebSocket))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	err = conn.WriteJSON(models.GatewayEvent{
		Kind:      models.EventInviteCreate,
		SpaceID:   "space-1",
		Code:      "fresh",
		CreatorID: "alice",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		snap := tr.Snapshots().Get("space-1")
		_, ok := snap["fresh"]
		return ok
	}, time.Second, 10*time.Millisecond)

	err = conn.WriteJSON(models.GatewayEvent{
		Kind:    models.EventInviteDelete,
		SpaceID: "space-1",
		Code:    "fresh",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		snap := tr.Snapshots().Get("space-1")
		_, ok := snap["fresh"]
		return !ok
	}, time.Second, 10*time.Millisecond)
}
