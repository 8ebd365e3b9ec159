package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/invitetrackhq/invite-tracker-api/api"
	"github.com/invitetrackhq/invite-tracker-api/config"
	"github.com/invitetrackhq/invite-tracker-api/models"
	"github.com/invitetrackhq/invite-tracker-api/tracker"
)

const defaultLeaderboardLimit = 10

// Stats exported for testing purposes
type Stats struct {
	Tracker *tracker.Tracker
}

// ReferrerStatsHandler returns the invite counters for one referrer
func (s Stats) ReferrerStatsHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]
	referrerID := mux.Vars(r)["referrer_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.Tracker.QueryStats(ctx, spaceID, referrerID)
	if err != nil {
		config.ErrorStatus("failed to get referrer stats", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LeaderboardHandler returns the top referrers of a space by real invites
func (s Stats) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", defaultLeaderboardLimit, err))
		limit = defaultLeaderboardLimit
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.Tracker.QueryLeaderboard(ctx, spaceID, limit)
	if err != nil {
		config.ErrorStatus("failed to get leaderboard", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.ReferrerStats{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
