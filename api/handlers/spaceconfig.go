package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/invitetrackhq/invite-tracker-api/api"
	"github.com/invitetrackhq/invite-tracker-api/config"
	"github.com/invitetrackhq/invite-tracker-api/databases"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

// SpaceConfig exported for testing purposes
type SpaceConfig struct {
	DB databases.SpaceConfigDatabase
}

type spaceConfigRequest struct {
	WelcomeChannel  string `json:"welcomeChannel"`
	WelcomeTemplate string `json:"welcomeTemplate"`
}

// GetSpaceConfigHandler returns the config document for a space. A space
// that was never configured returns an empty config rather than a 404.
func (s SpaceConfig) GetSpaceConfigHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.DB.FindOne(ctx, bson.M{"spaceId": spaceID})
	if err != nil {
		dbResp = &models.SpaceConfig{SpaceID: spaceID}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpsertSpaceConfigHandler creates or replaces the config for a space
func (s SpaceConfig) UpsertSpaceConfigHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]

	var req spaceConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cfg := models.SpaceConfig{
		SpaceID:         spaceID,
		WelcomeChannel:  req.WelcomeChannel,
		WelcomeTemplate: req.WelcomeTemplate,
	}
	if err := s.DB.Upsert(ctx, spaceID, cfg); err != nil {
		config.ErrorStatus("failed to upsert space config", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(cfg)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
