package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/invitetrackhq/invite-tracker-api/api"
	"github.com/invitetrackhq/invite-tracker-api/config"
	"github.com/invitetrackhq/invite-tracker-api/databases"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

// RewardRule exported for testing purposes
type RewardRule struct {
	DB databases.RewardRuleDatabase
}

type rewardRuleRequest struct {
	Name            string `json:"name"`
	InvitesRequired int    `json:"invitesRequired"`
	GrantID         string `json:"grantId"`
}

// ListRewardRulesHandler returns all reward rules for a space
func (h RewardRule) ListRewardRulesHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.Find(ctx, bson.M{"spaceId": spaceID})
	if err != nil {
		config.ErrorStatus("failed to get reward rules", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.RewardRule{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateRewardRuleHandler creates a reward rule for a space
func (h RewardRule) CreateRewardRuleHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]

	var req rewardRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.InvitesRequired <= 0 || req.GrantID == "" {
		config.ErrorStatus("invitesRequired and grantId are required", http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rule := models.RewardRule{
		ID:              primitive.NewObjectID(),
		SpaceID:         spaceID,
		Name:            req.Name,
		InvitesRequired: req.InvitesRequired,
		GrantID:         req.GrantID,
		CreatedAt:       time.Now(),
	}
	if _, err := h.DB.InsertOne(ctx, rule); err != nil {
		config.ErrorStatus("failed to insert reward rule", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(rule)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DeleteRewardRuleHandler deletes a reward rule by ID. Grants already
// issued under the rule are not revoked.
func (h RewardRule) DeleteRewardRuleHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]
	ruleID := mux.Vars(r)["rule_id"]

	rID, err := primitive.ObjectIDFromHex(ruleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.DeleteOne(ctx, bson.M{"_id": rID, "spaceId": spaceID}); err != nil {
		config.ErrorStatus("failed to delete reward rule", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"deleted": true}`))
}
