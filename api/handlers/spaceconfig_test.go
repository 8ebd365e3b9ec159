package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invitetrackhq/invite-tracker-api/api/handlers"
	"github.com/invitetrackhq/invite-tracker-api/databases/mocks"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

func TestSpaceConfig_GetSpaceConfigHandler(t *testing.T) {
	db := mocks.NewSpaceConfigDatabase(t)
	db.On("FindOne", mock.Anything, mock.Anything).Return(&models.SpaceConfig{
		SpaceID:         "space-1",
		WelcomeChannel:  "chan-1",
		WelcomeTemplate: "Welcome {user}!",
	}, nil)

	h := handlers.SpaceConfig{DB: db}

	req := httptest.NewRequest("GET", "/api/v1/space/space-1/config", nil)
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.GetSpaceConfigHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.SpaceConfig
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "chan-1", resp.WelcomeChannel)
}

func TestSpaceConfig_GetSpaceConfigHandlerUnconfiguredSpace(t *testing.T) {
	db := mocks.NewSpaceConfigDatabase(t)
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	h := handlers.SpaceConfig{DB: db}

	req := httptest.NewRequest("GET", "/api/v1/space/space-1/config", nil)
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.GetSpaceConfigHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.SpaceConfig
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "space-1", resp.SpaceID)
	assert.Empty(t, resp.WelcomeChannel)
}

func TestSpaceConfig_UpsertSpaceConfigHandler(t *testing.T) {
	db := mocks.NewSpaceConfigDatabase(t)
	db.On("Upsert", mock.Anything, "space-1", mock.MatchedBy(func(cfg models.SpaceConfig) bool {
		return cfg.WelcomeChannel == "chan-9" && cfg.WelcomeTemplate == "Hello {user}"
	})).Return(nil)

	h := handlers.SpaceConfig{DB: db}

	body := `{"welcomeChannel": "chan-9", "welcomeTemplate": "Hello {user}"}`
	req := httptest.NewRequest("PUT", "/api/v1/space/space-1/config", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.UpsertSpaceConfigHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSpaceConfig_UpsertSpaceConfigHandlerBadBody(t *testing.T) {
	h := handlers.SpaceConfig{DB: mocks.NewSpaceConfigDatabase(t)}

	req := httptest.NewRequest("PUT", "/api/v1/space/space-1/config", strings.NewReader("{"))
	req = mux.SetURLVars(req, map[string]string{"space_id": "space-1"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.UpsertSpaceConfigHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
