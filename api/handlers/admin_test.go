package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/invitetrackhq/invite-tracker-api/api/handlers"
	"github.com/invitetrackhq/invite-tracker-api/databases/mocks"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

func TestAdmin_AdminLoginHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	adminDB := mocks.NewAdminDatabase(t)
	adminDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AdminUser{
		ID:           primitive.NewObjectID(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Active:       true,
		Roles:        []string{"admin"},
	}, nil)

	h := handlers.Admin{ADB: adminDB}

	body := `{"email": "admin@example.com", "password": "hunter2"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestAdmin_AdminLoginHandlerWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	adminDB := mocks.NewAdminDatabase(t)
	adminDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AdminUser{
		ID:           primitive.NewObjectID(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Active:       true,
	}, nil)

	h := handlers.Admin{ADB: adminDB}

	body := `{"email": "admin@example.com", "password": "wrong"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdmin_AdminLoginHandlerUnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminDB := mocks.NewAdminDatabase(t)
	adminDB.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	h := handlers.Admin{ADB: adminDB}

	body := `{"email": "nobody@example.com", "password": "hunter2"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdmin_AdminLoginHandlerMissingFields(t *testing.T) {
	h := handlers.Admin{ADB: mocks.NewAdminDatabase(t)}

	body := `{"email": "", "password": ""}`
	req := httptest.NewRequest("POST", "/api/v1/admin/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
