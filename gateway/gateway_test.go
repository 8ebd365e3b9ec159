package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchInvites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces/space-1/invites", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"code": "abc", "creatorId": "alice", "uses": 5}]`))
	}))
	defer server.Close()

	client := New(server.URL, "secret")
	invites, err := client.FetchInvites(context.Background(), "space-1")
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, "abc", invites[0].Code)
	assert.Equal(t, "alice", invites[0].CreatorID)
	assert.Equal(t, 5, invites[0].Uses)
}

func TestFetchMembersErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL, "secret")
	_, err := client.FetchMembers(context.Background(), "space-1")
	assert.Error(t, err)
}

func TestGrantRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/spaces/space-1/members/alice/roles/role-bronze", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL, "secret")
	err := client.GrantRole(context.Background(), "space-1", "alice", "role-bronze")
	assert.NoError(t, err)
}

func TestSendWelcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL, "secret")
	err := client.SendWelcome(context.Background(), "space-1", "chan-1", "hello")
	assert.NoError(t, err)
}
